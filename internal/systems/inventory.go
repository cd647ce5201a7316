package systems

import "github.com/samdwyer/asciiquest/internal/component"

// ItemCollection moves picked-up items from the floor into the collector's
// backpack.
type ItemCollection struct{}

// Name implements System.
func (ItemCollection) Name() string { return "item_collection" }

// Run implements System.
func (ItemCollection) Run(s *Session) {
	w := s.World
	for _, e := range w.WantsToPickupItem.All() {
		intent, _ := w.WantsToPickupItem.Get(e)
		if !w.Items.Has(intent.Item) || !w.Positions.Has(intent.Item) {
			continue
		}

		w.Positions.Remove(intent.Item)
		w.InBackpacks.Set(intent.Item, component.InBackpack{Owner: intent.CollectedBy})
		if intent.CollectedBy == s.Player {
			s.Log.Add("You pick up the %s.", w.NameOf(intent.Item))
		}
	}
	w.WantsToPickupItem.Clear()
}

// ItemDrop puts dropped items on the floor at the dropper's position.
type ItemDrop struct{}

// Name implements System.
func (ItemDrop) Name() string { return "item_drop" }

// Run implements System.
func (ItemDrop) Run(s *Session) {
	w := s.World
	for _, e := range w.WantsToDropItem.All() {
		intent, _ := w.WantsToDropItem.Get(e)
		pack, ok := w.InBackpacks.Get(intent.Item)
		if !ok || pack.Owner != e {
			continue
		}
		pos, ok := w.Positions.Get(e)
		if !ok {
			continue
		}

		w.InBackpacks.Remove(intent.Item)
		w.Positions.Set(intent.Item, pos)
		if e == s.Player {
			s.Log.Add("You drop the %s.", w.NameOf(intent.Item))
		}
	}
	w.WantsToDropItem.Clear()
}

package systems

import "github.com/samdwyer/asciiquest/internal/component"

// Visibility recomputes the field of view of every entity whose Vision is
// dirty. Only the player's view updates the map's Visible and Revealed
// arrays.
type Visibility struct{}

// Name implements System.
func (Visibility) Name() string { return "visibility" }

// Run implements System.
func (Visibility) Run(s *Session) {
	w := s.World
	for _, e := range w.Query().With(w.Visions).With(w.Positions).Execute() {
		pos, _ := w.Positions.Get(e)
		isPlayer := w.Players.Has(e)

		w.Visions.Update(e, func(v *component.Vision) {
			if !v.Dirty {
				return
			}
			v.Dirty = false
			v.VisibleTiles = s.Map.FieldOfView(pos, v.Range)

			if !isPlayer {
				return
			}
			s.Map.ResetVisible()
			for _, p := range v.VisibleTiles {
				idx := s.Map.Index(p.X, p.Y)
				s.Map.Visible[idx] = true
				s.Map.Revealed[idx] = true
			}
		})
	}
}

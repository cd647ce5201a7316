package systems

// MapIndexing rebuilds the map's Blocked and TileContent arrays from the
// static layout and current entity positions.
type MapIndexing struct{}

// Name implements System.
func (MapIndexing) Name() string { return "map_indexing" }

// Run implements System. A Position outside the map panics in Index.
func (MapIndexing) Run(s *Session) {
	w := s.World
	s.Map.PopulateBlocked()
	s.Map.ClearContent()

	for _, e := range w.Positions.All() {
		pos, _ := w.Positions.Get(e)
		idx := s.Map.Index(pos.X, pos.Y)
		if w.BlocksTiles.Has(e) {
			s.Map.Blocked[idx] = true
		}
		s.Map.TileContent[idx] = append(s.Map.TileContent[idx], e)
	}
}

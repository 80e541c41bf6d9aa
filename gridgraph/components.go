package gridgraph

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Components are listed in row-major order of their first cell; cells
// within a component are in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]Cell {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]Cell

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c0 := Cell{X: x, Y: y}
			if !gg.IsLand(c0) || seen[gg.Index(c0)] {
				continue
			}
			// BFS to collect component
			queue := []Cell{c0}
			seen[gg.Index(c0)] = true
			for qi := 0; qi < len(queue); qi++ {
				for _, v := range gg.OutEdges(queue[qi]) {
					if vi := gg.Index(v); !seen[vi] {
						seen[vi] = true
						queue = append(queue, v)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}

package maze

// Direction identifies one side of a cell.
type Direction uint8

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// Cell is a single square of the grid. Row and Col are fixed at construction.
// Visited flips to true the first time the cell becomes the carver's current
// cell and stays true until the grid is rebuilt. The four wall flags start
// true and are only ever cleared, always together with the matching flag of
// the adjacent cell.
type Cell struct {
	Row     int  `json:"row"`
	Col     int  `json:"col"`
	Visited bool `json:"visited"`
	Top     bool `json:"top"`
	Bottom  bool `json:"bottom"`
	Left    bool `json:"left"`
	Right   bool `json:"right"`
}

// HasWall reports whether the wall on the given side is still standing.
func (c Cell) HasWall(d Direction) bool {
	switch d {
	case Top:
		return c.Top
	case Bottom:
		return c.Bottom
	case Left:
		return c.Left
	case Right:
		return c.Right
	}
	return false
}

// WallMask packs the wall flags into the low four bits, one bit per
// Direction, for compact transfer to rendering clients.
func (c Cell) WallMask() uint8 {
	var m uint8
	if c.Top {
		m |= 1 << Top
	}
	if c.Bottom {
		m |= 1 << Bottom
	}
	if c.Left {
		m |= 1 << Left
	}
	if c.Right {
		m |= 1 << Right
	}
	return m
}

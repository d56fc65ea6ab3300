package drag

// Kind is what is being dragged
type Kind int

const (
	KindCard Kind = iota
	KindColumn
)

func (k Kind) String() string {
	if k == KindColumn {
		return "column"
	}
	return "card"
}

// State is the manager's state
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Session is the payload of an in-progress drag
type Session struct {
	Kind         Kind
	SourceID     string // column name for KindColumn, record ID for KindCard
	SourceColumn string // column holding the card; empty for KindColumn
	SourceIndex  int
}

// Point is a pointer position
type Point struct {
	X, Y float64
}

// Rect is an element's bounds
type Rect struct {
	X, Y, W, H float64
}

// Mid returns the rectangle's midpoint
func (r Rect) Mid() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Sibling is a candidate neighbour of the insertion point
type Sibling struct {
	ID     string
	Bounds Rect
}

// Surface is the drop surface under the pointer.
// For card drags Column names the column; for column drags it is empty and
// Siblings are the column headers. A zero Surface means no drop surface.
type Surface struct {
	Column   string
	Siblings []Sibling
	valid    bool
}

// NewSurface describes a drop surface under the pointer
func NewSurface(column string, siblings []Sibling) Surface {
	return Surface{Column: column, Siblings: siblings, valid: true}
}

// Target is the live insertion point of a drag
type Target struct {
	Column string
	Index  int
	Valid  bool
}

package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ShapeID identifies a shape within its catalog.
type ShapeID int

// CenterColumn as a StartColumn spawns the shape horizontally centered.
const CenterColumn = -1

// ShapeDef is the table form of a shape: its frames as row strings.
type ShapeDef struct {
	Name        string
	Color       core.Color
	StartColumn int
	Frames      [][]string
}

// Shape is a piece type: an ordered rotation cycle plus a display color.
type Shape struct {
	id          ShapeID
	name        string
	color       core.Color
	startColumn int
	frames      []Frame
}

func (s *Shape) ID() ShapeID       { return s.id }
func (s *Shape) Name() string      { return s.name }
func (s *Shape) Color() core.Color { return s.color }
func (s *Shape) StartColumn() int  { return s.startColumn }
func (s *Shape) FrameCount() int   { return len(s.frames) }

// Catalog is an immutable table of shapes, shared read-only by all pieces.
type Catalog struct {
	shapes []*Shape
}

// NewCatalog parses shape definitions. Shape IDs are assigned in order.
func NewCatalog(defs ...ShapeDef) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: catalog has no shapes", ErrInvalidConfig)
	}

	c := &Catalog{shapes: make([]*Shape, 0, len(defs))}
	for i, def := range defs {
		if len(def.Frames) == 0 {
			return nil, fmt.Errorf("%w: shape %q has no frames", ErrInvalidConfig, def.Name)
		}
		if def.StartColumn < CenterColumn {
			return nil, fmt.Errorf("%w: shape %q has start column %d", ErrInvalidConfig, def.Name, def.StartColumn)
		}
		s := &Shape{
			id:          ShapeID(i),
			name:        def.Name,
			color:       def.Color,
			startColumn: def.StartColumn,
			frames:      make([]Frame, 0, len(def.Frames)),
		}
		for _, rows := range def.Frames {
			f, err := ParseFrame(rows...)
			if err != nil {
				return nil, fmt.Errorf("shape %q: %w", def.Name, err)
			}
			s.frames = append(s.frames, f)
		}
		c.shapes = append(c.shapes, s)
	}
	return c, nil
}

// MustCatalog is NewCatalog for static tables.
func MustCatalog(defs ...ShapeDef) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of shapes.
func (c *Catalog) Len() int { return len(c.shapes) }

// Shape returns the shape with the given ID.
func (c *Catalog) Shape(id ShapeID) (*Shape, error) {
	if int(id) < 0 || int(id) >= len(c.shapes) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShape, id)
	}
	return c.shapes[id], nil
}

// FrameCount returns the rotation cycle length of a shape.
func (c *Catalog) FrameCount(id ShapeID) (int, error) {
	s, err := c.Shape(id)
	if err != nil {
		return 0, err
	}
	return len(s.frames), nil
}

// StartColumn returns the declared spawn column offset of a shape
// (possibly CenterColumn).
func (c *Catalog) StartColumn(id ShapeID) (int, error) {
	s, err := c.Shape(id)
	if err != nil {
		return 0, err
	}
	return s.startColumn, nil
}

// Frame returns one rotation of a shape.
// frameIndex must lie in [0, FrameCount(id)).
func (c *Catalog) Frame(id ShapeID, frameIndex int) (Frame, error) {
	s, err := c.Shape(id)
	if err != nil {
		return Frame{}, err
	}
	if frameIndex < 0 || frameIndex >= len(s.frames) {
		return Frame{}, fmt.Errorf("%w: shape %q frame %d (cycle %d)", ErrInvalidFrame, s.name, frameIndex, len(s.frames))
	}
	return s.frames[frameIndex], nil
}

// MustFrame is Frame for indices the caller already knows to be valid.
func (c *Catalog) MustFrame(id ShapeID, frameIndex int) Frame {
	f, err := c.Frame(id, frameIndex)
	if err != nil {
		panic(err)
	}
	return f
}

// SpawnColumn resolves a shape's spawn column on a board of the given width.
func (c *Catalog) SpawnColumn(id ShapeID, cols int) (int, error) {
	s, err := c.Shape(id)
	if err != nil {
		return 0, err
	}
	if s.startColumn != CenterColumn {
		return s.startColumn, nil
	}
	return (cols - s.frames[0].Width()) / 2, nil
}

// Validate checks that every frame fits a rows x cols board and that every
// shape's spawn frame fits at its spawn column.
func (c *Catalog) Validate(rows, cols int) error {
	for _, s := range c.shapes {
		for i, f := range s.frames {
			if f.Width() > cols || f.Height() > rows {
				return fmt.Errorf("%w: shape %q frame %d is %dx%d, board is %dx%d",
					ErrInvalidConfig, s.name, i, f.Height(), f.Width(), rows, cols)
			}
		}
		col, _ := c.SpawnColumn(s.id, cols)
		if col < 0 || col+s.frames[0].Width() > cols {
			return fmt.Errorf("%w: shape %q spawns at column %d outside a %d-column board",
				ErrInvalidConfig, s.name, col, cols)
		}
	}
	return nil
}

// classicShapes are the seven tetrominoes. Frames carry no padding rows so a
// piece spawns flush with row 0.
var classicShapes = []ShapeDef{
	{Name: "I", Color: core.ColorCyan, StartColumn: CenterColumn, Frames: [][]string{
		{"1111"},
		{"1", "1", "1", "1"},
	}},
	{Name: "O", Color: core.ColorYellow, StartColumn: CenterColumn, Frames: [][]string{
		{"11", "11"},
	}},
	{Name: "T", Color: core.ColorMagenta, StartColumn: CenterColumn, Frames: [][]string{
		{"111", "010"},
		{"01", "11", "01"},
		{"010", "111"},
		{"10", "11", "10"},
	}},
	{Name: "S", Color: core.ColorGreen, StartColumn: CenterColumn, Frames: [][]string{
		{"011", "110"},
		{"10", "11", "01"},
	}},
	{Name: "Z", Color: core.ColorRed, StartColumn: CenterColumn, Frames: [][]string{
		{"110", "011"},
		{"01", "11", "10"},
	}},
	{Name: "J", Color: core.ColorBlue, StartColumn: CenterColumn, Frames: [][]string{
		{"100", "111"},
		{"11", "10", "10"},
		{"111", "001"},
		{"01", "01", "11"},
	}},
	{Name: "L", Color: core.ColorOrange, StartColumn: CenterColumn, Frames: [][]string{
		{"001", "111"},
		{"10", "10", "11"},
		{"111", "100"},
		{"11", "01", "01"},
	}},
}

// barShapes is the single two-frame bar of the original handheld game.
var barShapes = []ShapeDef{
	{Name: "Bar", Color: core.ColorBrightCyan, StartColumn: 2, Frames: [][]string{
		{"1111"},
		{"1", "1", "1", "1"},
	}},
}

var (
	classicCatalog = MustCatalog(classicShapes...)
	barCatalog     = MustCatalog(barShapes...)
)

// ClassicCatalog returns the seven-tetromino catalog.
func ClassicCatalog() *Catalog { return classicCatalog }

// BarCatalog returns the single-bar catalog.
func BarCatalog() *Catalog { return barCatalog }

// CatalogByName resolves a catalog name from configuration.
func CatalogByName(name string) (*Catalog, error) {
	switch name {
	case "", "classic":
		return classicCatalog, nil
	case "bar":
		return barCatalog, nil
	default:
		return nil, fmt.Errorf("%w: unknown catalog %q", ErrInvalidConfig, name)
	}
}

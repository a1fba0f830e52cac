package shape

import (
	"github.com/inkstage/inkstage/layoutexpr"
	"github.com/inkstage/inkstage/step"
	"github.com/inkstage/inkstage/stepval"
)

// Arrow describes an arrowhead decoration drawn at the end of a path or
// stroked line. Unlike the rest of a shape, it is not itself stepped —
// an arrow either decorates a line for its whole lifetime or not at all.
type Arrow struct {
	Size        float64
	Angle       float64
	Color       *string
	StrokeWidth *float64
	InnerPoint  *Point
}

// NewArrow builds an arrow with the original's defaults (size 10, angle
// 40 degrees).
func NewArrow() Arrow {
	return Arrow{Size: 10, Angle: 40}
}

// PathCommandKind is the kind of a single path-drawing instruction.
type PathCommandKind int

const (
	PathMoveTo PathCommandKind = iota
	PathLineTo
	PathQuadTo
	PathCubicTo
	PathClose
)

// pathCommandArity is how many points each command consumes from Path's
// flattened Points slice.
func pathCommandArity(k PathCommandKind) int {
	switch k {
	case PathMoveTo, PathLineTo:
		return 1
	case PathQuadTo:
		return 2
	case PathCubicTo:
		return 3
	case PathClose:
		return 0
	default:
		return 0
	}
}

// Path is an imperative builder for an arbitrary vector path: a sequence
// of draw commands with parallel stepped endpoints, mirroring the
// original's parallel commands/points lists.
type Path struct {
	Stroke      *Stroke
	FillColor   *stepval.StepVal[string]
	ZLevel      *stepval.StepVal[int]
	Show        *stepval.StepVal[bool]
	StartArrow  *Arrow
	EndArrow    *Arrow
	Commands    []PathCommandKind
	Points      []*stepval.StepVal[Point]
}

// NewPath starts an empty, always-visible path.
func NewPath() *Path {
	return &Path{Show: stepval.Const(true)}
}

// Oval builds a closed path approximating an ellipse inscribed between
// p1 and p2 using four cubic Bezier arcs, the standard circle-to-bezier
// construction (kappa ~= 0.5522847498).
func Oval(p1, p2 Point) *Path {
	const kappa = 0.5522847498

	cx := avgValue(p1.X, p2.X)
	cy := avgValue(p1.Y, p2.Y)
	rx := halfSpan(p1.X, p2.X)
	ry := halfSpan(p1.Y, p2.Y)

	pt := func(x, y Value) *stepval.StepVal[Point] { return stepval.Const(Point{X: x, Y: y}) }

	top := pt(cx, subValue(cy, ry))
	right := pt(addValue(cx, rx), cy)
	bottom := pt(cx, addValue(cy, ry))
	left := pt(subValue(cx, rx), cy)

	kx := scaleValue(rx, kappa)
	ky := scaleValue(ry, kappa)

	p := NewPath()
	p.moveToRaw(top)
	p.cubicToRaw(
		pt(addValue(cx, kx), subValue(cy, ry)),
		pt(addValue(cx, rx), subValue(cy, ky)),
		right,
	)
	p.cubicToRaw(
		pt(addValue(cx, rx), addValue(cy, ky)),
		pt(addValue(cx, kx), addValue(cy, ry)),
		bottom,
	)
	p.cubicToRaw(
		pt(subValue(cx, kx), addValue(cy, ry)),
		pt(subValue(cx, rx), addValue(cy, ky)),
		left,
	)
	p.cubicToRaw(
		pt(subValue(cx, rx), subValue(cy, ky)),
		pt(subValue(cx, kx), subValue(cy, ry)),
		top,
	)
	p.Close()
	return p
}

// LastPoint returns the final point appended so far, if any.
func (p *Path) LastPoint() (*stepval.StepVal[Point], bool) {
	if len(p.Points) == 0 {
		return nil, false
	}
	return p.Points[len(p.Points)-1], true
}

func (p *Path) moveToRaw(pt *stepval.StepVal[Point]) *Path {
	p.Commands = append(p.Commands, PathMoveTo)
	p.Points = append(p.Points, pt)
	return p
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt *stepval.StepVal[Point]) *Path { return p.moveToRaw(pt) }

// MoveBy starts a new subpath at an offset relative to the last point.
// Only meaningful when the last point's coordinates are literal numbers;
// percent/layout-expr coordinates are carried through unchanged.
func (p *Path) MoveBy(dx, dy float64) *Path {
	return p.moveToRaw(p.relativePoint(dx, dy))
}

func (p *Path) lineToRaw(pt *stepval.StepVal[Point]) *Path {
	p.Commands = append(p.Commands, PathLineTo)
	p.Points = append(p.Points, pt)
	return p
}

// LineTo draws a straight segment to pt.
func (p *Path) LineTo(pt *stepval.StepVal[Point]) *Path { return p.lineToRaw(pt) }

// LineBy draws a straight segment to an offset relative to the last point.
func (p *Path) LineBy(dx, dy float64) *Path {
	return p.lineToRaw(p.relativePoint(dx, dy))
}

func (p *Path) quadToRaw(ctrl, end *stepval.StepVal[Point]) *Path {
	p.Commands = append(p.Commands, PathQuadTo)
	p.Points = append(p.Points, ctrl, end)
	return p
}

// QuadTo draws a quadratic Bezier through ctrl to end.
func (p *Path) QuadTo(ctrl, end *stepval.StepVal[Point]) *Path { return p.quadToRaw(ctrl, end) }

func (p *Path) cubicToRaw(c1, c2, end *stepval.StepVal[Point]) *Path {
	p.Commands = append(p.Commands, PathCubicTo)
	p.Points = append(p.Points, c1, c2, end)
	return p
}

// CubicTo draws a cubic Bezier through c1, c2 to end.
func (p *Path) CubicTo(c1, c2, end *stepval.StepVal[Point]) *Path {
	return p.cubicToRaw(c1, c2, end)
}

// Close closes the current subpath back to its starting point.
func (p *Path) Close() *Path {
	p.Commands = append(p.Commands, PathClose)
	return p
}

// relativePoint builds a StepVal[Point] offset by (dx,dy) from the last
// point appended, defaulting to the origin if the path is empty.
func (p *Path) relativePoint(dx, dy float64) *stepval.StepVal[Point] {
	last, ok := p.LastPoint()
	if !ok {
		return stepval.Const(Point{X: Num(dx), Y: Num(dy)})
	}
	return stepval.Map(last, func(pt Point) Point {
		return Point{X: addValue(pt.X, Num(dx)), Y: addValue(pt.Y, Num(dy))}
	})
}

// RawPathCommand is one compiled, per-step path instruction.
type RawPathCommand struct {
	Kind   PathCommandKind
	Points []Point
}

// RawPath is a path's compiled description for a single step.
type RawPath struct {
	ZLevel    int
	Stroke    *ResolvedStroke
	FillColor string
	StartArrow *Arrow
	EndArrow   *Arrow
	Commands   []RawPathCommand
}

// ToRaw compiles the path at s, returning nil if hidden at that step.
func (p *Path) ToRaw(at step.Step, defaultZLevel int) *RawPath {
	if p.Show != nil && !p.Show.Get(at, true) {
		return nil
	}
	zLevel := defaultZLevel
	if p.ZLevel != nil {
		zLevel = p.ZLevel.Get(at, defaultZLevel)
	}
	var stroke *ResolvedStroke
	if p.Stroke != nil {
		resolved := p.Stroke.Resolve(at)
		stroke = &resolved
	}
	var fillColor string
	if p.FillColor != nil {
		fillColor = p.FillColor.Get(at, "")
	}

	commands := make([]RawPathCommand, 0, len(p.Commands))
	idx := 0
	for _, kind := range p.Commands {
		n := pathCommandArity(kind)
		pts := make([]Point, n)
		for i := 0; i < n; i++ {
			pts[i] = p.Points[idx+i].Get(at, Point{})
		}
		idx += n
		commands = append(commands, RawPathCommand{Kind: kind, Points: pts})
	}

	return &RawPath{
		ZLevel:     zLevel,
		Stroke:     stroke,
		FillColor:  fillColor,
		StartArrow: p.StartArrow,
		EndArrow:   p.EndArrow,
		Commands:   commands,
	}
}

// Resolve resolves every command's points against node's geometry.
func (r RawPath) Resolve(node layoutexpr.NodeID, geom layoutexpr.GeometryMap) ([]ResolvedPathCommand, error) {
	out := make([]ResolvedPathCommand, 0, len(r.Commands))
	for _, cmd := range r.Commands {
		resolved := ResolvedPathCommand{Kind: cmd.Kind}
		for _, pt := range cmd.Points {
			x, y, err := pt.Resolve(node, geom)
			if err != nil {
				return nil, err
			}
			resolved.Points = append(resolved.Points, [2]float64{x, y})
		}
		out = append(out, resolved)
	}
	return out, nil
}

// ResolvedPathCommand is a path command with fully resolved coordinates.
type ResolvedPathCommand struct {
	Kind   PathCommandKind
	Points [][2]float64
}

func addValue(a, b Value) Value {
	if a.Kind == ValueNumber && b.Kind == ValueNumber {
		return Num(a.Num + b.Num)
	}
	return a
}

func subValue(a, b Value) Value {
	if a.Kind == ValueNumber && b.Kind == ValueNumber {
		return Num(a.Num - b.Num)
	}
	return a
}

func avgValue(a, b Value) Value {
	if a.Kind == ValueNumber && b.Kind == ValueNumber {
		return Num((a.Num + b.Num) / 2)
	}
	return a
}

func halfSpan(a, b Value) Value {
	if a.Kind == ValueNumber && b.Kind == ValueNumber {
		d := b.Num - a.Num
		if d < 0 {
			d = -d
		}
		return Num(d / 2)
	}
	return a
}

func scaleValue(a Value, f float64) Value {
	if a.Kind == ValueNumber {
		return Num(a.Num * f)
	}
	return a
}

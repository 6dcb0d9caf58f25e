package render

import "github.com/bendazz/vector-practice/geometry"

// Op identifies a path command.
type Op int

const (
	OpMoveTo Op = iota
	OpLineTo
	OpQuadTo
	OpClose
)

func (o Op) String() string {
	switch o {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpQuadTo:
		return "QuadTo"
	case OpClose:
		return "Close"
	}
	return "Unknown"
}

// Command is one path segment. QuadTo carries the control point followed by
// the end point; Close carries no points.
type Command struct {
	Op     Op
	Points []geometry.Vector
}

// Path is a sequence of subpaths built with chained calls:
//
//	p := new(Path).MoveTo(a).LineTo(b).LineTo(c).Close()
type Path struct {
	Commands []Command
}

func (p *Path) MoveTo(pt geometry.Vector) *Path {
	p.Commands = append(p.Commands, Command{Op: OpMoveTo, Points: []geometry.Vector{pt}})
	return p
}

func (p *Path) LineTo(pt geometry.Vector) *Path {
	p.Commands = append(p.Commands, Command{Op: OpLineTo, Points: []geometry.Vector{pt}})
	return p
}

func (p *Path) QuadTo(ctrl, pt geometry.Vector) *Path {
	p.Commands = append(p.Commands, Command{Op: OpQuadTo, Points: []geometry.Vector{ctrl, pt}})
	return p
}

func (p *Path) Close() *Path {
	p.Commands = append(p.Commands, Command{Op: OpClose})
	return p
}

// Points returns every point referenced by the path, in order.
func (p *Path) Points() []geometry.Vector {
	var pts []geometry.Vector
	for _, cmd := range p.Commands {
		pts = append(pts, cmd.Points...)
	}
	return pts
}

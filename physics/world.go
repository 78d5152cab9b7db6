package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/prefabs"
)

const (
	// skin is the separation kept between a character and any hit surface so
	// the next tick's sweep never starts in contact.
	skin = 0.5
	// snapDistance pulls a character down onto ground closer than this.
	snapDistance = 2.0
)

// characterGroup filters character shapes out of movement queries. Characters
// pass through each other; only static terrain blocks them.
const characterGroup uint = 1

// World owns the Chipmunk space, the static terrain shapes, and the kinematic
// character movers. Collision resolution stays inside cp; this type only
// sweeps and probes.
type World struct {
	space *cp.Space
	chars map[ecs.Entity]*Character
}

// Character is one kinematic mover: a circle of fixed radius positioned by
// swept movement, never by dynamics.
type Character struct {
	body   *cp.Body
	shape  *cp.Shape
	radius float64
	filter cp.ShapeFilter
}

func (c *Character) Position() cp.Vector {
	return c.body.Position()
}

func (c *Character) SetPosition(pos cp.Vector) {
	c.body.SetPosition(pos)
}

// NewWorld builds the space and static terrain from a level spec.
func NewWorld(level *prefabs.LevelSpec) *World {
	space := cp.NewSpace()
	space.Iterations = 10

	pw := &World{
		space: space,
		chars: make(map[ecs.Entity]*Character),
	}
	pw.buildStaticShapes(level)
	return pw
}

func (pw *World) Space() *cp.Space {
	return pw.space
}

func (pw *World) buildStaticShapes(level *prefabs.LevelSpec) {
	if level == nil {
		return
	}
	for _, box := range level.Boxes {
		bb := cp.BB{L: box.X, B: box.Y, R: box.X + box.Width, T: box.Y + box.Height}
		shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
		shape.SetFriction(0.8)
		pw.space.AddShape(shape)
	}

	if level.Width > 0 && level.Height > 0 {
		corners := []struct{ a, b cp.Vector }{
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: level.Width, Y: 0}},
			{a: cp.Vector{X: 0, Y: level.Height}, b: cp.Vector{X: level.Width, Y: level.Height}},
			{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: level.Height}},
			{a: cp.Vector{X: level.Width, Y: 0}, b: cp.Vector{X: level.Width, Y: level.Height}},
		}
		for _, seg := range corners {
			shape := cp.NewSegment(pw.space.StaticBody, seg.a, seg.b, 1.0)
			shape.SetFriction(0.8)
			pw.space.AddShape(shape)
		}
	}
}

// AddCharacter registers a kinematic mover for an entity.
func (pw *World) AddCharacter(e ecs.Entity, pos cp.Vector, radius float64) *Character {
	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	pw.space.AddBody(body)

	filter := cp.NewShapeFilter(characterGroup, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetFilter(filter)
	pw.space.AddShape(shape)

	ch := &Character{body: body, shape: shape, radius: radius, filter: filter}
	pw.chars[e] = ch
	return ch
}

func (pw *World) Character(e ecs.Entity) *Character {
	return pw.chars[e]
}

func (pw *World) RemoveCharacter(e ecs.Entity) {
	ch, ok := pw.chars[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(ch.shape)
	pw.space.RemoveBody(ch.body)
	delete(pw.chars, e)
}

// Characters returns the registered entity handles.
func (pw *World) Characters() []ecs.Entity {
	out := make([]ecs.Entity, 0, len(pw.chars))
	for e := range pw.chars {
		out = append(out, e)
	}
	return out
}

// MoveCharacter applies one tick's desired translation: X sweep, then Y
// sweep, then a downward ground probe with snapping. The returned output is
// what the locomotion pipeline reads on the following tick.
func (pw *World) MoveCharacter(ch *Character, desired cp.Vector) component.ControllerOutput {
	out := component.ControllerOutput{DesiredTranslation: desired}
	start := ch.body.Position()
	pos := start

	pos = pos.Add(pw.sweep(pos, cp.Vector{X: desired.X}, ch))
	pos = pos.Add(pw.sweep(pos, cp.Vector{Y: desired.Y}, ch))

	probe, hit := pw.circleCast(pos, cp.Vector{Y: -(snapDistance + skin)}, ch)
	if hit && desired.Y <= 0 {
		out.Grounded = true
		floor := probe.Point.Y + ch.radius + skin
		if pos.Y > floor && pos.Y-floor <= snapDistance+skin {
			pos.Y = floor
		}
	}

	ch.body.SetPosition(pos)
	out.EffectiveTranslation = pos.Sub(start)
	return out
}

// Step advances the space so cp reindexes the moved kinematic shapes.
func (pw *World) Step(dt float64) {
	pw.space.Step(dt)
}

// sweep casts the character circle along delta and returns the translation
// allowed before contact, keeping the skin gap.
func (pw *World) sweep(from cp.Vector, delta cp.Vector, ch *Character) cp.Vector {
	if delta.X == 0 && delta.Y == 0 {
		return cp.Vector{}
	}
	info, hit := pw.circleCast(from, delta, ch)
	if !hit {
		return delta
	}
	length := delta.Length()
	allowed := length*info.Alpha - skin
	if allowed <= 0 {
		return cp.Vector{}
	}
	return delta.Mult(allowed / length)
}

// circleCast sweeps the character circle from `from` along delta and reports
// the nearest contact. Space.SegmentQueryFirst only walks the index with the
// raw center segment, so a fat cast has to gather candidates over the swept
// circle's bounds and run the radius-aware query per shape.
func (pw *World) circleCast(from cp.Vector, delta cp.Vector, ch *Character) (cp.SegmentQueryInfo, bool) {
	end := from.Add(delta)
	bb := cp.NewBBForCircle(from, ch.radius).Merge(cp.NewBBForCircle(end, ch.radius))

	var best cp.SegmentQueryInfo
	found := false
	pw.space.BBQuery(bb, ch.filter, func(shape *cp.Shape, _ interface{}) {
		var info cp.SegmentQueryInfo
		if shape.SegmentQuery(from, end, ch.radius, &info) && (!found || info.Alpha < best.Alpha) {
			best = info
			found = true
		}
	}, nil)
	return best, found
}

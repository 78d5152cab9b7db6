package system

import (
	"log"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/ecs/entity"
)

// ParentingSystem applies reparent requests and keeps every child's world
// transform at its parent's position plus the stored offset.
type ParentingSystem struct{}

func NewParentingSystem() *ParentingSystem {
	return &ParentingSystem{}
}

func (p *ParentingSystem) Update(w *ecs.World) {
	for _, raw := range w.Events().DrainType(ecs.EventParentChange) {
		ev, ok := raw.(component.ParentChangeEvent)
		if !ok {
			continue
		}
		p.reparent(w, ev)
	}

	// Sync pass. Children of dead parents keep their last world position.
	ecs.ForEach2(w, component.ParentKind, component.TransformKind, func(e ecs.Entity, par *component.Parent, tr *component.Transform) {
		parent := ecs.Entity(par.Entity)
		if !w.IsAlive(parent) {
			return
		}
		ptr, ok := ecs.Get(w, parent, component.TransformKind)
		if !ok {
			return
		}
		tr.X = ptr.X + par.OffsetX
		tr.Y = ptr.Y + par.OffsetY
	})
}

func (p *ParentingSystem) reparent(w *ecs.World, ev component.ParentChangeEvent) {
	child, ok := w.Lookup(ev.Name)
	if !ok {
		log.Printf("parenting: no entity named %q", ev.Name)
		return
	}
	parent, ok := w.Lookup(ev.NewParent)
	if !ok {
		log.Printf("parenting: no entity named %q", ev.NewParent)
		return
	}
	if child == parent {
		log.Printf("parenting: refusing to parent %q to itself", ev.Name)
		return
	}
	entity.Attach(w, child, parent)
}

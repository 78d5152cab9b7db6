package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/prefabs"
)

// Context is what spawners get to work with: the live world and the
// preloaded prefab library.
type Context struct {
	World *ecs.World
	Specs *prefabs.Library
}

// Spawner builds one object hierarchy and returns its root entity.
type Spawner interface {
	Spawn(ctx *Context, ev component.SpawnEvent) ecs.Entity
}

// Registry maps every GameObject variant to its spawner. Dispatch is total
// over the closed enumeration; NewRegistry fails if a variant has no
// implementation, which is a programming error caught at startup.
type Registry struct {
	spawners map[component.GameObject]Spawner
}

func NewRegistry() (*Registry, error) {
	r := &Registry{
		spawners: map[component.GameObject]Spawner{
			component.GameObjectNpc:        npcSpawner{},
			component.GameObjectOrb:        orbSpawner{},
			component.GameObjectPointLight: pointLightSpawner{},
			component.GameObjectSunlight:   sunlightSpawner{},
			component.GameObjectGrass:      grassSpawner{},
			component.GameObjectBox:        boxSpawner{},
			component.GameObjectEmpty:      emptySpawner{},
		},
	}
	for _, o := range component.AllGameObjects() {
		if _, ok := r.spawners[o]; !ok {
			return nil, fmt.Errorf("entity: no spawner registered for %s", o)
		}
	}
	return r, nil
}

// Spawn dispatches the event to the registered spawner and applies the
// common bookkeeping: scene-object marker, name override, parent attach.
func (r *Registry) Spawn(ctx *Context, ev component.SpawnEvent) ecs.Entity {
	sp, ok := r.spawners[ev.Object]
	if !ok {
		// unreachable once NewRegistry validated the enumeration
		log.Panicf("entity: no spawner registered for %s", ev.Object)
	}

	root := sp.Spawn(ctx, ev)
	w := ctx.World
	mustAdd(w, root, component.SceneObjectKind, &component.SceneObject{Object: ev.Object})
	if ev.Name != "" {
		w.SetName(root, ev.Name)
	}
	if ev.Parent != "" {
		parent, ok := w.Lookup(ev.Parent)
		if !ok {
			log.Printf("entity: spawn parent %q not found, leaving %s unparented", ev.Parent, ev.Object)
		} else {
			Attach(w, root, parent)
		}
	}
	return root
}

// Attach reparents child under parent, keeping the child's current world
// position as its offset.
func Attach(w *ecs.World, child, parent ecs.Entity) {
	if child == parent {
		return
	}
	var offX, offY float64
	ctr, okC := ecs.Get(w, child, component.TransformKind)
	ptr, okP := ecs.Get(w, parent, component.TransformKind)
	if okC && okP {
		offX = ctr.X - ptr.X
		offY = ctr.Y - ptr.Y
	}
	mustAdd(w, child, component.ParentKind, &component.Parent{Entity: uint64(parent), OffsetX: offX, OffsetY: offY})
}

// normalizeTransform fills in identity scale on the zero-value transforms
// the editor emits.
func normalizeTransform(tr component.Transform) component.Transform {
	if tr.ScaleX == 0 {
		tr.ScaleX = 1
	}
	if tr.ScaleY == 0 {
		tr.ScaleY = 1
	}
	return tr
}

func mustAdd[T any](w *ecs.World, e ecs.Entity, k component.Kind[T], v *T) {
	if err := ecs.Add(w, e, k, v); err != nil {
		log.Panicf("entity: add component: %v", err)
	}
}

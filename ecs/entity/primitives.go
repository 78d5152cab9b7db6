package entity

import (
	"log"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/prefabs"
)

type grassSpawner struct{}

func (grassSpawner) Spawn(ctx *Context, ev component.SpawnEvent) ecs.Entity {
	return spawnProp(ctx, ev, ctx.Specs.Grass, "grass")
}

type boxSpawner struct{}

func (boxSpawner) Spawn(ctx *Context, ev component.SpawnEvent) ecs.Entity {
	return spawnProp(ctx, ev, ctx.Specs.Box, "box")
}

func spawnProp(ctx *Context, ev component.SpawnEvent, spec *prefabs.PropSpec, kind string) ecs.Entity {
	if spec == nil {
		log.Panicf("entity: %s prefab not preloaded", kind)
	}
	w := ctx.World

	e := w.CreateEntity()
	tr := normalizeTransform(ev.Transform)
	mustAdd(w, e, component.TransformKind, &tr)
	mustAdd(w, e, component.SpriteKind, &component.Sprite{
		Shape:  component.SpriteRect,
		Width:  spec.Width * tr.ScaleX,
		Height: spec.Height * tr.ScaleY,
		Color:  spec.Color.OrDefault(defaultPropColor),
	})
	w.SetName(e, spec.Name)
	return e
}

type emptySpawner struct{}

// Empty spawns a bare transform, useful as a grouping parent in the editor.
func (emptySpawner) Spawn(ctx *Context, ev component.SpawnEvent) ecs.Entity {
	w := ctx.World
	e := w.CreateEntity()
	tr := normalizeTransform(ev.Transform)
	mustAdd(w, e, component.TransformKind, &tr)
	return e
}

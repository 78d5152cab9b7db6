package entity

import (
	"log"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

type orbSpawner struct{}

// Spawn builds a glowing orb: a hovering circle with a point-light child.
func (orbSpawner) Spawn(ctx *Context, ev component.SpawnEvent) ecs.Entity {
	spec := ctx.Specs.Orb
	if spec == nil {
		log.Panicf("entity: orb prefab not preloaded")
	}
	w := ctx.World

	tr := normalizeTransform(ev.Transform)
	tr.Y += spec.HoverHeight

	root := w.CreateEntity()
	rootTransform := tr
	mustAdd(w, root, component.TransformKind, &rootTransform)
	mustAdd(w, root, component.SpriteKind, &component.Sprite{
		Shape:  component.SpriteCircle,
		Radius: spec.Radius,
		Color:  spec.Color.OrDefault(defaultOrbColor),
	})
	w.SetName(root, spec.Name)

	light := w.CreateEntity()
	lightTransform := component.NewTransform(tr.X, tr.Y)
	mustAdd(w, light, component.TransformKind, &lightTransform)
	mustAdd(w, light, component.PointLightKind, &component.PointLight{
		Color:     spec.LightColor.OrDefault(defaultLightColor),
		Intensity: spec.LightIntensity,
		Range:     spec.LightRange,
	})
	Attach(w, light, root)

	return root
}

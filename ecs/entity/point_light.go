package entity

import (
	"log"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

type pointLightSpawner struct{}

func (pointLightSpawner) Spawn(ctx *Context, ev component.SpawnEvent) ecs.Entity {
	spec := ctx.Specs.PointLight
	if spec == nil {
		log.Panicf("entity: point light prefab not preloaded")
	}
	w := ctx.World

	e := w.CreateEntity()
	tr := normalizeTransform(ev.Transform)
	mustAdd(w, e, component.TransformKind, &tr)
	mustAdd(w, e, component.PointLightKind, &component.PointLight{
		Color:     spec.Color.OrDefault(defaultLightColor),
		Intensity: spec.Intensity,
		Range:     spec.Range,
	})
	w.SetName(e, spec.Name)
	return e
}

type sunlightSpawner struct{}

func (sunlightSpawner) Spawn(ctx *Context, ev component.SpawnEvent) ecs.Entity {
	spec := ctx.Specs.Sunlight
	if spec == nil {
		log.Panicf("entity: sunlight prefab not preloaded")
	}
	w := ctx.World

	e := w.CreateEntity()
	tr := normalizeTransform(ev.Transform)
	mustAdd(w, e, component.TransformKind, &tr)
	mustAdd(w, e, component.SunlightKind, &component.Sunlight{Illuminance: spec.Illuminance})
	w.SetName(e, spec.Name)
	return e
}

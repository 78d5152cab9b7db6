package system

import (
	"log"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/ecs/entity"
	"github.com/milk9111/glade/prefabs"
)

// SpawnSystem drains spawn events and dispatches them to the object
// registry. Events carrying a tag outside the known enumeration are
// rejected before dispatch.
type SpawnSystem struct {
	registry *entity.Registry
	specs    *prefabs.Library
}

func NewSpawnSystem(registry *entity.Registry, specs *prefabs.Library) *SpawnSystem {
	return &SpawnSystem{registry: registry, specs: specs}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	for _, raw := range w.Events().DrainType(ecs.EventSpawn) {
		ev, ok := raw.(component.SpawnEvent)
		if !ok {
			log.Printf("spawn: dropping event with payload %T", raw)
			continue
		}
		if !ev.Object.Valid() {
			log.Printf("spawn: unknown object tag %d, dropping event", int(ev.Object))
			continue
		}
		s.registry.Spawn(&entity.Context{World: w, Specs: s.specs}, ev)
	}
}

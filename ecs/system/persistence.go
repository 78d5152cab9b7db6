package system

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

const saveDir = "saves"

// sceneFile is the on-disk scene format: one record per spawned scene
// object, enough to replay the spawn events that built it.
type sceneFile struct {
	Objects []sceneObjectRecord `yaml:"objects"`
}

type sceneObjectRecord struct {
	Object   string  `yaml:"object"`
	Name     string  `yaml:"name,omitempty"`
	Parent   string  `yaml:"parent,omitempty"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

// PersistenceSystem saves and restores editor-spawned scene objects. The
// player and the static level are not part of a save.
type PersistenceSystem struct {
	dir string
}

func NewPersistenceSystem() *PersistenceSystem {
	return &PersistenceSystem{dir: saveDir}
}

func (p *PersistenceSystem) Update(w *ecs.World) {
	for _, raw := range w.Events().DrainType(ecs.EventSave) {
		req, ok := raw.(component.SaveRequest)
		if !ok {
			continue
		}
		if err := p.save(w, req.Filename); err != nil {
			log.Printf("persistence: save %s: %v", req.Filename, err)
		}
	}
	for _, raw := range w.Events().DrainType(ecs.EventLoad) {
		req, ok := raw.(component.LoadRequest)
		if !ok {
			continue
		}
		if err := p.load(w, req.Filename); err != nil {
			log.Printf("persistence: load %s: %v", req.Filename, err)
		}
	}
}

func (p *PersistenceSystem) save(w *ecs.World, filename string) error {
	var file sceneFile
	ecs.ForEach2(w, component.SceneObjectKind, component.TransformKind, func(e ecs.Entity, so *component.SceneObject, tr *component.Transform) {
		rec := sceneObjectRecord{
			Object:   so.Object.String(),
			Name:     w.Name(e),
			X:        tr.X,
			Y:        tr.Y,
			ScaleX:   tr.ScaleX,
			ScaleY:   tr.ScaleY,
			Rotation: tr.Rotation,
		}
		if par, ok := ecs.Get(w, e, component.ParentKind); ok {
			rec.Parent = w.Name(ecs.Entity(par.Entity))
		}
		file.Objects = append(file.Objects, rec)
	})

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}
	path := filepath.Join(p.dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	log.Printf("persistence: saved %d objects to %s", len(file.Objects), path)
	return nil
}

func (p *PersistenceSystem) load(w *ecs.World, filename string) error {
	path := filepath.Join(p.dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("unmarshal scene: %w", err)
	}

	p.clearScene(w)

	for _, rec := range file.Objects {
		obj, err := component.ParseGameObject(rec.Object)
		if err != nil {
			log.Printf("persistence: skipping record: %v", err)
			continue
		}
		w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: component.SpawnEvent{
			Object: obj,
			Name:   rec.Name,
			Transform: component.Transform{
				X:        rec.X,
				Y:        rec.Y,
				ScaleX:   rec.ScaleX,
				ScaleY:   rec.ScaleY,
				Rotation: rec.Rotation,
			},
		}})
		if rec.Parent != "" {
			w.Events().Push(ecs.Event{Type: ecs.EventParentChange, Data: component.ParentChangeEvent{
				Name:      rec.Name,
				NewParent: rec.Parent,
			}})
		}
	}
	log.Printf("persistence: loaded %d objects from %s", len(file.Objects), path)
	return nil
}

// clearScene destroys every scene-object root and anything parented under
// one, collecting first so iteration never observes its own removals.
func (p *PersistenceSystem) clearScene(w *ecs.World) {
	roots := map[ecs.Entity]bool{}
	ecs.ForEach(w, component.SceneObjectKind, func(e ecs.Entity, _ *component.SceneObject) {
		roots[e] = true
	})

	var doomed []ecs.Entity
	for e := range roots {
		doomed = append(doomed, e)
	}
	ecs.ForEach(w, component.ParentKind, func(e ecs.Entity, par *component.Parent) {
		if roots[ecs.Entity(par.Entity)] && !roots[e] {
			doomed = append(doomed, e)
		}
	})

	for _, e := range doomed {
		w.DestroyEntity(e)
	}
}

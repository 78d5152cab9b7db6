package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/ecs/entity"
	"github.com/milk9111/glade/ecs/system"
	"github.com/milk9111/glade/obj"
	"github.com/milk9111/glade/physics"
	"github.com/milk9111/glade/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

const tickDelta = 1.0 / 60.0

type Game struct {
	frames int
	debug  bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	specs     *prefabs.Library

	input   *obj.Input
	camera  *obj.Camera
	dialog  *system.DialogSystem
	editor  *EditorSession
	watcher *prefabs.Watcher

	player ecs.Entity
}

func NewGame(debug bool) *Game {
	specs, err := prefabs.LoadLibrary()
	if err != nil {
		log.Fatal(err)
	}
	registry, err := entity.NewRegistry()
	if err != nil {
		log.Fatal(err)
	}

	world := ecs.NewWorld()
	physicsWorld := physics.NewWorld(specs.Level)
	input := obj.NewInput()
	dialog := system.NewDialogSystem()

	scheduler := ecs.NewScheduler(
		system.NewSpawnSystem(registry, specs),
		system.NewParentingSystem(),
		system.NewPersistenceSystem(),
		system.NewInputSystem(input),
		system.NewFollowerSystem(),
		system.NewGroundedSystem(),
		system.NewGravitySystem(),
		system.NewJumpSystem(),
		system.NewMovementSystem(),
		system.NewApplyVelocitySystem(),
		system.NewPhysicsSystem(physicsWorld),
		dialog,
	)

	player := entity.SpawnPlayer(&entity.Context{World: world, Specs: specs})

	seedScene(world)

	camera := obj.NewCamera(baseWidth, baseHeight)
	camera.SetSmooth(specs.Player.CamSmooth)
	camera.SetWorldBounds(specs.Level.Width, specs.Level.Height)
	if tr, ok := ecs.Get(world, player, component.TransformKind); ok {
		camera.Snap(tr.X, tr.Y)
	}

	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		log.Printf("prefab watcher unavailable: %v", err)
		watcher = nil
	}

	g := &Game{
		debug:     debug,
		world:     world,
		scheduler: scheduler,
		specs:     specs,
		input:     input,
		camera:    camera,
		dialog:    dialog,
		watcher:   watcher,
		player:    player,
	}
	g.editor = NewEditorSession(g)
	return g
}

// seedScene queues the starting objects through the same spawn path the
// editor uses.
func seedScene(w *ecs.World) {
	push := func(ev component.SpawnEvent) {
		w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: ev})
	}
	push(component.SpawnEvent{Object: component.GameObjectSunlight})
	push(component.SpawnEvent{
		Object:    component.GameObjectNpc,
		Transform: component.Transform{X: 720, Y: 320},
	})
	push(component.SpawnEvent{
		Object:    component.GameObjectOrb,
		Name:      "first-orb",
		Transform: component.Transform{X: 1100, Y: 180},
	})
	push(component.SpawnEvent{
		Object:    component.GameObjectGrass,
		Transform: component.Transform{X: 480, Y: 6},
	})
	push(component.SpawnEvent{
		Object:    component.GameObjectGrass,
		Transform: component.Transform{X: 960, Y: 6},
	})
}

func (g *Game) Update() error {
	g.frames++

	g.input.Update()
	if g.input.ToggleEditorPressed {
		g.editor.Toggle()
	}
	g.input.Frozen = g.editor.Active()

	g.pollWatcher()

	g.world.SetDelta(tickDelta)
	g.scheduler.Update(g.world)

	if tr, ok := ecs.Get(g.world, g.player, component.TransformKind); ok {
		g.camera.Follow(tr.X, tr.Y)
	}

	if g.editor.Active() {
		g.editor.Update()
	}

	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case ev, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			switch ev.Kind {
			case prefabs.ChangeSpec:
				log.Printf("reloading prefabs after change to %s", ev.Path)
				if err := g.specs.Reload(); err != nil {
					log.Printf("prefab reload failed, keeping old specs: %v", err)
				}
			case prefabs.ChangeScript:
				log.Printf("recompiling dialog scripts after change to %s", ev.Path)
				g.dialog.Invalidate()
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	if g.editor.Active() {
		g.editor.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
	"github.com/milk9111/glade/prefabs"
)

// DialogSystem runs scripted conversations. Each dialog target names a
// tengo script; the engine sets `page` before each run and reads back
// `text` and `has_next`. Interacting inside a target's radius opens the
// dialog, advances it page by page and closes it after the last one.
type DialogSystem struct {
	scripts map[string]*dialogScript
	broken  map[string]bool

	active ecs.Entity
	open   bool
	page   int
	line   string
}

type dialogScript struct {
	compiled *tengo.Compiled
}

func NewDialogSystem() *DialogSystem {
	return &DialogSystem{
		scripts: map[string]*dialogScript{},
		broken:  map[string]bool{},
	}
}

// Line returns the text currently on screen, or "" when no dialog is open.
func (d *DialogSystem) Line() string {
	return d.line
}

// Invalidate drops compiled scripts so the next interaction recompiles
// them, for live script edits.
func (d *DialogSystem) Invalidate() {
	d.scripts = map[string]*dialogScript{}
	d.broken = map[string]bool{}
}

func (d *DialogSystem) Update(w *ecs.World) {
	var px, py float64
	var interact, hasPlayer bool
	ecs.ForEach3(w, component.PlayerKind, component.TransformKind, component.InputKind, func(e ecs.Entity, _ *component.Player, tr *component.Transform, in *component.Input) {
		px, py = tr.X, tr.Y
		interact = in.InteractPressed
		hasPlayer = true
	})
	if !hasPlayer {
		d.close()
		return
	}

	target, targetID := d.nearestTarget(w, px, py)
	if target != d.active {
		d.close()
		d.active = target
	}
	if !target.Valid() {
		return
	}
	if !interact {
		return
	}

	if !d.open {
		d.runPage(targetID, 0)
		return
	}
	if d.hasNext(targetID) {
		d.runPage(targetID, d.page+1)
		return
	}
	d.close()
}

func (d *DialogSystem) nearestTarget(w *ecs.World, px, py float64) (ecs.Entity, string) {
	var best ecs.Entity
	var bestID string
	bestDist := math.Inf(1)
	ecs.ForEach2(w, component.DialogTargetKind, component.TransformKind, func(e ecs.Entity, dt *component.DialogTarget, tr *component.Transform) {
		dist := math.Hypot(tr.X-px, tr.Y-py)
		if dist > dt.Radius || dist >= bestDist {
			return
		}
		best = e
		bestID = dt.DialogID
		bestDist = dist
	})
	return best, bestID
}

func (d *DialogSystem) runPage(dialogID string, page int) {
	sc, err := d.script(dialogID)
	if err != nil {
		log.Printf("dialog: %s: %v", dialogID, err)
		return
	}
	if err := sc.compiled.Set("page", page); err != nil {
		log.Printf("dialog: %s: set page: %v", dialogID, err)
		return
	}
	if err := sc.compiled.Run(); err != nil {
		log.Printf("dialog: %s: run: %v", dialogID, err)
		return
	}
	d.open = true
	d.page = page
	d.line = sc.compiled.Get("text").String()
}

func (d *DialogSystem) hasNext(dialogID string) bool {
	sc, err := d.script(dialogID)
	if err != nil {
		return false
	}
	return sc.compiled.Get("has_next").Bool()
}

func (d *DialogSystem) close() {
	d.open = false
	d.page = 0
	d.line = ""
}

func (d *DialogSystem) script(dialogID string) (*dialogScript, error) {
	if sc, ok := d.scripts[dialogID]; ok {
		return sc, nil
	}
	if d.broken[dialogID] {
		return nil, fmt.Errorf("script previously failed to compile")
	}

	src, err := prefabs.LoadScript(dialogID + ".tengo")
	if err != nil {
		d.broken[dialogID] = true
		return nil, err
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("fmt", "text", "math"))
	if err := script.Add("page", 0); err != nil {
		d.broken[dialogID] = true
		return nil, err
	}
	compiled, err := script.Compile()
	if err != nil {
		d.broken[dialogID] = true
		return nil, fmt.Errorf("compile: %w", err)
	}

	sc := &dialogScript{compiled: compiled}
	d.scripts[dialogID] = sc
	return sc, nil
}

package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/glade/ecs"
	"github.com/milk9111/glade/ecs/component"
)

// referenceIlluminance is the sunlight level at which the sky renders at
// full brightness.
const referenceIlluminance = 100000.0

func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(g.skyColor())
	g.drawTerrain(screen)
	g.drawLights(screen)
	g.drawSprites(screen)
	g.drawDialog(screen)

	if g.debug {
		g.drawDebug(screen)
	}
}

// skyColor scales the base sky by the strongest sunlight in the scene.
func (g *Game) skyColor() color.NRGBA {
	brightness := 0.35
	ecs.ForEach(g.world, component.SunlightKind, func(e ecs.Entity, sun *component.Sunlight) {
		f := math.Min(sun.Illuminance/referenceIlluminance, 1)
		if f > brightness {
			brightness = f
		}
	})
	base := colornames.Skyblue
	return color.NRGBA{
		R: uint8(float64(base.R) * brightness),
		G: uint8(float64(base.G) * brightness),
		B: uint8(float64(base.B) * brightness),
		A: 0xff,
	}
}

func (g *Game) drawTerrain(screen *ebiten.Image) {
	for _, box := range g.specs.Level.Boxes {
		sx, sy := g.camera.WorldToScreen(box.X, box.Y+box.Height)
		vector.FillRect(screen, float32(sx), float32(sy), float32(box.Width), float32(box.Height), colornames.Darkslategray, false)
	}
}

func (g *Game) drawLights(screen *ebiten.Image) {
	ecs.ForEach2(g.world, component.PointLightKind, component.TransformKind, func(e ecs.Entity, pl *component.PointLight, tr *component.Transform) {
		sx, sy := g.camera.WorldToScreen(tr.X, tr.Y)
		glow := pl.Color
		glow.A = uint8(math.Min(pl.Intensity/1000, 80))
		vector.FillCircle(screen, float32(sx), float32(sy), float32(pl.Range), glow, true)
	})
}

func (g *Game) drawSprites(screen *ebiten.Image) {
	ecs.ForEach2(g.world, component.SpriteKind, component.TransformKind, func(e ecs.Entity, sp *component.Sprite, tr *component.Transform) {
		sx, sy := g.camera.WorldToScreen(tr.X, tr.Y)
		switch sp.Shape {
		case component.SpriteCircle:
			vector.FillCircle(screen, float32(sx), float32(sy), float32(sp.Radius), sp.Color, true)
		case component.SpriteRect:
			w := sp.Width
			h := sp.Height
			vector.FillRect(screen, float32(sx-w/2), float32(sy-h/2), float32(w), float32(h), sp.Color, false)
		}
	})
}

func (g *Game) drawDialog(screen *ebiten.Image) {
	line := g.dialog.Line()
	if line == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, line, 20, baseHeight-40)
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	msg := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	if gr, ok := ecs.Get(g.world, g.player, component.GroundedKind); ok {
		msg += fmt.Sprintf("\nGrounded: %t (%.3fs)", gr.IsGrounded(), gr.TimeSinceGrounded.Elapsed())
	}
	if tr, ok := ecs.Get(g.world, g.player, component.TransformKind); ok {
		msg += fmt.Sprintf("\nPos: %.1f, %.1f", tr.X, tr.Y)
	}
	if ctrl, ok := ecs.Get(g.world, g.player, component.CharacterControllerKind); ok && ctrl.HasOutput {
		msg += fmt.Sprintf("\nMoved: %.2f, %.2f", ctrl.Output.EffectiveTranslation.X, ctrl.Output.EffectiveTranslation.Y)
	}
	ebitenutil.DebugPrint(screen, msg)
}

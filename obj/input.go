package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the polled hardware state for one frame.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// JumpHeld is true while the jump key is held down.
	JumpHeld bool
	// InteractPressed is true on the frame the interact key (E) was pressed.
	InteractPressed bool
	// ToggleEditorPressed is true on the frame the editor key (`) was pressed.
	ToggleEditorPressed bool

	// Frozen suppresses movement and interaction while the editor owns the
	// keyboard. The editor toggle itself still reads.
	Frozen bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and first gamepad.
func (i *Input) Update() {
	i.ToggleEditorPressed = inpututil.IsKeyJustPressed(ebiten.KeyBackquote)

	if i.Frozen {
		i.MoveX = 0
		i.JumpHeld = false
		i.InteractPressed = false
		return
	}

	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}

	jumpHeld := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyW) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	interact := inpututil.IsKeyJustPressed(ebiten.KeyE)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > 0.3 {
			moveX = leftX
		}

		jumpHeld = jumpHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		interact = interact || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
	}

	i.MoveX = moveX
	i.JumpHeld = jumpHeld
	i.InteractPressed = interact
}

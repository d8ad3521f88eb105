package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/metroidvania/game"
)

// Input polls the keyboard and gamepad once per frame and exposes the
// result as a game.Input sample.
type Input struct {
	Current game.Input
}

func NewInput() *Input {
	return &Input{}
}

// Update polls devices and rebuilds Current. World Y is up, so MoveY is
// +1 for up and -1 for down.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var moveX, moveY float64
	// Keyboard D/A or arrows
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		moveY += 1
	}

	// Gamepad: if present, use the left stick as well and map the
	// standard buttons.
	ids := ebiten.GamepadIDs()
	var gpJumpJustPressed, gpJumpHeld, gpJumpJustReleased bool
	var gpAttackJustPressed, gpDashJustPressed, gpHealHeld bool
	if len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		// Stick Y is positive downward on the standard mapping.
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		if leftY < -0.3 {
			moveY = 1
		} else if leftY > 0.3 {
			moveY = -1
		}

		gpJumpJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpJumpHeld = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpJumpJustReleased = inpututil.IsStandardGamepadButtonJustReleased(gid, ebiten.StandardGamepadButtonRightBottom)
		// X button (standard mapping: right-left)
		gpAttackJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
		gpDashJustPressed = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
		gpHealHeld = ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomLeft)
	}

	i.Current = game.Input{
		MoveX: moveX,
		MoveY: moveY,

		// JumpPressed must be a true single-frame just-pressed signal so
		// the jump buffer arms exactly once per press.
		JumpPressed:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || gpJumpJustPressed,
		JumpHeld:     ebiten.IsKeyPressed(ebiten.KeySpace) || gpJumpHeld,
		JumpReleased: inpututil.IsKeyJustReleased(ebiten.KeySpace) || gpJumpJustReleased,

		AttackPressed: inpututil.IsKeyJustPressed(ebiten.KeyJ) || gpAttackJustPressed,
		// Dash: Left Shift key or gamepad right trigger
		DashPressed: inpututil.IsKeyJustPressed(ebiten.KeyShiftLeft) || gpDashJustPressed,
		HealHeld:    ebiten.IsKeyPressed(ebiten.KeyK) || gpHealHeld,
	}
}

package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mlai-aus/arcade/internal/core"
)

// controls is the slice of ebiten input the window reads each update.
type controls interface {
	Focused() bool
	Pressed(a core.Action) bool
	Cursor() (x, y int)
	Clicked() bool
}

// actionKeys binds each action to its keys.
var actionKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionDown:    {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionConfirm: {ebiten.KeyEnter},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ, ebiten.KeyEscape},
}

// ebitenControls reads the live keyboard and mouse.
type ebitenControls struct{}

func (ebitenControls) Focused() bool {
	return ebiten.IsFocused()
}

// Pressed reports a fresh press, repeating while held for movement keys.
func (ebitenControls) Pressed(a core.Action) bool {
	for _, k := range actionKeys[a] {
		d := inpututil.KeyPressDuration(k)
		if d == 1 {
			return true
		}
		if repeats(a) && d > 15 && d%4 == 0 {
			return true
		}
	}
	return false
}

func (ebitenControls) Cursor() (x, y int) {
	return ebiten.CursorPosition()
}

func (ebitenControls) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func repeats(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

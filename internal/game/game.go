package game

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/geom"
	"chosenoffset.com/camerascene/internal/render"
	"chosenoffset.com/camerascene/internal/scene"
	"chosenoffset.com/camerascene/internal/ui/hud"
)

// Game adapts the scene to the engine: it samples input once per tick,
// forwards window resizes, and draws the player and labels.
type Game struct {
	Scene    *scene.Scene
	Renderer render.Renderer
	InputMgr render.InputManager
	HUD      *hud.HUD

	ScreenWidth  int
	ScreenHeight int
	ScaleFactor  float64

	// Resize events seen by Layout since the last Update
	pendingResizes []scene.ResizeEvent
	laidOut        bool
	lastCursor     cursorSample

	// Debug
	TickCount int
}

// New creates a game around an already built scene.
func New(s *scene.Scene, r render.Renderer, input render.InputManager, h *hud.HUD, width, height int, scaleFactor float64) *Game {
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	return &Game{
		Scene:        s,
		Renderer:     r,
		InputMgr:     input,
		HUD:          h,
		ScreenWidth:  width,
		ScreenHeight: height,
		ScaleFactor:  scaleFactor,
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Printf("Escape pressed after %d ticks, quitting", g.TickCount)
		return render.ErrQuit
	}

	g.Scene.Tick(g.buildFrame())
	g.TickCount++
	return nil
}

// Layout handles window resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !g.laidOut || outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
		g.laidOut = true
		g.pendingResizes = append(g.pendingResizes, scene.ResizeEvent{
			Width:  float32(outsideWidth),
			Height: float32(outsideHeight),
		})
		if g.HUD != nil {
			g.HUD.SetScreenSize(outsideWidth, outsideHeight)
		}
		log.Printf("Window laid out at %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// buildFrame samples the input devices and window state for one tick.
func (g *Game) buildFrame() scene.Frame {
	f := scene.Frame{
		Keys: scene.Keys{
			Up:    g.held(render.KeyUp, render.KeyW),
			Down:  g.held(render.KeyDown, render.KeyS),
			Left:  g.held(render.KeyLeft, render.KeyA),
			Right: g.held(render.KeyRight, render.KeyD),
		},
		Resizes: g.pendingResizes,
	}
	g.pendingResizes = nil

	if g.laidOut {
		f.Window = geom.Some(scene.Window{
			Width:       float32(g.ScreenWidth),
			Height:      float32(g.ScreenHeight),
			ScaleFactor: float32(g.ScaleFactor),
		})
	}

	x, y := g.InputMgr.GetCursorPosition()
	pos := mgl32.Vec2{float32(x), float32(y)}
	inside := g.laidOut && x >= 0 && y >= 0 && x < g.ScreenWidth && y < g.ScreenHeight
	if inside {
		f.Cursor = geom.Some(pos)
	}
	f.PointerMoved = g.lastCursor.valid && (g.lastCursor.pos != pos || g.lastCursor.inside != inside)
	g.lastCursor = cursorSample{pos: pos, inside: inside, valid: true}

	return f
}

func (g *Game) held(keys ...render.Key) bool {
	for _, k := range keys {
		if g.InputMgr.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

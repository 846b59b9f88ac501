package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/geom"
	"chosenoffset.com/camerascene/internal/render"
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	g.drawAxes(screen)
	g.drawPlayer(screen)

	if g.HUD != nil {
		g.HUD.Draw(screen, g.Scene.Labels())
	}
}

// drawAxes draws the world x and y axes through the origin.
func (g *Game) drawAxes(screen render.Image) {
	origin, ok := g.Scene.Camera().WorldToViewport(mgl32.Vec2{0, 0})
	if !ok {
		return
	}
	w, h := float32(g.ScreenWidth), float32(g.ScreenHeight)
	g.Renderer.FillRect(screen, 0, origin.Y(), w, 1, axisColor)
	g.Renderer.FillRect(screen, origin.X(), 0, 1, h, axisColor)
}

// playerScreenRect returns the player sprite in screen coordinates.
func (g *Game) playerScreenRect() (geom.Rect, bool) {
	p := g.Scene.Player()
	world := geom.RectFromCenterSize(p.Position, p.Scale)

	cam := g.Scene.Camera()
	a, ok := cam.WorldToViewport(world.Min)
	if !ok {
		return geom.Rect{}, false
	}
	b, _ := cam.WorldToViewport(world.Max)
	return geom.NewRect(a.X(), a.Y(), b.X(), b.Y()), true
}

func (g *Game) drawPlayer(screen render.Image) {
	r, ok := g.playerScreenRect()
	if !ok {
		return
	}
	g.Renderer.FillRect(screen, r.Min.X(), r.Min.Y(), r.Width(), r.Height(), playerColor)
	g.Renderer.StrokeRect(screen, r.Min.X(), r.Min.Y(), r.Width(), r.Height(), 2, playerEdgeColor)
}

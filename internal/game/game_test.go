package game

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/camerascene/internal/render"
	"chosenoffset.com/camerascene/internal/scene"
	"chosenoffset.com/camerascene/internal/ui/hud"
)

type fakeInput struct {
	pressed     map[render.Key]bool
	justPressed map[render.Key]bool
	x, y        int
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed:     make(map[render.Key]bool),
		justPressed: make(map[render.Key]bool),
		x:           -1,
		y:           -1,
	}
}

func (in *fakeInput) IsKeyPressed(key render.Key) bool     { return in.pressed[key] }
func (in *fakeInput) IsKeyJustPressed(key render.Key) bool { return in.justPressed[key] }
func (in *fakeInput) GetCursorPosition() (int, int)        { return in.x, in.y }

type fakeImage struct {
	fills int
}

func (i *fakeImage) Fill(clr color.Color) { i.fills++ }

type rectCall struct {
	x, y, w, h float32
	clr        color.Color
}

type fakeRenderer struct {
	fills []rectCall
	texts []string
}

func (r *fakeRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.fills = append(r.fills, rectCall{x, y, width, height, clr})
}

func (r *fakeRenderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
}

func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	r.texts = append(r.texts, text)
}

func (r *fakeRenderer) MeasureText(text string, scale float64) (int, int) {
	return len(text) * 6, (strings.Count(text, "\n") + 1) * 10
}

func newTestGame(t *testing.T, mutate func(*scene.Options)) (*Game, *fakeInput, *fakeRenderer) {
	t.Helper()
	opts := scene.DefaultOptions()
	opts.PlayerPosition = mgl32.Vec2{0, 0}
	if mutate != nil {
		mutate(&opts)
	}
	s, err := scene.New(opts)
	if err != nil {
		t.Fatalf("Failed to create scene: %v", err)
	}
	in := newFakeInput()
	r := &fakeRenderer{}
	return New(s, r, in, nil, 800, 600, 1), in, r
}

func labelText(t *testing.T, g *Game, role scene.Role) string {
	t.Helper()
	l, ok := g.Scene.Label(role)
	if !ok {
		t.Fatalf("No label for role %v", role)
	}
	return l.Text
}

func TestLayoutQueuesResizeOnce(t *testing.T) {
	g, _, _ := newTestGame(t, func(o *scene.Options) { o.Variant = scene.VariantResize })

	g.Layout(800, 600)
	g.Layout(800, 600)
	if len(g.pendingResizes) != 1 {
		t.Fatalf("Expected 1 pending resize, got %d", len(g.pendingResizes))
	}

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(g.pendingResizes) != 0 {
		t.Errorf("Expected resize queue drained, got %d", len(g.pendingResizes))
	}

	text := labelText(t, g, scene.RoleSize)
	if !strings.HasPrefix(text, "event: 800.0 x 600.0\n") {
		t.Errorf("Expected resize event line, got %q", text)
	}
	l, _ := g.Scene.Label(scene.RoleSize)
	if l.Position != (mgl32.Vec2{200, 150}) {
		t.Errorf("Expected size label at (200, 150), got %v", l.Position)
	}
}

func TestLayoutResizeUpdatesCamera(t *testing.T) {
	g, _, _ := newTestGame(t, nil)

	g.Layout(800, 600)
	g.Update()
	g.Layout(1024, 768)
	g.Update()

	r, ok := g.Scene.Camera().LogicalViewportRect().Get()
	if !ok {
		t.Fatal("Expected a logical viewport after layout")
	}
	if r.Width() != 1024 || r.Height() != 768 {
		t.Errorf("Expected 1024x768 viewport, got %vx%v", r.Width(), r.Height())
	}
	if g.ScreenWidth != 1024 || g.ScreenHeight != 768 {
		t.Errorf("Expected screen size 1024x768, got %dx%d", g.ScreenWidth, g.ScreenHeight)
	}
}

func TestUpdateMovesPlayer(t *testing.T) {
	tests := []struct {
		name string
		keys []render.Key
		want mgl32.Vec2
	}{
		{"right arrow", []render.Key{render.KeyRight}, mgl32.Vec2{10, 0}},
		{"left arrow", []render.Key{render.KeyLeft}, mgl32.Vec2{-10, 0}},
		{"up arrow", []render.Key{render.KeyUp}, mgl32.Vec2{0, 10}},
		{"down arrow", []render.Key{render.KeyDown}, mgl32.Vec2{0, -10}},
		{"wasd", []render.Key{render.KeyW, render.KeyD}, mgl32.Vec2{10, 10}},
		{"opposing keys", []render.Key{render.KeyLeft, render.KeyRight}, mgl32.Vec2{0, 0}},
		{"arrow and letter for the same direction", []render.Key{render.KeyUp, render.KeyW}, mgl32.Vec2{0, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, in, _ := newTestGame(t, nil)
			g.Layout(800, 600)
			for _, k := range tt.keys {
				in.pressed[k] = true
			}
			if err := g.Update(); err != nil {
				t.Fatalf("Update failed: %v", err)
			}
			if got := g.Scene.Player().Position; got != tt.want {
				t.Errorf("Expected player at %v, got %v", tt.want, got)
			}
		})
	}
}

func TestUpdateEscapeQuits(t *testing.T) {
	g, in, _ := newTestGame(t, nil)
	in.justPressed[render.KeyEscape] = true

	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
	if g.TickCount != 0 {
		t.Errorf("Expected no tick after quitting, got %d", g.TickCount)
	}
}

func TestCursorInsideAndOutsideWindow(t *testing.T) {
	g, in, _ := newTestGame(t, nil)
	g.Layout(800, 600)

	in.x, in.y = 400, 300
	g.Update()
	text := labelText(t, g, scene.RoleCursor)
	if !strings.Contains(text, "cursor_pos: (400, 300)") {
		t.Errorf("Expected cursor position, got %q", text)
	}
	if !strings.Contains(text, "cursor_world_pos: (") {
		t.Errorf("Expected cursor world position, got %q", text)
	}

	in.x, in.y = 800, 300
	g.Update()
	text = labelText(t, g, scene.RoleCursor)
	if !strings.Contains(text, scene.CursorOutsideLine) {
		t.Errorf("Expected cursor reported outside, got %q", text)
	}
}

func TestCursorBeforeLayoutIsOutside(t *testing.T) {
	g, in, _ := newTestGame(t, nil)
	in.x, in.y = 10, 10

	frame := g.buildFrame()
	if frame.Cursor.IsSome() {
		t.Error("Expected no cursor before the first layout")
	}
	if frame.Window.IsSome() {
		t.Error("Expected no window before the first layout")
	}
}

func TestPointerMotionDetection(t *testing.T) {
	g, in, _ := newTestGame(t, nil)
	g.Layout(800, 600)
	in.x, in.y = 100, 100

	if g.buildFrame().PointerMoved {
		t.Error("Expected no motion on the first sample")
	}
	if g.buildFrame().PointerMoved {
		t.Error("Expected no motion for a stationary cursor")
	}
	in.x = 101
	if !g.buildFrame().PointerMoved {
		t.Error("Expected motion after the cursor moved")
	}
	in.x = -5
	if !g.buildFrame().PointerMoved {
		t.Error("Expected motion when the cursor leaves the window")
	}
}

func TestPointerMotionTriggerHoldsReports(t *testing.T) {
	g, in, _ := newTestGame(t, func(o *scene.Options) { o.Trigger = scene.TriggerPointerMotion })
	g.Layout(800, 600)
	in.x, in.y = 100, 100

	g.Update()
	if text := labelText(t, g, scene.RoleCursor); text != "" {
		t.Errorf("Expected no report before pointer motion, got %q", text)
	}

	in.x = 120
	g.Update()
	if text := labelText(t, g, scene.RoleCursor); !strings.Contains(text, "cursor_pos: (120, 100)") {
		t.Errorf("Expected report after pointer motion, got %q", text)
	}
}

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-2
}

func TestDrawPlayerRect(t *testing.T) {
	g, _, r := newTestGame(t, nil)
	g.Layout(800, 600)
	g.Update()

	screen := &fakeImage{}
	g.Draw(screen)

	if screen.fills != 1 {
		t.Errorf("Expected background filled once, got %d", screen.fills)
	}

	var player *rectCall
	for i := range r.fills {
		if r.fills[i].clr == playerColor {
			player = &r.fills[i]
		}
	}
	if player == nil {
		t.Fatal("Expected the player to be drawn")
	}
	// 64x32 sprite centred on the world origin in an 800x600 window
	if !approxEqual(player.x, 368) || !approxEqual(player.y, 284) ||
		!approxEqual(player.w, 64) || !approxEqual(player.h, 32) {
		t.Errorf("Expected player rect (368, 284, 64, 32), got (%v, %v, %v, %v)",
			player.x, player.y, player.w, player.h)
	}
}

func TestDrawBeforeLayoutSkipsWorld(t *testing.T) {
	g, _, r := newTestGame(t, nil)
	g.Draw(&fakeImage{})

	if len(r.fills) != 0 {
		t.Errorf("Expected nothing drawn without a viewport, got %d fills", len(r.fills))
	}
}

func TestDrawLabelsThroughHUD(t *testing.T) {
	g, _, r := newTestGame(t, nil)
	g.HUD = hud.New(nil, r, 800, 600)
	g.Layout(800, 600)
	g.Update()

	g.Draw(&fakeImage{})

	want := g.Scene.Labels()[0].Text
	if want == "" {
		t.Fatal("Expected the combined label to have text after a tick")
	}
	found := false
	for _, text := range r.texts {
		if text == want {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected label text drawn, got %q", r.texts)
	}
}

package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"chosenoffset.com/camerascene/internal/render"
)

// The adapter must keep satisfying the backend-neutral interfaces.
var (
	_ render.Renderer     = (*EbitenRenderer)(nil)
	_ render.Image        = (*EbitenImage)(nil)
	_ render.InputManager = (*EbitenInputManager)(nil)
	_ render.Engine       = (*EbitenEngine)(nil)
	_ ebiten.Game         = (*gameAdapter)(nil)
)

func TestKeyToEbitenKey(t *testing.T) {
	tests := []struct {
		key  render.Key
		want ebiten.Key
	}{
		{render.KeyUp, ebiten.KeyArrowUp},
		{render.KeyDown, ebiten.KeyArrowDown},
		{render.KeyLeft, ebiten.KeyArrowLeft},
		{render.KeyRight, ebiten.KeyArrowRight},
		{render.KeyW, ebiten.KeyW},
		{render.KeyA, ebiten.KeyA},
		{render.KeyS, ebiten.KeyS},
		{render.KeyD, ebiten.KeyD},
		{render.KeyEscape, ebiten.KeyEscape},
	}

	for _, tt := range tests {
		got, ok := keyToEbitenKey(tt.key)
		if !ok || got != tt.want {
			t.Errorf("Expected key %d to map to %v, got %v (%v)", tt.key, tt.want, got, ok)
		}
	}

	if _, ok := keyToEbitenKey(render.Key(99)); ok {
		t.Error("Expected an unknown key to have no mapping")
	}
}

type quittingGame struct{}

func (quittingGame) Update() error              { return render.ErrQuit }
func (quittingGame) Draw(screen render.Image)   {}
func (quittingGame) Layout(w, h int) (int, int) { return w, h }

func TestAdapterMapsQuitToTermination(t *testing.T) {
	a := &gameAdapter{game: quittingGame{}}
	if err := a.Update(); err != ebiten.Termination {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}

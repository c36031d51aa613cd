package window

import (
	"errors"
	"fmt"

	"MandelbrotExplorer/session"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keys = map[ebiten.Key]session.Key{
	ebiten.KeyR:              session.KeyReset,
	ebiten.KeyArrowUp:        session.KeyUp,
	ebiten.KeyArrowDown:      session.KeyDown,
	ebiten.KeyArrowLeft:      session.KeyLeft,
	ebiten.KeyArrowRight:     session.KeyRight,
	ebiten.KeyEqual:          session.KeyZoomIn,
	ebiten.KeyNumpadAdd:      session.KeyZoomIn,
	ebiten.KeyMinus:          session.KeyZoomOut,
	ebiten.KeyNumpadSubtract: session.KeyZoomOut,
}

var buttons = map[ebiten.MouseButton]session.Button{
	ebiten.MouseButtonLeft:  session.ButtonLeft,
	ebiten.MouseButtonRight: session.ButtonRight,
}

// Game shows a session in a native window. It implements ebiten.Game.
type Game struct {
	cursorX int
	cursorY int
	image   *ebiten.Image
	logger  bslogger.Logger
	session *session.Session
	version uint64
}

func NewGame(sess *session.Session) *Game {
	viewport := sess.Viewport()
	return &Game{
		cursorX: -1,
		cursorY: -1,
		image:   ebiten.NewImage(viewport.Width, viewport.Height),
		logger:  bslogger.NewLogger("Window", bslogger.Normal, nil),
		session: sess,
	}
}

// Run blocks until the window is closed or the session ends
func Run(sess *session.Session, title string) error {
	viewport := sess.Viewport()
	ebiten.SetWindowSize(viewport.Width, viewport.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(sess)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window stopped - %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if g.session.Closed() {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.submit(session.Close())
		return nil
	}

	x, y := ebiten.CursorPosition()
	if x != g.cursorX || y != g.cursorY {
		g.cursorX, g.cursorY = x, y
		g.submit(session.Move(x, y))
	}

	for mouseButton, button := range buttons {
		if inpututil.IsMouseButtonJustPressed(mouseButton) {
			g.submit(session.Click(button, x, y))
		}
	}

	if g.session.Settings().PollKeys {
		var held []session.Key
		for ebitenKey, key := range keys {
			if ebiten.IsKeyPressed(ebitenKey) {
				held = append(held, key)
			}
		}
		if len(held) > 0 {
			g.submit(session.Hold(held...))
		}
		return nil
	}

	for ebitenKey, key := range keys {
		if inpututil.IsKeyJustPressed(ebitenKey) {
			g.submit(session.Press(key))
		}
	}
	return nil
}

func (g *Game) submit(e session.Event) {
	if !g.session.Submit(e) {
		g.logger.Debugf("Dropped %s", e)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	rc := g.session.RenderContext()
	if rc.Version != g.version {
		g.image.WritePixels(rc.Image.Pix)
		g.version = rc.Version
	}
	screen.DrawImage(g.image, &ebiten.DrawImageOptions{})
	ebitenutil.DebugPrintAt(screen, rc.X, 4, 4)
	ebitenutil.DebugPrintAt(screen, rc.Y, 4, 20)
}

func (g *Game) Layout(outsideWidth int, outsideHeight int) (int, int) {
	viewport := g.session.Viewport()
	return viewport.Width, viewport.Height
}

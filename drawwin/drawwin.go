package drawwin

import (
	"fmt"
	"time"

	"MandelbrotExplorer/session"

	"9fans.net/go/draw"
	"github.com/BrugadaSyndrome/bslogger"
)

const frameInterval = 16 * time.Millisecond

const (
	button1 = 1 << iota
	button2
	button3
)

// Window shows a session through devdraw, in a Plan 9 from User Space window
type Window struct {
	buttons int
	display *draw.Display
	image   *draw.Image
	logger  bslogger.Logger
	session *session.Session
	version uint64
	x       string
	y       string
}

// Run blocks until the session ends
func Run(sess *session.Session, label string) error {
	viewport := sess.Viewport()
	d, err := draw.Init(nil, "", label, fmt.Sprintf("%dx%d", viewport.Width, viewport.Height))
	if err != nil {
		return fmt.Errorf("unable to open display - %w", err)
	}
	defer d.Close()

	img, err := d.AllocImage(draw.Rect(0, 0, viewport.Width, viewport.Height), draw.ABGR32, false, draw.Black)
	if err != nil {
		return fmt.Errorf("unable to allocate image - %w", err)
	}
	w := &Window{
		display: d,
		image:   img,
		logger:  bslogger.NewLogger("DrawWindow", bslogger.Normal, nil),
		session: sess,
	}

	mousectl := d.InitMouse()
	kbdctl := d.InitKeyboard()
	if err := w.redraw(true); err != nil {
		return err
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		if err := d.Flush(); err != nil {
			return fmt.Errorf("unable to flush display - %w", err)
		}
		select {
		case <-sess.Done():
			return nil
		case <-mousectl.Resize:
			err = w.redraw(true)
		case m := <-mousectl.C:
			mousectl.Mouse = m
			w.mouse(m)
		case r := <-kbdctl.C:
			w.key(r)
		case <-ticker.C:
			err = w.redraw(false)
		}
		if err != nil {
			return err
		}
	}
}

func (w *Window) submit(e session.Event) {
	if !w.session.Submit(e) {
		w.logger.Debugf("Dropped %s", e)
	}
}

// mouse reports the cursor relative to the window and the buttons that went down since the last event
func (w *Window) mouse(m draw.Mouse) {
	p := m.Point.Sub(w.display.Image.R.Min)
	pressed := m.Buttons &^ w.buttons
	w.buttons = m.Buttons

	w.submit(session.Move(p.X, p.Y))
	if pressed&button1 != 0 {
		w.submit(session.Click(session.ButtonLeft, p.X, p.Y))
	}
	if pressed&button3 != 0 {
		w.submit(session.Click(session.ButtonRight, p.X, p.Y))
	}
}

// key maps a rune from devdraw. There are no key release events, so with PollKeys each rune stands
// for one frame of the key being held and keyboard repeat keeps it going.
func (w *Window) key(r rune) {
	var key session.Key
	switch r {
	case 'q', draw.KeyDelete:
		w.submit(session.Close())
		return
	case 'r':
		key = session.KeyReset
	case draw.KeyUp:
		key = session.KeyUp
	case draw.KeyDown:
		key = session.KeyDown
	case draw.KeyLeft:
		key = session.KeyLeft
	case draw.KeyRight:
		key = session.KeyRight
	case '+', '=':
		key = session.KeyZoomIn
	case '-':
		key = session.KeyZoomOut
	default:
		return
	}

	if w.session.Settings().PollKeys {
		w.submit(session.Hold(key))
	} else {
		w.submit(session.Press(key))
	}
}

// redraw copies a new frame into the window and prints the overlay on top. Nothing is drawn when
// neither the frame nor the text changed unless the window was just attached.
func (w *Window) redraw(attach bool) error {
	if attach {
		if err := w.display.Attach(draw.RefMesg); err != nil {
			return fmt.Errorf("can't reattach to window - %w", err)
		}
	}

	rc := w.session.RenderContext()
	if !attach && rc.Version == w.version && rc.X == w.x && rc.Y == w.y {
		return nil
	}
	if rc.Version != w.version {
		if _, err := w.image.Load(w.image.R, rc.Image.Pix); err != nil {
			return fmt.Errorf("unable to load frame - %w", err)
		}
		w.version = rc.Version
	}
	w.x, w.y = rc.X, rc.Y

	screen := w.display.Image
	screen.Draw(screen.R, w.image, nil, draw.ZP)
	screen.String(screen.R.Min.Add(draw.Pt(4, 4)), w.display.White, draw.ZP, w.display.Font, rc.X)
	screen.String(screen.R.Min.Add(draw.Pt(4, 20)), w.display.White, draw.ZP, w.display.Font, rc.Y)
	return nil
}

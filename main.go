package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"MandelbrotExplorer/drawwin"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/session"
	"MandelbrotExplorer/viewer"
	"MandelbrotExplorer/window"

	"github.com/BrugadaSyndrome/bslogger"
)

const title = "Mandelbrot Explorer"

func main() {
	parseArguments()
	logger := bslogger.NewLogger("Main", bslogger.Normal, nil)

	settings, err := session.NewSettings(settingsFile, variant)
	misc.CheckError(err, logger, misc.Fatal)
	defer settings.Close()

	sess := session.NewSession(settings)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	go sess.Run(ctx)
	go func() {
		<-ctx.Done()
		sess.Handle(session.Close())
	}()

	switch display {
	case displayWindow:
		err = window.Run(sess, title)
	case displayDraw:
		err = drawwin.Run(sess, title)
	case displayWeb:
		err = runViewer(sess)
	default:
		err = fmt.Errorf("unknown display: %q", display)
	}
	misc.CheckError(err, logger, misc.Fatal)
	logger.Info("Goodbye")
}

func runViewer(sess *session.Session) error {
	server := viewer.NewServer(sess, address)
	if err := server.Run(); err != nil {
		return err
	}
	<-sess.Done()
	return server.Stop()
}

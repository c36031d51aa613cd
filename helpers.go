package main

import (
	"flag"
	"fmt"
	"strings"

	"MandelbrotExplorer/session"
)

const (
	displayDraw   = "draw"
	displayWeb    = "web"
	displayWindow = "window"
)

var (
	address, display, settingsFile, variant string
)

func parseArguments() {
	flag.StringVar(&address, "address", "localhost:8080", "Address the web viewer listens on, empty picks a free port")
	flag.StringVar(&display, "display", displayWindow, "Where to show the explorer: window, web or draw")
	flag.StringVar(&settingsFile, "settings", "", "Json file with session settings")
	flag.StringVar(&variant, "variant", session.Classic, fmt.Sprintf("Explorer variant [%s]", strings.Join(session.Variants, ", ")))

	flag.Parse()
}

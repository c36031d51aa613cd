package misc

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
)

const (
	Fatal Severity = iota
	Error
	Warning
	Info
	Debug
)

type Severity int

func (s Severity) String() string {
	names := []string{
		"Fatal", "Error", "Warning", "Info", "Debug",
	}
	if int(s) < 0 || int(s) >= len(names) {
		return fmt.Sprintf("%d", int(s))
	}
	return names[s]
}

// CheckError logs err at severity and reports whether there was one. Fatal exits the program.
func CheckError(err error, logger bslogger.Logger, severity Severity) bool {
	if err == nil {
		return false
	}
	switch severity {
	case Error:
		logger.Error(err.Error())
	case Warning:
		logger.Warning(err.Error())
	case Info:
		logger.Info(err.Error())
	case Debug:
		logger.Debug(err.Error())
	default:
		logger.Fatal(err.Error())
	}
	return true
}

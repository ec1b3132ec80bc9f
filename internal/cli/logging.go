package cli

import (
	"io"
	"sync"

	"github.com/onrik/logrus/filename"
	log "github.com/sirupsen/logrus"
)

var filenameHookOnce sync.Once

func initLogging(w io.Writer, quiet, verbose bool) {
	log.SetOutput(w)
	level := log.InfoLevel
	if verbose {
		filenameHookOnce.Do(func() { log.AddHook(filename.NewHook()) })
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}
	log.SetLevel(level)
}

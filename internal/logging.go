package internal

import (
	"log"
	"os"
)

// InitLogging routes the standard logger to stdout with microsecond
// timestamps. Called once at process start.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

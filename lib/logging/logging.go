package logging

import (
	"context"
	"log"
)

func init() {
	log.SetFlags(0)
}

// Logf logs a formatted message in the current context.
func Logf(
	ctx context.Context,
	format string,
	v ...interface{},
) {
	log.Printf(format, v...)
}

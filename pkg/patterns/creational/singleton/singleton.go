// Package singleton demonstrates the Singleton pattern with a
// process-wide audit logger. Go has no private constructors, so the
// recognized rendition is a package-level accessor guarded by
// sync.Once: every caller gets the same zerolog instance no matter how
// often or from where it is requested.
package singleton

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once  sync.Once
	audit *zerolog.Logger
)

// AuditLogger returns the shared audit logger, creating it on first
// use. Subsequent calls return the same instance.
func AuditLogger() *zerolog.Logger {
	once.Do(func() {
		l := zerolog.New(os.Stderr).With().
			Timestamp().
			Str("component", "audit").
			Logger()
		audit = &l
	})
	return audit
}

// Demo requests the logger twice, shows both handles are the same
// instance, and emits messages through a copy redirected at w so the
// output is visible to the caller.
func Demo(w io.Writer) error {
	first := AuditLogger()
	second := AuditLogger()

	console := first.Output(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
	console.Info().Msg("first audit message")
	console.Info().Msg("second audit message")

	fmt.Fprintf(w, "same logger instance: %v\n", first == second)
	return nil
}

package trail

import (
	"errors"
	"log/slog"
)

// Misuse errors. They are never returned; see misuse.
var (
	// ErrAlreadyRunning indicates Start on a running driver.
	ErrAlreadyRunning = errors.New("trail: driver already running")

	// ErrNotRunning indicates Stop on a stopped driver.
	ErrNotRunning = errors.New("trail: driver not running")

	// ErrEffectOff indicates a spawn request while the effect is off.
	ErrEffectOff = errors.New("trail: spawn while effect is off")
)

// misuse reports a programmer error. Debug builds (-tags trail_debug) panic,
// release builds log at debug level and carry on.
func misuse(err error, args ...any) {
	if debugChecks {
		panic(err)
	}
	slog.Debug("ignored misuse", append([]any{"err", err}, args...)...)
}

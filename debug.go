package confetti

import (
	"fmt"
	"os"
)

// debugf prints a state-change line to stderr when Config.Debug is set.
func (s *System) debugf(format string, args ...any) {
	if !s.cfg.Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[confetti] "+format+"\n", args...)
}

// SetDebugMode enables or disables stderr logging of regeneration, activation
// and replay events.
func (s *System) SetDebugMode(enabled bool) {
	s.cfg.Debug = enabled
}

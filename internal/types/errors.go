package types

import (
	"fmt"
	"strings"
)

// ErrDropped collects one line for every range spec that did not
// survive normalization. It is informational; callers of Parse never see it.
type ErrDropped struct {
	Lines []string
}

func (e *ErrDropped) Error() string {
	return strings.Join(e.Lines, "\n")
}

// Is matches any *ErrDropped regardless of its lines.
func (e *ErrDropped) Is(target error) bool {
	_, ok := target.(*ErrDropped)
	return ok
}

// Add records one dropped spec, formatted like fmt.Sprintf.
func (e *ErrDropped) Add(s string, arg ...any) {
	e.Lines = append(e.Lines, fmt.Sprintf(s, arg...))
}

// If returns e when at least one line was added, otherwise nil.
func (e *ErrDropped) If() error {
	if len(e.Lines) > 0 {
		return e
	}
	return nil
}

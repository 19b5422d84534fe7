package s25f

import (
	"errors"
	"fmt"
)

// ChipStatusError indicates that the chip latched an erase or
// programming failure in SR1. The driver has already issued a legacy
// software reset to clear the volatile error state by the time this is
// returned.
type ChipStatusError struct {
	Status StatusRegister
}

func (e *ChipStatusError) Error() string {
	switch {
	case e.Status.EraseError():
		return fmt.Sprintf("erase error occurred (SR1 %s)", e.Status)
	case e.Status.ProgramError():
		return fmt.Sprintf("programming error occurred (SR1 %s)", e.Status)
	}
	return fmt.Sprintf("chip error (SR1 %s)", e.Status)
}

// ConfigError indicates that CR3NV could not be brought into uniform
// sector mode. Erasing a hybrid sector layout would need block size
// bookkeeping the erase path does not do, so the operation must not
// proceed.
type ConfigError struct {
	Register uint32
	Value    byte
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unable to enable uniform block sizes: register %#06x reads %#02x", e.Register, e.Value)
}

// ErrPollDeadline is returned when a deadline configured with
// WithPollDeadline expires while the chip still reports busy.
var ErrPollDeadline = errors.New("chip busy past poll deadline")

package s25f

import "go.uber.org/multierr"

// RestoreRegistry receives the deferred configuration restore so the
// host can run it at shutdown. Invocation timing and ordering belong to
// the host; the action itself is idempotent.
type RestoreRegistry interface {
	RegisterRestore(a *RestoreAction)
}

// RestoreAction returns a configuration register to its pre-session
// value and resets the chip so the restored value takes effect.
type RestoreAction struct {
	flash *Flash
	addr  uint32
	value byte
	done  bool
}

// Run performs the restore. Calling it again, in any order relative to
// other registered actions, is a no-op. The reset is attempted even if
// the register write fails.
func (a *RestoreAction) Run() error {
	if a.done {
		return nil
	}
	a.done = true
	a.flash.logger.Debugf("restoring register %#06x to %#02x", a.addr, a.value)
	writeErr := a.flash.WriteAnyRegister(a.addr, a.value)
	resetErr := a.flash.SoftwareReset()
	return multierr.Combine(writeErr, resetErr)
}

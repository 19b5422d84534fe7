package main

import (
	"github.com/gentam/s25f"
	"go.uber.org/multierr"
)

// restoreRegistry collects deferred chip-restore actions and runs them
// before the process exits.
type restoreRegistry struct {
	actions []*s25f.RestoreAction
}

func (r *restoreRegistry) RegisterRestore(a *s25f.RestoreAction) {
	r.actions = append(r.actions, a)
}

func (r *restoreRegistry) runAll() error {
	var err error
	for _, a := range r.actions {
		err = multierr.Append(err, a.Run())
	}
	return err
}

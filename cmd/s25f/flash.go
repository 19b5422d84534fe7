package main

import (
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"github.com/gentam/s25f"
)

func newLogger(verbose bool) golog.Logger {
	if verbose {
		return golog.NewDebugLogger("s25f")
	}
	return golog.Global()
}

// openFlash opens the programmer and probes the known chip descriptors
// until one matches. chipName skips probing and forces a descriptor.
func openFlash(chipName string, opts ...s25f.Option) *s25f.Flash {
	d, err := s25f.NewDevice()
	if err != nil {
		fatalf("%v", err)
	}

	if chipName != "" {
		chip, ok := s25f.ChipByName(chipName)
		if !ok {
			fatalUsage("unknown chip %q", chipName)
		}
		return s25f.NewFlash(d.Bus, chip, opts...)
	}

	for i := range s25f.KnownChips {
		chip := &s25f.KnownChips[i]
		f := s25f.NewFlash(d.Bus, chip, opts...)
		ok, err := f.Probe()
		if err != nil {
			fatalf("probe failed: %v", err)
		}
		if ok {
			fmt.Fprintf(os.Stderr, "found %s\n", chip.Name)
			return f
		}
	}

	fatalf("no known flash chip detected")
	return nil
}

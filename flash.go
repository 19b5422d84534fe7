package s25f

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Flash commands:
//   - [S25FS128S|Command Set Summary]
//   - [S25FL128S|Command Set Summary]
const (
	cmdReadID      = 0x9F // RDID
	cmdReadStatus  = 0x05 // RDSR1
	cmdWriteEnable = 0x06 // WREN
	cmdReadAnyReg  = 0x65 // RDAR (S25FS only)
	cmdWriteAnyReg = 0x71 // WRAR (S25FS only)
	cmdResetEnable = 0x66 // RSTEN, precedes any reset trigger
	cmdReset       = 0x99 // RST
	cmdLegacyReset = 0xF0 // legacy software reset
	cmdBlockErase  = 0xD8 // BE, 3-byte address
)

// CR3NV holds the nonvolatile sector architecture configuration.
const (
	regCR3NV     = 0x000004
	cr3nvUniform = 1 << 3 // 20h_NV: 0 = hybrid overlay, 1 = uniform
)

// See the Embedded Algorithm Performance Tables for additional timing
// specs.
const (
	tW           = 145 * time.Millisecond // nonvolatile register write time
	tRPH         = 35 * time.Microsecond  // reset pulse hold time
	tSE          = 145 * time.Millisecond // sector erase time
	pollInterval = 10 * time.Millisecond  // between busy re-checks
)

// Flash drives a single S25FL/S25FS chip over a Bus. One Flash value
// owns one physical chip and its per-session state; access must be
// serialized by the caller.
type Flash struct {
	bus    Bus
	chip   *Chip
	clock  clock.Clock
	logger golog.Logger

	registry     RestoreRegistry
	pollDeadline time.Duration

	// cr3nvChecked records that the sector architecture was inspected,
	// and fixed if needed, during this session.
	cr3nvChecked bool
	restore      *RestoreAction
}

// Option configures a Flash.
type Option func(*Flash)

// WithLogger sets the diagnostic logger.
func WithLogger(l golog.Logger) Option {
	return func(f *Flash) { f.logger = l }
}

// WithClock replaces the wall clock used for settle, reset, and poll
// waits.
func WithClock(c clock.Clock) Option {
	return func(f *Flash) { f.clock = c }
}

// WithRestoreRegistry sets the registry that receives the deferred
// CR3NV restore, to be run by the host at shutdown.
func WithRestoreRegistry(r RestoreRegistry) Option {
	return func(f *Flash) { f.registry = r }
}

// WithPollDeadline bounds the busy-poll loop. The chip documents
// worst-case completion times for every operation, so the default is to
// wait indefinitely; d <= 0 keeps that behavior.
func WithPollDeadline(d time.Duration) Option {
	return func(f *Flash) { f.pollDeadline = d }
}

func NewFlash(bus Bus, chip *Chip, opts ...Option) *Flash {
	f := &Flash{
		bus:    bus,
		chip:   chip,
		clock:  clock.New(),
		logger: golog.Global(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Chip returns the descriptor this driver was built for.
func (f *Flash) Chip() *Chip { return f.chip }

// PendingRestore returns the deferred CR3NV restore created during this
// session, or nil if the chip was already in uniform sector mode.
func (f *Flash) PendingRestore() *RestoreAction { return f.restore }

func (f *Flash) softwareReset(trigger byte) error {
	seq := []Transaction{
		{Write: []byte{cmdResetEnable}},
		{Write: []byte{trigger}},
	}
	if err := f.bus.SendSequence(seq); err != nil {
		return errors.Wrap(err, "reset sequence")
	}
	// Allow time for the reset command to execute. The datasheet
	// specifies tRPH = 35us, double that to be safe.
	f.clock.Sleep(2 * tRPH)
	return nil
}

// SoftwareReset issues the RSTEN/RST reset pair. The legacy reset is
// disabled by default on S25FS, so this is the variant to use there.
func (f *Flash) SoftwareReset() error {
	f.logger.Debug("force resetting SPI chip")
	return f.softwareReset(cmdReset)
}

// LegacySoftwareReset issues the RSTEN/0xF0 reset pair accepted by most
// other variants.
func (f *Flash) LegacySoftwareReset() error {
	return f.softwareReset(cmdLegacyReset)
}

// ReadStatus reads status register 1.
func (f *Flash) ReadStatus() (StatusRegister, error) {
	r, err := f.bus.Send([]byte{cmdReadStatus}, 1)
	if err != nil {
		return 0, errors.Wrap(err, "RDSR1")
	}
	return StatusRegister(r[0]), nil
}

// pollStatus waits for WIP to clear. WIP on S25F chips remains set if
// an erase or programming error occurs, so the error bits are checked
// on every read; on error a software reset is required to clear WIP and
// the other volatile bits, otherwise the chip stays unresponsive to
// further commands.
func (f *Flash) pollStatus() error {
	start := f.clock.Now()
	sr, err := f.ReadStatus()
	if err != nil {
		return err
	}
	for sr.Busy() {
		if sr.EraseError() || sr.ProgramError() {
			f.logger.Errorw("chip reported failure", "sr1", sr.String())
			return multierr.Append(&ChipStatusError{Status: sr}, f.LegacySoftwareReset())
		}
		if f.pollDeadline > 0 && f.clock.Since(start) > f.pollDeadline {
			return errors.Wrapf(ErrPollDeadline, "after %s", f.clock.Since(start))
		}
		f.clock.Sleep(pollInterval)
		if sr, err = f.ReadStatus(); err != nil {
			return err
		}
	}
	return nil
}

// ReadAnyRegister reads one byte from a register address using RDAR
// (S25FS only). By default 8 dummy cycles are necessary for
// variable-latency commands such as RDAR (see CR2NV[3:0]).
func (f *Flash) ReadAnyRegister(addr uint32) (byte, error) {
	w := []byte{
		cmdReadAnyReg,
		byte(addr >> 16), byte(addr >> 8), byte(addr),
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	r, err := f.bus.Send(w, 1)
	if err != nil {
		return 0, errors.Wrapf(err, "RDAR %#06x", addr)
	}
	return r[0], nil
}

// WriteAnyRegister writes one byte to a register address using WRAR
// (S25FS only), waits out the nonvolatile write time, and polls until
// the chip goes idle.
func (f *Flash) WriteAnyRegister(addr uint32, data byte) error {
	seq := []Transaction{
		{Write: []byte{cmdWriteEnable}},
		{Write: []byte{cmdWriteAnyReg, byte(addr >> 16), byte(addr >> 8), byte(addr), data}},
	}
	if err := f.bus.SendSequence(seq); err != nil {
		return errors.Wrapf(err, "WRAR %#06x", addr)
	}
	f.clock.Sleep(tW)
	return f.pollStatus()
}

// ensureUniformSectors switches the chip out of the hybrid overlay
// sector architecture the first time an erase needs it. The original
// CR3NV value is handed to the restore registry so the chip leaves the
// session configured as it was found. A failed verification leaves the
// session unchecked, so a later erase retries the conversion.
func (f *Flash) ensureUniformSectors() error {
	if f.cr3nvChecked {
		return nil
	}
	cfg, err := f.ReadAnyRegister(regCR3NV)
	if err != nil {
		return err
	}
	if cfg&cr3nvUniform == 0 {
		if err := f.WriteAnyRegister(regCR3NV, cfg|cr3nvUniform); err != nil {
			return err
		}
		if err := f.SoftwareReset(); err != nil {
			return err
		}
		got, err := f.ReadAnyRegister(regCR3NV)
		if err != nil {
			return err
		}
		if got&cr3nvUniform == 0 {
			return &ConfigError{Register: regCR3NV, Value: got}
		}
		f.logger.Debugf("CR3NV updated (%#02x -> %#02x)", cfg, got)
		f.restore = &RestoreAction{flash: f, addr: regCR3NV, value: cfg}
		if f.registry != nil {
			f.registry.RegisterRestore(f.restore)
		}
	}
	f.cr3nvChecked = true
	return nil
}

// EraseBlock erases the block containing addr (BE command, 3-byte
// big-endian address). Block geometry is the caller's concern; only the
// address is encoded here. The first call in a session checks the
// sector architecture before erasing.
func (f *Flash) EraseBlock(addr uint32) error {
	if err := f.ensureUniformSectors(); err != nil {
		return err
	}
	seq := []Transaction{
		{Write: []byte{cmdWriteEnable}},
		{Write: []byte{cmdBlockErase, byte(addr >> 16), byte(addr >> 8), byte(addr)}},
	}
	if err := f.bus.SendSequence(seq); err != nil {
		return errors.Wrapf(err, "block erase at %#x", addr)
	}
	f.clock.Sleep(tSE)
	return f.pollStatus()
}

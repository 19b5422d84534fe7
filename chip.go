package s25f

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Family selects the addressing scheme of a chip generation.
type Family int

const (
	// FamilyFL uses 32-bit addressing, required by the overlaid sector
	// size devices.
	FamilyFL Family = iota
	// FamilyFS uses 24-bit addressing and the RDAR/WRAR register
	// commands.
	FamilyFS
)

// Chip describes one supported flash part. Descriptors are read-only;
// they carry no session state.
type Chip struct {
	Name           string
	ManufacturerID byte
	// ModelID packs RDID response bytes 1, 2, 4, and 5 big-endian:
	// density (2 bytes), physical sector layout, and family.
	ModelID uint32
	Family  Family
}

const manufacturerSpansion = 0x01

// The structure of the RDID output:
//
//	offset   value              meaning
//	  00h     01h      Manufacturer ID for Spansion
//	  01h     20h           128 Mb capacity
//	  01h     02h           256 Mb capacity
//	  02h     18h           128 Mb capacity
//	  02h     19h           256 Mb capacity
//	  03h     4Dh      Full size of the RDID output (ignored)
//	  04h     00h      FS: 256-kB physical sectors
//	  04h     01h      FS: 64-kB physical sectors
//	  04h     00h      FL: 256-kB physical sectors
//	  04h     01h      FL: Mix of 64-kB and 4-kB overlaid sectors
//	  05h     80h      FL family
//	  05h     81h      FS family
//
// Bytes 1, 2, 4, and 5 together identify one of eight possible chips:
// 2 families * 2 sizes * 2 sector layouts.
var KnownChips = []Chip{
	{Name: "S25FL128S (256 kB sectors)", ManufacturerID: manufacturerSpansion, ModelID: 0x20180080, Family: FamilyFL},
	{Name: "S25FL128S (64 kB hybrid sectors)", ManufacturerID: manufacturerSpansion, ModelID: 0x20180180, Family: FamilyFL},
	{Name: "S25FL256S (256 kB sectors)", ManufacturerID: manufacturerSpansion, ModelID: 0x02190080, Family: FamilyFL},
	{Name: "S25FL256S (64 kB hybrid sectors)", ManufacturerID: manufacturerSpansion, ModelID: 0x02190180, Family: FamilyFL},
	{Name: "S25FS128S (256 kB sectors)", ManufacturerID: manufacturerSpansion, ModelID: 0x20180081, Family: FamilyFS},
	{Name: "S25FS128S (64 kB sectors)", ManufacturerID: manufacturerSpansion, ModelID: 0x20180181, Family: FamilyFS},
	{Name: "S25FS256S (256 kB sectors)", ManufacturerID: manufacturerSpansion, ModelID: 0x02190081, Family: FamilyFS},
	{Name: "S25FS256S (64 kB sectors)", ManufacturerID: manufacturerSpansion, ModelID: 0x02190181, Family: FamilyFS},
}

// ChipByName returns the descriptor for a named chip.
func ChipByName(name string) (*Chip, bool) {
	for i := range KnownChips {
		if KnownChips[i].Name == name {
			return &KnownChips[i], true
		}
	}
	return nil, false
}

const rdidLen = 6 // only the first 6 RDID bytes matter

// Probe sends RDID and matches the response against the configured chip
// descriptor. A mismatch is not an error; transport failures are
// reported separately so hosts can tell a dead bus from a different
// chip.
func (f *Flash) Probe() (bool, error) {
	resp, err := f.bus.Send([]byte{cmdReadID}, rdidLen)
	if err != nil {
		return false, errors.Wrap(err, "RDID")
	}
	f.logger.Debugf("RDID response: % 02x", resp)
	if resp[0] != f.chip.ManufacturerID {
		return false, nil
	}
	model := binary.BigEndian.Uint32([]byte{resp[1], resp[2], resp[4], resp[5]})
	return model == f.chip.ModelID, nil
}

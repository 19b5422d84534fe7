package s25f

import (
	"fmt"
	"strings"
)

// StatusRegister represents status register 1 (SR1) of the S25F chips.
//
//	Bits| [S25FS128S|Status Register 1]
//	----+----------------------------------------
//	7   | SRWD: status register write disable
//	6   | P_ERR: programming error occurred
//	5   | E_ERR: erase error occurred
//	4:2 | BP2-0: block protection
//	1   | WEL: write enable latch
//	0   | WIP: write in progress
type StatusRegister byte

func (sr StatusRegister) WriteDisabled() bool { return sr&(1<<7) != 0 }
func (sr StatusRegister) ProgramError() bool  { return sr&(1<<6) != 0 }
func (sr StatusRegister) EraseError() bool    { return sr&(1<<5) != 0 }
func (sr StatusRegister) BlockProtect2() bool { return sr&(1<<4) != 0 }
func (sr StatusRegister) BlockProtect1() bool { return sr&(1<<3) != 0 }
func (sr StatusRegister) BlockProtect0() bool { return sr&(1<<2) != 0 }
func (sr StatusRegister) WriteEnabled() bool  { return sr&(1<<1) != 0 }
func (sr StatusRegister) Busy() bool          { return sr&(1<<0) != 0 }

func (sr StatusRegister) String() string {
	b := fmt.Sprintf("%08b", byte(sr))
	s := []string{}
	if sr.WriteDisabled() {
		s = append(s, "SRWD")
	}
	if sr.ProgramError() {
		s = append(s, "P_ERR")
	}
	if sr.EraseError() {
		s = append(s, "E_ERR")
	}
	if sr.BlockProtect2() {
		s = append(s, "BP2")
	}
	if sr.BlockProtect1() {
		s = append(s, "BP1")
	}
	if sr.BlockProtect0() {
		s = append(s, "BP0")
	}
	if sr.WriteEnabled() {
		s = append(s, "WEL")
	}
	if sr.Busy() {
		s = append(s, "WIP")
	}
	if len(s) == 0 {
		return b
	}
	return b + " " + strings.Join(s, ",")
}

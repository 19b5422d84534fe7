// Package s25f drives Spansion (Cypress/Infineon) S25FL and S25FS
// serial NOR flash chips: software reset, status polling with error
// recovery, any-register access, hybrid-to-uniform sector architecture
// conversion with a deferred restore, block erase, and RDID-based chip
// identification.
//
// The S25FS generation uses 24-bit addressing and the RDAR/WRAR
// any-register commands; the S25FL generation uses 32-bit addressing
// (required by the overlaid sector size devices) and a fixed register
// set.
//
// # References:
//
// Infineon (https://www.infineon.com/)
//   - [S25FS128S]: S25FS128S/S25FS256S 1.8 V Serial Peripheral Interface with Multi-I/O datasheet
//   - [S25FL128S]: S25FL128S/S25FL256S 3.0 V SPI Flash Memory datasheet
//
// FTDI (https://ftdichip.com/document/application-notes/)
//   - [FTDI-AN_108]: Command Processor for MPSSE and MCU Host Bus Emulation Modes
//   - [FTDI-AN_114]: Interfacing FT2232H Hi-Speed Devices To SPI Bus
//   - [FTDI-AN_135]: FTDI MPSSE Basics
package s25f

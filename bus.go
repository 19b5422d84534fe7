package s25f

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// A Transaction is one SPI command: Write is clocked out with CS
// asserted, then len(Read) bytes are clocked in before CS is released.
// Read is nil for write-only commands and is populated on success.
type Transaction struct {
	Write []byte
	Read  []byte
}

// Bus executes SPI commands against the flash chip.
//
// SendSequence sends the transactions back to back with nothing else on
// the bus in between and stops at the first transport failure. After a
// failure the chip may or may not have seen the remaining commands;
// callers must not assume either way.
type Bus interface {
	Send(write []byte, readLen int) ([]byte, error)
	SendSequence(seq []Transaction) error
}

// SPIBus is a Bus on a periph.io SPI connection with a GPIO chip select.
type SPIBus struct {
	conn spi.Conn
	cs   gpio.PinIO
}

func NewSPIBus(conn spi.Conn, cs gpio.PinIO) *SPIBus {
	return &SPIBus{conn: conn, cs: cs}
}

// tx wraps a full-duplex SPI transaction with CS assertion.
func (b *SPIBus) tx(buf []byte) (err error) {
	if err = b.cs.Out(gpio.Low); err != nil {
		return err
	}
	defer func() {
		if csErr := b.cs.Out(gpio.High); csErr != nil && err == nil {
			err = csErr
		}
	}()
	err = b.conn.Tx(buf, buf)
	return
}

func (b *SPIBus) Send(write []byte, readLen int) ([]byte, error) {
	buf := make([]byte, len(write)+readLen)
	copy(buf, write)
	if err := b.tx(buf); err != nil {
		return nil, err
	}
	return buf[len(write):], nil
}

func (b *SPIBus) SendSequence(seq []Transaction) error {
	for i := range seq {
		t := &seq[i]
		buf := make([]byte, len(t.Write)+len(t.Read))
		copy(buf, t.Write)
		if err := b.tx(buf); err != nil {
			return err
		}
		copy(t.Read, buf[len(t.Write):])
	}
	return nil
}

package s25f

import (
	"errors"
	"testing"

	"go.viam.com/test"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi"
)

// loopConn is a full-duplex spi.Conn that records the clocked-out bytes
// and echoes a canned line response.
type loopConn struct {
	tx     [][]byte
	resp   []byte
	failAt int // fail the nth Tx (1-based); 0 never fails
}

func (c *loopConn) String() string { return "loopconn" }

func (c *loopConn) Tx(w, r []byte) error {
	if c.failAt > 0 && len(c.tx)+1 == c.failAt {
		return errors.New("tx failed")
	}
	c.tx = append(c.tx, append([]byte(nil), w...))
	copy(r, c.resp)
	return nil
}

func (c *loopConn) TxPackets(p []spi.Packet) error { return errors.New("not implemented") }

func (c *loopConn) Duplex() conn.Duplex { return conn.Full }

func TestSPIBusSend(t *testing.T) {
	c := &loopConn{resp: []byte{0x00, 0xA5}}
	cs := &gpiotest.Pin{N: "CS", Num: 4}
	b := NewSPIBus(c, cs)

	got, err := b.Send([]byte{cmdReadStatus}, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got, test.ShouldResemble, []byte{0xA5})
	test.That(t, c.tx, test.ShouldResemble, [][]byte{{cmdReadStatus, 0x00}})
	// CS released after the transaction.
	test.That(t, cs.L, test.ShouldEqual, gpio.High)
}

func TestSPIBusSendSequence(t *testing.T) {
	c := &loopConn{}
	b := NewSPIBus(c, &gpiotest.Pin{N: "CS", Num: 4})

	seq := []Transaction{
		{Write: []byte{cmdResetEnable}},
		{Write: []byte{cmdReset}},
	}
	test.That(t, b.SendSequence(seq), test.ShouldBeNil)
	test.That(t, c.tx, test.ShouldResemble, [][]byte{{cmdResetEnable}, {cmdReset}})
}

func TestSPIBusSendSequenceStopsAtFirstFailure(t *testing.T) {
	c := &loopConn{failAt: 2}
	b := NewSPIBus(c, &gpiotest.Pin{N: "CS", Num: 4})

	seq := []Transaction{
		{Write: []byte{cmdWriteEnable}},
		{Write: []byte{cmdBlockErase, 0x00, 0x10, 0x00}},
		{Write: []byte{cmdReadStatus}, Read: make([]byte, 1)},
	}
	test.That(t, b.SendSequence(seq), test.ShouldNotBeNil)
	test.That(t, c.tx, test.ShouldResemble, [][]byte{{cmdWriteEnable}})
}

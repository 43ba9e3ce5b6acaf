package input

import (
	"time"
)

// ByteSource is the raw keyboard stream. Reads wait at most timeout for
// the first byte and return 0, nil when nothing arrives; they may return
// several bytes at once when the terminal has queued auto-repeat input.
// terminal.Backend satisfies this.
type ByteSource interface {
	ReadTimeout(p []byte, timeout time.Duration) (int, error)
}

const escByte = 0x1b

// Decoder turns the raw byte stream into Commands. One Next call decodes
// at most one command and performs at most one bounded wait; that wait
// is what paces the game loop. Bytes already buffered decode without
// waiting, which is what makes a held arrow key speed the snake up.
type Decoder struct {
	src     ByteSource
	timeout time.Duration

	buf     []byte
	scratch [64]byte
}

// NewDecoder creates a decoder reading from src with the given per-read
// wait.
func NewDecoder(src ByteSource, timeout time.Duration) *Decoder {
	return &Decoder{
		src:     src,
		timeout: timeout,
		buf:     make([]byte, 0, 64),
	}
}

// fill performs one bounded read and appends whatever arrived
func (d *Decoder) fill() error {
	n, err := d.src.ReadTimeout(d.scratch[:], d.timeout)
	if err != nil {
		return err
	}
	d.buf = append(d.buf, d.scratch[:n]...)
	return nil
}

// consume drops n decoded bytes from the front of the buffer
func (d *Decoder) consume(n int) {
	if n >= len(d.buf) {
		d.buf = d.buf[:0]
		return
	}
	copy(d.buf, d.buf[n:])
	d.buf = d.buf[:len(d.buf)-n]
}

// Next decodes the next command. An empty read (the wait expired with no
// input) and any unrecognized byte both produce CommandNone; neither is
// an error.
func (d *Decoder) Next() (Command, error) {
	if len(d.buf) == 0 {
		if err := d.fill(); err != nil {
			return CommandNone, err
		}
		if len(d.buf) == 0 {
			return CommandNone, nil // Timeout tick
		}
	}

	b := d.buf[0]
	d.consume(1)

	switch b {
	case 'q':
		return CommandQuit, nil
	case 'p':
		return CommandTogglePause, nil
	case escByte:
		return d.decodeEscape()
	}

	// Unrecognized keys are silently ignored
	return CommandNone, nil
}

// decodeEscape handles the tail of an ESC [ A|B|C|D arrow sequence. The
// two trailing bytes are taken as one fixed-width read: only the final
// byte is inspected, the '[' is never validated.
func (d *Decoder) decodeEscape() (Command, error) {
	if len(d.buf) < 2 {
		if err := d.fill(); err != nil {
			return CommandNone, err
		}
	}
	if len(d.buf) < 2 {
		// A lone ESC, or a torn sequence the wait never completed
		d.consume(len(d.buf))
		return CommandNone, nil
	}

	final := d.buf[1]
	d.consume(2)

	switch final {
	case 'A':
		return CommandUp, nil
	case 'B':
		return CommandDown, nil
	case 'C':
		return CommandRight, nil
	case 'D':
		return CommandLeft, nil
	}
	return CommandNone, nil
}

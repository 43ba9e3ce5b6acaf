package terminal

import "time"

// Backend abstracts the platform terminal: raw mode lifecycle, size
// queries, writes, and bounded-wait reads. The read timeout doubles as
// the game's turn pacer, so there is no separate frame clock anywhere.
type Backend interface {
	// Init enters raw mode
	Init() error

	// Fini restores the previous terminal mode. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions as (columns, rows)
	Size() (int, int)

	// Write sends raw bytes to the terminal
	Write(p []byte) error

	// ReadTimeout reads whatever input bytes are available, waiting at
	// most timeout for the first byte. Returns 0, nil when the wait
	// expires with nothing to read
	ReadTimeout(p []byte, timeout time.Duration) (int, error)
}

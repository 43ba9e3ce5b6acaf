package terminal

import (
	"bufio"
	"io"
	"os"
)

// Screen is a cell-addressed writer over a raw-mode terminal. Rows and
// columns are 1-indexed, matching what the escape sequences expect, so
// board coordinates map straight through.
type Screen struct {
	backend   Backend
	writer    *bufio.Writer
	colorMode ColorMode

	initialized bool
	finalized   bool
}

// NewScreen creates a screen over the given backend.
func NewScreen(b Backend, mode ColorMode) *Screen {
	return &Screen{
		backend:   b,
		writer:    bufio.NewWriterSize(backendWriter{b}, 4096),
		colorMode: mode,
	}
}

// backendWriter adapts Backend.Write to io.Writer for bufio
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Init enters raw mode, switches to the alternate screen buffer and
// hides the cursor
func (s *Screen) Init() error {
	if s.initialized {
		return nil
	}

	if err := s.backend.Init(); err != nil {
		return err
	}

	s.writer.Write(csiAltScreenEnter)
	s.writer.Write(csiCursorHide)
	s.writer.Write(csiAutoWrapOff)
	s.writer.Write(csiClear)
	s.writer.Flush()

	s.initialized = true
	return nil
}

// Fini restores the terminal. Safe to call multiple times; every exit
// path (game over, quit, interrupt, panic recovery) funnels through here
func (s *Screen) Fini() {
	if !s.initialized || s.finalized {
		return
	}

	s.writer.Write(csiCursorShow)
	s.writer.Write(csiAltScreenExit)
	s.writer.Write(csiAutoWrapOn)
	s.writer.Write(csiReset)
	s.writer.Flush()

	s.backend.Fini()
	s.finalized = true
}

// Size returns terminal dimensions as (columns, rows)
func (s *Screen) Size() (int, int) {
	return s.backend.Size()
}

// ColorMode returns the active color capability
func (s *Screen) ColorMode() ColorMode {
	return s.colorMode
}

// SetCell draws a single rune at row, col with a foreground color
func (s *Screen) SetCell(row, col int, r rune, fg RGB) {
	writeCursorPos(s.writer, row, col)
	writeFg(s.writer, fg, s.colorMode)
	s.writer.WriteRune(r)
	s.writer.Write(csiReset)
}

// ClearCell blanks a single cell
func (s *Screen) ClearCell(row, col int) {
	writeCursorPos(s.writer, row, col)
	s.writer.WriteByte(' ')
}

// WriteText draws a string starting at row, col with a foreground color
func (s *Screen) WriteText(row, col int, text string, fg RGB) {
	writeCursorPos(s.writer, row, col)
	writeFg(s.writer, fg, s.colorMode)
	s.writer.WriteString(text)
	s.writer.Write(csiReset)
}

// Flush pushes buffered draws to the terminal
func (s *Screen) Flush() {
	s.writer.Flush()
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Fini cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiAutoWrapOn)
	w.Write(csiReset)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

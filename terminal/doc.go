// Package terminal provides direct ANSI terminal control for the game.
//
// Features:
//   - Raw mode with bounded-wait (poll-based) stdin reads
//   - Cell-addressed drawing via direct escape sequences
//   - True color (24-bit) and 256-color palette support
//   - Alternate screen lifecycle with clean restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Unix systems with xterm-compatible
// terminals.
package terminal

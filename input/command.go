package input

// Command is a decoded player action. The decoder collapses the raw byte
// stream into this alphabet; everything it does not recognize becomes
// CommandNone rather than an error.
type Command uint8

const (
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandQuit
	CommandTogglePause
)

// String returns the command name for logs
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandQuit:
		return "quit"
	case CommandTogglePause:
		return "toggle-pause"
	}
	return "unknown"
}

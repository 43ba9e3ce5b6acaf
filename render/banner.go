package render

import (
	"fmt"
	"io"
)

// farewell is printed to the normal screen buffer after the terminal is
// restored, so it stays in the scrollback
const farewell = `
    __,
   (  o\    thanks for playing
    \  \        shell-snake
    /  /
   /  /  __
  (  (,-'  '-.
   \         )
    '-------'
`

// PrintFarewell writes the goodbye art and the final score
func PrintFarewell(w io.Writer, score int) {
	fmt.Fprint(w, farewell)
	fmt.Fprintf(w, "\n   final score: %d\n\n", score)
}

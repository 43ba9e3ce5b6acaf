// Package game holds the whole game-state engine: the board model, the
// snake and its movement/growth rule, free-cell sampling, collision and
// scoring, and the single-goroutine loop that sequences them into one
// playable turn per iteration.
//
// There is no frame clock. The loop is paced entirely by the input
// read's bounded wait, so buffered keystrokes shorten turns and a held
// key visibly speeds the snake up.
package game

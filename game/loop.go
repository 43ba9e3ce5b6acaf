package game

import (
	"log"
	"os"
	"time"

	"github.com/tom-on-the-internet/shell-snake/input"
)

// deathFlashHold keeps the fatal render on screen before the terminal
// is restored and the farewell prints
const deathFlashHold = 1200 * time.Millisecond

// CommandSource yields one decoded command per call. The call's bounded
// wait is the loop's only pacer; there is deliberately no frame clock.
// When the terminal has queued bytes (a held arrow key), calls return
// immediately and the snake visibly accelerates. That speed-up is part
// of the gameplay, not a bug.
type CommandSource interface {
	Next() (input.Command, error)
}

// Renderer receives the loop's draw events. It never reaches into game
// state on its own; the loop hands it exactly what changed
type Renderer interface {
	// Init draws the full board: border, score, snake, food
	Init(st *State)
	// SnakeMoved draws the new head and erases the vacated tail, if any
	SnakeMoved(st *State, newHead, vacated Coord, hasVacated bool)
	// Refresh redraws food, blocks and score after a meal
	Refresh(st *State)
	// GameOver is the single post-death render: walls and the fatal
	// head flash in the alert color
	GameOver(st *State)
}

// Sounder plays feedback tones. Implementations must be best-effort;
// the loop never checks for errors
type Sounder interface {
	FoodEaten()
	Died()
}

// Loop sequences input, movement, collision resolution and rendering
// into one playable turn per iteration, all on a single goroutine
type Loop struct {
	st  *State
	sp  *Spawner
	src CommandSource
	r   Renderer
	snd Sounder

	// Interrupt delivery; treated exactly like the quit key
	interrupt <-chan os.Signal

	holdAfterDeath time.Duration
}

// NewLoop wires the game loop
func NewLoop(st *State, sp *Spawner, src CommandSource, r Renderer, snd Sounder, interrupt <-chan os.Signal) *Loop {
	return &Loop{
		st: st, sp: sp, src: src, r: r, snd: snd,
		interrupt:      interrupt,
		holdAfterDeath: deathFlashHold,
	}
}

// hold parks after the death flash; an interrupt cuts it short
func (l *Loop) hold(d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-l.interrupt:
	case <-time.After(d):
	}
}

// Run plays the game to completion. It returns nil on quit, game over,
// or interrupt; only input read failures produce an error
func (l *Loop) Run() error {
	l.r.Init(l.st)

	for {
		select {
		case <-l.interrupt:
			log.Printf("interrupted, shutting down")
			return nil
		default:
		}

		cmd, err := l.src.Next()
		if err != nil {
			return err
		}

		switch cmd {
		case input.CommandUp:
			l.st.Snake.SetHeading(DirUp)
		case input.CommandDown:
			l.st.Snake.SetHeading(DirDown)
		case input.CommandLeft:
			l.st.Snake.SetHeading(DirLeft)
		case input.CommandRight:
			l.st.Snake.SetHeading(DirRight)
		case input.CommandQuit:
			// Quit skips the death flash
			l.st.Phase = PhaseOver
			log.Printf("quit with score %d", l.st.Score)
			return nil
		case input.CommandTogglePause:
			switch l.st.Phase {
			case PhaseRunning:
				l.st.Phase = PhasePaused
			case PhasePaused:
				l.st.Phase = PhaseRunning
			}
		case input.CommandNone:
			// Timeout tick or unrecognized key
		}

		if l.st.Phase != PhaseRunning {
			continue
		}

		newHead, vacated, hasVacated := l.st.Snake.Advance()

		switch l.st.Resolve(l.sp) {
		case OutcomeDied:
			l.snd.Died()
			l.r.GameOver(l.st)
			log.Printf("died at %v with score %d", newHead, l.st.Score)
			l.hold(l.holdAfterDeath)
			return nil
		case OutcomeWon:
			l.snd.FoodEaten()
			l.r.Refresh(l.st)
			log.Printf("board saturated, final score %d", l.st.Score)
			return nil
		case OutcomeAte:
			l.snd.FoodEaten()
			l.r.SnakeMoved(l.st, newHead, vacated, hasVacated)
			l.r.Refresh(l.st)
		case OutcomeNone:
			l.r.SnakeMoved(l.st, newHead, vacated, hasVacated)
		}
	}
}

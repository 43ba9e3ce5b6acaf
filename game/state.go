package game

// Phase is the game lifecycle state. Running and Paused both accept
// input and ticks; Over is terminal and reached exactly once
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseOver
)

// State is the whole mutable game: board, snake, food, blocks, score.
// Nothing game-related lives outside it; every operation receives the
// state it works on explicitly
type State struct {
	Grid  Grid
	Snake *Snake

	Food   Coord
	Blocks map[Coord]struct{}

	Score int
	Phase Phase

	// Danger mode drops a permanent block every time food is eaten
	Danger bool
}

// NewState builds a fresh game: length-1 snake on the center cell,
// heading right, one food item, empty block set
func NewState(g Grid, danger bool, sp *Spawner) (*State, error) {
	st := &State{
		Grid:   g,
		Snake:  NewSnake(g.Center(), DirRight),
		Blocks: make(map[Coord]struct{}),
		Danger: danger,
	}

	food, err := sp.FreeCell(g, st.Snake, st.Blocks)
	if err != nil {
		return nil, err
	}
	st.Food = food
	return st, nil
}

package game

// Outcome is the result of resolving one advance
type Outcome uint8

const (
	// OutcomeNone: the snake moved onto a free cell
	OutcomeNone Outcome = iota
	// OutcomeAte: the snake ate the food; score, growth and respawn
	// have already been applied
	OutcomeAte
	// OutcomeDied: wall, block, or self collision; Phase is now Over
	OutcomeDied
	// OutcomeWon: food was eaten but no free cell remains to respawn
	// it; the board is full and the game ends without a death
	OutcomeWon
)

// Resolve runs the collision and scoring checks for the current head,
// in this exact order: wall, block, self, food. Order matters: a head
// on a wall cell dies even if food were mistakenly placed there, and
// the self check is skipped for a length-1 snake (no body to hit).
func (st *State) Resolve(sp *Spawner) Outcome {
	head := st.Snake.Head()

	if st.Grid.IsWall(head) {
		st.Phase = PhaseOver
		return OutcomeDied
	}

	if _, blocked := st.Blocks[head]; blocked {
		st.Phase = PhaseOver
		return OutcomeDied
	}

	if st.Snake.HitsSelf() {
		st.Phase = PhaseOver
		return OutcomeDied
	}

	if head != st.Food {
		return OutcomeNone
	}

	st.Score++
	st.Snake.Grow()

	if st.Danger {
		if block, err := sp.FreeCell(st.Grid, st.Snake, st.Blocks); err == nil {
			st.Blocks[block] = struct{}{}
		} else {
			st.Phase = PhaseOver
			return OutcomeWon
		}
	}

	food, err := sp.FreeCell(st.Grid, st.Snake, st.Blocks)
	if err != nil {
		st.Phase = PhaseOver
		return OutcomeWon
	}
	st.Food = food

	return OutcomeAte
}

package game

import "testing"

func testState(t *testing.T, danger bool) (*State, *Spawner) {
	t.Helper()
	g := Grid{Rows: 10, Cols: 10}
	sp := NewSpawner(42)
	st, err := NewState(g, danger, sp)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return st, sp
}

// forceHead rebuilds the snake so its head sits on c
func forceHead(st *State, c Coord) {
	st.Snake = NewSnake(c, st.Snake.Heading())
}

// TestWallCollision verifies every border cell is fatal and an interior
// cell is not
func TestWallCollision(t *testing.T) {
	fatal := []Coord{
		{1, 5}, {10, 5}, {5, 1}, {5, 10}, {1, 1}, {10, 10},
	}
	for _, c := range fatal {
		st, sp := testState(t, false)
		forceHead(st, c)
		if got := st.Resolve(sp); got != OutcomeDied {
			t.Errorf("Expected death at wall cell %v, got %v", c, got)
		}
		if st.Phase != PhaseOver {
			t.Errorf("Expected PhaseOver after wall hit at %v", c)
		}
	}

	st, sp := testState(t, false)
	forceHead(st, Coord{5, 5})
	st.Food = Coord{2, 2}
	if got := st.Resolve(sp); got != OutcomeNone {
		t.Errorf("Expected survival at (5,5), got %v", got)
	}
}

// TestBlockCollision verifies a danger block under the head is fatal
func TestBlockCollision(t *testing.T) {
	st, sp := testState(t, true)
	forceHead(st, Coord{5, 5})
	st.Blocks[Coord{5, 5}] = struct{}{}

	if got := st.Resolve(sp); got != OutcomeDied {
		t.Errorf("Expected death on block, got %v", got)
	}
}

// TestSelfCollisionAfterReversal verifies the reversal death: the
// heading flips into the neck and the following advance is fatal
func TestSelfCollisionAfterReversal(t *testing.T) {
	st, sp := testState(t, false)
	st.Food = Coord{2, 2}

	// Build [(5,5),(5,6),(5,7)] moving left
	s := NewSnake(Coord{5, 7}, DirLeft)
	s.Grow()
	s.Advance()
	s.Grow()
	s.Advance()
	st.Snake = s

	s.SetHeading(DirRight) // Reverse into the neck, accepted silently
	s.Advance()            // Head lands on (5,6)

	if s.Head() != (Coord{5, 6}) {
		t.Fatalf("Expected head (5,6) after reversal, got %v", s.Head())
	}
	if got := st.Resolve(sp); got != OutcomeDied {
		t.Errorf("Expected self-collision death, got %v", got)
	}
}

// TestFoodConsumption verifies eating: score up by one, food relocated
// to a free cell, next advance does not shrink the snake
func TestFoodConsumption(t *testing.T) {
	st, sp := testState(t, false)
	forceHead(st, Coord{5, 5})
	st.Food = Coord{5, 5}

	if got := st.Resolve(sp); got != OutcomeAte {
		t.Fatalf("Expected OutcomeAte, got %v", got)
	}
	if st.Score != 1 {
		t.Errorf("Expected score 1, got %d", st.Score)
	}
	if st.Food == (Coord{5, 5}) {
		t.Error("Expected food relocated off the eaten cell")
	}
	if !st.Grid.IsInterior(st.Food) {
		t.Errorf("Expected interior food cell, got %v", st.Food)
	}

	before := st.Snake.Len()
	st.Snake.Advance()
	if st.Snake.Len() != before+1 {
		t.Errorf("Expected length %d after the growing advance, got %d", before+1, st.Snake.Len())
	}
}

// TestDangerModeAddsBlock verifies danger mode drops exactly one block
// per meal and never shrinks the set
func TestDangerModeAddsBlock(t *testing.T) {
	st, sp := testState(t, true)

	for i := 1; i <= 3; i++ {
		forceHead(st, st.Food)
		if got := st.Resolve(sp); got != OutcomeAte {
			t.Fatalf("Expected OutcomeAte on meal %d, got %v", i, got)
		}
		if len(st.Blocks) != i {
			t.Errorf("Expected %d blocks after meal %d, got %d", i, i, len(st.Blocks))
		}
	}

	for b := range st.Blocks {
		if !st.Grid.IsInterior(b) {
			t.Errorf("Expected interior block, got %v", b)
		}
		if b == st.Food {
			t.Errorf("Expected block and food to differ, both at %v", b)
		}
	}
}

// TestScoreMonotonic verifies several meals only ever raise the score
func TestScoreMonotonic(t *testing.T) {
	st, sp := testState(t, false)

	last := st.Score
	for i := 0; i < 5; i++ {
		forceHead(st, st.Food)
		st.Resolve(sp)
		if st.Score < last {
			t.Fatalf("Expected monotonic score, went from %d to %d", last, st.Score)
		}
		last = st.Score
	}
	if last != 5 {
		t.Errorf("Expected score 5 after five meals, got %d", last)
	}
}

// TestGridValidation verifies the minimum board size precondition
func TestGridValidation(t *testing.T) {
	if _, err := NewGrid(9, 80); err == nil {
		t.Error("Expected error for 9-row terminal")
	}
	if _, err := NewGrid(24, 9); err == nil {
		t.Error("Expected error for 9-column terminal")
	}
	if _, err := NewGrid(10, 10); err != nil {
		t.Errorf("Expected 10x10 to be accepted, got %v", err)
	}
}

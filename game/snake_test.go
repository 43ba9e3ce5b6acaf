package game

import "testing"

// TestAdvanceKeepsLength verifies a plain advance shifts the head one
// unit along the heading without changing the length
func TestAdvanceKeepsLength(t *testing.T) {
	cases := []struct {
		heading Direction
		want    Coord
	}{
		{DirUp, Coord{4, 5}},
		{DirDown, Coord{6, 5}},
		{DirLeft, Coord{5, 4}},
		{DirRight, Coord{5, 6}},
	}

	for _, tc := range cases {
		s := NewSnake(Coord{5, 5}, tc.heading)
		s.Grow()
		s.Advance() // Length 2 so a tail actually pops on the next move
		before := s.Len()

		newHead, _, hasVacated := s.Advance()
		if s.Len() != before {
			t.Errorf("Expected length %d after advance, got %d", before, s.Len())
		}
		if !hasVacated {
			t.Errorf("Expected a vacated tail for heading %v", tc.heading)
		}
		if s.Head() != newHead {
			t.Errorf("Expected Head() to match returned head %v, got %v", newHead, s.Head())
		}
	}

	// Direction of the shift itself
	s := NewSnake(Coord{5, 5}, DirRight)
	newHead, _, _ := s.Advance()
	if newHead != (Coord{5, 6}) {
		t.Errorf("Expected head at (5,6) after moving right, got %v", newHead)
	}
}

// TestGrowDefersTailRemoval verifies grow + advance lengthens the snake
// by one and pops no tail on that advance
func TestGrowDefersTailRemoval(t *testing.T) {
	s := NewSnake(Coord{5, 5}, DirRight)
	s.Grow()

	newHead, _, hasVacated := s.Advance()
	if s.Len() != 2 {
		t.Errorf("Expected length 2 after grow+advance, got %d", s.Len())
	}
	if hasVacated {
		t.Error("Expected no vacated tail on the growing advance")
	}
	if newHead != (Coord{5, 6}) {
		t.Errorf("Expected new head (5,6), got %v", newHead)
	}

	// The deferral is one-shot
	_, vacated, hasVacated := s.Advance()
	if s.Len() != 2 {
		t.Errorf("Expected length to stay 2 on the next advance, got %d", s.Len())
	}
	if !hasVacated {
		t.Error("Expected a vacated tail once the pending grow is spent")
	}
	if vacated != (Coord{5, 5}) {
		t.Errorf("Expected tail (5,5) vacated, got %v", vacated)
	}
}

// TestVacatedTailStillOccupied verifies the occupancy set keeps a cell
// that another segment still covers after the tail pops
func TestVacatedTailStillOccupied(t *testing.T) {
	// Build [(5,7),(5,6),(5,5)] heading left, then reverse through the
	// body: the head lands on (5,6), which is also a body cell
	s := NewSnake(Coord{5, 5}, DirRight)
	s.Grow()
	s.Advance() // [(5,6),(5,5)]
	s.Grow()
	s.Advance() // [(5,7),(5,6),(5,5)]

	s.SetHeading(DirLeft)
	s.Advance() // Head onto (5,6), tail (5,5) pops

	if !s.Contains(Coord{5, 6}) {
		t.Error("Expected (5,6) to remain occupied after reversal")
	}
	if s.Contains(Coord{5, 5}) {
		t.Error("Expected vacated (5,5) to be free")
	}
	if !s.HitsSelf() {
		t.Error("Expected reversal into the neck to register as self-collision")
	}
}

// TestSetHeadingHasNoReversalGuard verifies any heading is accepted at
// input time, including the immediate reverse
func TestSetHeadingHasNoReversalGuard(t *testing.T) {
	s := NewSnake(Coord{5, 5}, DirRight)
	s.SetHeading(DirLeft)
	if s.Heading() != DirLeft {
		t.Errorf("Expected heading left after reversal, got %v", s.Heading())
	}
}

// TestLengthOneNeverHitsSelf verifies a single-segment snake cannot
// self-collide regardless of movement
func TestLengthOneNeverHitsSelf(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		s := NewSnake(Coord{5, 5}, DirRight)
		s.SetHeading(d)
		s.Advance()
		if s.HitsSelf() {
			t.Errorf("Expected no self-collision for length-1 snake heading %v", d)
		}
	}
}

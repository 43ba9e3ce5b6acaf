package game

// Snake is the ordered body, head first, plus the current heading. An
// occupancy set shadows the segment slice so membership checks during
// collision detection and food spawning are O(1) instead of scanning
// the body.
type Snake struct {
	segments []Coord
	occupied map[Coord]struct{}
	heading  Direction

	pendingGrow bool
}

// NewSnake creates a length-1 snake at start
func NewSnake(start Coord, heading Direction) *Snake {
	return &Snake{
		segments: []Coord{start},
		occupied: map[Coord]struct{}{start: {}},
		heading:  heading,
	}
}

// Head returns the first segment
func (s *Snake) Head() Coord {
	return s.segments[0]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.segments)
}

// Heading returns the direction of the next advance
func (s *Snake) Heading() Direction {
	return s.heading
}

// SetHeading overwrites the heading unconditionally. There is no
// reversal guard: heading straight back into the neck is accepted here
// and dies one tick later in the self-collision check
func (s *Snake) SetHeading(d Direction) {
	s.heading = d
}

// Grow defers the next tail removal by one advance, lengthening the
// snake by one segment. No position is chosen here; the extra segment
// is simply the tail that doesn't get popped
func (s *Snake) Grow() {
	s.pendingGrow = true
}

// Advance moves the snake one cell along its heading. It returns the
// new head and, unless a grow was pending, the vacated tail cell so the
// renderer can erase exactly one cell instead of redrawing the body.
// The head is placed even when it lands on a wall or on the body;
// collision checks run on the result.
func (s *Snake) Advance() (newHead Coord, vacated Coord, hasVacated bool) {
	newHead = s.segments[0].Add(s.heading.Delta())

	s.segments = append([]Coord{newHead}, s.segments...)
	s.occupied[newHead] = struct{}{}

	if s.pendingGrow {
		s.pendingGrow = false
		return newHead, Coord{}, false
	}

	tail := s.segments[len(s.segments)-1]
	s.segments = s.segments[:len(s.segments)-1]

	// The tail cell stays occupied if another segment still covers it
	// (possible right after a reversal onto the body)
	if !s.containsSegment(tail) {
		delete(s.occupied, tail)
	}
	return newHead, tail, true
}

// Contains reports whether any segment, head included, covers c
func (s *Snake) Contains(c Coord) bool {
	_, ok := s.occupied[c]
	return ok
}

// HitsSelf reports whether the head overlaps the body. A length-1 snake
// has no body to collide with
func (s *Snake) HitsSelf() bool {
	if len(s.segments) < 2 {
		return false
	}
	head := s.segments[0]
	for _, seg := range s.segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Segments returns the body in order, head first. The slice is shared;
// callers must not mutate it
func (s *Snake) Segments() []Coord {
	return s.segments
}

func (s *Snake) containsSegment(c Coord) bool {
	for _, seg := range s.segments {
		if seg == c {
			return true
		}
	}
	return false
}

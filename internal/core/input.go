package core

import "sync/atomic"

// Direction represents a logical game action, abstracted from physical key presses.
// The mapping from keys to directions is owned by the display backends.
type Direction int

const (
	DirLeft   Direction = iota // Shift piece one column left
	DirRight                   // Shift piece one column right
	DirDown                    // Soft drop / gravity
	DirTurn                    // Rotate to the next rotation state
	DirUp                      // Reserved, no effect on the board
	DirEscape                  // Leave the game immediately

	// NumDirections is the number of logical directions.
	NumDirections = int(DirEscape) + 1
)

// Directions lists every direction in polling order.
var Directions = [NumDirections]Direction{DirLeft, DirRight, DirDown, DirTurn, DirUp, DirEscape}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirTurn:
		return "Turn"
	case DirUp:
		return "Up"
	case DirEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the defined directions.
func (d Direction) Valid() bool {
	return d >= DirLeft && d <= DirEscape
}

// InputState holds the held/released flag of every direction.
// Writers (UI event callbacks) and the reader (the tick loop) may run on
// different goroutines; each flag is last-write-wins.
type InputState struct {
	held [NumDirections]atomic.Bool
}

// NewInputState creates an input state with every direction released.
func NewInputState() *InputState {
	return &InputState{}
}

// SetPressed marks a direction as held down.
func (s *InputState) SetPressed(d Direction) {
	if d.Valid() {
		s.held[d].Store(true)
	}
}

// SetReleased marks a direction as released.
func (s *InputState) SetReleased(d Direction) {
	if d.Valid() {
		s.held[d].Store(false)
	}
}

// Set stores the held flag for a direction.
func (s *InputState) Set(d Direction, held bool) {
	if d.Valid() {
		s.held[d].Store(held)
	}
}

// Held returns true if the direction is currently held down.
func (s *InputState) Held(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return s.held[d].Load()
}

// ReleaseAll clears every held flag.
func (s *InputState) ReleaseAll() {
	for i := range s.held {
		s.held[i].Store(false)
	}
}

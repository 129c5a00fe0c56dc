package game

import "fmt"

// ActionError rejects a single action. The game state is unchanged when one
// is returned.
type ActionError struct {
	Reason string
}

func (e *ActionError) Error() string { return e.Reason }

// CreationError is returned when a game cannot be set up.
type CreationError struct {
	Reason string
}

func (e *CreationError) Error() string { return "create game: " + e.Reason }

func creationErrorf(format string, args ...any) error {
	return &CreationError{Reason: fmt.Sprintf(format, args...)}
}

// Action rejection reasons. Compare with errors.Is.
var (
	ErrClueActive    = &ActionError{Reason: "clue already active"}
	ErrNoActiveClue  = &ActionError{Reason: "no active clue"}
	ErrNoSecret      = &ActionError{Reason: "no secret to clue"}
	ErrEmptyClue     = &ActionError{Reason: "clue is empty"}
	ErrUnknownPlayer = &ActionError{Reason: "player does not exist"}
	ErrOutOfBounds   = &ActionError{Reason: "tile is outside the grid"}
	ErrTileSolved    = &ActionError{Reason: "tile already solved"}
	ErrOwnClueVote   = &ActionError{Reason: "cannot vote on own clue"}
	ErrOwnClueGuess  = &ActionError{Reason: "cannot guess own clue"}
	ErrUnknownAction = &ActionError{Reason: "unknown action"}
)

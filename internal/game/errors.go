package game

import (
	"fmt"

	"github.com/samber/oops"
)

// Error codes for content and invariant failures. These are not player
// errors: they mean the authored content is broken and the session cannot
// safely continue.
const (
	CodeInvalidContent     = "INVALID_CONTENT"
	CodeInvalidLocation    = "INVALID_LOCATION"
	CodeUnknownDestination = "UNKNOWN_DESTINATION"
)

// ErrInvalidContent reports authored content that breaks a world invariant.
// When cause already carries a more specific code, such as
// CodeUnknownDestination, oops reports that innermost code.
func ErrInvalidContent(subject string, cause error) error {
	return oops.Code(CodeInvalidContent).
		With("subject", subject).
		Wrapf(cause, "invalid content")
}

// ErrInvalidLocation reports a current room missing from the room map.
func ErrInvalidLocation(room RoomId) error {
	return oops.Code(CodeInvalidLocation).
		With("room", room).
		Errorf("current room %q is not in the world", room)
}

// ErrUnknownDestination reports an exit that leads to a room missing from the map.
func ErrUnknownDestination(from RoomId, dir Direction, to RoomId) error {
	return oops.Code(CodeUnknownDestination).
		With("room", from).
		With("direction", dir.String()).
		With("destination", to).
		Errorf("exit %s from %q leads to unknown room %q", dir, from, to)
}

// UnknownDirectionError is returned when authored content names a direction
// that is not one of the fixed set.
type UnknownDirectionError struct {
	Word string
}

func (e *UnknownDirectionError) Error() string {
	return fmt.Sprintf("unknown direction %q", e.Word)
}

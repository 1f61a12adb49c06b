package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/game"
)

// defaultLockMessages are shown for a held lock whose exit has no message of
// its own.
var defaultLockMessages = map[game.LockKind]string{
	game.LockImpassable:        "You can't go that way.",
	game.LockRequiresItem:      "There is a locked door in your way.",
	game.LockBlockedByObstacle: "There is a {{ .Obstacle }} in your way.",
	game.LockRequiresPassword:  "A magic barrier blocks the way. It seems to be waiting for a word.",
}

// MoveHandlerFactory creates handlers that move the player between rooms.
// The direction is the first noun; direction words typed as the verb arrive
// here with themselves as that noun.
type MoveHandlerFactory struct {
	lockMessages map[game.LockKind]string
}

// NewMoveHandlerFactory creates a new MoveHandlerFactory.
func NewMoveHandlerFactory() *MoveHandlerFactory {
	return &MoveHandlerFactory{lockMessages: defaultLockMessages}
}

func (f *MoveHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) error {
		word, ok := cmdCtx.Noun1()
		if !ok {
			return NewUserError("Go where??")
		}

		dir, ok := game.ParseDirection(word)
		if !ok {
			return NewUserError("I don't understand that direction.")
		}

		w := cmdCtx.World
		from := w.Current()

		lock := w.ExitLock(from, dir)
		if !Unlocked(w, from, lock) {
			return f.refuse(lock, dir, word)
		}

		to, ok := w.Destination(from, dir)
		if !ok || !w.HasRoom(to) {
			return game.ErrUnknownDestination(from, dir, to)
		}

		lines, err := w.Describe(to)
		if err != nil {
			return err
		}
		w.MoveTo(to)
		cmdCtx.Print(lines...)
		return nil
	}, nil
}

// refuse builds the message for a lock that holds.
func (f *MoveHandlerFactory) refuse(lock game.Lock, dir game.Direction, word string) error {
	tmpl := lock.Message
	if tmpl == "" || lock.Kind == game.LockImpassable {
		tmpl = f.lockMessages[lock.Kind]
	}

	msg, err := expandMessage("lock", tmpl, &TemplateData{
		Noun:      word,
		Item:      lock.Item.String(),
		Obstacle:  lock.Obstacle.String(),
		Direction: dir.String(),
	})
	if err != nil {
		return err
	}
	return NewUserError(msg)
}

// Unlocked reports whether the player may currently pass lock on an exit
// from room. Items unlock when carried and obstacles stop blocking once they
// are gone from the room. Passwords cannot be given yet so they never open.
func Unlocked(w *game.World, room game.RoomId, lock game.Lock) bool {
	switch lock.Kind {
	case game.LockFree:
		return true
	case game.LockRequiresItem:
		return w.Has(lock.Item)
	case game.LockBlockedByObstacle:
		return !w.RoomHas(room, lock.Obstacle)
	default:
		return false
	}
}

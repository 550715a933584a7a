package service

import (
	"errors"
	"fmt"
	"time"

	"minesbot/models"
)

// Domain errors reported back to the player. Anything not in this set is an
// internal failure: it gets logged and surfaced as a generic message, never
// with raw detail.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidStake      = errors.New("invalid stake")
	ErrInvalidMineCount  = errors.New("invalid mine count")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrSessionActive     = errors.New("a game session is already active")
	ErrNoActiveSession   = errors.New("no active game session")
	ErrAlreadyOpened     = errors.New("cell already opened")
	ErrIndexOutOfRange   = errors.New("cell index out of range")
	ErrUserNotFound      = errors.New("user not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrItemAlreadyOwned  = errors.New("item already owned")
	ErrItemNotOwned      = errors.New("item not owned")
)

// CooldownError is returned when a bonus claim is attempted before its
// cooldown has elapsed. Remaining is the wait until the next claim succeeds.
type CooldownError struct {
	Kind      models.BonusKind
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s bonus on cooldown for %s", e.Kind, e.Remaining.Round(time.Second))
}

// AsCooldownError unwraps err into a CooldownError if it is one
func AsCooldownError(err error) (*CooldownError, bool) {
	var ce *CooldownError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

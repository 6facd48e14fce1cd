package combat

import (
	"errors"
	"fmt"
)

// Move errors. Each wraps ErrIllegalMove.
var (
	ErrIllegalMove                   = errors.New("illegal move")
	ErrOccupiedByUnit                = fmt.Errorf("%w: occupied by unit", ErrIllegalMove)
	ErrBlockedByImpassableProjectile = fmt.Errorf("%w: blocked by impassable projectile", ErrIllegalMove)
	ErrNotReachable                  = fmt.Errorf("%w: tile not reachable", ErrIllegalMove)
)

// Targeting errors. Each wraps ErrInvalidSpellTarget.
var (
	ErrInvalidSpellTarget  = errors.New("invalid spell target")
	ErrWrongInputKind      = fmt.Errorf("%w: wrong input kind", ErrInvalidSpellTarget)
	ErrPredicateFailed     = fmt.Errorf("%w: target rejected", ErrInvalidSpellTarget)
	ErrIncompleteSelection = fmt.Errorf("%w: selection incomplete", ErrInvalidSpellTarget)
	ErrNotImplemented      = fmt.Errorf("%w: spell not implemented", ErrInvalidSpellTarget)
)

var (
	// ErrInsufficientMana is returned when the caster cannot pay for a spell.
	ErrInsufficientMana = errors.New("insufficient mana")
	// ErrBattleOver is returned for actions after a wizard has died.
	ErrBattleOver = errors.New("battle is over")
	// ErrOutOfRange is returned for wizard, projectile or spell slot lookups past the end.
	ErrOutOfRange = errors.New("index out of range")
)

package protocol

import (
	"fmt"
)

// Action keywords sent to the engine.
const (
	ActionKeywordMove        = "MOVE"
	ActionKeywordAttack      = "ATTACK"
	ActionKeywordExplode     = "EXPLODE"
	ActionKeywordInitialized = "INITIALIZED"
	ActionKeywordRoundEnd    = "ROUND_END"
)

// Action is one line of client output. Like Command, the variant set is
// closed and every variant must be handled by EncodeAction.
type Action interface {
	isAction()
}

// Move instructs a cell to move into the given square.
type Move struct {
	CellID uint32
	X      uint32
	Y      uint32
}

// Attack instructs a cell to attack the given square.
type Attack struct {
	CellID uint32
	X      uint32
	Y      uint32
}

// Explode instructs a cell to explode, damaging all surrounding squares.
type Explode struct {
	CellID uint32
}

// Initialized is the startup acknowledgment, sent once before any command
// is read and never buffered.
type Initialized struct{}

// RoundEnd terminates a round's action batch. It is appended by the
// communicator at flush time and is not issuable by user code.
type RoundEnd struct{}

func (Move) isAction()        {}
func (Attack) isAction()      {}
func (Explode) isAction()     {}
func (Initialized) isAction() {}
func (RoundEnd) isAction()    {}

// EncodeAction serializes an Action into one protocol line without the
// trailing newline: the keyword followed by space-separated integer
// arguments in the variant's fixed field order.
func EncodeAction(action Action) string {
	switch a := action.(type) {
	case Move:
		return fmt.Sprintf("%s %d %d %d", ActionKeywordMove, a.CellID, a.X, a.Y)
	case Attack:
		return fmt.Sprintf("%s %d %d %d", ActionKeywordAttack, a.CellID, a.X, a.Y)
	case Explode:
		return fmt.Sprintf("%s %d", ActionKeywordExplode, a.CellID)
	case Initialized:
		return ActionKeywordInitialized
	case RoundEnd:
		return ActionKeywordRoundEnd
	default:
		// The Action set is closed; reaching this is a bug in this package.
		panic(fmt.Sprintf("unknown action type %T", action))
	}
}

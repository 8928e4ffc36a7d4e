package protocol

import (
	"fmt"
	"strconv"
	"strings"
)

// Command keywords sent by the engine.
const (
	CommandKeywordInitialize         = "INITIALIZE"
	CommandKeywordSpawn              = "SPAWN"
	CommandKeywordDie                = "DIE"
	CommandKeywordSetCellProperties  = "SET_CELL_PROPERTIES"
	CommandKeywordConflictingActions = "CONFLICTING_ACTIONS"
	CommandKeywordRunRound           = "RUN_ROUND"
	CommandKeywordEndGame            = "END_GAME"
)

// Command is one decoded line of engine input. The variant set is closed:
// the unexported marker method keeps implementations inside this package.
type Command interface {
	isCommand()
}

// Initialize establishes the per-match world properties. The engine sends
// it exactly once, before any other command.
type Initialize struct {
	Width       uint32
	Height      uint32
	TeamID      uint32
	MyColumn    uint32
	EnemyColumn uint32
}

// Spawn introduces a new cell into the world.
type Spawn struct {
	CellID uint32
	X      uint32
	Y      uint32
	Health uint32
	TeamID uint32
	Age    uint32
}

// Die removes a cell from the world.
type Die struct {
	CellID uint32
}

// SetCellProperties updates the mutable attributes of an existing cell.
type SetCellProperties struct {
	CellID uint32
	X      uint32
	Y      uint32
	Health uint32
	Age    uint32
}

// ConflictingActions reports that multiple cells tried to act on the same
// square. It is informational and carries no state change.
type ConflictingActions struct {
	X uint32
	Y uint32
}

// RunRound marks a round boundary.
type RunRound struct{}

// EndGame marks the end of the match.
type EndGame struct{}

func (Initialize) isCommand()         {}
func (Spawn) isCommand()              {}
func (Die) isCommand()                {}
func (SetCellProperties) isCommand()  {}
func (ConflictingActions) isCommand() {}
func (RunRound) isCommand()           {}
func (EndGame) isCommand()            {}

// ParseCommand decodes one line of engine input into a Command.
// The first token is the command keyword; every following token must be an
// unsigned 32-bit integer. The keyword together with the argument count
// selects the variant, so a known keyword with the wrong count is an
// unknown command.
func ParseCommand(line string) (Command, error) {
	trimmed := strings.TrimRight(line, "\r\n")
	if trimmed == "" {
		return nil, &ErrParse{Line: line, Reason: "empty command line"}
	}

	tokens := strings.Split(trimmed, " ")
	keyword := tokens[0]
	args := make([]uint32, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		arg, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return nil, &ErrParse{Line: line, Reason: "non-integer argument " + strconv.Quote(token)}
		}
		args = append(args, uint32(arg))
	}

	switch {
	case keyword == CommandKeywordInitialize && len(args) == 5:
		return Initialize{
			Width:       args[0],
			Height:      args[1],
			TeamID:      args[2],
			MyColumn:    args[3],
			EnemyColumn: args[4],
		}, nil
	case keyword == CommandKeywordSpawn && len(args) == 6:
		return Spawn{
			CellID: args[0],
			X:      args[1],
			Y:      args[2],
			Health: args[3],
			TeamID: args[4],
			Age:    args[5],
		}, nil
	case keyword == CommandKeywordDie && len(args) == 1:
		return Die{
			CellID: args[0],
		}, nil
	case keyword == CommandKeywordSetCellProperties && len(args) == 5:
		return SetCellProperties{
			CellID: args[0],
			X:      args[1],
			Y:      args[2],
			Health: args[3],
			Age:    args[4],
		}, nil
	case keyword == CommandKeywordConflictingActions && len(args) == 2:
		return ConflictingActions{
			X: args[0],
			Y: args[1],
		}, nil
	case keyword == CommandKeywordRunRound && len(args) == 0:
		return RunRound{}, nil
	case keyword == CommandKeywordEndGame && len(args) == 0:
		return EndGame{}, nil
	default:
		return nil, &ErrParse{Line: line, Reason: "unknown command"}
	}
}

// EncodeCommand serializes a Command back into its protocol line. The engine
// never consumes these; they exist for match journaling and for test
// harnesses that simulate the engine side.
func EncodeCommand(command Command) string {
	switch c := command.(type) {
	case Initialize:
		return fmt.Sprintf("%s %d %d %d %d %d", CommandKeywordInitialize, c.Width, c.Height, c.TeamID, c.MyColumn, c.EnemyColumn)
	case Spawn:
		return fmt.Sprintf("%s %d %d %d %d %d %d", CommandKeywordSpawn, c.CellID, c.X, c.Y, c.Health, c.TeamID, c.Age)
	case Die:
		return fmt.Sprintf("%s %d", CommandKeywordDie, c.CellID)
	case SetCellProperties:
		return fmt.Sprintf("%s %d %d %d %d %d", CommandKeywordSetCellProperties, c.CellID, c.X, c.Y, c.Health, c.Age)
	case ConflictingActions:
		return fmt.Sprintf("%s %d %d", CommandKeywordConflictingActions, c.X, c.Y)
	case RunRound:
		return CommandKeywordRunRound
	case EndGame:
		return CommandKeywordEndGame
	default:
		// The Command set is closed; reaching this is a bug in this package.
		panic(fmt.Sprintf("unknown command type %T", command))
	}
}

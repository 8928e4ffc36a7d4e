package game

import "fmt"

// ErrUnknownCell is returned when the engine references a cell id that is
// not present in the current world state. This is a protocol contract
// breach and is not recoverable.
type ErrUnknownCell struct {
	CellID uint32
}

func (e *ErrUnknownCell) Error() string {
	return fmt.Sprintf("unknown cell id %d", e.CellID)
}

// IsUnknownCell reports whether err is an ErrUnknownCell.
func IsUnknownCell(err error) bool {
	_, ok := err.(*ErrUnknownCell)
	return ok
}

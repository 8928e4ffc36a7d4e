package game

import (
	"fmt"

	"github.com/cellwars/client-go/pkg/grid"
	"github.com/cellwars/client-go/pkg/protocol"
)

// ActionSink receives the intents a cell emits. It is a non-owning
// capability handle: cells can stage actions through it but never reach
// the transport or the pending queue directly. Implementations must be
// safe for concurrent use.
type ActionSink interface {
	Stage(action protocol.Action)
}

// Cell is one cell in the game world, bound to the snapshot it was created
// in. Legality checks are pure; the move/attack/explode methods stage at
// most one action into the shared sink.
type Cell struct {
	cellID     uint32
	position   grid.Position
	health     uint32
	teamID     uint32
	age        uint32
	isEnemy    bool
	sink       ActionSink
	properties WorldProperties
}

// CellID returns the unique identifier for this cell. The identifier does
// not change for the duration of a match and is never reused.
func (c *Cell) CellID() uint32 {
	return c.cellID
}

// Position returns the position of this cell.
func (c *Cell) Position() grid.Position {
	return c.position
}

// Health returns the health of this cell, typically between 1 and 100.
func (c *Cell) Health() uint32 {
	return c.health
}

// TeamID returns this cell's team identifier.
func (c *Cell) TeamID() uint32 {
	return c.teamID
}

// Age returns the cell's age. Every time a new chunk of cells spawns, the
// new cells have an age of 0 and all existing cells age by 1.
func (c *Cell) Age() uint32 {
	return c.age
}

// IsEnemy reports whether this cell belongs to the enemy. It is a shorthand
// for comparing the cell's team id against the bot's, computed once when
// the cell is created.
func (c *Cell) IsEnemy() bool {
	return c.isEnemy
}

func (c *Cell) String() string {
	return fmt.Sprintf("Cell(id: %d, position: %v, team: %d, health: %d)", c.cellID, c.position, c.teamID, c.health)
}

func (c *Cell) inBounds(position grid.Position) bool {
	return position.X >= 0 &&
		position.Y >= 0 &&
		position.X < int(c.properties.Width) &&
		position.Y < int(c.properties.Height)
}

// CanMoveToPosition reports whether the cell can move into the given
// position: in bounds and exactly one orthogonal step away.
func (c *Cell) CanMoveToPosition(position grid.Position) bool {
	return c.inBounds(position) && c.position.Distance(position) == 1
}

// CanMoveInDirection reports whether the cell can move one square in the
// given direction.
func (c *Cell) CanMoveInDirection(direction grid.Direction) bool {
	return c.CanMoveToPosition(c.position.TranslatedByDirection(direction))
}

// CanAttackPosition reports whether the cell can attack the given position:
// in bounds and within the 8-neighborhood of the cell, its own square
// included.
func (c *Cell) CanAttackPosition(position grid.Position) bool {
	return c.inBounds(position) &&
		abs(position.X-c.position.X) <= 1 &&
		abs(position.Y-c.position.Y) <= 1
}

// CanAttackCell reports whether the cell can attack the given cell. This is
// purely a proximity check; it does not consider which team the target
// belongs to.
func (c *Cell) CanAttackCell(target *Cell) bool {
	return c.CanAttackPosition(target.position)
}

// MoveToPosition instructs this cell to move into the given position. If the
// move is not legal the request is silently dropped.
func (c *Cell) MoveToPosition(position grid.Position) {
	if !c.CanMoveToPosition(position) {
		return
	}
	c.sink.Stage(protocol.Move{
		CellID: c.cellID,
		X:      uint32(position.X),
		Y:      uint32(position.Y),
	})
}

// MoveInDirection instructs this cell to move one square in the given
// direction. If the move is not legal the request is silently dropped.
func (c *Cell) MoveInDirection(direction grid.Direction) {
	c.MoveToPosition(c.position.TranslatedByDirection(direction))
}

// AttackPosition instructs this cell to attack the given position. If the
// target is out of range the request is silently dropped.
func (c *Cell) AttackPosition(position grid.Position) {
	if !c.CanAttackPosition(position) {
		return
	}
	c.sink.Stage(protocol.Attack{
		CellID: c.cellID,
		X:      uint32(position.X),
		Y:      uint32(position.Y),
	})
}

// AttackCell instructs this cell to attack the given cell. If the target is
// out of range the request is silently dropped.
func (c *Cell) AttackCell(target *Cell) {
	c.AttackPosition(target.position)
}

// Explode instructs this cell to explode. The cell dies and damages all
// surrounding squares. There is no precondition.
func (c *Cell) Explode() {
	c.sink.Stage(protocol.Explode{
		CellID: c.cellID,
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

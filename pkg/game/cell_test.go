package game

import (
	"testing"

	"github.com/cellwars/client-go/pkg/grid"
	"github.com/cellwars/client-go/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCell builds a 5x5 world with a single friendly cell at (2,2) and
// returns the cell along with the sink its intents land in.
func newTestCell(t *testing.T) (*Cell, *fakeSink) {
	t.Helper()
	sink := &fakeSink{}
	builder := NewStateBuilder(sink)

	world := applyAll(t, builder, NewWorldState(),
		protocol.Initialize{Width: 5, Height: 5, TeamID: 1, MyColumn: 0, EnemyColumn: 4},
		protocol.Spawn{CellID: 1, X: 2, Y: 2, Health: 100, TeamID: 1, Age: 0},
	)

	myCells := world.MyCells()
	require.Len(t, myCells, 1)
	return myCells[0], sink
}

func TestCell_CanMoveToPosition(t *testing.T) {
	cell, _ := newTestCell(t)

	// Exactly the four in-bounds orthogonal neighbors are legal.
	legal := []grid.Position{
		{X: 2, Y: 1},
		{X: 2, Y: 3},
		{X: 1, Y: 2},
		{X: 3, Y: 2},
	}
	for _, pos := range legal {
		assert.True(t, cell.CanMoveToPosition(pos), "expected %v to be a legal move target", pos)
	}

	illegal := []grid.Position{
		{X: 2, Y: 2},  // own square
		{X: 3, Y: 3},  // diagonal
		{X: 1, Y: 1},  // diagonal
		{X: 2, Y: 4},  // distance 2
		{X: 4, Y: 2},  // distance 2
		{X: -1, Y: 2}, // out of bounds
		{X: 2, Y: 5},  // out of bounds
	}
	for _, pos := range illegal {
		assert.False(t, cell.CanMoveToPosition(pos), "expected %v to be an illegal move target", pos)
	}
}

func TestCell_CanMoveToPosition_BoardEdge(t *testing.T) {
	sink := &fakeSink{}
	builder := NewStateBuilder(sink)

	world := applyAll(t, builder, NewWorldState(),
		protocol.Initialize{Width: 5, Height: 5, TeamID: 1, MyColumn: 0, EnemyColumn: 4},
		protocol.Spawn{CellID: 1, X: 0, Y: 0, Health: 100, TeamID: 1, Age: 0},
	)
	cell := world.MyCells()[0]

	assert.True(t, cell.CanMoveInDirection(grid.East))
	assert.True(t, cell.CanMoveInDirection(grid.South))
	assert.False(t, cell.CanMoveInDirection(grid.North))
	assert.False(t, cell.CanMoveInDirection(grid.West))
}

func TestCell_CanAttackPosition(t *testing.T) {
	cell, _ := newTestCell(t)

	// All 8 neighbors plus the cell's own square are in range.
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			pos := cell.Position().TranslatedByOffset(dx, dy)
			assert.True(t, cell.CanAttackPosition(pos), "expected %v to be attackable", pos)
		}
	}

	outOfRange := []grid.Position{
		{X: 0, Y: 2},
		{X: 2, Y: 0},
		{X: 4, Y: 4},
		{X: 4, Y: 2},
	}
	for _, pos := range outOfRange {
		assert.False(t, cell.CanAttackPosition(pos), "expected %v to be out of range", pos)
	}
}

func TestCell_CanAttackPosition_OutOfBounds(t *testing.T) {
	sink := &fakeSink{}
	builder := NewStateBuilder(sink)

	world := applyAll(t, builder, NewWorldState(),
		protocol.Initialize{Width: 5, Height: 5, TeamID: 1, MyColumn: 0, EnemyColumn: 4},
		protocol.Spawn{CellID: 1, X: 0, Y: 0, Health: 100, TeamID: 1, Age: 0},
	)
	cell := world.MyCells()[0]

	assert.False(t, cell.CanAttackPosition(grid.Position{X: -1, Y: 0}))
	assert.False(t, cell.CanAttackPosition(grid.Position{X: 0, Y: -1}))
	assert.True(t, cell.CanAttackPosition(grid.Position{X: 1, Y: 1}))
}

func TestCell_CanAttackCell(t *testing.T) {
	sink := &fakeSink{}
	builder := NewStateBuilder(sink)

	world := applyAll(t, builder, NewWorldState(),
		protocol.Initialize{Width: 5, Height: 5, TeamID: 1, MyColumn: 0, EnemyColumn: 4},
		protocol.Spawn{CellID: 1, X: 2, Y: 2, Health: 100, TeamID: 1, Age: 0},
		protocol.Spawn{CellID: 2, X: 3, Y: 3, Health: 100, TeamID: 2, Age: 0},
		protocol.Spawn{CellID: 3, X: 0, Y: 0, Health: 100, TeamID: 2, Age: 0},
		protocol.Spawn{CellID: 4, X: 1, Y: 2, Health: 100, TeamID: 1, Age: 0},
	)

	var mine *Cell
	for _, cell := range world.MyCells() {
		if cell.CellID() == 1 {
			mine = cell
		}
	}
	require.NotNil(t, mine)

	for _, cell := range world.EnemyCells() {
		switch cell.CellID() {
		case 2:
			assert.True(t, mine.CanAttackCell(cell))
		case 3:
			assert.False(t, mine.CanAttackCell(cell))
		}
	}

	// Proximity only: a friendly cell in range is still "attackable".
	for _, cell := range world.MyCells() {
		if cell.CellID() == 4 {
			assert.True(t, mine.CanAttackCell(cell))
		}
	}
}

func TestCell_MoveToPosition(t *testing.T) {
	cell, sink := newTestCell(t)

	// Illegal target: nothing staged.
	cell.MoveToPosition(grid.Position{X: 4, Y: 4})
	assert.Empty(t, sink.staged)

	// Legal target: exactly one MOVE with the target coordinates.
	cell.MoveToPosition(grid.Position{X: 3, Y: 2})
	require.Len(t, sink.staged, 1)
	assert.Equal(t, protocol.Move{CellID: 1, X: 3, Y: 2}, sink.staged[0])
}

func TestCell_MoveInDirection(t *testing.T) {
	cell, sink := newTestCell(t)

	cell.MoveInDirection(grid.North)
	require.Len(t, sink.staged, 1)
	assert.Equal(t, protocol.Move{CellID: 1, X: 2, Y: 1}, sink.staged[0])
}

func TestCell_AttackPosition(t *testing.T) {
	cell, sink := newTestCell(t)

	// Out of range: silently dropped.
	cell.AttackPosition(grid.Position{X: 0, Y: 0})
	assert.Empty(t, sink.staged)

	// Diagonal in range, and the cell's own square both work.
	cell.AttackPosition(grid.Position{X: 3, Y: 3})
	cell.AttackPosition(grid.Position{X: 2, Y: 2})
	require.Len(t, sink.staged, 2)
	assert.Equal(t, protocol.Attack{CellID: 1, X: 3, Y: 3}, sink.staged[0])
	assert.Equal(t, protocol.Attack{CellID: 1, X: 2, Y: 2}, sink.staged[1])
}

func TestCell_Explode(t *testing.T) {
	cell, sink := newTestCell(t)

	cell.Explode()
	require.Len(t, sink.staged, 1)
	assert.Equal(t, protocol.Explode{CellID: 1}, sink.staged[0])
}

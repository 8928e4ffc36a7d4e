package game

import (
	"github.com/cellwars/client-go/pkg/grid"
	"github.com/cellwars/client-go/pkg/protocol"
)

// StateBuilder folds engine commands into world states. Apply is a pure
// function of the command and the previous state; the builder itself only
// carries the sink that newly spawned cells stage their intents into.
type StateBuilder struct {
	sink ActionSink
}

// NewStateBuilder creates a new StateBuilder. Cells created by the builder
// emit their intents into the given sink.
func NewStateBuilder(sink ActionSink) *StateBuilder {
	return &StateBuilder{
		sink: sink,
	}
}

// Apply folds one command into the world state and returns the resulting
// state. Control commands (CONFLICTING_ACTIONS, RUN_ROUND, END_GAME) leave
// the state untouched. Referencing an absent cell id in DIE or
// SET_CELL_PROPERTIES returns an ErrUnknownCell, which callers must treat
// as fatal.
func (b *StateBuilder) Apply(command protocol.Command, world *WorldState) (*WorldState, error) {
	switch cmd := command.(type) {
	case protocol.Initialize:
		return b.applyInitialize(cmd), nil
	case protocol.Spawn:
		return b.applySpawn(cmd, world), nil
	case protocol.Die:
		return b.applyDie(cmd, world)
	case protocol.SetCellProperties:
		return b.applySetCellProperties(cmd, world)
	default:
		return world, nil
	}
}

func (b *StateBuilder) applyInitialize(cmd protocol.Initialize) *WorldState {
	// Any previous state is discarded wholesale.
	return &WorldState{
		cells: make(map[uint32]*Cell),
		properties: WorldProperties{
			Width:       cmd.Width,
			Height:      cmd.Height,
			MyTeamID:    cmd.TeamID,
			MyColumn:    cmd.MyColumn,
			EnemyColumn: cmd.EnemyColumn,
		},
	}
}

func (b *StateBuilder) applySpawn(cmd protocol.Spawn, world *WorldState) *WorldState {
	// A spawn for an id already present is not expected, but if the engine
	// sends one the new cell overwrites the old.
	world.cells[cmd.CellID] = &Cell{
		cellID:     cmd.CellID,
		position:   grid.Position{X: int(cmd.X), Y: int(cmd.Y)},
		health:     cmd.Health,
		teamID:     cmd.TeamID,
		age:        cmd.Age,
		isEnemy:    cmd.TeamID != world.properties.MyTeamID,
		sink:       b.sink,
		properties: world.properties,
	}
	return world
}

func (b *StateBuilder) applyDie(cmd protocol.Die, world *WorldState) (*WorldState, error) {
	if _, ok := world.cells[cmd.CellID]; !ok {
		return nil, &ErrUnknownCell{CellID: cmd.CellID}
	}
	delete(world.cells, cmd.CellID)
	return world, nil
}

func (b *StateBuilder) applySetCellProperties(cmd protocol.SetCellProperties, world *WorldState) (*WorldState, error) {
	cell, ok := world.cells[cmd.CellID]
	if !ok {
		return nil, &ErrUnknownCell{CellID: cmd.CellID}
	}
	// Team and the derived enemy flag are immutable after creation.
	cell.position = grid.Position{X: int(cmd.X), Y: int(cmd.Y)}
	cell.health = cmd.Health
	cell.age = cmd.Age
	return world, nil
}

package game

// WorldProperties are the per-match constants established by the INITIALIZE
// command. They are set once and read-only for the lifetime of the match.
type WorldProperties struct {
	Width       uint32
	Height      uint32
	MyTeamID    uint32
	MyColumn    uint32
	EnemyColumn uint32
}

// WorldState is the snapshot of all cells and match constants for one round.
// It is rebuilt by the StateBuilder as commands arrive and handed to the
// user callback as a read-only view: the callback can query it and emit
// intents through the cells, but cannot mutate it.
type WorldState struct {
	cells      map[uint32]*Cell
	properties WorldProperties
}

// NewWorldState creates an empty world state with zero-value properties.
func NewWorldState() *WorldState {
	return &WorldState{
		cells: make(map[uint32]*Cell),
	}
}

// Width returns the width of the world, in number of squares.
func (w *WorldState) Width() uint32 {
	return w.properties.Width
}

// Height returns the height of the world, in number of squares.
func (w *WorldState) Height() uint32 {
	return w.properties.Height
}

// MyTeamID returns the identifier of the bot's team.
func (w *WorldState) MyTeamID() uint32 {
	return w.properties.MyTeamID
}

// MyStartingColumn returns the index of the column in which the bot's cells
// spawn. This is typically either 0 or width-1.
func (w *WorldState) MyStartingColumn() uint32 {
	return w.properties.MyColumn
}

// EnemyStartingColumn returns the index of the column in which the enemy's
// cells spawn.
func (w *WorldState) EnemyStartingColumn() uint32 {
	return w.properties.EnemyColumn
}

// MyCells returns all cells the bot currently controls. Iteration order is
// unspecified.
func (w *WorldState) MyCells() []*Cell {
	cells := make([]*Cell, 0, len(w.cells))
	for _, cell := range w.cells {
		if cell.teamID == w.properties.MyTeamID {
			cells = append(cells, cell)
		}
	}
	return cells
}

// EnemyCells returns all cells the enemy currently controls. Iteration order
// is unspecified.
func (w *WorldState) EnemyCells() []*Cell {
	cells := make([]*Cell, 0, len(w.cells))
	for _, cell := range w.cells {
		if cell.teamID != w.properties.MyTeamID {
			cells = append(cells, cell)
		}
	}
	return cells
}

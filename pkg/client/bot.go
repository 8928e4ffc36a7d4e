package client

import (
	"github.com/cellwars/client-go/pkg/game"
)

// Bot contains the user's decision logic. RunRound is invoked once per
// round with the world state for that round; the bot queries the state and
// emits intents through the cells' move/attack/explode methods.
//
// Implementations must emit at most one action per cell per round. The
// protocol does not enforce this; violating it is a bot bug and the engine
// resolves the conflict on its side.
type Bot interface {
	RunRound(world *game.WorldState)
}

package client

import (
	"context"
	"fmt"

	"github.com/cellwars/client-go/pkg/game"
	"github.com/cellwars/client-go/pkg/log"
	"github.com/cellwars/client-go/pkg/protocol"
	"github.com/cellwars/client-go/pkg/recorder"
)

// GameCoordinator drives the match: it acknowledges startup, folds engine
// commands into world states, invokes the bot once per round and flushes
// the staged actions at each round boundary. A single goroutine runs the
// loop; concurrency only exists where cells stage intents into the shared
// communicator.
type GameCoordinator struct {
	communicator *Communicator
	builder      *game.StateBuilder
	recorder     *recorder.MatchRecorder
}

// NewGameCoordinatorOptions contains options for creating a new GameCoordinator.
type NewGameCoordinatorOptions struct {
	Communicator *Communicator
	// Recorder journals rounds to a repository. Nil disables recording.
	Recorder *recorder.MatchRecorder
}

// NewGameCoordinator creates a new GameCoordinator.
func NewGameCoordinator(opts NewGameCoordinatorOptions) *GameCoordinator {
	return &GameCoordinator{
		communicator: opts.Communicator,
		builder:      game.NewStateBuilder(opts.Communicator),
		recorder:     opts.Recorder,
	}
}

// Run plays the match to completion. It sends the INITIALIZED handshake,
// then loops: read commands and fold them into the world state until
// RUN_ROUND, invoke the bot with the state for that round, flush the staged
// actions followed by ROUND_END, and repeat until END_GAME. Decode,
// protocol-state and transport failures are fatal and returned as-is; bot
// panics are not caught.
func (gc *GameCoordinator) Run(ctx context.Context, bot Bot) error {
	if err := gc.communicator.FlushImmediate(protocol.Initialized{}); err != nil {
		return fmt.Errorf("failed to send startup acknowledgment: %v", err)
	}

	world := game.NewWorldState()
	round := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		command, err := gc.communicator.ReadCommand()
		if err != nil {
			return fmt.Errorf("failed to read command: %v", err)
		}

		if _, ok := command.(protocol.EndGame); ok {
			log.Info("Match ended after %d rounds", round)
			return nil
		}

		var commandLines []string
		for {
			if _, ok := command.(protocol.RunRound); ok {
				break
			}
			world, err = gc.builder.Apply(command, world)
			if err != nil {
				return fmt.Errorf("failed to apply command: %v", err)
			}
			if gc.recorder != nil {
				commandLines = append(commandLines, protocol.EncodeCommand(command))
			}
			command, err = gc.communicator.ReadCommand()
			if err != nil {
				return fmt.Errorf("failed to read command: %v", err)
			}
		}

		round++
		log.Debug("Running round %d with %d own cells", round, len(world.MyCells()))
		bot.RunRound(world)

		actions, err := gc.communicator.EndRound()
		if err != nil {
			return fmt.Errorf("failed to end round: %v", err)
		}

		if gc.recorder != nil {
			actionLines := make([]string, 0, len(actions))
			for _, action := range actions {
				actionLines = append(actionLines, protocol.EncodeAction(action))
			}
			gc.recorder.RecordRound(&recorder.RoundRecord{
				Round:    round,
				Commands: commandLines,
				Actions:  actionLines,
			})
		}
	}
}

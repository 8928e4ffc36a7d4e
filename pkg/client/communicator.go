package client

import (
	"fmt"
	"sync"

	"github.com/cellwars/client-go/pkg/protocol"
	"github.com/cellwars/client-go/pkg/transport"
)

// Communicator owns the transport and the queue of actions staged for the
// current round. One lock covers both, so staging, flushing and reading are
// each atomic with respect to every other operation: intents staged from
// helper goroutines inside the user callback never interleave with a flush.
type Communicator struct {
	mu        sync.Mutex
	transport transport.Transport
	pending   []protocol.Action
}

// NewCommunicator creates a Communicator over the given transport.
func NewCommunicator(t transport.Transport) *Communicator {
	return &Communicator{
		transport: t,
	}
}

// Stage appends an action to the pending queue. No transport I/O happens
// until the round ends. Stage implements game.ActionSink.
func (c *Communicator) Stage(action protocol.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, action)
}

// FlushImmediate writes a single action and flushes the transport,
// bypassing the pending queue. It is used exactly once, for the startup
// acknowledgment.
func (c *Communicator) FlushImmediate(action protocol.Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.transport.WriteLine(protocol.EncodeAction(action)); err != nil {
		return fmt.Errorf("failed to write action: %v", err)
	}
	if err := c.transport.Flush(); err != nil {
		return fmt.Errorf("failed to flush transport: %v", err)
	}
	return nil
}

// EndRound takes ownership of the entire pending queue, writes every staged
// action in staging order followed by the ROUND_END sentinel, and flushes
// the transport. The queue is empty afterwards, even when a write fails.
// It returns the actions that were drained, for match journaling.
func (c *Communicator) EndRound() ([]protocol.Action, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	drained := c.pending
	c.pending = nil

	for _, action := range drained {
		if err := c.transport.WriteLine(protocol.EncodeAction(action)); err != nil {
			return nil, fmt.Errorf("failed to write action: %v", err)
		}
	}
	if err := c.transport.WriteLine(protocol.EncodeAction(protocol.RoundEnd{})); err != nil {
		return nil, fmt.Errorf("failed to write round end: %v", err)
	}
	if err := c.transport.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush transport: %v", err)
	}

	return drained, nil
}

// ReadCommand reads one line from the transport and decodes it. It blocks
// until a full line is available or the transport fails, which is fatal to
// the match.
func (c *Communicator) ReadCommand() (protocol.Command, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, err := c.transport.ReadLine()
	if err != nil {
		return nil, err
	}
	command, err := protocol.ParseCommand(line)
	if err != nil {
		return nil, err
	}
	return command, nil
}

// Package recorder journals matches to a local database: one row per match
// and one zstd-compressed record per round. Recording is best-effort
// diagnostics; failures are logged and never fail the match.
package recorder

import (
	"context"
	"time"

	"github.com/cellwars/client-go/pkg/log"
	"github.com/cellwars/client-go/pkg/queue"
	"github.com/google/uuid"
)

const (
	// recordQueueSize bounds the number of rounds waiting to be written.
	recordQueueSize = 256
	// drainInterval is how often the worker drains the record queue.
	drainInterval = 1 * time.Second
)

// MatchRecorder collects round records from the round loop and writes them
// to the repository asynchronously, so journal I/O never delays a round.
type MatchRecorder struct {
	matchID     string
	repository  Repository
	recordQueue queue.Queue
	done        chan struct{}
}

// NewMatchRecorder creates a recorder for a single match with a fresh
// match id.
func NewMatchRecorder(repository Repository) *MatchRecorder {
	return &MatchRecorder{
		matchID:     uuid.New().String(),
		repository:  repository,
		recordQueue: queue.NewInMemoryQueue(recordQueueSize),
		done:        make(chan struct{}),
	}
}

// MatchID returns the identifier assigned to this match.
func (r *MatchRecorder) MatchID() string {
	return r.matchID
}

// BeginMatch registers the match in the journal.
func (r *MatchRecorder) BeginMatch(ctx context.Context) error {
	return r.repository.CreateMatch(ctx, r.matchID, time.Now().UnixMilli())
}

// RecordRound queues one round record for writing. It never blocks the
// round loop: when the queue is full the record is dropped with a warning.
func (r *MatchRecorder) RecordRound(record *RoundRecord) {
	if err := r.recordQueue.Enqueue(record); err != nil {
		log.Warn("Dropping round %d record: %v", record.Round, err)
	}
}

// Start runs the write loop until the context is canceled, drains whatever
// is still queued and then closes the Done channel. The worker goroutine is
// the only writer to the repository while it runs.
func (r *MatchRecorder) Start(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.drain(context.Background())
			return
		case <-ticker.C:
			r.drain(ctx)
		}
	}
}

// Done is closed once Start has finished its shutdown drain and returned.
func (r *MatchRecorder) Done() <-chan struct{} {
	return r.done
}

// Drain synchronously writes everything still queued. Only for recorders
// that never ran Start; callers that did must cancel the worker's context
// and wait on Done instead, so the repository sees a single writer.
func (r *MatchRecorder) Drain(ctx context.Context) {
	r.drain(ctx)
}

func (r *MatchRecorder) drain(ctx context.Context) {
	pending, err := r.recordQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read pending round records: %v", err)
		return
	}
	for _, item := range pending {
		record, ok := item.(*RoundRecord)
		if !ok {
			log.Error("Unexpected item in record queue: %T", item)
			continue
		}
		r.saveRound(ctx, record)
	}
}

func (r *MatchRecorder) saveRound(ctx context.Context, record *RoundRecord) {
	payload, err := EncodeRoundRecord(record)
	if err != nil {
		log.Error("Failed to encode round %d record: %v", record.Round, err)
		return
	}
	if err := r.repository.SaveRound(ctx, r.matchID, record.Round, payload); err != nil {
		log.Error("Failed to save round %d record: %v", record.Round, err)
	}
}

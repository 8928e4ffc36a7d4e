package recorder

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serialRepository records rounds in memory and flags any two SaveRound
// calls that overlap in time.
type serialRepository struct {
	mu         sync.Mutex
	rounds     map[int][]byte
	inSave     int32
	overlapped int32
}

func newSerialRepository() *serialRepository {
	return &serialRepository{
		rounds: make(map[int][]byte),
	}
}

func (r *serialRepository) Close(ctx context.Context) error {
	return nil
}

func (r *serialRepository) CreateMatch(ctx context.Context, matchID string, startedAt int64) error {
	return nil
}

func (r *serialRepository) SaveRound(ctx context.Context, matchID string, round int, payload []byte) error {
	if atomic.AddInt32(&r.inSave, 1) > 1 {
		atomic.StoreInt32(&r.overlapped, 1)
	}
	time.Sleep(time.Millisecond)
	r.mu.Lock()
	r.rounds[round] = payload
	r.mu.Unlock()
	atomic.AddInt32(&r.inSave, -1)
	return nil
}

func (r *serialRepository) LoadRound(ctx context.Context, matchID string, round int) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payload, ok := r.rounds[round]
	if !ok {
		return nil, &ErrNotFound{}
	}
	return payload, nil
}

func TestMatchRecorder_RecordAndDrain(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteRepository(ctx, ":memory:")
	require.NoError(t, err)
	defer repo.Close(ctx)

	rec := NewMatchRecorder(repo)
	require.NoError(t, rec.BeginMatch(ctx))
	assert.NotEmpty(t, rec.MatchID())

	rec.RecordRound(&RoundRecord{
		Round:    1,
		Commands: []string{"SPAWN 1 0 2 100 1 0"},
		Actions:  []string{"MOVE 1 1 2"},
	})
	rec.RecordRound(&RoundRecord{
		Round: 2,
	})
	rec.Drain(ctx)

	payload, err := repo.LoadRound(ctx, rec.MatchID(), 1)
	require.NoError(t, err)
	record, err := DecodeRoundRecord(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"MOVE 1 1 2"}, record.Actions)

	payload, err = repo.LoadRound(ctx, rec.MatchID(), 2)
	require.NoError(t, err)
	record, err = DecodeRoundRecord(payload)
	require.NoError(t, err)
	assert.Empty(t, record.Actions)
}

// The worker is the only repository writer: stopping it via its context and
// waiting on Done must persist every queued record without a second drain
// running concurrently.
func TestMatchRecorder_WorkerShutdownIsSoleWriter(t *testing.T) {
	repo := newSerialRepository()
	rec := NewMatchRecorder(repo)

	workerCtx, cancel := context.WithCancel(context.Background())
	go rec.Start(workerCtx)

	const rounds = 20
	for i := 1; i <= rounds; i++ {
		rec.RecordRound(&RoundRecord{
			Round:   i,
			Actions: []string{"ROUND_END"},
		})
	}

	cancel()
	<-rec.Done()

	assert.Zero(t, atomic.LoadInt32(&repo.overlapped), "SaveRound calls overlapped")
	for i := 1; i <= rounds; i++ {
		payload, err := repo.LoadRound(context.Background(), rec.MatchID(), i)
		require.NoError(t, err)
		record, err := DecodeRoundRecord(payload)
		require.NoError(t, err)
		assert.Equal(t, i, record.Round)
	}
}

func TestMatchRecorder_DistinctMatchIDs(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteRepository(ctx, ":memory:")
	require.NoError(t, err)
	defer repo.Close(ctx)

	a := NewMatchRecorder(repo)
	b := NewMatchRecorder(repo)
	assert.NotEqual(t, a.MatchID(), b.MatchID())
}

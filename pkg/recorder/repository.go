package recorder

import (
	"context"
)

// Repository stores match journals. Round payloads are opaque blobs
// produced by EncodeRoundRecord.
type Repository interface {
	Close(ctx context.Context) error
	CreateMatch(ctx context.Context, matchID string, startedAt int64) error
	SaveRound(ctx context.Context, matchID string, round int, payload []byte) error
	LoadRound(ctx context.Context, matchID string, round int) ([]byte, error)
}

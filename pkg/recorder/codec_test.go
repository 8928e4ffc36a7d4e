package recorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRecordCodec(t *testing.T) {
	record := &RoundRecord{
		Round: 3,
		Commands: []string{
			"SPAWN 1 0 2 100 1 0",
			"SET_CELL_PROPERTIES 1 1 2 90 1",
		},
		Actions: []string{
			"MOVE 1 1 2",
		},
	}

	payload, err := EncodeRoundRecord(record)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	decoded, err := DecodeRoundRecord(payload)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestDecodeRoundRecord_Garbage(t *testing.T) {
	_, err := DecodeRoundRecord([]byte("not a zstd frame"))
	require.Error(t, err)
}

func TestRoundRecordCodec_EmptyRound(t *testing.T) {
	record := &RoundRecord{Round: 1}

	payload, err := EncodeRoundRecord(record)
	require.NoError(t, err)

	decoded, err := DecodeRoundRecord(payload)
	require.NoError(t, err)
	assert.Equal(t, 1, decoded.Round)
	assert.Empty(t, decoded.Commands)
	assert.Empty(t, decoded.Actions)
}

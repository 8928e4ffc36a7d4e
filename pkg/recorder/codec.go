package recorder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// RoundRecord is the journal entry for one round: the command lines applied
// while accumulating state and the action lines flushed at the round
// boundary, both in protocol wire form.
type RoundRecord struct {
	Round    int      `json:"round"`
	Commands []string `json:"commands"`
	Actions  []string `json:"actions"`
}

// EncodeRoundRecord serializes a round record to JSON and compresses it
// with zstd for storage.
func EncodeRoundRecord(record *RoundRecord) ([]byte, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize round record: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress round record: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// DecodeRoundRecord decompresses and deserializes a stored round record.
func DecodeRoundRecord(data []byte) (*RoundRecord, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed round record: %v", err)
	}

	record := &RoundRecord{}
	if err := json.Unmarshal(b, record); err != nil {
		return nil, fmt.Errorf("failed to deserialize round record: %v", err)
	}

	return record, nil
}

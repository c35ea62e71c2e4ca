package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// WriteJSONL writes one JSON object per chunk, newline-delimited, the
// interchange format consumed by the embedding and retrieval stages.
func WriteJSONL(w io.Writer, chunks []types.Chunk) error {
	enc := json.NewEncoder(w)
	for i := range chunks {
		if err := enc.Encode(&chunks[i]); err != nil {
			return fmt.Errorf("encode chunk %s: %w", chunks[i].ID, err)
		}
	}
	return nil
}

// WriteJSONLFile writes the chunks to a JSONL file, creating or
// truncating it.
func WriteJSONLFile(path string, chunks []types.Chunk) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSONL(f, chunks); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadJSONL reads a chunk list back from its JSONL form.
func ReadJSONL(r io.Reader) ([]types.Chunk, error) {
	dec := json.NewDecoder(r)
	var chunks []types.Chunk
	for {
		var c types.Chunk
		if err := dec.Decode(&c); err == io.EOF {
			return chunks, nil
		} else if err != nil {
			return nil, fmt.Errorf("decode chunk %d: %w", len(chunks), err)
		}
		chunks = append(chunks, c)
	}
}

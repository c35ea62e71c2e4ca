// Package token estimates token counts for chunk content.
package token

import "github.com/pkoukk/tiktoken-go"

// charsPerToken is the heuristic divisor: the average English word and
// code token alike run about four characters.
const charsPerToken = 4

// Encoding is the tokenizer used for exact counts, matching the OpenAI
// embedding models the chunks are destined for.
const Encoding = "cl100k_base"

// Estimator counts tokens in a piece of text.
type Estimator interface {
	Count(text string) int
}

// Heuristic estimates tokens as characters divided by four. Always
// available; no tokenizer data required.
type Heuristic struct{}

func (Heuristic) Count(text string) int {
	return len(text) / charsPerToken
}

// Tiktoken counts tokens with the cl100k_base BPE encoding.
type Tiktoken struct {
	enc *tiktoken.Tiktoken
}

// NewTiktoken loads the cl100k_base encoding. Loading can fail when the
// encoding data is unavailable; callers should fall back to Heuristic.
func NewTiktoken() (*Tiktoken, error) {
	enc, err := tiktoken.GetEncoding(Encoding)
	if err != nil {
		return nil, err
	}
	return &Tiktoken{enc: enc}, nil
}

func (t *Tiktoken) Count(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

// Default returns the tiktoken estimator when its encoding data loads,
// otherwise the chars/4 heuristic.
func Default() Estimator {
	if tk, err := NewTiktoken(); err == nil {
		return tk
	}
	return Heuristic{}
}

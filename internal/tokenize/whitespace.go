package tokenize

import (
	"strings"
	"sync"
)

// WhitespaceTokenizer splits on whitespace and assigns ids in order of first
// appearance. It has no special tokens and is meant for tests and dry runs
// where loading a real tokenizer is not possible.
type WhitespaceTokenizer struct {
	mu    sync.Mutex
	vocab map[string]uint32
	words []string
}

var _ Tokenizer = (*WhitespaceTokenizer)(nil)

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{vocab: make(map[string]uint32)}
}

func (t *WhitespaceTokenizer) Encode(text string) Encoding {
	t.mu.Lock()
	defer t.mu.Unlock()

	fields := strings.Fields(text)
	enc := Encoding{
		IDs:           make([]uint32, 0, len(fields)),
		AttentionMask: make([]uint32, 0, len(fields)),
	}
	for _, word := range fields {
		id, ok := t.vocab[word]
		if !ok {
			id = uint32(len(t.words))
			t.vocab[word] = id
			t.words = append(t.words, word)
		}
		enc.IDs = append(enc.IDs, id)
		enc.AttentionMask = append(enc.AttentionMask, 1)
	}
	return enc
}

func (t *WhitespaceTokenizer) Decode(ids []uint32, skipSpecialTokens bool) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if int(id) < len(t.words) {
			out = append(out, t.words[id])
		}
	}
	return strings.Join(out, " ")
}

func (t *WhitespaceTokenizer) Close() error {
	return nil
}

package tokenize

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"lm-pipeline/internal/records"

	"github.com/daulet/tokenizers"
)

const DefaultMaxLength = 512

type Encoding struct {
	IDs           []uint32
	AttentionMask []uint32
}

type Tokenizer interface {
	Encode(text string) Encoding

	Decode(ids []uint32, skipSpecialTokens bool) string

	Close() error
}

type HFTokenizer struct {
	tk *tokenizers.Tokenizer
}

var _ Tokenizer = (*HFTokenizer)(nil)

type LoadOptions struct {
	CacheDir  string
	AuthToken string
}

// LoadTokenizer opens the tokenizer at location. A directory containing a
// tokenizer.json or a path to the json file itself is loaded from disk, anything
// else is treated as a hub model id.
func LoadTokenizer(location string, opts LoadOptions) (*HFTokenizer, error) {
	if path, ok := localTokenizerFile(location); ok {
		tk, err := tokenizers.FromFile(path)
		if err != nil {
			return nil, fmt.Errorf("tokenizer load from %s: %w", path, err)
		}
		slog.Info("loaded tokenizer from file", "path", path)
		return &HFTokenizer{tk: tk}, nil
	}

	var configOpts []tokenizers.TokenizerConfigOption
	if opts.CacheDir != "" {
		configOpts = append(configOpts, tokenizers.WithCacheDir(opts.CacheDir))
	}
	if opts.AuthToken != "" {
		configOpts = append(configOpts, tokenizers.WithAuthToken(opts.AuthToken))
	}

	tk, err := tokenizers.FromPretrained(location, configOpts...)
	if err != nil {
		return nil, fmt.Errorf("tokenizer load for %s: %w", location, err)
	}
	slog.Info("loaded pretrained tokenizer", "model", location)

	return &HFTokenizer{tk: tk}, nil
}

func localTokenizerFile(location string) (string, bool) {
	info, err := os.Stat(location)
	if err != nil {
		return "", false
	}
	if !info.IsDir() {
		return location, true
	}
	path := filepath.Join(location, "tokenizer.json")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

func (t *HFTokenizer) Encode(text string) Encoding {
	enc := t.tk.EncodeWithOptions(text, true, tokenizers.WithReturnAttentionMask())
	return Encoding{IDs: enc.IDs, AttentionMask: enc.AttentionMask}
}

func (t *HFTokenizer) Decode(ids []uint32, skipSpecialTokens bool) string {
	return t.tk.Decode(ids, skipSpecialTokens)
}

func (t *HFTokenizer) Close() error {
	return t.tk.Close()
}

// Tokenize encodes text and keeps at most maxLength tokens. The second return
// value is the token count before truncation.
func Tokenize(tk Tokenizer, text string, maxLength int) (records.TokenRecord, int) {
	enc := tk.Encode(text)
	total := len(enc.IDs)

	ids, mask := enc.IDs, enc.AttentionMask
	// an empty document still produces a record with "input_ids": []
	if ids == nil {
		ids = make([]uint32, 0)
	}
	if maxLength > 0 && len(ids) > maxLength {
		ids = ids[:maxLength]
		if len(mask) > maxLength {
			mask = mask[:maxLength]
		}
	}

	return records.TokenRecord{InputIDs: ids, AttentionMask: mask}, total
}

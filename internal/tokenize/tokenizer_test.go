package tokenize

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBelowLimit(t *testing.T) {
	tk := NewWhitespaceTokenizer()

	rec, total := Tokenize(tk, words(100), DefaultMaxLength)
	assert.Equal(t, 100, total)
	assert.Len(t, rec.InputIDs, 100)
	assert.Len(t, rec.AttentionMask, 100)
}

func TestTokenizeTruncatesAtLimit(t *testing.T) {
	tk := NewWhitespaceTokenizer()

	rec, total := Tokenize(tk, words(600), DefaultMaxLength)
	assert.Equal(t, 600, total)
	assert.Len(t, rec.InputIDs, DefaultMaxLength)
	assert.Len(t, rec.AttentionMask, DefaultMaxLength)

	full := tk.Encode(words(600))
	assert.Equal(t, full.IDs[:DefaultMaxLength], rec.InputIDs)
}

func TestTokenizeExactlyAtLimit(t *testing.T) {
	tk := NewWhitespaceTokenizer()

	rec, total := Tokenize(tk, words(512), DefaultMaxLength)
	assert.Equal(t, 512, total)
	assert.Len(t, rec.InputIDs, 512)
}

func TestTokenizeEmpty(t *testing.T) {
	rec, total := Tokenize(NewWhitespaceTokenizer(), "", DefaultMaxLength)
	assert.Equal(t, 0, total)
	assert.Empty(t, rec.InputIDs)
}

// emptyEncoder mimics the native tokenizer, which returns a zero Encoding for
// text without tokens.
type emptyEncoder struct{ *WhitespaceTokenizer }

func (emptyEncoder) Encode(string) Encoding {
	return Encoding{}
}

func TestTokenizeNilEncoding(t *testing.T) {
	rec, total := Tokenize(emptyEncoder{NewWhitespaceTokenizer()}, "", DefaultMaxLength)
	assert.Equal(t, 0, total)
	require.NotNil(t, rec.InputIDs)
	assert.Empty(t, rec.InputIDs)
}

func TestWhitespaceTokenizerDecode(t *testing.T) {
	tk := NewWhitespaceTokenizer()

	enc := tk.Encode("the cat saw the dog")
	assert.Equal(t, []uint32{0, 1, 2, 0, 3}, enc.IDs)
	assert.Equal(t, "the cat saw the dog", tk.Decode(enc.IDs, true))
}

func TestReadDocumentText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("héllo wörld"), 0644))

	text, err := ReadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "héllo wörld", text)
}

func TestReadDocumentErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadDocument(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)

	binary := filepath.Join(dir, "blob.txt")
	require.NoError(t, os.WriteFile(binary, []byte{0xff, 0xfe, 0x00}, 0644))
	_, err = ReadDocument(binary)
	assert.ErrorContains(t, err, "not valid utf-8")

	pdf := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("not a pdf"), 0644))
	_, err = ReadDocument(pdf)
	assert.ErrorContains(t, err, "failed to parse pdf")
}

func TestLocalTokenizerFile(t *testing.T) {
	dir := t.TempDir()

	_, ok := localTokenizerFile(dir)
	assert.False(t, ok)

	_, ok = localTokenizerFile("mosaicml/mpt-30b")
	assert.False(t, ok)

	path := filepath.Join(dir, "tokenizer.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

	got, ok := localTokenizerFile(dir)
	assert.True(t, ok)
	assert.Equal(t, path, got)

	got, ok = localTokenizerFile(path)
	assert.True(t, ok)
	assert.Equal(t, path, got)
}

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "w" + string(rune('a'+i%26))
	}
	return strings.Join(parts, " ")
}

package tokenize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
)

// ReadDocument returns the text content of the file at path. PDFs are
// converted page by page, everything else must be UTF-8 text.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := pdfText(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse pdf %s: %w", path, err)
		}
		return text, nil
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("file %s is not valid utf-8 text", path)
	}
	return string(data), nil
}

func pdfText(data []byte) (string, error) {
	pdf, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", err
	}
	defer pdf.Close()

	pages := make([]string, 0, pdf.NumPage())
	for i := 0; i < pdf.NumPage(); i++ {
		pageText, err := pdf.Text(i)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n\n"), nil
}

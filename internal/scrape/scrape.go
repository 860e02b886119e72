// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape reads the text layer of a transcript PDF. Only the
// embedded text is extracted; scanned (image-only) PDFs would need OCR and
// are not handled here.
package scrape

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Source yields the raw text of one transcript document. The pipeline
// depends on this interface so tests can feed literal text instead of a
// PDF file.
type Source interface {
	// Text returns the document text with pages joined by newlines.
	Text(path string) (string, error)
}

// PDFSource extracts text with the pure-Go pdf reader.
type PDFSource struct{}

// Text reads every page of the PDF at path and concatenates the plain
// text, one newline between pages. The file handle is closed before
// returning on every path.
func (PDFSource) Text(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	var b strings.Builder
	b.WriteString("\n")

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}

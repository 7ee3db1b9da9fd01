// Package resume extracts plain text and a coarse skill list from uploaded
// resume files.
package resume

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text pulls the plain text out of a resume file. Only PDF is supported.
func Text(path string) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return "", fmt.Errorf("unsupported file type, only PDF allowed: %s", path)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	r, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}

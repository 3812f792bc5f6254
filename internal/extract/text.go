package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"resumescore/internal/errors"
	"resumescore/internal/types"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DefaultMaxDocumentSize is the upload size ceiling when none is configured.
const DefaultMaxDocumentSize = 5 * 1024 * 1024

// supportedExtensions are the document types the extractor can decode.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// TextExtractor decodes an uploaded document into normalized plain text.
// It owns validation and whitespace cleanup; format decoding is delegated
// to the pdf and docx libraries.
type TextExtractor struct {
	maxSize int64
	logger  *errors.Logger
}

// NewTextExtractor creates a text extractor. maxSize <= 0 selects the default.
func NewTextExtractor(maxSize int64, logger *errors.Logger) *TextExtractor {
	if maxSize <= 0 {
		maxSize = DefaultMaxDocumentSize
	}
	return &TextExtractor{maxSize: maxSize, logger: logger}
}

// Extract validates the document and returns its normalized plain text.
// Validation failures report every violated constraint, not just the first.
func (te *TextExtractor) Extract(doc types.RawDocument) (string, error) {
	if err := te.validate(doc); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(doc.Filename))
	var (
		text string
		err  error
	)
	switch ext {
	case ".txt":
		text = decodeUTF8(doc.Content)
	case ".pdf":
		text, err = decodePDF(doc.Content)
	case ".doc", ".docx":
		text, err = decodeDocx(doc.Content)
	}
	if err != nil {
		return "", errors.NewDecodeError(errors.ErrCodeDecodeFailed,
			fmt.Sprintf("Could not read %s file %q", strings.TrimPrefix(ext, "."), doc.Filename), err)
	}

	if te.logger != nil {
		te.logger.Debug("Extracted document text",
			"filename", doc.Filename,
			"bytes_in", len(doc.Content),
			"chars_out", len(text))
	}

	return NormalizeText(text), nil
}

// validate checks size, type and emptiness, collecting all violations.
func (te *TextExtractor) validate(doc types.RawDocument) error {
	var violations []string

	size := doc.Size
	if size == 0 {
		size = int64(len(doc.Content))
	}
	if size > te.maxSize {
		violations = append(violations,
			fmt.Sprintf("file size %d bytes exceeds the %d byte limit", size, te.maxSize))
	}

	ext := strings.ToLower(filepath.Ext(doc.Filename))
	if !supportedExtensions[ext] {
		violations = append(violations,
			fmt.Sprintf("unsupported file type %q (supported: pdf, doc, docx, txt)", ext))
	}

	if len(doc.Content) == 0 {
		violations = append(violations, "file is empty")
	}

	if len(violations) > 0 {
		return errors.NewValidationError(errors.ErrCodeInvalidDocument,
			strings.Join(violations, "; "), nil).
			WithContext("filename", doc.Filename)
	}
	return nil
}

// decodeUTF8 interprets the buffer as UTF-8, replacing invalid sequences.
func decodeUTF8(content []byte) string {
	return strings.ToValidUTF8(string(content), "�")
}

// decodePDF extracts plain text from every page of a PDF buffer.
func decodePDF(content []byte) (string, error) {
	reader := bytes.NewReader(content)
	pdfReader, err := pdf.NewReader(reader, int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

// decodeDocx extracts document text from a DOC/DOCX buffer.
func decodeDocx(content []byte) (string, error) {
	r := bytes.NewReader(content)
	doc, err := docx.ReadDocxFromMemory(r, int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document XML; paragraph boundaries become
	// newlines and remaining markup is stripped.
	raw := doc.Editable().GetContent()
	raw = strings.ReplaceAll(raw, "</w:p>", "\n")
	return stripXMLTags(raw), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func stripXMLTags(s string) string {
	s = xmlTagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&apos;", "'")
	return s
}

var (
	multiSpacePattern = regexp.MustCompile(` {2,}`)
	multiBlankPattern = regexp.MustCompile(`\n{3,}`)
)

// NormalizeText applies the unconditional post-decode cleanup: CRLF to LF,
// tabs to single spaces, collapsed space runs, and at most one blank line
// between paragraphs.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\t", " ")
	text = multiSpacePattern.ReplaceAllString(text, " ")
	text = multiBlankPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

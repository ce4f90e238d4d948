// Package extract turns uploaded document bytes into plain text.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"resumeparser/internal/model"
)

// DefaultMinTextLength is the minimum number of characters, after trimming,
// an extraction must yield before it is accepted.
const DefaultMinTextLength = 50

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrContentTooShort     = errors.New("extracted text too short")
	ErrExtractionFailed    = errors.New("extraction failed")
)

// ExtractionError wraps a failure raised by a PDF or DOCX routine.
type ExtractionError struct {
	Kind model.DocumentKind
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Kind, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrExtractionFailed) match any ExtractionError.
func (e *ExtractionError) Is(target error) bool { return target == ErrExtractionFailed }

// Dispatcher selects an extraction routine by document kind and validates its output.
// It holds no per-request state and is safe for concurrent use.
type Dispatcher struct {
	minTextLength int
}

// New returns a Dispatcher. A non-positive minTextLength falls back to DefaultMinTextLength.
func New(minTextLength int) *Dispatcher {
	if minTextLength <= 0 {
		minTextLength = DefaultMinTextLength
	}
	return &Dispatcher{minTextLength: minTextLength}
}

// MinTextLength returns the validation threshold in characters.
func (d *Dispatcher) MinTextLength() int { return d.minTextLength }

// Extract returns the untrimmed text of doc.RawBytes.
func (d *Dispatcher) Extract(ctx context.Context, doc model.UploadedDocument) (string, error) {
	_, span := otel.Tracer("resumeparser/extract").Start(ctx, "extract."+string(doc.Kind))
	defer span.End()
	span.SetAttributes(
		attribute.String("document.kind", string(doc.Kind)),
		attribute.Int("document.size", len(doc.RawBytes)),
	)

	text, err := d.dispatch(doc)
	if err == nil {
		err = d.validate(text)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	span.SetAttributes(attribute.Int("text.length", utf8.RuneCountInString(text)))
	return text, nil
}

func (d *Dispatcher) dispatch(doc model.UploadedDocument) (string, error) {
	var (
		text string
		err  error
	)
	switch doc.Kind {
	case model.KindPDF:
		text, err = extractPDF(doc.RawBytes)
	case model.KindDOCX:
		text, err = extractDOCX(doc.RawBytes)
	case model.KindTXT:
		return decodeText(doc.RawBytes), nil
	default:
		return "", ErrUnsupportedFileType
	}
	if err != nil {
		return "", &ExtractionError{Kind: doc.Kind, Err: err}
	}
	return text, nil
}

func (d *Dispatcher) validate(text string) error {
	if utf8.RuneCountInString(trim(text)) < d.minTextLength {
		return ErrContentTooShort
	}
	return nil
}

// trim strips surrounding whitespace, including a byte order mark.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}

package model

import "time"

// Outcome classifies how a parse request ended.
type Outcome string

const (
	OutcomeSuccess             Outcome = "success"
	OutcomeMissingFile         Outcome = "missing_file"
	OutcomeUnsupportedFileType Outcome = "unsupported_file_type"
	OutcomeContentTooShort     Outcome = "content_too_short"
	OutcomeExtractionFailure   Outcome = "extraction_failure"
)

// Extraction is the audit record of one parse request.
// It carries metadata only: neither the uploaded bytes nor the extracted text are kept.
type Extraction struct {
	ID         string       `json:"id"`
	RequestID  string       `json:"request_id"`
	Filename   string       `json:"filename"`
	Kind       DocumentKind `json:"kind"`
	Outcome    Outcome      `json:"outcome"`
	TextLength int          `json:"text_length"`
	DurationMs int64        `json:"duration_ms"`
	CreatedAt  time.Time    `json:"created_at"`
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"resumeparser/internal/extract"
	"resumeparser/internal/metrics"
	"resumeparser/internal/model"
	"resumeparser/internal/repository"
	"resumeparser/internal/tempstore"
)

var ErrReaderNil = errors.New("reader is nil")

// ParseInput is one uploaded resume as received by the HTTP layer.
type ParseInput struct {
	Reader    io.Reader
	Filename  string
	Size      int64
	RequestID string
}

// ExtractionListResult is the service-level DTO for the paginated audit log.
type ExtractionListResult struct {
	Items []model.Extraction `json:"data"`
	Total int                `json:"total"`
}

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	Extract(ctx context.Context, doc model.UploadedDocument) (string, error)
}

// ResumeService defines the use cases for parsing resumes.
type ResumeService interface {
	// Parse stores the upload in temp storage, extracts its text and always removes the temp file.
	// Errors are extract.ErrUnsupportedFileType, extract.ErrContentTooShort, or an extraction failure.
	Parse(ctx context.Context, in ParseInput) (string, error)

	// ListExtractions returns the audit log using limit/offset and a total count.
	ListExtractions(ctx context.Context, limit, offset int) (*ExtractionListResult, error)
}

// resumeService is a concrete implementation of ResumeService.
type resumeService struct {
	store     tempstore.Store
	extractor TextExtractor
	audit     repository.ExtractionRepository
	metrics   *metrics.Extraction
	logger    *slog.Logger
	now       func() time.Time
}

// NewResumeService constructs a new ResumeService. audit and m may be nil.
func NewResumeService(store tempstore.Store, extractor TextExtractor, audit repository.ExtractionRepository, m *metrics.Extraction, logger *slog.Logger) ResumeService {
	return &resumeService{
		store:     store,
		extractor: extractor,
		audit:     audit,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *resumeService) Parse(ctx context.Context, in ParseInput) (text string, err error) {
	start := s.now()
	kind := model.KindFromFilename(in.Filename)
	defer func() {
		s.record(ctx, in, kind, text, err, s.now().Sub(start))
	}()

	if in.Reader == nil {
		return "", ErrReaderNil
	}

	obj, err := s.store.Put(ctx, in.Reader, in.Filename)
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	defer s.cleanup(obj.Path, in.RequestID)

	data, err := s.store.Read(ctx, obj.Path)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	return s.extractor.Extract(ctx, model.UploadedDocument{
		OriginalName:    in.Filename,
		Kind:            kind,
		RawBytes:        data,
		TempStoragePath: obj.Path,
	})
}

// cleanup removes the temp file. Failures are logged, never returned.
func (s *resumeService) cleanup(path, requestID string) {
	// Detached from the request context so a cancelled client still gets its file removed.
	if err := s.store.Delete(context.Background(), path); err != nil {
		s.metrics.CleanupFailed()
		s.logger.Warn("temp_file_cleanup_failed",
			"request_id", requestID,
			"path", path,
			"error", err.Error(),
		)
	}
}

func (s *resumeService) record(ctx context.Context, in ParseInput, kind model.DocumentKind, text string, err error, elapsed time.Duration) {
	outcome := Classify(err)
	s.metrics.Observe(kind, outcome, elapsed)

	if outcome == model.OutcomeExtractionFailure {
		s.logger.Error("resume_parse_failed",
			"request_id", in.RequestID,
			"filename", in.Filename,
			"kind", string(kind),
			"error", err.Error(),
		)
	}

	if s.audit == nil {
		return
	}
	rec := &model.Extraction{
		ID:         uuid.NewString(),
		RequestID:  in.RequestID,
		Filename:   in.Filename,
		Kind:       kind,
		Outcome:    outcome,
		TextLength: utf8.RuneCountInString(text),
		DurationMs: elapsed.Milliseconds(),
		CreatedAt:  s.now().UTC(),
	}
	if _, aerr := s.audit.Create(context.WithoutCancel(ctx), rec); aerr != nil {
		s.logger.Warn("extraction_audit_failed",
			"request_id", in.RequestID,
			"error", aerr.Error(),
		)
	}
}

// ListExtractions returns paginated audit records.
func (s *resumeService) ListExtractions(ctx context.Context, limit, offset int) (*ExtractionListResult, error) {
	if s.audit == nil {
		return &ExtractionListResult{Items: []model.Extraction{}}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.audit.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ExtractionListResult{Items: res.Items, Total: res.Total}, nil
}

// Classify maps a Parse error to its outcome.
func Classify(err error) model.Outcome {
	switch {
	case err == nil:
		return model.OutcomeSuccess
	case errors.Is(err, extract.ErrUnsupportedFileType):
		return model.OutcomeUnsupportedFileType
	case errors.Is(err, extract.ErrContentTooShort):
		return model.OutcomeContentTooShort
	case errors.Is(err, ErrReaderNil):
		return model.OutcomeMissingFile
	default:
		return model.OutcomeExtractionFailure
	}
}

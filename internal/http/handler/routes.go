package handler

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"resumeparser/internal/extract"
	"resumeparser/internal/http/middleware"
	"resumeparser/internal/service"
)

// ResumeField is the multipart field carrying the upload.
const ResumeField = "resume"

const (
	healthTimeout = 2 * time.Second
	maxPageSize   = 100
)

// Pinger is the readiness dependency behind /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ParseResponse is the success body of POST /parse-resume.
type ParseResponse struct {
	Text string `json:"text" example:"John Smith\n\nPlatform engineer..."`
}

// HealthResponse is the success body of GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// db may be nil; the audit listing is then not exposed and /health reports healthy without a ping.
func RegisterRoutes(app *fiber.App, svc service.ResumeService, db Pinger) {
	app.Get("/", Root())
	app.Get("/healthz", LivenessProbe())
	app.Get("/health", HealthCheck(db))
	app.Post("/parse-resume", ParseResume(svc))

	if db != nil {
		app.Get("/extractions", ListExtractions(svc))
	}
}

// Root godoc
// @Summary      Service banner
// @Produce      plain
// @Success      200  {string}  string  "Resume parser is running."
// @Router       / [get]
func Root() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString("Resume parser is running.")
	}
}

// LivenessProbe godoc
// @Summary      Liveness probe
// @Success      200
// @Router       /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// HealthCheck godoc
// @Summary      Readiness probe
// @Description  Pings the audit database when one is configured.
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /health [get]
func HealthCheck(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "dependency unavailable")
			}
		}
		return c.JSON(HealthResponse{Status: "healthy"})
	}
}

// ParseResume godoc
// @Summary      Extract plain text from a resume
// @Description  Accepts a PDF, DOCX or TXT file and returns its text. The upload is never kept.
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "Resume file (.pdf, .docx, .txt)"
// @Success      200  {object}  ParseResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /parse-resume [post]
func ParseResume(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile(ResumeField)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "No file uploaded")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Failed to parse resume")
		}
		defer f.Close()

		text, err := svc.Parse(c.UserContext(), service.ParseInput{
			Reader:    f,
			Filename:  fh.Filename,
			Size:      fh.Size,
			RequestID: middleware.RequestIDFrom(c),
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrReaderNil):
				return writeError(c, fiber.StatusBadRequest, "No file uploaded")
			case errors.Is(err, extract.ErrUnsupportedFileType):
				return writeError(c, fiber.StatusBadRequest, "Unsupported file type")
			case errors.Is(err, extract.ErrContentTooShort):
				return writeError(c, fiber.StatusBadRequest, "Resume text too short or empty")
			default:
				return writeError(c, fiber.StatusInternalServerError, "Failed to parse resume")
			}
		}

		return c.JSON(ParseResponse{Text: text})
	}
}

// ListExtractions godoc
// @Summary      List recorded parse requests
// @Produce      json
// @Param        limit   query  int  false  "Page size (max 100)"  default(10)
// @Param        offset  query  int  false  "Rows to skip"         default(0)
// @Success      200  {object}  service.ExtractionListResult
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /extractions [get]
func ListExtractions(svc service.ResumeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil || limit < 0 {
			return writeError(c, fiber.StatusBadRequest, "Invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil || offset < 0 {
			return writeError(c, fiber.StatusBadRequest, "Invalid offset")
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}

		res, err := svc.ListExtractions(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "Internal server error")
		}
		return c.JSON(res)
	}
}

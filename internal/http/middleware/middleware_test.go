package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(RequestIDFrom(c))
	})

	t.Run("should generate new request id if not present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		ridHeader := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, ridHeader)

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, ridHeader, buf.String())
	})

	t.Run("should preserve existing request id", func(t *testing.T) {
		existingID := "test-id-123"
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, existingID)

		resp, _ := app.Test(req)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, existingID, resp.Header.Get(RequestIDHeader))

		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		assert.Equal(t, existingID, buf.String())
	})

	t.Run("should replace oversized request id", func(t *testing.T) {
		huge := strings.Repeat("x", maxRequestIDLen+1)
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(RequestIDHeader, huge)

		resp, _ := app.Test(req)

		got := resp.Header.Get(RequestIDHeader)
		assert.NotEmpty(t, got)
		assert.NotEqual(t, huge, got)
	})
}

func TestRequestIDFrom_Missing(t *testing.T) {
	app := fiber.New()
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("[" + RequestIDFrom(c) + "]")
	})

	resp, _ := app.Test(httptest.NewRequest("GET", "/test", nil))

	buf := new(bytes.Buffer)
	buf.ReadFrom(resp.Body)
	assert.Equal(t, "[]", buf.String())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	loc := time.UTC

	app.Use(RequestID())
	app.Use(LoggerWithWriter(&buf, loc))

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusAccepted)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	var logData map[string]any
	err := json.Unmarshal(buf.Bytes(), &logData)
	assert.NoError(t, err)

	assert.NotEmpty(t, logData["request_id"])
	assert.Equal(t, "http_request", logData["msg"])
	assert.Equal(t, "INFO", logData["level"])
	assert.Equal(t, "GET", logData["method"])
	assert.Equal(t, "/test", logData["path"])
	assert.Equal(t, float64(fiber.StatusAccepted), logData["status"])
	assert.NotNil(t, logData["latency"])
	assert.NotEmpty(t, logData["ts"])
	assert.Nil(t, logData["time"])
}

func TestLogger_ErrorStatus(t *testing.T) {
	tests := []struct {
		name      string
		handler   fiber.Handler
		wantCode  float64
		wantLevel string
	}{
		{
			name: "fiber error is logged with its code",
			handler: func(c *fiber.Ctx) error {
				return fiber.NewError(fiber.StatusRequestEntityTooLarge, "too big")
			},
			wantCode:  413,
			wantLevel: "WARN",
		},
		{
			name: "plain error is logged as 500",
			handler: func(c *fiber.Ctx) error {
				return assert.AnError
			},
			wantCode:  500,
			wantLevel: "ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := fiber.New()
			app.Use(RequestID())
			app.Use(LoggerWithWriter(&buf, time.UTC))
			app.Post("/parse-resume", tt.handler)

			_, err := app.Test(httptest.NewRequest("POST", "/parse-resume", nil))
			require.NoError(t, err)

			var logData map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
			assert.Equal(t, tt.wantCode, logData["status"])
			assert.Equal(t, tt.wantLevel, logData["level"])
		})
	}
}

func TestLogger_Timezone(t *testing.T) {
	var buf bytes.Buffer
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	app := fiber.New()
	app.Use(LoggerWithWriter(&buf, jakarta))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	_, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	var logData map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logData))
	assert.True(t, strings.HasSuffix(logData["ts"].(string), "+07:00"), logData["ts"])
}

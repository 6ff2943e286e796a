package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"shelf/internal/delivery/api/validator"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// newTestContext builds an echo context authenticated as userID. A nil userID leaves it anonymous.
func newTestContext(method, target, body string, userID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if userID != nil {
		c.Set("userID", *userID)
	}

	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}


package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shelf/internal/delivery/api/validator"
	deliverycontext "shelf/internal/delivery/context"
	domainerrors "shelf/internal/domain/errors"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess_Envelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"name": "Fiction"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"name":"Fiction"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestHandleAppError_WrappedDomainError(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.Wrap(domainerrors.ErrBookNotFound, "load book"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "BOOK_NOT_FOUND", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.Equal(t, "req-1", body.Meta.RequestID)
}

func TestHandleAppError_DetailsOnClientErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, HandleAppError(c, domainerrors.ErrPasswordStrength.WithDetails("needs a digit")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "needs a digit", decodeError(t, rec).Error.Details)
}

func TestHandleAppError_UnknownErrorIsReturned(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.New("boom"))

	require.Error(t, err)
	assert.Equal(t, 0, rec.Body.Len())
}

func TestValidationError_FieldDetails(t *testing.T) {
	c, rec := newContext()

	err := ValidationError(c, &validator.ValidationError{Fields: []validator.FieldError{{Field: "title", Message: "is required"}}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"error":{"code":"VALIDATION_FAILED","message":"Invalid input","details":[{"field":"title","message":"is required"}]},"meta":{"request_id":"req-1"}}`,
		rec.Body.String())
}

package api

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"shelf/internal/errors"
)

// jsonSerializer implements echo.JSONSerializer with goccy/go-json.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}

	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i any) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return echo.NewHTTPError(http.StatusBadRequest,
			"Unmarshal type error: expected="+typeErr.Type.String()+", field="+typeErr.Field).SetInternal(err)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return echo.NewHTTPError(http.StatusBadRequest, "Syntax error: "+syntaxErr.Error()).SetInternal(err)
	}

	return err
}

package middlewares

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/valyala/fastjson"
)

type binder struct {
	echo.DefaultBinder
	methodsWithBody map[string]bool
}

// NewBinder returns a wrapp of the default binder implementation with extra checks.
// Bodies of POST, PATCH and PUT requests must be a non-empty JSON object.
func NewBinder() echo.Binder {
	return &binder{
		methodsWithBody: map[string]bool{
			http.MethodPost:  true,
			http.MethodPatch: true,
			http.MethodPut:   true,
		},
	}
}

// Bind implements the echo.Bind interface.
func (b *binder) Bind(i any, c echo.Context) error {
	if !b.methodsWithBody[c.Request().Method] {
		return b.DefaultBinder.Bind(i, c)
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Could not read request body.").SetInternal(err)
	}
	if len(payload) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Request body can't be empty.")
	}

	v, err := fastjson.ParseBytes(payload)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Request body is not valid JSON.").SetInternal(err)
	}
	if v.Type() != fastjson.TypeObject {
		return echo.NewHTTPError(http.StatusBadRequest, "Request body must be a JSON object.")
	}

	if err = json.Unmarshal(payload, i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Request body does not match the expected format.").SetInternal(err)
	}
	return nil
}

package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gofrs/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/mgmt/internal/apierror"
	"github.com/sirupsen/logrus"
)

// HTTPErrorHandler returns an error handler that renders errors in the management API format.
func HTTPErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		switch err := err.(type) {
		case *echo.HTTPError:
			if err.Internal != nil {
				log.WithField("status", err.Code).Warnf("Error [ECHO]: %s", err.Internal)
			}
			_ = c.JSON(err.Code, apierror.NewWithCode(err.Code, "", fmt.Sprint(err.Message)))
		case *apierror.APIError:
			status := apierror.StatusCode(err)
			if status < 500 {
				_ = c.JSON(status, err)
				return
			}

			internal(log, err, c)
		default:
			internal(log, err, c)
		}
	}
}

func internal(log logrus.FieldLogger, err error, c echo.Context) {
	id := uuid.Must(uuid.NewV4()).String()
	log.WithField("id", id).Errorf("%+v", err)

	_ = c.JSON(http.StatusInternalServerError, apierror.NewWithCode(
		http.StatusInternalServerError,
		"",
		fmt.Sprintf("Unexpected error (id: %s)", id),
	))
}

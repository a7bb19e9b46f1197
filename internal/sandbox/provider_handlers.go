package sandbox

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/mgmt/internal/apierror"
	"github.com/mdouchement/mgmt/internal/database"
	"github.com/mdouchement/mgmt/internal/model"
	"github.com/mdouchement/mgmt/pkg/mgmt"
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// provider contains all email provider handlers.
type provider struct {
	db database.Client
}

// Show renders the email provider of the current tenant.
// The `fields` and `include_fields` query params select the rendered fields.
func (h *provider) Show(c echo.Context) error {
	p, err := h.db.FindProviderByTenant(currentTenant(c))
	if err != nil {
		if h.db.IsNotFound(err) {
			return notFound()
		}
		return errors.Wrap(err, "could not get email provider")
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "could not serialize email provider")
	}

	if fields := c.QueryParam("fields"); fields != "" {
		include := c.QueryParam("include_fields") != "false"
		payload, err = project(payload, strings.Split(fields, ","), include)
		if err != nil {
			return errors.Wrap(err, "could not select fields")
		}
	}

	return c.JSONBlob(http.StatusOK, payload)
}

// Create configures the email provider of the current tenant.
func (h *provider) Create(c echo.Context) error {
	var params mgmt.EmailProvider
	if err := c.Bind(&params); err != nil {
		return invalidBody(err)
	}
	if params.Name == "" {
		return apierror.NewWithCode(
			http.StatusBadRequest,
			"invalid_body",
			"Payload validation error: 'Missing required property: name'.",
		)
	}

	tenant := currentTenant(c)
	_, err := h.db.FindProviderByTenant(tenant)
	if err == nil {
		return conflict()
	}
	if !h.db.IsNotFound(err) {
		return errors.Wrap(err, "could not get email provider")
	}

	p := model.NewProvider(tenant)
	p.EmailProvider = params
	if err = h.db.Save(p); err != nil {
		if h.db.IsAlreadyExists(err) {
			return conflict()
		}
		return errors.Wrap(err, "could not save email provider")
	}

	return c.JSON(http.StatusCreated, p)
}

// Update merges the given fields into the email provider of the current tenant.
func (h *provider) Update(c echo.Context) error {
	p, err := h.db.FindProviderByTenant(currentTenant(c))
	if err != nil {
		if h.db.IsNotFound(err) {
			return notFound()
		}
		return errors.Wrap(err, "could not get email provider")
	}

	// Unmarshaling into the stored value only overrides the fields present in the body.
	if err = c.Bind(&p.EmailProvider); err != nil {
		return invalidBody(err)
	}
	if p.Name == "" {
		return apierror.NewWithCode(
			http.StatusBadRequest,
			"invalid_body",
			"Payload validation error: 'name' can't be blank.",
		)
	}

	if err = h.db.Save(p); err != nil {
		return errors.Wrap(err, "could not save email provider")
	}

	return c.JSON(http.StatusOK, p)
}

// Delete removes the email provider of the current tenant.
func (h *provider) Delete(c echo.Context) error {
	if err := h.db.DeleteProviderByTenant(currentTenant(c)); err != nil {
		return errors.Wrap(err, "could not delete email provider")
	}

	return c.NoContent(http.StatusNoContent)
}

// project keeps (or drops when include is false) the given top-level fields of the JSON object.
func project(payload []byte, fields []string, include bool) ([]byte, error) {
	v, err := fastjson.ParseBytes(payload)
	if err != nil {
		return nil, err
	}
	obj, err := v.Object()
	if err != nil {
		return nil, err
	}

	selected := map[string]bool{}
	for _, field := range fields {
		selected[strings.TrimSpace(field)] = true
	}

	var removed []string
	obj.Visit(func(key []byte, _ *fastjson.Value) {
		if selected[string(key)] != include {
			removed = append(removed, string(key))
		}
	})
	for _, key := range removed {
		obj.Del(key)
	}

	return v.MarshalTo(nil), nil
}

func notFound() error {
	return apierror.NewWithCode(
		http.StatusNotFound,
		"inexistent_email_provider",
		"There is not an email provider configured.",
	)
}

func conflict() error {
	return apierror.NewWithCode(
		http.StatusConflict,
		"email_provider_conflict",
		"An email provider is already configured.",
	)
}

func invalidBody(err error) error {
	message := "Invalid request body."
	if herr, ok := err.(*echo.HTTPError); ok {
		message = fmt.Sprint(herr.Message)
	}
	return apierror.NewWithCode(http.StatusBadRequest, "invalid_body", message)
}

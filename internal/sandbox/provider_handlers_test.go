package sandbox_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/appleboy/gofight"
	"github.com/mdouchement/mgmt/internal/model"
	"github.com/mdouchement/mgmt/internal/sandbox"
	"github.com/mdouchement/mgmt/pkg/mgmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestProviderUnauthorized(t *testing.T) {
	engine, _, cleanup := setup()
	defer cleanup()

	unauthorized := `{"statusCode":401,"error":"Unauthorized","message":"Invalid token.","errorCode":"invalid_token"}`

	gofight.New().GET(providerURL).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.JSONEq(t, unauthorized, r.Body.String())
	})

	gofight.New().DELETE(providerURL).SetHeader(bearer("unknown")).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.JSONEq(t, unauthorized, r.Body.String())
	})

	gofight.New().GET(providerURL).SetHeader(gofight.H{"Authorization": "Basic " + token}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusUnauthorized, r.Code)
	})
}

func TestRequestProviderShow(t *testing.T) {
	engine, ctrl, cleanup := setup()
	defer cleanup()

	gofight.New().GET(providerURL).SetHeader(bearer(token)).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
		assert.JSONEq(t, `{"statusCode":404,"error":"Not Found","message":"There is not an email provider configured.","errorCode":"inexistent_email_provider"}`, r.Body.String())
	})

	createProvider(t, ctrl, "tenant")

	gofight.New().GET(providerURL).SetHeader(bearer(token)).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)
		assert.JSONEq(t, `{
			"name": "smtp",
			"enabled": true,
			"default_from_address": "no-reply@nowhere.lan",
			"credentials": {"smtp_host": "smtp.nowhere.lan", "smtp_port": 587, "smtp_user": "george", "smtp_pass": "password42"}
		}`, r.Body.String())
	})

	// Providers are scoped by tenant.
	gofight.New().GET(providerURL).SetHeader(bearer(otherToken)).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
	})
}

func TestRequestProviderShowWithFields(t *testing.T) {
	engine, ctrl, cleanup := setup()
	defer cleanup()

	createProvider(t, ctrl, "tenant")

	data := []struct {
		query    string
		expected string
	}{
		{
			query:    "?fields=name,enabled",
			expected: `{"name":"smtp","enabled":true}`,
		},
		{
			query:    "?fields=name,enabled&include_fields=true",
			expected: `{"name":"smtp","enabled":true}`,
		},
		{
			query:    "?fields=credentials,default_from_address&include_fields=false",
			expected: `{"name":"smtp","enabled":true}`,
		},
		{
			query:    "?fields=unknown",
			expected: `{}`,
		},
	}

	for _, d := range data {
		gofight.New().GET(providerURL+d.query).SetHeader(bearer(token)).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			assert.Equal(t, http.StatusOK, r.Code, d.query)
			assert.JSONEq(t, d.expected, r.Body.String(), d.query)
		})
	}
}

func TestRequestProviderCreate(t *testing.T) {
	engine, ctrl, cleanup := setup()
	defer cleanup()

	gofight.New().POST(providerURL).SetHeader(bearer(token)).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.JSONEq(t, `{"statusCode":400,"error":"Bad Request","message":"Request body can't be empty.","errorCode":"invalid_body"}`, r.Body.String())
	})

	gofight.New().POST(providerURL).SetHeader(bearer(token)).SetBody(`["sendgrid"]`).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.JSONEq(t, `{"statusCode":400,"error":"Bad Request","message":"Request body must be a JSON object.","errorCode":"invalid_body"}`, r.Body.String())
	})

	gofight.New().POST(providerURL).SetHeader(bearer(token)).SetBody(`{"name":`).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.JSONEq(t, `{"statusCode":400,"error":"Bad Request","message":"Request body is not valid JSON.","errorCode":"invalid_body"}`, r.Body.String())
	})

	gofight.New().POST(providerURL).SetHeader(bearer(token)).SetJSON(gofight.D{"enabled": true}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
		assert.Contains(t, r.Body.String(), "Missing required property: name")
	})

	params := gofight.D{
		"name":                 "sendgrid",
		"enabled":              true,
		"default_from_address": "no-reply@nowhere.lan",
		"credentials": gofight.D{
			"api_key": "SG.42",
		},
	}

	gofight.New().POST(providerURL).SetHeader(bearer(token)).SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusCreated, r.Code)
		assert.JSONEq(t, `{"name":"sendgrid","enabled":true,"default_from_address":"no-reply@nowhere.lan","credentials":{"api_key":"SG.42"}}`, r.Body.String())
	})

	stored, err := ctrl.Database.FindProviderByTenant("tenant")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "sendgrid", stored.Name)
	assert.True(t, stored.IsEnabled())
	assert.Equal(t, "SG.42", stored.Credentials.APIKey)

	gofight.New().POST(providerURL).SetHeader(bearer(token)).SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusConflict, r.Code)
		assert.JSONEq(t, `{"statusCode":409,"error":"Conflict","message":"An email provider is already configured.","errorCode":"email_provider_conflict"}`, r.Body.String())
	})
}

func TestRequestProviderUpdate(t *testing.T) {
	engine, ctrl, cleanup := setup()
	defer cleanup()

	gofight.New().PATCH(providerURL).SetHeader(bearer(token)).SetJSON(gofight.D{"enabled": false}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusNotFound, r.Code)
	})

	createProvider(t, ctrl, "tenant")

	params := gofight.D{
		"enabled": false,
		"credentials": gofight.D{
			"smtp_pass": "password43",
		},
		"settings": gofight.D{
			"headers": gofight.D{"X-Tag": "42"},
		},
	}

	gofight.New().PATCH(providerURL).SetHeader(bearer(token)).SetJSON(params).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusOK, r.Code)

		var provider mgmt.EmailProvider
		err := json.Unmarshal(r.Body.Bytes(), &provider)
		assert.NoError(t, err)
		assert.Equal(t, "smtp", provider.Name)
		assert.False(t, provider.IsEnabled())
		assert.NotNil(t, provider.Enabled)
		assert.Equal(t, "no-reply@nowhere.lan", provider.DefaultFromAddress)
		if assert.NotNil(t, provider.Credentials) {
			assert.Equal(t, "smtp.nowhere.lan", provider.Credentials.SMTPHost)
			assert.Equal(t, "password43", provider.Credentials.SMTPPass)
		}
		assert.Contains(t, provider.Settings, "headers")
	})

	gofight.New().PATCH(providerURL).SetHeader(bearer(token)).SetJSON(gofight.D{"name": ""}).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assert.Equal(t, http.StatusBadRequest, r.Code)
	})

	stored, err := ctrl.Database.FindProviderByTenant("tenant")
	require.NoError(t, err)
	assert.Equal(t, "smtp", stored.Name)
	assert.Equal(t, "password43", stored.Credentials.SMTPPass)
}

func TestRequestProviderDelete(t *testing.T) {
	engine, ctrl, cleanup := setup()
	defer cleanup()

	createProvider(t, ctrl, "tenant")
	createProvider(t, ctrl, "other-tenant")

	for i := 0; i < 2; i++ {
		gofight.New().DELETE(providerURL).SetHeader(bearer(token)).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			assert.Equal(t, http.StatusNoContent, r.Code)
			assert.Empty(t, r.Body.String())
		})
	}

	_, err := ctrl.Database.FindProviderByTenant("tenant")
	assert.True(t, ctrl.Database.IsNotFound(err))

	_, err = ctrl.Database.FindProviderByTenant("other-tenant")
	assert.NoError(t, err)
}

func createProvider(t *testing.T, ctrl sandbox.IOC, tenant string) *model.Provider {
	t.Helper()

	p := model.NewProvider(tenant)
	p.EmailProvider = *mgmt.NewEmailProvider(mgmt.ProviderSMTP).SetEnabled(true)
	p.DefaultFromAddress = "no-reply@nowhere.lan"
	p.Credentials = (&mgmt.EmailProviderCredentials{
		SMTPHost: "smtp.nowhere.lan",
		SMTPUser: "george",
		SMTPPass: "password42",
	}).SetSMTPPort(587)

	require.NoError(t, ctrl.Database.Save(p))
	return p
}

package mgmt

import (
	"fmt"
	"net/http"
	"net/url"
)

// Names of the email providers supported by the management API.
const (
	ProviderMandrill  = "mandrill"
	ProviderSendGrid  = "sendgrid"
	ProviderSES       = "ses"
	ProviderSparkPost = "sparkpost"
	ProviderMailgun   = "mailgun"
	ProviderSMTP      = "smtp"
)

type (
	// An EmailProvider describes which email service and credentials a tenant uses to send emails.
	EmailProvider struct {
		Name               string                    `json:"name,omitempty"`
		Enabled            *bool                     `json:"enabled,omitempty"`
		DefaultFromAddress string                    `json:"default_from_address,omitempty"`
		Credentials        *EmailProviderCredentials `json:"credentials,omitempty"`
		Settings           map[string]any            `json:"settings,omitempty"`
	}

	// EmailProviderCredentials are the credentials of an EmailProvider.
	// Which fields are required depends on the provider.
	EmailProviderCredentials struct {
		APIUser         string `json:"api_user,omitempty"`
		APIKey          string `json:"api_key,omitempty"`
		AccessKeyID     string `json:"accessKeyId,omitempty"`
		SecretAccessKey string `json:"secretAccessKey,omitempty"`
		Region          string `json:"region,omitempty"`
		Domain          string `json:"domain,omitempty"`
		SMTPHost        string `json:"smtp_host,omitempty"`
		SMTPPort        *int   `json:"smtp_port,omitempty"`
		SMTPUser        string `json:"smtp_user,omitempty"`
		SMTPPass        string `json:"smtp_pass,omitempty"`
	}

	// An EmailProviderEntity builds the requests managing the email provider of a tenant.
	// A token with the scope read:email_provider, create:email_provider, update:email_provider
	// or delete:email_provider is needed depending on the request.
	EmailProviderEntity struct {
		client *Client
	}
)

// NewEmailProvider returns a new EmailProvider for the given provider name.
func NewEmailProvider(name string) *EmailProvider {
	return &EmailProvider{Name: name}
}

// SetEnabled enables or disables the provider.
func (p *EmailProvider) SetEnabled(enabled bool) *EmailProvider {
	p.Enabled = &enabled
	return p
}

// IsEnabled returns true if the provider is explicitly enabled.
func (p *EmailProvider) IsEnabled() bool {
	return p.Enabled != nil && *p.Enabled
}

// SetSMTPPort sets the SMTP port of the credentials.
func (c *EmailProviderCredentials) SetSMTPPort(port int) *EmailProviderCredentials {
	c.SMTPPort = &port
	return c
}

// Get requests the email provider. The filter can be nil.
func (e *EmailProviderEntity) Get(filter *FieldsFilter) *Request[EmailProvider] {
	u := e.url()
	if filter != nil {
		query := url.Values{}
		for k, v := range filter.AsMap() {
			query.Set(k, fmt.Sprint(v))
		}
		u.RawQuery = query.Encode()
	}

	return newRequest[EmailProvider](e.client, http.MethodGet, u.String())
}

// Setup configures the email provider.
func (e *EmailProviderEntity) Setup(provider *EmailProvider) (*Request[EmailProvider], error) {
	if provider == nil {
		return nil, &ArgumentError{Name: "email provider"}
	}

	r := newRequest[EmailProvider](e.client, http.MethodPost, e.url().String())
	r.setBody(provider)
	return r, nil
}

// Update updates the existing email provider. Only the defined fields are sent.
func (e *EmailProviderEntity) Update(provider *EmailProvider) (*Request[EmailProvider], error) {
	if provider == nil {
		return nil, &ArgumentError{Name: "email provider"}
	}

	r := newRequest[EmailProvider](e.client, http.MethodPatch, e.url().String())
	r.setBody(provider)
	return r, nil
}

// Delete deletes the existing email provider.
func (e *EmailProviderEntity) Delete() *Request[Void] {
	return newVoidRequest(e.client, http.MethodDelete, e.url().String())
}

func (e *EmailProviderEntity) url() *url.URL {
	return e.client.url("api", "v2", "emails", "provider")
}

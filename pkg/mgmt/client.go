package mgmt

import (
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type (
	// A Doer performs HTTP requests. *http.Client satisfies it.
	Doer interface {
		Do(req *http.Request) (*http.Response, error)
	}

	// An Option configures a Client.
	Option func(c *Client)

	// A Client holds what is shared by all the management API entities: the transport,
	// the API endpoint and the bearer token. It must not be modified after creation
	// so that requests can be built from several goroutines.
	Client struct {
		http     Doer
		endpoint *url.URL
		token    string
		log      logrus.FieldLogger
	}
)

// WithLogger sets the logger used when requests are executed.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewDefaultClient returns a new Client with default HTTP client.
func NewDefaultClient(endpoint, token string, opts ...Option) (*Client, error) {
	return NewClient(http.DefaultClient, endpoint, token, opts...)
}

// NewClient returns a new Client.
// The endpoint can be an absolute URL or a bare domain like `tenant.auth0.com`, in which case HTTPS is used.
func NewClient(transport Doer, endpoint, token string, opts ...Option) (*Client, error) {
	if transport == nil {
		return nil, &ArgumentError{Name: "transport"}
	}
	if token == "" {
		return nil, &ArgumentError{Name: "api token"}
	}

	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		http:     transport,
		endpoint: u,
		token:    token,
		log:      discard,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, &ArgumentError{Name: "endpoint"}
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse endpoint")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("could not parse endpoint: %s is not an absolute URL", endpoint)
	}
	u.RawQuery = ""
	u.Fragment = ""

	return u, nil
}

// Endpoint returns the base URL of the management API.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Token returns the bearer token sent with every request.
func (c *Client) Token() string {
	return c.token
}

// EmailProvider returns the entity that manages the tenant's email provider.
func (c *Client) EmailProvider() *EmailProviderEntity {
	return &EmailProviderEntity{client: c}
}

// url returns a copy of the endpoint with the given path appended.
func (c *Client) url(segments ...string) *url.URL {
	u := *c.endpoint
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.Join(segments, "/")
	return &u
}

package mgmt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type (
	// A Void is the result of requests whose response has no content.
	Void struct{}

	// A Request is an HTTP request to the management API that has not been executed yet.
	// Executing it yields a T parsed from the response.
	Request[T any] struct {
		method string
		url    string
		header http.Header
		body   any

		http Doer
		log  logrus.FieldLogger
		void bool
	}
)

func newRequest[T any](c *Client, method, url string) *Request[T] {
	r := &Request[T]{
		method: method,
		url:    url,
		header: http.Header{},
		http:   c.http,
		log:    c.log,
	}
	r.header.Set("Accept", "application/json")
	r.header.Set("User-Agent", UserAgent)
	r.header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	return r
}

func newVoidRequest(c *Client, method, url string) *Request[Void] {
	r := newRequest[Void](c, method, url)
	r.void = true
	return r
}

func (r *Request[T]) setBody(body any) {
	r.body = body
	r.header.Set("Content-Type", "application/json")
}

// Method returns the HTTP method of the request.
func (r *Request[T]) Method() string {
	return r.method
}

// URL returns the full URL of the request, query string included.
func (r *Request[T]) URL() string {
	return r.url
}

// Header returns a copy of the request headers.
func (r *Request[T]) Header() http.Header {
	return r.header.Clone()
}

// Body returns the payload sent with the request or nil if there is none.
func (r *Request[T]) Body() any {
	return r.body
}

// HTTPRequest builds the *http.Request, serializing the body as JSON.
func (r *Request[T]) HTTPRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, errors.Wrap(err, "could not serialize request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, r.url, body)
	if err != nil {
		return nil, errors.Wrap(err, "could not build request")
	}
	req.Header = r.header.Clone()

	return req, nil
}

// Execute performs the request and parses the response.
// A response with a status code greater than or equal to 400 is returned as an *APIError.
func (r *Request[T]) Execute(ctx context.Context) (*T, error) {
	req, err := r.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}

	//
	// Perform request
	start := time.Now()
	res, err := r.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "could not perform request")
	}
	defer res.Body.Close()

	r.log.WithFields(logrus.Fields{
		"method":  r.method,
		"url":     r.url,
		"status":  res.StatusCode,
		"latency": time.Since(start).String(),
	}).Debug("management API request")

	if res.StatusCode >= 400 {
		return nil, parseAPIError(res)
	}

	//
	// Process response
	var v T
	if r.void || res.StatusCode == http.StatusNoContent {
		return &v, nil
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read response")
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return &v, nil
	}

	return &v, errors.Wrap(json.Unmarshal(payload, &v), "could not parse response")
}

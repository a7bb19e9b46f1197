package client

import (
	"github.com/chzyer/readline"
	"github.com/mdouchement/mgmt/pkg/mgmt"
	"github.com/pkg/errors"
)

// Login asks for the management API endpoint and token then stores them.
func Login() error {
	cfg := Config{}

	endpoint, err := readline.Line("Endpoint: ")
	if err != nil {
		return errors.Wrap(err, "could not read endpoint from stdin")
	}

	token, err := readline.Password("API token: ")
	if err != nil {
		return errors.Wrap(err, "could not read token from stdin")
	}

	// Validates the given values before storing them.
	client, err := mgmt.NewDefaultClient(endpoint, string(token))
	if err != nil {
		return errors.Wrap(err, "invalid credentials")
	}
	cfg.Endpoint = client.Endpoint()
	cfg.Token = client.Token()

	return Save(cfg)
}

// Logout removes the stored credentials.
func Logout() error {
	return errors.Wrap(Remove(), "could not remove credential file")
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mdouchement/mgmt/internal/logger"
	"github.com/mdouchement/mgmt/pkg/mgmt"
	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
)

const (
	logfile = "mgmt.log"
	timeout = 30 * time.Second
)

// Debug enables the debug logs written in mgmt.log.
var Debug bool

// GetProvider prints the email provider.
// fields is a comma-separated list of fields to include, or to exclude when exclude is true.
func GetProvider(fields string, exclude, dump bool) error {
	client, err := connect()
	if err != nil {
		return err
	}

	var filter *mgmt.FieldsFilter
	if fields != "" {
		filter = mgmt.NewFieldsFilter().WithFields(fields, !exclude)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	provider, err := client.EmailProvider().Get(filter).Execute(ctx)
	if err != nil {
		return errors.Wrap(err, "could not get email provider")
	}

	if dump {
		fmt.Println(litter.Sdump(provider))
		return nil
	}
	return render(os.Stdout, provider)
}

// SetupProvider configures the email provider from the given JSON file (`-` for stdin).
func SetupProvider(filename string) error {
	return sendProvider(filename, (*mgmt.EmailProviderEntity).Setup)
}

// UpdateProvider updates the email provider from the given JSON file (`-` for stdin).
func UpdateProvider(filename string) error {
	return sendProvider(filename, (*mgmt.EmailProviderEntity).Update)
}

// DeleteProvider deletes the email provider.
func DeleteProvider() error {
	client, err := connect()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err = client.EmailProvider().Delete().Execute(ctx)
	if err != nil {
		return errors.Wrap(err, "could not delete email provider")
	}

	fmt.Println("Email provider deleted")
	return nil
}

type builder func(*mgmt.EmailProviderEntity, *mgmt.EmailProvider) (*mgmt.Request[mgmt.EmailProvider], error)

func sendProvider(filename string, build builder) error {
	provider, err := readProvider(filename, os.Stdin)
	if err != nil {
		return err
	}

	client, err := connect()
	if err != nil {
		return err
	}

	req, err := build(client.EmailProvider(), provider)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	provider, err = req.Execute(ctx)
	if err != nil {
		return errors.Wrapf(err, "could not %s email provider", req.Method())
	}

	return render(os.Stdout, provider)
}

func connect() (*mgmt.Client, error) {
	cfg, err := Load()
	if err != nil {
		return nil, errors.Wrap(err, "could not load config")
	}

	level := logrus.InfoLevel
	if Debug {
		level = logrus.DebugLevel
	}

	client, err := mgmt.NewDefaultClient(cfg.Endpoint, cfg.Token, mgmt.WithLogger(logger.New(logfile, level)))
	return client, errors.Wrap(err, "could not reach management API endpoint")
}

// readProvider parses an EmailProvider from the given JSON file, stdin is used when filename is `-`.
func readProvider(filename string, stdin io.Reader) (*mgmt.EmailProvider, error) {
	r := stdin
	if filename != "-" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, errors.Wrap(err, "could not open provider file")
		}
		defer f.Close()
		r = f
	}

	var provider mgmt.EmailProvider
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&provider); err != nil {
		return nil, errors.Wrap(err, "could not parse provider")
	}

	return &provider, nil
}

func render(w io.Writer, provider *mgmt.EmailProvider) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(provider), "could not render provider")
}

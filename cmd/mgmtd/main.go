package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/mdouchement/mgmt/internal/database"
	"github.com/mdouchement/mgmt/internal/sandbox"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const dbname = "mgmt.db"

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	cfg string
)

func main() {
	c := &cobra.Command{
		Use:     "mgmtd",
		Short:   "Sandbox server emulating the management API email provider endpoints",
		Version: fmt.Sprintf("%s - build %.7s @ %s - %s", version, revision, date, runtime.Version()),
		Args:    cobra.ExactArgs(0),
	}
	initCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(initCmd)

	reindexCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(reindexCmd)

	serverCmd.Flags().StringVarP(&cfg, "config", "c", "", "Configuration file")
	c.AddCommand(serverCmd)

	if err := c.Execute(); err != nil {
		logrus.Fatalf("%+v", err)
	}
}

func load() (*koanf.Koanf, error) {
	konf := koanf.New(".")
	err := konf.Load(file.Provider(cfg), yaml.Parser())
	return konf, errors.Wrapf(err, "could not load %s", cfg)
}

func dbnameWithPath(path string) string {
	if len(path) == 0 {
		return dbname
	}
	return filepath.Join(path, dbname)
}

var (
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Init the database",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			konf, err := load()
			if err != nil {
				return err
			}

			return database.StormInit(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	reindexCmd = &cobra.Command{
		Use:   "reindex",
		Short: "Reindex the database",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			konf, err := load()
			if err != nil {
				return err
			}

			return database.StormReIndex(dbnameWithPath(konf.String("database_path")))
		},
	}

	//
	//
	serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Start server",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			konf, err := load()
			if err != nil {
				return err
			}

			tokens := konf.StringMap("tokens")
			if len(tokens) == 0 {
				return errors.New("no tokens configured")
			}

			logger := logrus.New()
			logger.SetOutput(os.Stdout)
			if level := konf.String("log_level"); level != "" {
				lvl, err := logrus.ParseLevel(level)
				if err != nil {
					return errors.Wrap(err, "invalid log_level")
				}
				logger.SetLevel(lvl)
			}

			db, err := database.StormOpen(dbnameWithPath(konf.String("database_path")))
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			engine := sandbox.EchoEngine(sandbox.IOC{
				Version:  version,
				Database: db,
				Tokens:   tokens,
				Logger:   logger,
			})
			sandbox.PrintRoutes(os.Stdout, engine)

			address := konf.String("address")
			logger.Infof("Server listening on %s", address)
			return errors.Wrap(engine.Start(address), "could not run server")
		},
	}
)

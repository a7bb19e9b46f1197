package main

import (
	"fmt"
	"os"

	"github.com/mdouchement/mgmt/internal/client"
	"github.com/mdouchement/mgmt/pkg/mgmt"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"

	fields  string
	exclude bool
	dump    bool
)

func main() {
	c := &cobra.Command{
		Use:     "mgmt",
		Short:   "Management API client",
		Version: fmt.Sprintf("%s (sdk %s) - build %.7s @ %s", version, mgmt.Version, revision, date),
		Args:    cobra.NoArgs,
	}
	c.PersistentFlags().BoolVarP(&client.Debug, "debug", "d", false, "Write debug logs in mgmt.log")
	c.AddCommand(loginCmd)
	c.AddCommand(logoutCmd)

	getCmd.Flags().StringVarP(&fields, "fields", "f", "", "Comma-separated list of fields to include")
	getCmd.Flags().BoolVarP(&exclude, "exclude", "x", false, "Exclude the given fields instead of including them")
	getCmd.Flags().BoolVar(&dump, "dump", false, "Dump the Go representation of the provider")
	providerCmd.AddCommand(getCmd)
	providerCmd.AddCommand(setupCmd)
	providerCmd.AddCommand(updateCmd)
	providerCmd.AddCommand(deleteCmd)
	c.AddCommand(providerCmd)

	if err := c.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Store the management API endpoint and token",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Login()
		},
	}

	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return client.Logout()
		},
	}

	providerCmd = &cobra.Command{
		Use:   "provider",
		Short: "Manage the email provider of the tenant",
		Args:  cobra.NoArgs,
	}

	getCmd = &cobra.Command{
		Use:   "get",
		Short: "Show the email provider",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return client.GetProvider(fields, exclude, dump)
		},
	}

	setupCmd = &cobra.Command{
		Use:   "setup FILENAME",
		Short: "Configure the email provider from a JSON file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return client.SetupProvider(args[0])
		},
	}

	updateCmd = &cobra.Command{
		Use:   "update FILENAME",
		Short: "Update the email provider from a JSON file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return client.UpdateProvider(args[0])
		},
	}

	deleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete the email provider",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return client.DeleteProvider()
		},
	}
)

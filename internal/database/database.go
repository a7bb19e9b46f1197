package database

import "github.com/mdouchement/mgmt/internal/model"

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool
		// IsAlreadyExists returns true if err is a unique constraint error.
		IsAlreadyExists(err error) bool

		ProviderInteraction
	}

	// A ProviderInteraction defines all the methods used to interact with a provider record.
	ProviderInteraction interface {
		// FindProviderByTenant returns the email provider of the given tenant.
		FindProviderByTenant(tenant string) (*model.Provider, error)
		// DeleteProviderByTenant deletes the email provider of the given tenant.
		// It does not fail if the tenant has no provider.
		DeleteProviderByTenant(tenant string) error
	}
)

package model

import "github.com/mdouchement/mgmt/pkg/mgmt"

// A Provider represents the email provider of a tenant stored in database.
type Provider struct {
	Base `msgpack:",inline" storm:"inline"`

	Tenant string `json:"-" msgpack:"tenant" storm:"unique"`
	mgmt.EmailProvider `msgpack:",inline"`
}

// NewProvider returns a new Provider for the given tenant.
func NewProvider(tenant string) *Provider {
	return &Provider{Tenant: tenant}
}

package database

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/asdine/storm/v3/q"
	"github.com/gofrs/uuid"
	"github.com/mdouchement/mgmt/internal/model"
	"github.com/pkg/errors"
)

type strm struct {
	db *storm.DB
}

// StormCodec is the format used to store data in the database.
var StormCodec = storm.Codec(msgpack.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	err = db.Init(&model.Provider{})
	return errors.Wrap(err, "could not init provider index")
}

// StormReIndex reindex Storm database.
func StormReIndex(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	err = db.ReIndex(&model.Provider{})
	return errors.Wrap(err, "could not ReIndex providers")
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db: db,
	}, nil
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	m.Touch(time.Now().UTC())

	if m.GetID() == "" {
		m.SetID(uuid.Must(uuid.NewV4()).String())
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// IsAlreadyExists returns true if err is a unique constraint error.
func (c *strm) IsAlreadyExists(err error) bool {
	return errors.Cause(err) == storm.ErrAlreadyExists
}

// FindProviderByTenant returns the email provider of the given tenant.
func (c *strm) FindProviderByTenant(tenant string) (*model.Provider, error) {
	var provider model.Provider
	if err := c.db.One("Tenant", tenant, &provider); err != nil {
		return nil, errors.Wrap(err, "find provider by tenant")
	}
	return &provider, nil
}

// DeleteProviderByTenant deletes the email provider of the given tenant.
func (c *strm) DeleteProviderByTenant(tenant string) error {
	err := c.db.Select(q.Eq("Tenant", tenant)).Delete(&model.Provider{})
	if err != nil && !c.IsNotFound(err) {
		return errors.Wrap(err, "could not delete provider")
	}
	return nil
}

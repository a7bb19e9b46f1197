package database_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mdouchement/mgmt/internal/database"
	"github.com/mdouchement/mgmt/internal/model"
	"github.com/mdouchement/mgmt/pkg/mgmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorm_Provider(t *testing.T) {
	db, cleanup := open(t)
	defer cleanup()

	_, err := db.FindProviderByTenant("tenant")
	assert.True(t, db.IsNotFound(err))

	p := model.NewProvider("tenant")
	p.EmailProvider = *mgmt.NewEmailProvider(mgmt.ProviderMailgun).SetEnabled(true)
	p.Credentials = &mgmt.EmailProviderCredentials{APIKey: "key-42", Domain: "mg.nowhere.lan", Region: "eu"}
	p.Settings = map[string]any{"message": "42"}

	require.NoError(t, db.Save(p))
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	stored, err := db.FindProviderByTenant("tenant")
	require.NoError(t, err)
	assert.Equal(t, p.ID, stored.ID)
	assert.Equal(t, "mailgun", stored.Name)
	assert.True(t, stored.IsEnabled())
	assert.Equal(t, "mg.nowhere.lan", stored.Credentials.Domain)
	assert.Equal(t, "42", stored.Settings["message"])

	// Only one provider per tenant.
	err = db.Save(model.NewProvider("tenant"))
	assert.True(t, db.IsAlreadyExists(err))

	require.NoError(t, db.DeleteProviderByTenant("tenant"))
	_, err = db.FindProviderByTenant("tenant")
	assert.True(t, db.IsNotFound(err))

	assert.NoError(t, db.DeleteProviderByTenant("tenant"))
}

func TestStorm_Delete(t *testing.T) {
	db, cleanup := open(t)
	defer cleanup()

	p := model.NewProvider("tenant")
	p.Name = mgmt.ProviderSES
	require.NoError(t, db.Save(p))

	require.NoError(t, db.Delete(p))
	_, err := db.FindProviderByTenant("tenant")
	assert.True(t, db.IsNotFound(err))
}

func TestStormInit(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "mgmt.db")

	require.NoError(t, database.StormInit(filename))
	require.NoError(t, database.StormReIndex(filename))

	_, err := os.Stat(filename)
	assert.NoError(t, err)
}

func open(t *testing.T) (database.Client, func()) {
	t.Helper()

	db, err := database.StormOpen(filepath.Join(t.TempDir(), "mgmt.db"))
	require.NoError(t, err)

	return db, func() {
		db.Close()
	}
}

package supplier

import (
	"fmt"
	"testing"
	"time"

	"warehouse-backend/internal/apperror"
	"warehouse-backend/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestCreateGeneratesSequentialCodes(t *testing.T) {
	db := newTestDB(t)

	first, err := Create(db, Input{Name: "Fresh Farm Co"})
	require.NoError(t, err)
	second, err := Create(db, Input{Name: "Ocean Seafood Ltd"})
	require.NoError(t, err)

	today := time.Now().Format("20060102")
	assert.Equal(t, fmt.Sprintf("SUP-%s-0001", today), first.Code)
	assert.Equal(t, fmt.Sprintf("SUP-%s-0002", today), second.Code)
	assert.True(t, first.Active)
}

func TestSoftDeleteKeepsSupplierListed(t *testing.T) {
	db := newTestDB(t)

	s, err := Create(db, Input{Name: "Fresh Farm Co"})
	require.NoError(t, err)

	deleted, err := SoftDelete(db, s.ID)
	require.NoError(t, err)
	assert.False(t, deleted.Active)

	all, err := List(db)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Active)

	got, err := Get(db, s.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestUpdateOverwritesFields(t *testing.T) {
	db := newTestDB(t)

	s, err := Create(db, Input{
		Name:          "Fresh Farm Co",
		ContactPerson: "Alex",
		Phone:         "0123456789",
		Note:          "weekly delivery",
	})
	require.NoError(t, err)

	updated, err := Update(db, s.ID, Input{
		Name:  "Fresh Farm Company",
		Phone: "0987654321",
	})
	require.NoError(t, err)

	assert.Equal(t, "Fresh Farm Company", updated.Name)
	assert.Equal(t, "0987654321", updated.Phone)
	// Full overwrite: fields omitted from the update are cleared.
	assert.Empty(t, updated.ContactPerson)
	assert.Empty(t, updated.Note)
	assert.Equal(t, s.Code, updated.Code)
	assert.True(t, updated.Active)
}

func TestUpdateCanReactivate(t *testing.T) {
	db := newTestDB(t)

	s, err := Create(db, Input{Name: "Fresh Farm Co"})
	require.NoError(t, err)
	_, err = SoftDelete(db, s.ID)
	require.NoError(t, err)

	active := true
	updated, err := Update(db, s.ID, Input{Name: "Fresh Farm Co", Active: &active})
	require.NoError(t, err)
	assert.True(t, updated.Active)
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	db := newTestDB(t)

	_, err := Create(db, Input{Name: "Fresh Farm Co"})
	require.NoError(t, err)
	_, err = Create(db, Input{Name: "Ocean Seafood Ltd"})
	require.NoError(t, err)

	found, err := SearchByName(db, "FARM")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Fresh Farm Co", found[0].Name)

	none, err := SearchByName(db, "bakery")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetUnknownSupplier(t *testing.T) {
	db := newTestDB(t)

	_, err := Get(db, 42)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = SoftDelete(db, 42)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

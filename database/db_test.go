package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

func setup(t *testing.T) {
	t.Helper()
	os.Remove("test.db")
	require.NoError(t, InitDB("test.db"))
	t.Cleanup(func() {
		db, _ := GetDB().DB()
		db.Close()
		os.Remove("test.db")
	})
}

func TestInitDBSeedsAccounts(t *testing.T) {
	setup(t)

	repo := NewAccountRepository()
	accounts, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, 1, accounts[0].Id)
	assert.Equal(t, "profesor@universidad.edu", accounts[0].Email)
	assert.Equal(t, "admin@universidad.edu", accounts[1].Email)
}

func TestSeedOnlyWhenEmpty(t *testing.T) {
	setup(t)

	repo := NewAccountRepository()
	require.NoError(t, repo.UpdatePassword(1, "otro-hash"))

	// Re-running init against the same file must not reseed.
	require.NoError(t, InitDB("test.db"))

	account, err := repo.FindById(1)
	require.NoError(t, err)
	assert.Equal(t, "otro-hash", account.Password)
}

func TestFindByEmail(t *testing.T) {
	setup(t)

	repo := NewAccountRepository()

	account, err := repo.FindByEmail("profesor2@universidad.edu")
	require.NoError(t, err)
	assert.Equal(t, 3, account.Id)
	assert.Equal(t, "Carlos López", account.Name)

	// Lookup is exact-match and case-sensitive.
	_, err = repo.FindByEmail("PROFESOR2@universidad.edu")
	assert.True(t, IsNotFound(err))

	_, err = repo.FindByEmail("nadie@universidad.edu")
	assert.True(t, IsNotFound(err))
}

func TestUpdatePasswordUnknownAccount(t *testing.T) {
	setup(t)

	repo := NewAccountRepository()
	err := repo.UpdatePassword(999, "hash")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

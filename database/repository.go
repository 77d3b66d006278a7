package database

import (
	"gorm.io/gorm"

	"github.com/edugestion/sgc-api/database/model"
)

// AccountRepository is the access contract for the account store. Lookups
// return gorm.ErrRecordNotFound (test with IsNotFound) when no account
// matches.
type AccountRepository interface {
	FindByEmail(email string) (*model.Account, error)
	FindById(id int) (*model.Account, error)
	ListAll() ([]*model.Account, error)
	UpdatePassword(id int, newHash string) error
}

// gormAccountRepository is the sqlite-backed repository implementation.
type gormAccountRepository struct{}

// NewAccountRepository returns a repository backed by the shared database
// handle.
func NewAccountRepository() AccountRepository {
	return &gormAccountRepository{}
}

func (r *gormAccountRepository) FindByEmail(email string) (*model.Account, error) {
	account := &model.Account{}
	err := GetDB().Model(model.Account{}).
		Where("email = ?", email).
		First(account).
		Error
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *gormAccountRepository) FindById(id int) (*model.Account, error) {
	account := &model.Account{}
	err := GetDB().Model(model.Account{}).
		Where("id = ?", id).
		First(account).
		Error
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *gormAccountRepository) ListAll() ([]*model.Account, error) {
	var accounts []*model.Account
	err := GetDB().Model(model.Account{}).
		Order("id").
		Find(&accounts).
		Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// UpdatePassword replaces the stored hash for one account. A single UPDATE
// statement, so concurrent changes to the same account resolve last-write-wins.
func (r *gormAccountRepository) UpdatePassword(id int, newHash string) error {
	result := GetDB().Model(model.Account{}).
		Where("id = ?", id).
		Update("password", newHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

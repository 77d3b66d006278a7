package service

import (
	"github.com/edugestion/sgc-api/database"
	"github.com/edugestion/sgc-api/database/model"
)

// AccountService answers read-only account queries keyed by the
// authenticated identity.
type AccountService struct {
	repo database.AccountRepository
}

// NewAccountService creates an AccountService over the shared account store.
func NewAccountService() *AccountService {
	return &AccountService{repo: database.NewAccountRepository()}
}

// NewAccountServiceWith creates an AccountService with an explicit repository.
func NewAccountServiceWith(repo database.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// GetProfile resolves the account behind a verified session. The id comes
// from the session claims, never from client input.
func (s *AccountService) GetProfile(accountId int) (*model.Account, error) {
	account, err := s.repo.FindById(accountId)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts returns the sanitized view of every account.
func (s *AccountService) ListAccounts() ([]model.AccountView, error) {
	accounts, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	views := make([]model.AccountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, account.View())
	}
	return views, nil
}

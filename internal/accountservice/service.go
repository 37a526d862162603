// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"time"

	"github.com/moneyport/moneyport/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	LoadAccount(ctx context.Context, id domain.AccountID, baselineDate time.Time) (*domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account business logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// GetBalance returns the current balance of the given account.
//
// The account is loaded with the baseline date set to now, so the whole
// balance comes from the precomputed baseline and the window stays empty.
func (s *Service) GetBalance(ctx context.Context, id domain.AccountID) (domain.Money, error) {
	account, err := s.repo.LoadAccount(ctx, id, time.Now())
	if err != nil {
		return domain.Money{}, err
	}

	return account.Balance()
}

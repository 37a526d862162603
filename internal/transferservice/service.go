// Package transferservice manages business logic layer of money transfers.
package transferservice

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/moneyport/moneyport/internal/domain"
)

// ThresholdExceededError indicates a transfer larger than the configured
// per-transfer maximum. It is raised before any account is loaded or locked.
type ThresholdExceededError struct {
	Threshold domain.Money
	Actual    domain.Money
}

func (e *ThresholdExceededError) Error() string {
	return fmt.Sprintf("maximum transfer threshold exceeded: tried to transfer %s but threshold is %s", e.Actual, e.Threshold)
}

// AccountRepo provides data access layer interface needed by transfer service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type AccountRepo interface {
	// LoadAccount rebuilds the account aggregate: baseline balance from all
	// activity strictly before baselineDate, window from activity at or
	// after it.
	LoadAccount(ctx context.Context, id domain.AccountID, baselineDate time.Time) (*domain.Account, error)
	// SaveActivities persists the given activities atomically and returns
	// copies with assigned ids. Either all become durable or none do.
	SaveActivities(ctx context.Context, activities []domain.Activity) ([]domain.Activity, error)
}

// AccountLock provides exclusive access to an account across concurrent
// transfers. Acquire blocks until the lock is held or ctx is done.
type AccountLock interface {
	Acquire(ctx context.Context, id domain.AccountID) error
	Release(ctx context.Context, id domain.AccountID) error
}

// Config holds the transfer policy knobs.
type Config struct {
	// Threshold is the maximum amount allowed in a single transfer.
	Threshold domain.Money
	// BalanceWindow is how far back the in-memory activity window reaches.
	BalanceWindow time.Duration
}

// Service orchestrates a single money transfer: check the transfer
// threshold, load both accounts, lock, withdraw and deposit in memory,
// persist the two new postings atomically, unlock.
//
// The service is not idempotent: two identical calls produce two transfers.
// Request deduplication belongs to the delivery layer.
type Service struct {
	repo   AccountRepo
	lock   AccountLock
	config Config
}

// New returns a transfer service.
func New(repo AccountRepo, lock AccountLock, config Config) *Service {
	return &Service{
		repo:   repo,
		lock:   lock,
		config: config,
	}
}

// SendMoney transfers amount from the source to the target account.
//
// It returns (false, nil) when the source account has insufficient funds;
// that is a decline, not an error. Errors mean the transfer could not be
// attempted or completed: unknown account, threshold exceeded, lock or
// persistence failure.
func (s *Service) SendMoney(ctx context.Context, sourceID, targetID domain.AccountID, amount domain.Money) (bool, error) {
	l := zerolog.Ctx(ctx)

	if amount.GreaterThan(s.config.Threshold) {
		err := &ThresholdExceededError{Threshold: s.config.Threshold, Actual: amount}
		l.Info().Err(err).Send()

		return false, err
	}

	baselineDate := time.Now().Add(-s.config.BalanceWindow)

	sourceAccount, err := s.repo.LoadAccount(ctx, sourceID, baselineDate)
	if err != nil {
		l.Info().Err(err).Int64("source_account_id", sourceID.Int64()).Send()
		return false, err
	}

	targetAccount, err := s.repo.LoadAccount(ctx, targetID, baselineDate)
	if err != nil {
		l.Info().Err(err).Int64("target_account_id", targetID.Int64()).Send()
		return false, err
	}

	// Locks are acquired in ascending id order no matter which account is
	// the source, so two opposite transfers over the same pair cannot
	// deadlock. The debit runs as soon as the source lock is held, so a
	// declined withdrawal on a source-first order never locks the target.
	held := make([]domain.AccountID, 0, 2)

	releaseHeld := func() {
		for i := len(held) - 1; i >= 0; i-- {
			if err := s.lock.Release(ctx, held[i]); err != nil {
				l.Error().Err(err).Int64("account_id", held[i].Int64()).Msg("release account lock")
			}
		}
	}

	acquire := func(id domain.AccountID) error {
		if err := s.lock.Acquire(ctx, id); err != nil {
			releaseHeld()
			return err
		}

		held = append(held, id)

		return nil
	}

	withdraw := func() (bool, error) {
		ok, err := sourceAccount.Withdraw(amount, targetID)
		if err != nil || !ok {
			releaseHeld()
			return false, err
		}

		return true, nil
	}

	first, second := sourceID, targetID
	if targetID.Int64() < sourceID.Int64() {
		first, second = targetID, sourceID
	}

	if err := acquire(first); err != nil {
		return false, err
	}

	if first == sourceID {
		if ok, err := withdraw(); !ok {
			return false, err
		}
	}

	if second != first {
		if err := acquire(second); err != nil {
			return false, err
		}
	}

	if first != sourceID {
		if ok, err := withdraw(); !ok {
			return false, err
		}
	}

	if _, err := targetAccount.Deposit(amount, sourceID); err != nil {
		releaseHeld()
		return false, err
	}

	newActivities := append(sourceAccount.UnpersistedActivities(), targetAccount.UnpersistedActivities()...)

	if _, err := s.repo.SaveActivities(ctx, newActivities); err != nil {
		l.Error().Err(err).Send()
		releaseHeld()

		return false, err
	}

	releaseHeld()

	return true, nil
}

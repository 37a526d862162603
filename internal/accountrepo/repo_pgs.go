// Package accountrepo manages repository layer of accounts and activities.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/moneyport/moneyport/internal/domain"
	"github.com/moneyport/moneyport/pkg/dbpkg"
	"github.com/moneyport/moneyport/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns account RepoPGS bound to an existing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns account RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const getAccountQuery = `
SELECT id FROM accounts WHERE id = $1
`

const windowActivitiesQuery = `
SELECT
	id, timestamp, owner_account_id, source_account_id, target_account_id, amount
FROM activities
WHERE
	owner_account_id = $1 AND timestamp >= $2
ORDER BY id
`

const depositBalanceQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM activities
WHERE
	target_account_id = $1 AND owner_account_id = $1 AND timestamp < $2
`

const withdrawalBalanceQuery = `
SELECT COALESCE(SUM(amount), 0)
FROM activities
WHERE
	source_account_id = $1 AND owner_account_id = $1 AND timestamp < $2
`

// LoadAccount rebuilds the account aggregate for the given id.
//
// The baseline balance is the net of all the account's own activity strictly
// before baselineDate; the window holds the account's own activity at or
// after it.
func (r *RepoPGS) LoadAccount(ctx context.Context, id domain.AccountID, baselineDate time.Time) (*domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var rawID int64
	if err := r.db.QueryRowContext(ctx, getAccountQuery, id.Int64()).Scan(&rawID); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return nil, errorspkg.ErrInternal
	}

	window, err := r.loadWindow(ctx, id, baselineDate)
	if err != nil {
		return nil, err
	}

	var depositBalance, withdrawalBalance decimal.Decimal

	if err := r.db.QueryRowContext(ctx, depositBalanceQuery, id.Int64(), baselineDate).Scan(&depositBalance); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	if err := r.db.QueryRowContext(ctx, withdrawalBalanceQuery, id.Int64(), baselineDate).Scan(&withdrawalBalance); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	baseline := domain.NewMoneyFromDecimal(depositBalance.Sub(withdrawalBalance))

	return domain.NewAccount(id, baseline, window), nil
}

func (r *RepoPGS) loadWindow(ctx context.Context, id domain.AccountID, baselineDate time.Time) (*domain.ActivityWindow, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, windowActivitiesQuery, id.Int64(), baselineDate)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	window := domain.NewActivityWindow()

	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		window.Append(activity)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return window, nil
}

func scanActivity(rows *sql.Rows) (domain.Activity, error) {
	var (
		rawActivityID int64
		timestamp     time.Time
		rawOwnerID    int64
		rawSourceID   int64
		rawTargetID   int64
		amount        decimal.Decimal
	)

	if err := rows.Scan(&rawActivityID, &timestamp, &rawOwnerID, &rawSourceID, &rawTargetID, &amount); err != nil {
		return domain.Activity{}, err
	}

	activityID, err := domain.NewActivityID(rawActivityID)
	if err != nil {
		return domain.Activity{}, err
	}

	ownerID, err := domain.NewAccountID(rawOwnerID)
	if err != nil {
		return domain.Activity{}, err
	}

	sourceID, err := domain.NewAccountID(rawSourceID)
	if err != nil {
		return domain.Activity{}, err
	}

	targetID, err := domain.NewAccountID(rawTargetID)
	if err != nil {
		return domain.Activity{}, err
	}

	return domain.NewPersistedActivity(activityID, ownerID, sourceID, targetID, timestamp, domain.NewMoneyFromDecimal(amount))
}

const saveActivityQuery = `
INSERT INTO
	activities (timestamp, owner_account_id, source_account_id, target_account_id, amount)
VALUES
	($1, $2, $3, $4, $5)
RETURNING id
`

// SaveActivity persists one activity and returns a copy carrying the
// assigned id.
func (r *RepoPGS) SaveActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, saveActivityQuery,
		activity.Timestamp(),
		activity.OwnerAccountID().Int64(),
		activity.SourceAccountID().Int64(),
		activity.TargetAccountID().Int64(),
		activity.Money().Decimal(),
	)

	var rawID int64
	if err := row.Scan(&rawID); err != nil {
		l.Error().Err(err).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "activities_owner_account_id_fkey",
				"activities_source_account_id_fkey",
				"activities_target_account_id_fkey":
				return domain.Activity{}, domain.ErrAccountNotFound
			case "activities_amount_check":
				return domain.Activity{}, domain.ErrInvalidActivity
			}
		}

		return domain.Activity{}, errorspkg.ErrInternal
	}

	activityID, err := domain.NewActivityID(rawID)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Activity{}, errorspkg.ErrInternal
	}

	return domain.NewPersistedActivity(
		activityID,
		activity.OwnerAccountID(),
		activity.SourceAccountID(),
		activity.TargetAccountID(),
		activity.Timestamp(),
		activity.Money(),
	)
}

// SaveActivities persists all given activities within a single database
// transaction so the postings of one transfer become durable together or
// not at all.
func (r *RepoPGS) SaveActivities(ctx context.Context, activities []domain.Activity) ([]domain.Activity, error) {
	l := zerolog.Ctx(ctx)

	if r.conn == nil {
		return nil, errorspkg.ErrInternal
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := NewTxRepoPGS(tx)

	persisted := make([]domain.Activity, 0, len(activities))

	for _, activity := range activities {
		saved, err := txRepo.SaveActivity(ctx, activity)
		if err != nil {
			return nil, err
		}

		persisted = append(persisted, saved)
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return persisted, nil
}

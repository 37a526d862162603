package accountrepo

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/moneyport/moneyport/internal/domain"
	"github.com/moneyport/moneyport/pkg/configpkg"
	"github.com/moneyport/moneyport/pkg/dbpkg"
	"github.com/moneyport/moneyport/pkg/randompkg"
)

var (
	testDB   *sql.DB
	testRepo *RepoPGS
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err = dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createTestAccount(t *testing.T) domain.AccountID {
	t.Helper()

	var rawID int64
	err := testDB.QueryRow(`INSERT INTO accounts DEFAULT VALUES RETURNING id`).Scan(&rawID)
	require.NoError(t, err)

	id, err := domain.NewAccountID(rawID)
	require.NoError(t, err)

	return id
}

func saveTestActivity(t *testing.T, owner, source, target domain.AccountID, ts time.Time, amount int64) domain.Activity {
	t.Helper()

	activity, err := domain.NewActivity(owner, source, target, ts, domain.NewMoney(amount))
	require.NoError(t, err)

	saved, err := testRepo.SaveActivity(context.Background(), activity)
	require.NoError(t, err)
	require.True(t, saved.IsPersisted())

	return saved
}

func TestSaveActivityRoundTrip(t *testing.T) {
	account1 := createTestAccount(t)
	account2 := createTestAccount(t)

	ts := time.Now().UTC().Truncate(time.Microsecond)

	saved := saveTestActivity(t, account1, account1, account2, ts, 250)

	// Reload through the port with a cutoff before the activity so it lands
	// in the window.
	loaded, err := testRepo.LoadAccount(context.Background(), account1, ts.Add(-time.Hour))
	require.NoError(t, err)

	activities := loaded.Window().Activities()
	require.Len(t, activities, 1)

	got := activities[0]
	require.Equal(t, saved.ID(), got.ID())
	require.Equal(t, account1, got.OwnerAccountID())
	require.Equal(t, account1, got.SourceAccountID())
	require.Equal(t, account2, got.TargetAccountID())
	require.True(t, got.Money().Equal(domain.NewMoney(250)))
	require.True(t, ts.Equal(got.Timestamp().UTC()))
}

func TestLoadAccountSplitsBaselineAndWindow(t *testing.T) {
	account1 := createTestAccount(t)
	account2 := createTestAccount(t)

	cutoff := time.Now().UTC().Truncate(time.Microsecond)

	// Before the cutoff: deposit 1000, withdraw 300 -> baseline 700.
	saveTestActivity(t, account1, account2, account1, cutoff.Add(-48*time.Hour), 1000)
	saveTestActivity(t, account1, account1, account2, cutoff.Add(-24*time.Hour), 300)

	// At and after the cutoff: deposit 50 -> window.
	saveTestActivity(t, account1, account2, account1, cutoff, 50)

	loaded, err := testRepo.LoadAccount(context.Background(), account1, cutoff)
	require.NoError(t, err)

	require.True(t, loaded.BaselineBalance().Equal(domain.NewMoney(700)),
		"baseline is %s", loaded.BaselineBalance())
	require.Equal(t, 1, loaded.Window().Len())

	balance, err := loaded.Balance()
	require.NoError(t, err)
	require.True(t, balance.Equal(domain.NewMoney(750)), "balance is %s", balance)
}

func TestLoadAccountIgnoresForeignActivities(t *testing.T) {
	account1 := createTestAccount(t)
	account2 := createTestAccount(t)

	cutoff := time.Now().UTC().Add(-time.Hour)

	// Owned by account2, so account1's window must not contain it even
	// though account1 is the target.
	saveTestActivity(t, account2, account2, account1, time.Now().UTC(), 100)

	loaded, err := testRepo.LoadAccount(context.Background(), account1, cutoff)
	require.NoError(t, err)
	require.Equal(t, 0, loaded.Window().Len())
}

func TestLoadAccountNotFound(t *testing.T) {
	missing, err := domain.NewAccountID(1 << 60)
	require.NoError(t, err)

	_, err = testRepo.LoadAccount(context.Background(), missing, time.Now())
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestSaveActivitiesAllOrNothing(t *testing.T) {
	account1 := createTestAccount(t)
	account2 := createTestAccount(t)

	missing, err := domain.NewAccountID(1 << 60)
	require.NoError(t, err)

	ts := time.Now().UTC()

	good, err := domain.NewActivity(account1, account1, account2, ts, domain.NewMoney(10))
	require.NoError(t, err)

	bad, err := domain.NewActivity(missing, missing, account2, ts, domain.NewMoney(10))
	require.NoError(t, err)

	_, err = testRepo.SaveActivities(context.Background(), []domain.Activity{good, bad})
	require.Error(t, err)

	// The first insert must have been rolled back with the second.
	var count int
	err = testDB.QueryRow(
		`SELECT COUNT(*) FROM activities WHERE owner_account_id = $1`,
		account1.Int64(),
	).Scan(&count)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestSaveActivitiesAssignsIDs(t *testing.T) {
	account1 := createTestAccount(t)
	account2 := createTestAccount(t)

	ts := time.Now().UTC()
	amount := domain.NewMoney(randompkg.Int64Between(1, 1000))

	withdrawal, err := domain.NewActivity(account1, account1, account2, ts, amount)
	require.NoError(t, err)

	deposit, err := domain.NewActivity(account2, account1, account2, ts, amount)
	require.NoError(t, err)

	persisted, err := testRepo.SaveActivities(context.Background(), []domain.Activity{withdrawal, deposit})
	require.NoError(t, err)
	require.Len(t, persisted, 2)

	for _, a := range persisted {
		require.True(t, a.IsPersisted())
	}

	require.NotEqual(t, persisted[0].ID(), persisted[1].ID())
}

package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollvault/payments-service/internal/pkg/database"
	"github.com/pollvault/payments-service/internal/pkg/models"
	"github.com/pollvault/payments-service/services/payments"
)

// setupMiniredis creates a new miniredis server and returns a Redis client connected to it
func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func setupRateRepoTest(t *testing.T) (*PaymentRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	mr, client := setupMiniredis(t)

	repo := &PaymentRepo{
		cfg: &models.Config{
			Wallet: models.WalletConfig{RateCacheTTL: 300},
		},
		db:          sqlxDB,
		redisClient: &database.RedisClient{Client: client},
	}

	return repo, mock, mr
}

func TestGetExchangeRate_DatabaseHitPopulatesCache(t *testing.T) {
	repo, mock, mr := setupRateRepoTest(t)

	rows := sqlmock.NewRows([]string{"rate"}).AddRow(1.1)
	mock.ExpectQuery("^SELECT rate FROM exchange_rates").
		WithArgs("EUR", "USD").
		WillReturnRows(rows)

	rate, err := repo.GetExchangeRate(context.Background(), "EUR", "USD")

	assert.NoError(t, err)
	assert.Equal(t, 1.1, rate)
	assert.NoError(t, mock.ExpectationsWereMet())

	// The rate now sits in the cache with the configured TTL
	cached, err := mr.Get("exchange_rate:EUR:USD")
	require.NoError(t, err)
	assert.Equal(t, "1.1", cached)
	assert.Equal(t, 300*time.Second, mr.TTL("exchange_rate:EUR:USD"))
}

func TestGetExchangeRate_CacheHitSkipsDatabase(t *testing.T) {
	repo, mock, mr := setupRateRepoTest(t)

	require.NoError(t, mr.Set("exchange_rate:EUR:USD", "1.25"))

	// No query expectation: the database must not be touched
	rate, err := repo.GetExchangeRate(context.Background(), "EUR", "USD")

	assert.NoError(t, err)
	assert.Equal(t, 1.25, rate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExchangeRate_InvalidCacheValueFallsThrough(t *testing.T) {
	repo, mock, mr := setupRateRepoTest(t)

	require.NoError(t, mr.Set("exchange_rate:EUR:USD", "garbage"))

	rows := sqlmock.NewRows([]string{"rate"}).AddRow(1.1)
	mock.ExpectQuery("^SELECT rate FROM exchange_rates").
		WithArgs("EUR", "USD").
		WillReturnRows(rows)

	rate, err := repo.GetExchangeRate(context.Background(), "EUR", "USD")

	assert.NoError(t, err)
	assert.Equal(t, 1.1, rate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExchangeRate_NotFound(t *testing.T) {
	repo, mock, _ := setupRateRepoTest(t)

	mock.ExpectQuery("^SELECT rate FROM exchange_rates").
		WithArgs("EUR", "XYZ").
		WillReturnError(sql.ErrNoRows)

	rate, err := repo.GetExchangeRate(context.Background(), "EUR", "XYZ")

	assert.ErrorIs(t, err, payments.ErrRateNotFound)
	assert.Zero(t, rate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExchangeRate_NoRedisClient(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"rate"}).AddRow(0.9)
	mock.ExpectQuery("^SELECT rate FROM exchange_rates").
		WithArgs("USD", "EUR").
		WillReturnRows(rows)

	rate, err := repo.GetExchangeRate(context.Background(), "USD", "EUR")

	assert.NoError(t, err)
	assert.Equal(t, 0.9, rate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListExchangeRates(t *testing.T) {
	repo, mock, cleanup := setupPaymentRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"from_currency", "to_currency", "rate", "updated_at"}).
		AddRow("EUR", "USD", 1.1, time.Now()).
		AddRow("USD", "NGN", 1500.0, time.Now())
	mock.ExpectQuery("^SELECT (.+) FROM exchange_rates").
		WillReturnRows(rows)

	rates, err := repo.ListExchangeRates(context.Background())

	assert.NoError(t, err)
	require.Len(t, rates, 2)
	assert.Equal(t, "EUR", rates[0].FromCurrency)
	assert.Equal(t, 1500.0, rates[1].Rate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

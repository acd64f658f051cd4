package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var walletColumns = []string{"id", "user_id", "credits", "last_updated"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:   "Valid userID returns wallet",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, credits::text, last_updated FROM wallets WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(walletColumns).AddRow(1, 1, "199.5000", now))
			},
			result: &domain.Wallet{ID: 1, UserID: 1, Credits: decimal.RequireFromString("199.5000"), LastUpdated: now},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets WHERE user_id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name:   "Corrupt credits value",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallets WHERE user_id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows(walletColumns).AddRow(1, 1, "NaN?", now))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Equal(t, tt.result.ID, result.ID)
				assert.True(t, tt.result.Credits.Equal(result.Credits))
				assert.Equal(t, tt.result.LastUpdated, result.LastUpdated)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id) DO NOTHING`)).
		WithArgs(3, "200").
		WillReturnRows(pgxmock.NewRows(walletColumns).AddRow(5, 3, "200.0000", now))

	wallet, err := repo.Create(context.Background(), 3, decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.Equal(t, 3, wallet.UserID)
	assert.True(t, wallet.Credits.Equal(decimal.NewFromInt(200)))

	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (user_id) DO NOTHING`)).
		WithArgs(3, "200").
		WillReturnError(errors.New("database error"))
	_, err = repo.Create(context.Background(), 3, decimal.NewFromInt(200))
	assert.Error(t, err)
}

func TestRepository_Debit(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		remaining string
	}{
		{
			name: "Sufficient balance",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $2 AND credits >= $1::numeric`)).
					WithArgs("1", 1).
					WillReturnRows(pgxmock.NewRows(walletColumns).AddRow(1, 1, "199.0000", now))
			},
			remaining: "199",
		},
		{
			name: "Insufficient balance leaves no row",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $2 AND credits >= $1::numeric`)).
					WithArgs("1", 1).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $2 AND credits >= $1::numeric`)).
					WithArgs("1", 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			wallet, err := repo.Debit(context.Background(), 1, decimal.NewFromInt(1))
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, wallet)
				return
			}
			assert.NoError(t, err)
			if tt.remaining == "" {
				assert.Nil(t, wallet)
			} else {
				require.NotNil(t, wallet)
				assert.True(t, decimal.RequireFromString(tt.remaining).Equal(wallet.Credits))
			}
		})
	}
}

func TestRepository_Credit(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SET credits = credits + $1::numeric`)).
		WithArgs("500", 1).
		WillReturnRows(pgxmock.NewRows(walletColumns).AddRow(1, 1, "700.0000", now))
	wallet, err := repo.Credit(context.Background(), 1, decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(700).Equal(wallet.Credits))

	mock.ExpectQuery(regexp.QuoteMeta(`SET credits = credits + $1::numeric`)).
		WithArgs("500", 2).
		WillReturnError(pgx.ErrNoRows)
	wallet, err = repo.Credit(context.Background(), 2, decimal.NewFromInt(500))
	assert.NoError(t, err)
	assert.Nil(t, wallet)
}

func TestRepository_FindUsersWithoutWallet(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN wallets w ON w.user_id = u.id`)).
		WithArgs(100).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(4).AddRow(9))

	ids, err := repo.FindUsersWithoutWallet(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9}, ids)

	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN wallets w ON w.user_id = u.id`)).
		WithArgs(100).
		WillReturnError(errors.New("database error"))
	_, err = repo.FindUsersWithoutWallet(context.Background(), 100)
	assert.Error(t, err)
}

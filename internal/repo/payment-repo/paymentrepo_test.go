package paymentrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentColumns = []string{"id", "user_id", "transaction_id", "amount", "payment_date", "payment_method", "status"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	paidAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
		expectErr   bool
	}{
		{
			name: "Saved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payment_history`)).
					WithArgs(1, "pay_1", "500", paidAt, "upi", "Completed").
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
			},
		},
		{
			name: "Duplicate transaction",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payment_history`)).
					WithArgs(1, "pay_1", "500", paidAt, "upi", "Completed").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr:   true,
			expectedErr: domain.ErrDuplicateTransaction,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payment_history`)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payment, err := repo.Create(context.Background(), &domain.PaymentHistory{
				UserID:        1,
				TransactionID: "pay_1",
				Amount:        decimal.NewFromInt(500),
				PaymentDate:   paidAt,
				PaymentMethod: "upi",
				Status:        domain.PaymentCompleted,
			})
			if tt.expectErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10, payment.ID)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	paidAt := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		query         domain.ListQuery
		expectedOrder string
		expectedArg   string
	}{
		{
			name:          "Sort by amount ascending",
			query:         domain.ListQuery{Start: 0, Length: 10, OrderColumn: 2, OrderDir: "asc"},
			expectedOrder: "ORDER BY amount ASC, id ASC",
		},
		{
			name:          "Unknown column falls back to date",
			query:         domain.ListQuery{Start: 10, Length: 5, OrderColumn: 42, OrderDir: "sideways"},
			expectedOrder: "ORDER BY payment_date DESC, id DESC",
		},
		{
			name:          "Search is escaped",
			query:         domain.ListQuery{Length: 10, Search: "pay_%"},
			expectedOrder: "ORDER BY payment_date DESC",
			expectedArg:   `pay\_\%`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payment_history WHERE user_id = $1`)).
				WithArgs(1).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payment_history WHERE user_id = $1 AND ($2::text = ''`)).
				WithArgs(1, tt.expectedArg).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
			mock.ExpectQuery(regexp.QuoteMeta(tt.expectedOrder)).
				WithArgs(1, tt.expectedArg, tt.query.Length, tt.query.Start).
				WillReturnRows(pgxmock.NewRows(paymentColumns).
					AddRow(1, 1, "pay_1", "500.00", paidAt, "upi", "Completed").
					AddRow(2, 1, "pay_2", "250.00", paidAt, "card", "Failed"))

			page, err := repo.List(context.Background(), 1, tt.query)
			require.NoError(t, err)
			assert.Equal(t, 3, page.Total)
			assert.Equal(t, 2, page.Filtered)
			require.Len(t, page.Items, 2)
			assert.Equal(t, domain.PaymentFailed, page.Items[1].Status)
			assert.True(t, decimal.NewFromInt(250).Equal(page.Items[1].Amount))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListCountError(t *testing.T) {
	repo, mock := NewMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payment_history`)).
		WillReturnError(errors.New("database error"))

	page, err := repo.List(context.Background(), 1, domain.ListQuery{Length: 10})
	assert.Error(t, err)
	assert.Nil(t, page)
}

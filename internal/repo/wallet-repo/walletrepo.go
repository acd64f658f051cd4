package walletrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var (
		wallet  domain.Wallet
		credits string
	)
	if err := row.Scan(&wallet.ID, &wallet.UserID, &credits, &wallet.LastUpdated); err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(credits)
	if err != nil {
		return nil, fmt.Errorf("parse credits %q: %w", credits, err)
	}
	wallet.Credits = amount
	return &wallet, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
		SELECT id, user_id, credits::text, last_updated
		FROM wallets
		WHERE user_id = $1
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Create inserts a wallet with the given opening balance. When the user
// already has one the existing wallet is returned unchanged.
func (r *Repository) Create(ctx context.Context, userID int, credits decimal.Decimal) (*domain.Wallet, error) {
	query := `
		WITH inserted AS (
			INSERT INTO wallets (user_id, credits)
			VALUES ($1, $2::numeric)
			ON CONFLICT (user_id) DO NOTHING
			RETURNING id, user_id, credits, last_updated
		)
		SELECT id, user_id, credits::text, last_updated FROM inserted
		UNION ALL
		SELECT id, user_id, credits::text, last_updated FROM wallets WHERE user_id = $1
		LIMIT 1
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, userID, credits.String()))
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Credit returns nil when the wallet does not exist.
func (r *Repository) Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET credits = credits + $1::numeric, last_updated = NOW()
		WHERE user_id = $2
		RETURNING id, user_id, credits::text, last_updated
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount.String(), userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

// Debit subtracts amount in a single conditional statement. It returns nil
// when the wallet is missing or holds less than amount.
func (r *Repository) Debit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET credits = credits - $1::numeric, last_updated = NOW()
		WHERE user_id = $2 AND credits >= $1::numeric
		RETURNING id, user_id, credits::text, last_updated
	`
	wallet, err := scanWallet(r.db.QueryRow(ctx, query, amount.String(), userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to debit wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) FindUsersWithoutWallet(ctx context.Context, limit uint32) ([]int, error) {
	query := `
		SELECT u.id
		FROM users u
		LEFT JOIN wallets w ON w.user_id = u.id
		WHERE w.id IS NULL
		ORDER BY u.id
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get users without wallet", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

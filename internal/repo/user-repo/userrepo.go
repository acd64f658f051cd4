package userrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

const selectUser = `
	SELECT id, username, email, password_hash,
		COALESCE(gateway_key_id, ''), COALESCE(gateway_key_secret, ''),
		COALESCE(access_token, ''), COALESCE(jti, ''),
		is_active, created_at, updated_at
	FROM users
`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.GatewayKeyID, &user.GatewayKeySecret,
		&user.AccessToken, &user.JTI,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, selectUser+" WHERE email = $1", email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by email", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, selectUser+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, is_active, created_at, updated_at
	`
	err := repo.db.QueryRow(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrUserExists
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// UpdateCredentials stores the gateway key id and the already encrypted secret.
func (repo *Repository) UpdateCredentials(ctx context.Context, userID int, keyID, encryptedSecret string) error {
	query := `
		UPDATE users
		SET gateway_key_id = $1, gateway_key_secret = $2, updated_at = NOW()
		WHERE id = $3
	`
	tag, err := repo.db.Exec(ctx, query, keyID, encryptedSecret, userID)
	if err != nil {
		zap.L().Error("can't update credentials", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetAccessToken assigns a token only when none is active. It reports
// false when another token is already assigned.
func (repo *Repository) SetAccessToken(ctx context.Context, userID int, token, jti string) (bool, error) {
	query := `
		UPDATE users
		SET access_token = $1, jti = $2, updated_at = NOW()
		WHERE id = $3 AND access_token IS NULL
	`
	tag, err := repo.db.Exec(ctx, query, token, jti, userID)
	if err != nil {
		zap.L().Error("can't set access token", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (repo *Repository) ClearAccessToken(ctx context.Context, userID int, jti string) error {
	query := `
		UPDATE users
		SET access_token = NULL, jti = NULL, updated_at = NOW()
		WHERE id = $1 AND jti = $2
	`
	tag, err := repo.db.Exec(ctx, query, userID, jti)
	if err != nil {
		zap.L().Error("can't clear access token", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

func (repo *Repository) SaveBillingAddress(ctx context.Context, userID int, address domain.BillingAddress) error {
	payload, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("encode billing address: %w", err)
	}

	query := `
		UPDATE users
		SET billing_address = $1::jsonb, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := repo.db.Exec(ctx, query, string(payload), userID)
	if err != nil {
		zap.L().Error("can't save billing address", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (repo *Repository) GetBillingAddress(ctx context.Context, userID int) (*domain.BillingAddress, error) {
	var raw string
	err := repo.db.QueryRow(ctx, "SELECT COALESCE(billing_address::text, '') FROM users WHERE id = $1", userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get billing address", zap.Error(err))
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var address domain.BillingAddress
	if err := json.Unmarshal([]byte(raw), &address); err != nil {
		zap.L().Error("can't decode billing address", zap.Error(err))
		return nil, err
	}
	return &address, nil
}

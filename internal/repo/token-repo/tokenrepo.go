package tokenrepo

import (
	"context"

	"github.com/GlebRadaev/cloudlesspay/internal/pg"
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

// Revoke records jti as revoked. Revoking twice is a no-op.
func (r *Repository) Revoke(ctx context.Context, jti string) error {
	query := `
		INSERT INTO revoked_tokens (jti)
		VALUES ($1)
		ON CONFLICT (jti) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, jti); err != nil {
		zap.L().Error("can't revoke token", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var revoked bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)", jti).Scan(&revoked)
	if err != nil {
		zap.L().Error("can't check revoked token", zap.Error(err))
		return false, err
	}
	return revoked, nil
}

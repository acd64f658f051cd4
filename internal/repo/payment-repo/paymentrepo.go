package paymentrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

var sortColumns = map[int]string{
	0: "payment_date",
	1: "transaction_id",
	2: "amount",
	3: "status",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, payment *domain.PaymentHistory) (*domain.PaymentHistory, error) {
	query := `
		INSERT INTO payment_history (user_id, transaction_id, amount, payment_date, payment_method, status)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		payment.UserID,
		payment.TransactionID,
		payment.Amount.String(),
		payment.PaymentDate,
		payment.PaymentMethod,
		string(payment.Status),
	).Scan(&payment.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrDuplicateTransaction
		}
		zap.L().Error("can't save payment", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

// List returns one page of the user's payments. Search matches transaction
// id and status case-insensitively; unknown sort columns fall back to date.
func (r *Repository) List(ctx context.Context, userID int, q domain.ListQuery) (*domain.PaymentPage, error) {
	page := &domain.PaymentPage{Items: []domain.PaymentHistory{}}

	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM payment_history WHERE user_id = $1", userID).Scan(&page.Total); err != nil {
		zap.L().Error("can't count payments", zap.Error(err))
		return nil, err
	}

	search := likeEscaper.Replace(q.Search)
	filter := `
		FROM payment_history
		WHERE user_id = $1
			AND ($2::text = '' OR transaction_id ILIKE '%' || $2 || '%' OR status ILIKE '%' || $2 || '%')
	`
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*)"+filter, userID, search).Scan(&page.Filtered); err != nil {
		zap.L().Error("can't count filtered payments", zap.Error(err))
		return nil, err
	}

	column, ok := sortColumns[q.OrderColumn]
	if !ok {
		column = sortColumns[0]
	}
	dir := "DESC"
	if strings.EqualFold(q.OrderDir, "asc") {
		dir = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, transaction_id, amount::text, payment_date, payment_method, status
		%s
		ORDER BY %s %s, id %s
		LIMIT $3 OFFSET $4
	`, filter, column, dir, dir)

	rows, err := r.db.Query(ctx, query, userID, search, q.Length, q.Start)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p      domain.PaymentHistory
			amount string
			status string
		)
		if err := rows.Scan(&p.ID, &p.UserID, &p.TransactionID, &amount, &p.PaymentDate, &p.PaymentMethod, &status); err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		p.Status = domain.PaymentStatus(status)
		page.Items = append(page.Items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return page, nil
}

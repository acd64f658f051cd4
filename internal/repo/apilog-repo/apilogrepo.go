package apilogrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"go.uber.org/zap"
)

var sortColumns = map[int]string{
	0: "log_time",
	1: "endpoint",
	2: "domain",
	3: "platform",
	4: "status",
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

// Create appends an entry. A zero UserID is stored as NULL.
func (r *Repository) Create(ctx context.Context, entry *domain.APILog) error {
	query := `
		INSERT INTO api_logs (user_id, endpoint, domain, platform, response, status)
		VALUES (NULLIF($1, 0), $2, $3, $4, $5, $6)
		RETURNING id, log_time
	`
	err := r.db.QueryRow(ctx, query,
		entry.UserID,
		entry.Endpoint,
		entry.Domain,
		entry.Platform,
		entry.Response,
		string(entry.Status),
	).Scan(&entry.ID, &entry.LogTime)
	if err != nil {
		zap.L().Error("can't save api log", zap.Error(err))
		return err
	}
	return nil
}

// CountSuccessful counts the user's successful entries with
// start <= log_time <= end.
func (r *Repository) CountSuccessful(ctx context.Context, userID int, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM api_logs
		WHERE user_id = $1 AND status = 'success' AND log_time BETWEEN $2 AND $3
	`
	var count int
	if err := r.db.QueryRow(ctx, query, userID, start, end).Scan(&count); err != nil {
		zap.L().Error("can't count successful calls", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) List(ctx context.Context, userID int, q domain.ListQuery) (*domain.LogPage, error) {
	page := &domain.LogPage{Items: []domain.APILog{}}

	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM api_logs WHERE user_id = $1", userID).Scan(&page.Total); err != nil {
		zap.L().Error("can't count api logs", zap.Error(err))
		return nil, err
	}

	search := likeEscaper.Replace(q.Search)
	filter := `
		FROM api_logs
		WHERE user_id = $1
			AND ($2::text = '' OR endpoint ILIKE '%' || $2 || '%' OR domain ILIKE '%' || $2 || '%'
				OR platform ILIKE '%' || $2 || '%' OR status ILIKE '%' || $2 || '%')
	`
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*)"+filter, userID, search).Scan(&page.Filtered); err != nil {
		zap.L().Error("can't count filtered api logs", zap.Error(err))
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
		SELECT id, COALESCE(user_id, 0), log_time, endpoint, domain, platform, response, status
		%s
		ORDER BY %s %s, id %s
		LIMIT $3 OFFSET $4
	`, filter, column, dir, dir)

	rows, err := r.db.Query(ctx, query, userID, search, q.Length, q.Start)
	if err != nil {
		zap.L().Error("can't list api logs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry  domain.APILog
			status string
		)
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.LogTime, &entry.Endpoint, &entry.Domain, &entry.Platform, &entry.Response, &status); err != nil {
			zap.L().Error("can't scan api log row", zap.Error(err))
			return nil, err
		}
		entry.Status = domain.LogStatus(status)
		page.Items = append(page.Items, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return page, nil
}

package auditservice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auditservice.go -destination=mocks.go -package=auditservice

const (
	maxEndpointLen = 120
	maxDomainLen   = 120
	maxPlatformLen = 50
)

type Repo interface {
	Create(ctx context.Context, entry *domain.APILog) error
	List(ctx context.Context, userID int, q domain.ListQuery) (*domain.LogPage, error)
}

// Entry is one audited call. Payload is stored verbatim when it is a
// string and JSON encoded otherwise.
type Entry struct {
	UserID   int
	Endpoint string
	Domain   string
	Platform string
	Payload  any
	Status   domain.LogStatus
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, e Entry) error {
	entry := &domain.APILog{
		UserID:   e.UserID,
		Endpoint: truncate(e.Endpoint, maxEndpointLen),
		Domain:   truncate(e.Domain, maxDomainLen),
		Platform: truncate(e.Platform, maxPlatformLen),
		Response: serialize(e.Payload),
		Status:   e.Status,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		zap.L().Error("failed to record audit entry",
			zap.Int("userID", e.UserID),
			zap.String("endpoint", entry.Endpoint),
			zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

func (s *Service) ListLogs(ctx context.Context, userID int, q domain.ListQuery) (*domain.LogPage, error) {
	page, err := s.repo.List(ctx, userID, q.Normalized())
	if err != nil {
		zap.L().Error("failed to list audit entries", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return page, nil
}

func serialize(payload any) string {
	switch v := payload.(type) {
	case nil:
		return ""
	case string:
		return v
	case error:
		return v.Error()
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprint(payload)
	}
	return string(b)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

type clientRule struct {
	marker string
	label  string
}

// Order matters: Chrome and Edge user agents also mention Safari.
var clientRules = []clientRule{
	{"Postman", "Postman"},
	{"curl", "cURL"},
	{"Chrome", "Google Chrome"},
	{"Firefox", "Mozilla Firefox"},
	{"Safari", "Apple Safari"},
	{"Edge", "Microsoft Edge"},
}

// ClassifyClient maps a User-Agent header to a coarse client label.
func ClassifyClient(userAgent string) string {
	for _, rule := range clientRules {
		if !strings.Contains(userAgent, rule.marker) {
			continue
		}
		if rule.marker == "Safari" && strings.Contains(userAgent, "Chrome") {
			continue
		}
		return rule.label
	}
	return "Unknown Client"
}

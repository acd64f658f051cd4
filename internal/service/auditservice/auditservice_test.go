package auditservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestRecord(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		entry         Entry
		expected      *domain.APILog
		repoErr       error
		expectedError error
	}{
		{
			name: "String payload kept verbatim",
			entry: Entry{
				UserID:   1,
				Endpoint: "/api/create-order",
				Domain:   "shop.example.com",
				Platform: "cURL",
				Payload:  "Amount must be greater than zero",
				Status:   domain.LogFailure,
			},
			expected: &domain.APILog{
				UserID:   1,
				Endpoint: "/api/create-order",
				Domain:   "shop.example.com",
				Platform: "cURL",
				Response: "Amount must be greater than zero",
				Status:   domain.LogFailure,
			},
		},
		{
			name: "Structured payload JSON encoded",
			entry: Entry{
				UserID:   1,
				Endpoint: "/api/create-order",
				Payload:  map[string]any{"id": "order_1", "amount": 50000},
				Status:   domain.LogSuccess,
			},
			expected: &domain.APILog{
				UserID:   1,
				Endpoint: "/api/create-order",
				Response: `{"amount":50000,"id":"order_1"}`,
				Status:   domain.LogSuccess,
			},
		},
		{
			name: "Unencodable payload falls back to text",
			entry: Entry{
				UserID:   1,
				Endpoint: "/api/create-order",
				Payload:  map[string]any{"f": func() {}},
				Status:   domain.LogFailure,
			},
			expected: &domain.APILog{
				UserID:   1,
				Endpoint: "/api/create-order",
				Response: "map[f:",
				Status:   domain.LogFailure,
			},
		},
		{
			name: "Long fields truncated",
			entry: Entry{
				UserID:   1,
				Endpoint: strings.Repeat("e", 200),
				Domain:   strings.Repeat("d", 200),
				Platform: strings.Repeat("p", 80),
				Status:   domain.LogSuccess,
			},
			expected: &domain.APILog{
				UserID:   1,
				Endpoint: strings.Repeat("e", 120),
				Domain:   strings.Repeat("d", 120),
				Platform: strings.Repeat("p", 50),
				Status:   domain.LogSuccess,
			},
		},
		{
			name:          "Store failure reported as persistence error",
			entry:         Entry{UserID: 1, Endpoint: "/api/create-order", Status: domain.LogSuccess},
			repoErr:       errors.New("db error"),
			expectedError: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stored *domain.APILog
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.APILog) error {
				stored = e
				return tt.repoErr
			})

			err := service.Record(context.Background(), tt.entry)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, tt.expected.Endpoint, stored.Endpoint)
			assert.Equal(t, tt.expected.Domain, stored.Domain)
			assert.Equal(t, tt.expected.Platform, stored.Platform)
			assert.Equal(t, tt.expected.Status, stored.Status)
			assert.True(t, strings.HasPrefix(stored.Response, tt.expected.Response), stored.Response)
		})
	}
}

func TestListLogs(t *testing.T) {
	service, repo := NewMock(t)
	q := domain.ListQuery{Length: 10}

	repo.EXPECT().List(gomock.Any(), 1, q).Return(&domain.LogPage{Total: 1, Filtered: 1, Items: []domain.APILog{{ID: 1}}}, nil)
	page, err := service.ListLogs(context.Background(), 1, q)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	repo.EXPECT().List(gomock.Any(), 1, q).Return(nil, errors.New("db error"))
	_, err = service.ListLogs(context.Background(), 1, q)
	assert.Error(t, err)

	repo.EXPECT().List(gomock.Any(), 1, domain.ListQuery{Start: 0, Length: domain.MaxPageLength}).Return(&domain.LogPage{}, nil)
	_, err = service.ListLogs(context.Background(), 1, domain.ListQuery{Start: -3, Length: 1000})
	assert.NoError(t, err)
}

func TestClassifyClient(t *testing.T) {
	tests := []struct {
		userAgent string
		expected  string
	}{
		{"PostmanRuntime/7.36.0", "Postman"},
		{"curl/8.4.0", "cURL"},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", "Google Chrome"},
		{"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", "Mozilla Firefox"},
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_2) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15", "Apple Safari"},
		{"Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Edge/18.19045", "Microsoft Edge"},
		{"python-requests/2.31", "Unknown Client"},
		{"", "Unknown Client"},
	}

	for _, tt := range tests {
		t.Run(tt.expected+"/"+tt.userAgent, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyClient(tt.userAgent))
		})
	}
}

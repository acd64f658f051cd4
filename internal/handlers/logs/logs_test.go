package logs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestListLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	loggedAt := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name:  "One page",
			query: "?draw=2&length=1&order%5B0%5D%5Bcolumn%5D=4&order%5B0%5D%5Bdir%5D=asc",
			prepareMock: func() {
				service.EXPECT().ListLogs(gomock.Any(), 1, domain.ListQuery{
					Draw:        2,
					Length:      1,
					OrderColumn: 4,
					OrderDir:    "asc",
				}).Return(&domain.LogPage{
					Total:    2,
					Filtered: 2,
					Items: []domain.APILog{{
						UserID:   1,
						LogTime:  loggedAt,
						Endpoint: "/api/create-order",
						Domain:   "https://shop.example",
						Platform: "Web",
						Response: `{"id":"order_1"}`,
						Status:   domain.LogSuccess,
					}},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"draw":2,"recordsTotal":2,"recordsFiltered":2,"data":[{
				"log_time":"2024-03-15T10:30:00Z","endpoint":"/api/create-order","domain":"https://shop.example",
				"platform":"Web","response":"{\"id\":\"order_1\"}","status":"success"}]}`,
		},
		{
			name:  "Empty page keeps an array",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListLogs(gomock.Any(), 1, gomock.Any()).Return(&domain.LogPage{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"draw":0,"recordsTotal":0,"recordsFiltered":0,"data":[]}`,
		},
		{
			name:  "Repository failure",
			query: "",
			prepareMock: func() {
				service.EXPECT().ListLogs(gomock.Any(), 1, gomock.Any()).Return(nil, errors.New("timeout"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal Server Error","message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, "/api/logs"+tt.query, nil)
			req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
			rr := httptest.NewRecorder()

			handler.ListLogs(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

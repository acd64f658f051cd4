package credentialservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/pkg/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockCipher, *MockVerifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	cipher := NewMockCipher(ctrl)
	verifier := NewMockVerifier(ctrl)
	return New(repo, cipher, verifier), repo, cipher, verifier
}

func TestSetCredentials(t *testing.T) {
	service, repo, cipher, verifier := NewMock(t)
	creds := domain.Credentials{KeyID: "rzp_test_1", KeySecret: "s3cret"}

	tests := []struct {
		name          string
		keyID         string
		keySecret     string
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Success",
			keyID:     "rzp_test_1",
			keySecret: "s3cret",
			prepareMock: func() {
				verifier.EXPECT().ValidateCredentials(gomock.Any(), creds).Return(true, nil)
				cipher.EXPECT().Encrypt("s3cret").Return("ciphertext", nil)
				repo.EXPECT().UpdateCredentials(gomock.Any(), 1, "rzp_test_1", "ciphertext").Return(nil)
			},
		},
		{
			name:          "Missing key id",
			keyID:         "  ",
			keySecret:     "s3cret",
			prepareMock:   func() {},
			expectedError: domain.ErrMissingParameter,
		},
		{
			name:          "Missing key secret",
			keyID:         "rzp_test_1",
			prepareMock:   func() {},
			expectedError: domain.ErrMissingParameter,
		},
		{
			name:      "Rejected by gateway",
			keyID:     "rzp_test_1",
			keySecret: "s3cret",
			prepareMock: func() {
				verifier.EXPECT().ValidateCredentials(gomock.Any(), creds).Return(false, nil)
			},
			expectedError: domain.ErrCredentialsInvalid,
		},
		{
			name:      "Gateway unreachable",
			keyID:     "rzp_test_1",
			keySecret: "s3cret",
			prepareMock: func() {
				verifier.EXPECT().ValidateCredentials(gomock.Any(), creds).Return(false, errors.New("dial tcp: timeout"))
			},
			expectedError: domain.ErrGatewayUnexpected,
		},
		{
			name:      "Encryption failure",
			keyID:     "rzp_test_1",
			keySecret: "s3cret",
			prepareMock: func() {
				verifier.EXPECT().ValidateCredentials(gomock.Any(), creds).Return(true, nil)
				cipher.EXPECT().Encrypt("s3cret").Return("", errors.New("no key"))
			},
			expectedError: domain.ErrConfiguration,
		},
		{
			name:      "Store failure",
			keyID:     "rzp_test_1",
			keySecret: "s3cret",
			prepareMock: func() {
				verifier.EXPECT().ValidateCredentials(gomock.Any(), creds).Return(true, nil)
				cipher.EXPECT().Encrypt("s3cret").Return("ciphertext", nil)
				repo.EXPECT().UpdateCredentials(gomock.Any(), 1, "rzp_test_1", "ciphertext").Return(domain.ErrUserNotFound)
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.SetCredentials(context.Background(), 1, tt.keyID, tt.keySecret)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetCredentials(t *testing.T) {
	service, repo, cipher, _ := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      domain.Credentials
		expectedError error
	}{
		{
			name: "Success",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, GatewayKeyID: "rzp_test_1", GatewayKeySecret: "ciphertext"}, nil)
				cipher.EXPECT().Decrypt("ciphertext").Return("s3cret", nil)
			},
			expected: domain.Credentials{KeyID: "rzp_test_1", KeySecret: "s3cret"},
		},
		{
			name: "User not found",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrUserNotFound,
		},
		{
			name: "Not configured",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, GatewayKeyID: "rzp_test_1"}, nil)
			},
			expectedError: domain.ErrCredentialsNotConfigured,
		},
		{
			name: "Undecryptable secret",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, GatewayKeyID: "rzp_test_1", GatewayKeySecret: "garbage"}, nil)
				cipher.EXPECT().Decrypt("garbage").Return("", vault.ErrDecryption)
			},
			expectedError: domain.ErrDecryption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			creds, err := service.GetCredentials(context.Background(), 1)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, creds)
		})
	}
}

func TestVerifyStored(t *testing.T) {
	service, repo, cipher, verifier := NewMock(t)

	repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, GatewayKeyID: "rzp_test_1", GatewayKeySecret: "ciphertext"}, nil).Times(2)
	cipher.EXPECT().Decrypt("ciphertext").Return("s3cret", nil).Times(2)

	verifier.EXPECT().ValidateCredentials(gomock.Any(), domain.Credentials{KeyID: "rzp_test_1", KeySecret: "s3cret"}).Return(true, nil)
	assert.NoError(t, service.VerifyStored(context.Background(), 1))

	verifier.EXPECT().ValidateCredentials(gomock.Any(), gomock.Any()).Return(false, nil)
	assert.ErrorIs(t, service.VerifyStored(context.Background(), 1), domain.ErrCredentialsInvalid)
}

func TestRoundTripWithVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	verifier := NewMockVerifier(ctrl)
	v, err := vault.New("test-secret")
	require.NoError(t, err)
	service := New(repo, v, verifier)

	var stored string
	verifier.EXPECT().ValidateCredentials(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().UpdateCredentials(gomock.Any(), 1, "rzp_test_1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, _ string, encrypted string) error {
			stored = encrypted
			return nil
		})
	require.NoError(t, service.SetCredentials(context.Background(), 1, "rzp_test_1", "s3cret"))
	assert.NotEqual(t, "s3cret", stored)

	repo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, GatewayKeyID: "rzp_test_1", GatewayKeySecret: stored}, nil)
	creds, err := service.GetCredentials(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", creds.KeySecret)
}

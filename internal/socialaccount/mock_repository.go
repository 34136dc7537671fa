package socialaccount

import (
	"context"

	"github.com/postpilot/postpilot-backend/internal/integrations/meta"
	accountdb "github.com/postpilot/postpilot-backend/internal/socialaccount/gen"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of accountdb.Querier
type MockAccountRepository struct {
	mock.Mock
}

// DeleteSocialAccount mocks the DeleteSocialAccount method
func (m *MockAccountRepository) DeleteSocialAccount(ctx context.Context, arg accountdb.DeleteSocialAccountParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

// GetSocialAccountByID mocks the GetSocialAccountByID method
func (m *MockAccountRepository) GetSocialAccountByID(ctx context.Context, id uuid.UUID) (accountdb.UserSocialAccount, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(accountdb.UserSocialAccount), args.Error(1)
}

// ListSocialAccountsByUser mocks the ListSocialAccountsByUser method
func (m *MockAccountRepository) ListSocialAccountsByUser(ctx context.Context, userID uuid.UUID) ([]accountdb.UserSocialAccount, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]accountdb.UserSocialAccount), args.Error(1)
}

// UpdateSocialAccountToken mocks the UpdateSocialAccountToken method
func (m *MockAccountRepository) UpdateSocialAccountToken(ctx context.Context, arg accountdb.UpdateSocialAccountTokenParams) (accountdb.UserSocialAccount, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(accountdb.UserSocialAccount), args.Error(1)
}

// UpsertSocialAccount mocks the UpsertSocialAccount method
func (m *MockAccountRepository) UpsertSocialAccount(ctx context.Context, arg accountdb.UpsertSocialAccountParams) (accountdb.UserSocialAccount, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(accountdb.UserSocialAccount), args.Error(1)
}

// MockExchanger is a mock implementation of TokenExchanger
type MockExchanger struct {
	mock.Mock
}

// AuthorizationURL mocks the AuthorizationURL method
func (m *MockExchanger) AuthorizationURL() string {
	args := m.Called()
	return args.String(0)
}

// ExchangeCode mocks the ExchangeCode method
func (m *MockExchanger) ExchangeCode(ctx context.Context, code string) (*meta.TokenResponse, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.TokenResponse), args.Error(1)
}

// ExchangeLongLived mocks the ExchangeLongLived method
func (m *MockExchanger) ExchangeLongLived(ctx context.Context, shortToken string) (*meta.TokenResponse, error) {
	args := m.Called(ctx, shortToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.TokenResponse), args.Error(1)
}

// RefreshLongLived mocks the RefreshLongLived method
func (m *MockExchanger) RefreshLongLived(ctx context.Context, longToken string) (*meta.TokenResponse, error) {
	args := m.Called(ctx, longToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.TokenResponse), args.Error(1)
}

// GetAccountProfile mocks the GetAccountProfile method
func (m *MockExchanger) GetAccountProfile(ctx context.Context, accessToken string) (*meta.AccountProfile, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*meta.AccountProfile), args.Error(1)
}

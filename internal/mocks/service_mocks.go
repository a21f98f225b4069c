package mocks

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// TokenService is a mock of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) GenerateTokens(accountID, businessID uuid.UUID, role string) (string, string, error) {
	args := m.Called(accountID, businessID, role)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *TokenService) ValidateToken(tokenString, secret string) (*jwt.Token, error) {
	args := m.Called(tokenString, secret)
	if token, ok := args.Get(0).(*jwt.Token); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *TokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// PasswordHasher is a mock of service.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

// NotificationService is a mock of service.NotificationService.
type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) NotifyTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	return m.Called(ctx, topic, title, body, data).Error(0)
}

// EventPublisher is a mock of service.EventPublisher.
type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *EventPublisher) Close() error {
	return m.Called().Error(0)
}

// QRCodeService is a mock of service.QRCodeService.
type QRCodeService struct {
	mock.Mock
}

func (m *QRCodeService) GenerateStorefrontQR(url string) ([]byte, error) {
	args := m.Called(url)
	if png, ok := args.Get(0).([]byte); ok {
		return png, args.Error(1)
	}

	return nil, args.Error(1)
}

// WhatsAppService is a mock of service.WhatsAppService.
type WhatsAppService struct {
	mock.Mock
}

func (m *WhatsAppService) OrderLink(business *entity.Business, order *entity.Order) string {
	return m.Called(business, order).String(0)
}

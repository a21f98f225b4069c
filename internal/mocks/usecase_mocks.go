package mocks

import (
	"context"

	"storefront/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// CheckoutUsecase is a mock of usecase.CheckoutUsecase.
type CheckoutUsecase struct {
	mock.Mock
}

func (m *CheckoutUsecase) PlaceOrder(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	args := m.Called(ctx, input)
	if result, ok := args.Get(0).(*usecase.CheckoutResult); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

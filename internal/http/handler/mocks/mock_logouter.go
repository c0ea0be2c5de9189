package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockLogouter struct {
	mock.Mock
}

func (m *MockLogouter) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumebuilder/internal/dashboard"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Overview(ctx context.Context) (dashboard.Overview, error) {
	args := m.Called(ctx)
	return args.Get(0).(dashboard.Overview), args.Error(1)
}

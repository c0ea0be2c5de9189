package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumebuilder/internal/model"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) ListResumes(ctx context.Context) ([]model.ResumeDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ResumeDocument), args.Error(1)
}

func (m *MockSource) RecentActivities(ctx context.Context, limit int) ([]model.ActivityRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityRecord), args.Error(1)
}

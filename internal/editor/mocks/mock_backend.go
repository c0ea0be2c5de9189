package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumebuilder/internal/apiclient"
	"resumebuilder/internal/model"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) ListResumes(ctx context.Context) ([]model.ResumeDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ResumeDocument), args.Error(1)
}

func (m *MockBackend) CreateResume(ctx context.Context, doc model.ResumeDocument) (*model.ResumeDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResumeDocument), args.Error(1)
}

func (m *MockBackend) UpdateResume(ctx context.Context, id string, doc model.ResumeDocument) (*model.ResumeDocument, error) {
	args := m.Called(ctx, id, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ResumeDocument), args.Error(1)
}

func (m *MockBackend) DeleteResume(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) DownloadResume(ctx context.Context, id string) (*apiclient.Download, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apiclient.Download), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumebuilder/internal/model"
	"resumebuilder/internal/service"
)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) RenderHTML(ctx context.Context, doc model.ResumeDocument) ([]byte, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockExportService) RenderPDF(ctx context.Context, doc model.ResumeDocument) (*service.Export, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Export), args.Error(1)
}

func (m *MockExportService) Publish(ctx context.Context, owner string, doc model.ResumeDocument) (*service.Published, error) {
	args := m.Called(ctx, owner, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Published), args.Error(1)
}

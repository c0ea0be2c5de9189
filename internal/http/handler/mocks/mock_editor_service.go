package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumebuilder/internal/editor"
	"resumebuilder/internal/model"
)

type MockEditorService struct {
	mock.Mock
}

func (m *MockEditorService) Snapshot() editor.State {
	args := m.Called()
	return args.Get(0).(editor.State)
}

func (m *MockEditorService) Active() model.ResumeDocument {
	args := m.Called()
	return args.Get(0).(model.ResumeDocument)
}

// Edit applies fn to the document configured as the first return value,
// unless an error is configured.
func (m *MockEditorService) Edit(fn func(model.ResumeDocument) (model.ResumeDocument, error)) (model.ResumeDocument, error) {
	args := m.Called()
	base := args.Get(0).(model.ResumeDocument)
	if err := args.Error(1); err != nil {
		return model.ResumeDocument{}, err
	}
	return fn(base)
}

func (m *MockEditorService) Save(ctx context.Context) (model.ResumeDocument, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.ResumeDocument), args.Error(1)
}

func (m *MockEditorService) NewDocument(ctx context.Context) (model.ResumeDocument, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.ResumeDocument), args.Error(1)
}

func (m *MockEditorService) LoadDocument(ctx context.Context, id string) (model.ResumeDocument, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ResumeDocument), args.Error(1)
}

func (m *MockEditorService) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEditorService) Download(ctx context.Context, id string) (*editor.Download, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*editor.Download), args.Error(1)
}

func (m *MockEditorService) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

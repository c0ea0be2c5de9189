package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPDFConverter struct {
	mock.Mock
}

func (m *MockPDFConverter) ConvertHTML(ctx context.Context, html []byte) ([]byte, error) {
	args := m.Called(ctx, html)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTextCompleter is a testify mock for port.TextCompleter.
type MockTextCompleter struct {
	mock.Mock
}

func (m *MockTextCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

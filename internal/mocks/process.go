package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/lc/confy/internal/process"
)

var _ process.Checker = (*MockProcessChecker)(nil)

// MockProcessChecker is a mock implementation of process.Checker.
type MockProcessChecker struct {
	mock.Mock
}

// Alive mocks the Alive method.
func (m *MockProcessChecker) Alive(pid int) bool {
	args := m.Called(pid)
	return args.Bool(0)
}

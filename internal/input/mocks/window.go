// Package mocks provides testify mocks for the input package interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/bnema/lunar/internal/input"
)

// MockWindow is a mock implementation of input.Window.
type MockWindow struct {
	mock.Mock

	cursor *mock.Call
}

var _ input.Window = (*MockWindow)(nil)

// NewMockWindow creates a MockWindow and asserts its expectations on cleanup.
func NewMockWindow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWindow {
	m := &MockWindow{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CursorPos provides a mock function.
func (m *MockWindow) CursorPos() (float64, float64) {
	args := m.Called()
	return args.Get(0).(float64), args.Get(1).(float64)
}

// KeyDown provides a mock function.
func (m *MockWindow) KeyDown(key input.Identifier) bool {
	return m.Called(key).Bool(0)
}

// ButtonDown provides a mock function.
func (m *MockWindow) ButtonDown(button input.Identifier) bool {
	return m.Called(button).Bool(0)
}

// HoldNothing makes every key and button report released.
func (m *MockWindow) HoldNothing() *MockWindow {
	m.On("KeyDown", mock.Anything).Return(false).Maybe()
	m.On("ButtonDown", mock.Anything).Return(false).Maybe()
	return m
}

// Hold makes the given keys report pressed and all others released.
// It must be called before any other KeyDown expectation is set.
func (m *MockWindow) Hold(keys ...input.Identifier) *MockWindow {
	for _, k := range keys {
		m.On("KeyDown", k).Return(true).Maybe()
	}
	m.On("KeyDown", mock.Anything).Return(false).Maybe()
	return m
}

// HoldButtons makes the given buttons report pressed and all others released.
func (m *MockWindow) HoldButtons(buttons ...input.Identifier) *MockWindow {
	for _, b := range buttons {
		m.On("ButtonDown", b).Return(true).Maybe()
	}
	m.On("ButtonDown", mock.Anything).Return(false).Maybe()
	return m
}

// At makes CursorPos report (x, y) until the next call to At.
func (m *MockWindow) At(x, y float64) *MockWindow {
	if m.cursor != nil {
		m.cursor.Unset()
	}
	m.cursor = m.On("CursorPos").Return(x, y).Maybe()
	return m
}

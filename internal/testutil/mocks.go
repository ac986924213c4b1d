package testutil

import (
	"context"

	"cncbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Add(rec domain.UserRecord) error {
	args := m.Called(rec)
	return args.Error(0)
}

func (m *MockUserRepository) All() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserRepository) Get(userID int64) (*domain.UserRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRecord), args.Error(1)
}

// MockReportRepository is a mock for ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Save(userID int64, message string) error {
	args := m.Called(userID, message)
	return args.Error(0)
}

// MockNewsRepository is a mock for NewsRepository
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) Current() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockNewsRepository) Update(text string) error {
	args := m.Called(text)
	return args.Error(0)
}

// MockCompleter is a mock for the completion client
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockSender is a mock for the broadcast sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}

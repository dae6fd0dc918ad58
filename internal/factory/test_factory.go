package factory

import (
	"time"

	"vidportal/internal/dependencies/mocks"
	"vidportal/internal/services/account"
	"vidportal/internal/services/auth"
	"vidportal/internal/storage/memory"
	"vidportal/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with mocked
// dependencies; mediaDir should be a per-test temporary directory
func NewTestApp(mediaDir string) (*TestApp, error) {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app, err := newWithDependencies(
		store, mockClock, mediaDir,
		auth.DefaultConfig(), account.DefaultConfig(), testutil.NopLogger())
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}, nil
}

package factory

import (
	"time"

	"github.com/dkaye/rpsgame-go/internal/classifier"
	"github.com/dkaye/rpsgame-go/internal/dependencies/mocks"
	"github.com/dkaye/rpsgame-go/internal/storage/memory"
	"github.com/dkaye/rpsgame-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The untrained classifier stands in for the trained one so predictions stay
// deterministic without the embedded weights.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, classifier.NewUntrained(), mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

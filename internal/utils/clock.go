package utils

import "time"

// Clock abstracts wall-clock time so expiry and timestamp logic can be
// tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock always reports FixedNow; tests move time by reassigning it.
type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

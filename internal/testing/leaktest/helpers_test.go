package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()
	go func() {
		time.Sleep(30 * time.Millisecond)
		close(done)
	}()

	// Both goroutines finish within the settle window
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(1)
	close(done)
}

func TestWaitFor_TimesOut(t *testing.T) {
	done := make(chan struct{})
	defer close(done)
	go func() {
		<-done
	}()

	_, ok := waitFor(0, 20*time.Millisecond)
	assert.False(t, ok)
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		finished := make(chan struct{})
		go func() { close(finished) }()
		<-finished
	})
}

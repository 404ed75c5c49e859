package chaos

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateDefaults(t *testing.T) {
	s := NewState()
	latency, rate := s.Snapshot()
	assert.Equal(t, 0, latency)
	assert.Equal(t, 0.0, rate)
}

func TestSetAndReset(t *testing.T) {
	s := NewState()

	s.SetLatency(250)
	s.SetErrorRate(0.4)
	latency, rate := s.Snapshot()
	assert.Equal(t, 250, latency)
	assert.InDelta(t, 0.4, rate, 1e-9)

	s.Reset()
	latency, rate = s.Snapshot()
	assert.Equal(t, 0, latency)
	assert.Equal(t, 0.0, rate)
}

func TestNegativeLatencyClamped(t *testing.T) {
	s := NewState()
	s.SetLatency(-100)
	latency, _ := s.Snapshot()
	assert.Equal(t, 0, latency)
}

func TestErrorRateNotBounded(t *testing.T) {
	s := NewState()

	s.SetErrorRate(2.5)
	_, rate := s.Snapshot()
	assert.InDelta(t, 2.5, rate, 1e-9)

	s.SetErrorRate(-1)
	_, rate = s.Snapshot()
	assert.InDelta(t, -1, rate, 1e-9)
}

func TestConcurrentAccess(t *testing.T) {
	s := NewState()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			s.SetLatency(n)
		}(i)
		go func() {
			defer wg.Done()
			s.Snapshot()
		}()
	}
	wg.Wait()

	latency, _ := s.Snapshot()
	assert.GreaterOrEqual(t, latency, 0)
	assert.Less(t, latency, 20)
}

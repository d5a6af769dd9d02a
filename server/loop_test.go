package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGameLoopDefaultsTickRate(t *testing.T) {
	g := NewGameLoop(nil, 0)
	assert.Equal(t, defaultTickRate, g.tickRate)
	assert.InDelta(t, 1.0/60, g.TickDuration(), 1e-12)
}

func TestGameLoopStops(t *testing.T) {
	s := newTestServer(t, "")
	// One tick per second keeps the ticker quiet for the test
	g := NewGameLoop(s, 1)

	done := make(chan struct{})
	go func() {
		g.Run()
		close(done)
	}()
	g.Stop()

	select {
	case <-done:
	case <-time.After(time.Second / 2):
		t.Fatal("Run did not return after Stop")
	}
}

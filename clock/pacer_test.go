package clock

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestPacerDue(t *testing.T) {
	c := &Manual{Now: 5000}
	p := NewPacer(c, 700, 60)

	steps, ticks := p.Due()
	assert.Equal(t, 0, steps)
	assert.Equal(t, 0, ticks)

	c.Advance(100)
	steps, ticks = p.Due()
	assert.Equal(t, 70, steps)
	assert.Equal(t, 6, ticks)

	// nothing new is due without the clock moving
	steps, ticks = p.Due()
	assert.Equal(t, 0, steps)
	assert.Equal(t, 0, ticks)
}

func TestPacerNoDrift(t *testing.T) {
	c := &Manual{}
	p := NewPacer(c, 700, 60)

	totalSteps, totalTicks := 0, 0
	for i := 0; i < 1000; i++ {
		c.Advance(1)

		steps, ticks := p.Due()
		totalSteps += steps
		totalTicks += ticks
	}

	assert.Equal(t, 700, totalSteps)
	assert.Equal(t, 60, totalTicks)
}

func TestPacerDropsBacklog(t *testing.T) {
	c := &Manual{}
	p := NewPacer(c, 700, 60)

	c.Advance(DefaultMaxLag + 100)
	steps, ticks := p.Due()
	assert.Equal(t, 0, steps)
	assert.Equal(t, 0, ticks)

	c.Advance(10)
	steps, ticks = p.Due()
	assert.Equal(t, 7, steps)
	assert.Equal(t, 0, ticks)
}

func TestPacerRestart(t *testing.T) {
	c := &Manual{}
	p := NewPacer(c, 1000, 60)

	c.Advance(50)
	p.Restart()

	c.Advance(20)
	steps, _ := p.Due()
	assert.Equal(t, 20, steps)
}

func TestMonotonic(t *testing.T) {
	m := NewMonotonic()
	assert.True(t, m.Millis() >= 0)

	time.Sleep(2 * time.Millisecond)
	assert.True(t, m.Millis() >= 2)
}

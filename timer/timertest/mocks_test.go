package timertest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ember-rt/timercommon/timer"
)

func TestMock(t *testing.T) {
	var (
		assert = assert.New(t)
		m      = new(Mock)
	)

	m.OnArm(5, nil).Once()
	m.OnArm(500, timer.ErrInvalidDuration).Once()
	m.OnAdvance(true).Once()
	m.OnCheckInterrupt(false).Once()
	m.OnReset().Once()
	m.OnArmStopwatch().Once()
	m.OnValue(4).Once()
	m.OnEnabled(true).Once()
	m.OnInterrupted(false).Once()
	m.OnMode(timer.Countdown).Once()
	m.OnMaxDuration(10).Once()

	assert.NoError(m.Arm(5))
	assert.Equal(timer.ErrInvalidDuration, m.Arm(500))
	assert.True(m.Advance())
	assert.False(m.CheckInterrupt())
	m.Reset()
	m.ArmStopwatch()
	assert.Equal(4, m.Value())
	assert.True(m.Enabled())
	assert.False(m.Interrupted())
	assert.Equal(timer.Countdown, m.Mode())
	assert.Equal(10, m.MaxDuration())

	m.AssertExpectations(t)
}

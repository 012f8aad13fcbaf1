package timertest

import (
	"github.com/stretchr/testify/mock"

	"github.com/ember-rt/timercommon/timer"
)

// Mock is a stretchr mock for a timer.  In addition to implementing
// timer.Interface and supplying mock behavior, other methods that make mocking
// a bit easier are supplied.
type Mock struct {
	mock.Mock
}

var _ timer.Interface = (*Mock)(nil)

func (m *Mock) Arm(duration int) error {
	return m.Called(duration).Error(0)
}

func (m *Mock) OnArm(duration int, err error) *mock.Call {
	return m.On("Arm", duration).Return(err)
}

func (m *Mock) ArmStopwatch() {
	m.Called()
}

func (m *Mock) OnArmStopwatch() *mock.Call {
	return m.On("ArmStopwatch")
}

func (m *Mock) Advance() bool {
	return m.Called().Bool(0)
}

func (m *Mock) OnAdvance(advanced bool) *mock.Call {
	return m.On("Advance").Return(advanced)
}

func (m *Mock) CheckInterrupt() bool {
	return m.Called().Bool(0)
}

func (m *Mock) OnCheckInterrupt(fired bool) *mock.Call {
	return m.On("CheckInterrupt").Return(fired)
}

func (m *Mock) Reset() {
	m.Called()
}

func (m *Mock) OnReset() *mock.Call {
	return m.On("Reset")
}

func (m *Mock) Value() int {
	return m.Called().Int(0)
}

func (m *Mock) OnValue(v int) *mock.Call {
	return m.On("Value").Return(v)
}

func (m *Mock) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *Mock) OnEnabled(enabled bool) *mock.Call {
	return m.On("Enabled").Return(enabled)
}

func (m *Mock) Interrupted() bool {
	return m.Called().Bool(0)
}

func (m *Mock) OnInterrupted(interrupted bool) *mock.Call {
	return m.On("Interrupted").Return(interrupted)
}

func (m *Mock) Mode() timer.Mode {
	return m.Called().Get(0).(timer.Mode)
}

func (m *Mock) OnMode(mode timer.Mode) *mock.Call {
	return m.On("Mode").Return(mode)
}

func (m *Mock) MaxDuration() int {
	return m.Called().Int(0)
}

func (m *Mock) OnMaxDuration(maxDuration int) *mock.Call {
	return m.On("MaxDuration").Return(maxDuration)
}

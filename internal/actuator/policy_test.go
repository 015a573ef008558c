package actuator_test

import (
	"testing"
	"time"

	"codeberg.org/mutker/zonectl/internal/actuator"
	"codeberg.org/mutker/zonectl/internal/alert"
	"github.com/stretchr/testify/assert"
)

func TestPlanAllQuiet(t *testing.T) {
	cmd := actuator.Plan(alert.State{})

	assert.True(t, cmd.Green)
	assert.False(t, cmd.Yellow)
	assert.False(t, cmd.Red)
	assert.False(t, cmd.Fan)
	assert.Equal(t, time.Duration(0), cmd.BuzzerPulse)
}

func TestPlanZoneA(t *testing.T) {
	cmd := actuator.Plan(alert.State{ZoneA: true})

	assert.False(t, cmd.Green)
	assert.True(t, cmd.Yellow)
	assert.False(t, cmd.Red)
	assert.Equal(t, 100*time.Millisecond, cmd.BuzzerPulse)
}

func TestPlanZoneB(t *testing.T) {
	cmd := actuator.Plan(alert.State{ZoneB: true})

	assert.False(t, cmd.Green)
	assert.False(t, cmd.Yellow)
	assert.True(t, cmd.Red)
	assert.Equal(t, 100*time.Millisecond, cmd.BuzzerPulse)
}

func TestPlanBothZonesWithHighTemp(t *testing.T) {
	cmd := actuator.Plan(alert.State{ZoneA: true, ZoneB: true, HighTemp: true})

	assert.False(t, cmd.Green)
	assert.True(t, cmd.Yellow)
	assert.True(t, cmd.Red)
	assert.True(t, cmd.Fan)
	assert.Equal(t, 100*time.Millisecond, cmd.BuzzerPulse)
}

func TestPlanHighTempDrivesFanOnly(t *testing.T) {
	// The aggregate flag always rides along with a zone flag in
	// practice; on its own it must only touch the fan
	cmd := actuator.Plan(alert.State{HighTemp: true})

	assert.True(t, cmd.Green)
	assert.True(t, cmd.Fan)
	assert.Equal(t, time.Duration(0), cmd.BuzzerPulse)
}

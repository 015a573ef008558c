package sensor_test

import (
	"testing"

	"codeberg.org/mutker/zonectl/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceCalibration() sensor.Calibration {
	return sensor.Calibration{
		ADCMax:    4095,
		VRef:      3.3,
		NTCBeta:   3950,
		NTCKelvin: 298.15,
		NTCSeries: 10000,
		LDRGamma:  0.7,
		LDRRL10:   50,
		LDRSeries: 10000,
	}
}

func TestThermistorRejectsRailCodes(t *testing.T) {
	cal := referenceCalibration()

	for _, code := range []int{-100, -1, 0, 4095, 4096, 10000} {
		reading := cal.Thermistor(code)
		assert.False(t, reading.Valid(), "code %d should map to the no-reading sentinel", code)
	}
}

func TestThermistorAcceptsCodesJustInsideRails(t *testing.T) {
	cal := referenceCalibration()

	assert.True(t, cal.Thermistor(1).Valid(), "code 1 is inside the rails")
	assert.True(t, cal.Thermistor(4094).Valid(), "code 4094 is inside the rails")
}

func TestThermistorMidScale(t *testing.T) {
	cal := referenceCalibration()

	celsius, ok := cal.Thermistor(2048).Celsius()
	require.True(t, ok)
	assert.InDelta(t, 24.99, celsius, 0.05, "mid-scale code should read near the nominal 25C point")
}

func TestThermistorColderAtHigherCodes(t *testing.T) {
	// The reading falls as the code rises on this divider
	cal := referenceCalibration()

	hot, ok := cal.Thermistor(1000).Celsius()
	require.True(t, ok)
	cold, ok := cal.Thermistor(3000).Celsius()
	require.True(t, ok)

	assert.InDelta(t, 52.8, hot, 0.1)
	assert.InDelta(t, 3.9, cold, 0.1)
	assert.Greater(t, hot, cold)
}

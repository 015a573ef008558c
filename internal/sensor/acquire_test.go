package sensor_test

import (
	"errors"
	"testing"

	"codeberg.org/mutker/zonectl/internal/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnalog struct {
	ntcCode int
	ntcErr  error
	ldrCode int
	ldrErr  error
}

func (f *fakeAnalog) ThermistorCode() (int, error)    { return f.ntcCode, f.ntcErr }
func (f *fakeAnalog) PhotoresistorCode() (int, error) { return f.ldrCode, f.ldrErr }

type fakeProbe struct {
	humidity    float64
	temperature float64
	err         error
}

func (f *fakeProbe) Read() (float64, float64, error) {
	return f.humidity, f.temperature, f.err
}

func TestSampleReadsBothZones(t *testing.T) {
	analog := &fakeAnalog{ntcCode: 2048, ldrCode: 2048}
	probe := &fakeProbe{humidity: 55.5, temperature: 21.0}
	sampler := sensor.NewSampler(referenceCalibration(), analog, probe)

	zoneB := sensor.NewZoneB()
	zoneA := sampler.Sample(&zoneB)

	celsius, ok := zoneA.Temp.Celsius()
	require.True(t, ok)
	assert.InDelta(t, 24.99, celsius, 0.05)

	lux, ok := zoneA.Light.Lux()
	require.True(t, ok)
	assert.InDelta(t, 99.6, lux, 0.4)

	temp, ok := zoneB.Temp.Value()
	require.True(t, ok)
	assert.InDelta(t, 21.0, temp, 1e-9, "probe temperature lands in the temperature field")

	humidity, ok := zoneB.Humidity.Value()
	require.True(t, ok)
	assert.InDelta(t, 55.5, humidity, 1e-9, "probe humidity lands in the humidity field")
}

func TestSampleAnalogFaultsMapToSentinels(t *testing.T) {
	analog := &fakeAnalog{ntcErr: errors.New("bus fault"), ldrErr: errors.New("bus fault")}
	probe := &fakeProbe{humidity: 50, temperature: 20}
	sampler := sensor.NewSampler(referenceCalibration(), analog, probe)

	zoneB := sensor.NewZoneB()
	zoneA := sampler.Sample(&zoneB)

	assert.False(t, zoneA.Temp.Valid(), "a failed thermistor read is a no-reading sentinel")
	assert.True(t, zoneA.Light.IsDark(), "a failed photoresistor read counts as dark")
}

func TestSampleRetainsClimateAcrossProbeFault(t *testing.T) {
	analog := &fakeAnalog{ntcCode: 2048, ldrCode: 2048}
	probe := &fakeProbe{humidity: 45.0, temperature: 22.0}
	sampler := sensor.NewSampler(referenceCalibration(), analog, probe)

	zoneB := sensor.NewZoneB()
	sampler.Sample(&zoneB)

	// The probe starts failing; the last good values must survive
	probe.err = errors.New("checksum mismatch")
	sampler.Sample(&zoneB)

	humidity, ok := zoneB.Humidity.Value()
	require.True(t, ok, "a valid humidity must not be overwritten by a failed read")
	assert.InDelta(t, 45.0, humidity, 1e-9)

	temp, ok := zoneB.Temp.Value()
	require.True(t, ok)
	assert.InDelta(t, 22.0, temp, 1e-9)
}

func TestSampleEscalatesNeverReadFieldsToStale(t *testing.T) {
	analog := &fakeAnalog{ntcCode: 2048, ldrCode: 2048}
	probe := &fakeProbe{err: errors.New("timeout")}
	sampler := sensor.NewSampler(referenceCalibration(), analog, probe)

	zoneB := sensor.NewZoneB()
	assert.True(t, zoneB.Temp.IsNoData())
	assert.True(t, zoneB.Humidity.IsNoData())

	sampler.Sample(&zoneB)
	assert.True(t, zoneB.Temp.IsStale(), "never-read temperature degrades to stale on a failed read")
	assert.True(t, zoneB.Humidity.IsStale(), "never-read humidity degrades to stale on a failed read")

	// Further failures keep the fields stale
	sampler.Sample(&zoneB)
	assert.True(t, zoneB.Temp.IsStale())
	assert.True(t, zoneB.Humidity.IsStale())

	// A successful read recovers both fields
	probe.err = nil
	probe.humidity, probe.temperature = 60.2, 19.5
	sampler.Sample(&zoneB)

	humidity, ok := zoneB.Humidity.Value()
	require.True(t, ok)
	assert.InDelta(t, 60.2, humidity, 1e-9)
}

func TestSampleEscalationIsPerField(t *testing.T) {
	analog := &fakeAnalog{ntcCode: 2048, ldrCode: 2048}
	probe := &fakeProbe{err: errors.New("timeout")}
	sampler := sensor.NewSampler(referenceCalibration(), analog, probe)

	zoneB := sensor.ZoneB{
		Temp:     sensor.ClimateValue(22.0),
		Humidity: sensor.NoData(),
	}
	sampler.Sample(&zoneB)

	temp, ok := zoneB.Temp.Value()
	require.True(t, ok, "a held valid value is untouched by a failed read")
	assert.InDelta(t, 22.0, temp, 1e-9)
	assert.True(t, zoneB.Humidity.IsStale(), "only the never-read field escalates")
}

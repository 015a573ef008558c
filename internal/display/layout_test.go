package display_test

import (
	"testing"

	"codeberg.org/mutker/zonectl/internal/alert"
	"codeberg.org/mutker/zonectl/internal/display"
	"codeberg.org/mutker/zonectl/internal/sensor"
	"github.com/stretchr/testify/assert"
)

func nominalZoneA() sensor.ZoneA {
	return sensor.ZoneA{
		Temp:  sensor.TemperatureOf(24.5),
		Light: sensor.IlluminanceOf(246.7),
	}
}

func nominalZoneB() sensor.ZoneB {
	return sensor.ZoneB{
		Temp:     sensor.ClimateValue(22.1),
		Humidity: sensor.ClimateValue(55.9),
	}
}

func TestZoneFrameNominal(t *testing.T) {
	frame := display.ZoneFrame(nominalZoneA(), nominalZoneB(), alert.State{})

	assert.Equal(t, "Z1:24.5C 246lx", frame[0], "lux is truncated to whole units")
	assert.Equal(t, "Z2:22.1C H:55%", frame[1], "humidity is truncated to whole percent")
}

func TestZoneFrameAlertsAppendBang(t *testing.T) {
	zoneA := sensor.ZoneA{Temp: sensor.TemperatureOf(32.4), Light: sensor.IlluminanceOf(42.0)}
	zoneB := sensor.ZoneB{Temp: sensor.ClimateValue(31.0), Humidity: sensor.ClimateValue(75.3)}

	frame := display.ZoneFrame(zoneA, zoneB, alert.State{ZoneA: true, ZoneB: true, HighTemp: true})

	assert.Equal(t, "Z1:32.4C 42lx!", frame[0])
	assert.Equal(t, "Z2:31.0C H:75%!", frame[1])
}

func TestZoneFrameDarkReading(t *testing.T) {
	zoneA := sensor.ZoneA{Temp: sensor.TemperatureOf(24.5), Light: sensor.TooDark()}

	frame := display.ZoneFrame(zoneA, nominalZoneB(), alert.State{ZoneA: true})

	assert.Equal(t, "Z1:24.5C DARKlx!", frame[0], "the lx suffix stays even on a dark reading")
}

func TestZoneFrameSaturatedAndZeroLux(t *testing.T) {
	bright := sensor.ZoneA{Temp: sensor.TemperatureOf(24.5), Light: sensor.TooBright()}
	frame := display.ZoneFrame(bright, nominalZoneB(), alert.State{})
	assert.Equal(t, "Z1:24.5C >BRTlx", frame[0])

	zero := sensor.ZoneA{Temp: sensor.TemperatureOf(24.5), Light: sensor.IlluminanceOf(0.0)}
	frame = display.ZoneFrame(zero, nominalZoneB(), alert.State{})
	assert.Equal(t, "Z1:24.5C >BRTlx", frame[0], "a measured zero renders like saturation")
}

func TestZoneFrameSensorFaults(t *testing.T) {
	zoneA := sensor.ZoneA{Temp: sensor.NoTemperature(), Light: sensor.IlluminanceOf(246.7)}
	zoneB := sensor.ZoneB{Temp: sensor.NoData(), Humidity: sensor.Stale()}

	frame := display.ZoneFrame(zoneA, zoneB, alert.State{})

	assert.Equal(t, "Z1:ERRC 246lx", frame[0])
	assert.Equal(t, "Z2:ERRC H:ERR", frame[1], "retained-then-stale fields read as errors")
}

func TestStatusFrameNominal(t *testing.T) {
	frame := display.StatusFrame(nominalZoneA(), nominalZoneB(), alert.State{}, false, true)

	assert.Equal(t, "System Status: OK", frame[0])
	assert.Equal(t, "Z1: T:24.5C L:246lx", frame[1])
	assert.Equal(t, "Z2: T:22.1C H:55%", frame[2])
	assert.Equal(t, "Fan Status: OFF", frame[3])
}

func TestStatusFrameAlertBanner(t *testing.T) {
	zoneA := sensor.ZoneA{Temp: sensor.TemperatureOf(32.4), Light: sensor.IlluminanceOf(42.0)}
	zoneB := sensor.ZoneB{Temp: sensor.ClimateValue(31.0), Humidity: sensor.ClimateValue(75.3)}
	alerts := alert.State{ZoneA: true, ZoneB: true, HighTemp: true}

	frame := display.StatusFrame(zoneA, zoneB, alerts, true, true)

	assert.Equal(t, "SYSTEM ALERT ACTIVE!", frame[0])
	assert.Equal(t, "Z1: T:32.4C L:42lx !", frame[1])
	assert.Equal(t, "Z2: T:31.0C H:75% !", frame[2])
	assert.Equal(t, "Fan Status: ON", frame[3])
}

func TestStatusFrameFaultForms(t *testing.T) {
	zoneA := sensor.ZoneA{Temp: sensor.NoTemperature(), Light: sensor.TooDark()}
	zoneB := sensor.ZoneB{Temp: sensor.Stale(), Humidity: sensor.Stale()}

	frame := display.StatusFrame(zoneA, zoneB, alert.State{}, false, true)

	assert.Equal(t, "Z1: T:ERR L:DARK", frame[1])
	assert.Equal(t, "Z2: T:ERR H:ERR", frame[2])
}

func TestStatusFrameLinkDownFlag(t *testing.T) {
	frame := display.StatusFrame(nominalZoneA(), nominalZoneB(), alert.State{}, false, false)
	assert.Equal(t, "Fan Status: OFF   WF!", frame[3], "the flag lands at column 18")

	frame = display.StatusFrame(nominalZoneA(), nominalZoneB(), alert.State{HighTemp: true}, true, false)
	assert.Equal(t, "Fan Status: ON    WF!", frame[3])
}

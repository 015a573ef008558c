package alert

import "codeberg.org/mutker/zonectl/internal/sensor"

// Evaluate maps the current readings to alert flags. Pure and total:
// sentinel readings never trigger a comparison, and identical inputs
// always yield the identical State.
func Evaluate(th Thresholds, zoneA sensor.ZoneA, zoneB sensor.ZoneB) State {
	var zoneATempAlert, zoneALightAlert bool
	if celsius, ok := zoneA.Temp.Celsius(); ok {
		zoneATempAlert = celsius > th.TempHighC
	}
	if lux, ok := zoneA.Light.Lux(); ok {
		zoneALightAlert = lux < th.LightLowLux
	}

	var zoneBTempAlert, zoneBHumidityAlert bool
	if celsius, ok := zoneB.Temp.Value(); ok {
		zoneBTempAlert = celsius > th.TempHighC
	}
	if humidity, ok := zoneB.Humidity.Value(); ok {
		zoneBHumidityAlert = humidity > th.HumidityHighPct
	}

	return State{
		ZoneA:    zoneATempAlert || zoneALightAlert,
		ZoneB:    zoneBTempAlert || zoneBHumidityAlert,
		HighTemp: zoneATempAlert || zoneBTempAlert,
	}
}

package sensor

import "math"

// Guard against a near-zero denominator in the beta-model inversion
const betaEpsilon = 1e-9

// Thermistor converts a raw ADC code from the NTC voltage divider into
// degrees Celsius. Codes at or beyond either rail and every degenerate
// intermediate term map to the NoTemperature sentinel; a garbage value
// is never surfaced.
func (c Calibration) Thermistor(code int) Temperature {
	if code <= 0 || code >= c.ADCMax {
		return NoTemperature()
	}

	ratio := float64(c.ADCMax)/float64(code) - 1.0
	if ratio <= 0 {
		return NoTemperature()
	}

	// Divider inversion: the thermistor resistance relative to the
	// series resistor feeds the simplified beta equation.
	resistance := c.NTCSeries * ratio
	x := math.Log(c.NTCSeries/resistance)/c.NTCBeta + 1.0/c.NTCKelvin
	if math.Abs(x) < betaEpsilon {
		return NoTemperature()
	}

	celsius := 1.0/x - 273.15
	if math.IsInf(celsius, 0) || math.IsNaN(celsius) {
		return NoTemperature()
	}

	return TemperatureOf(celsius)
}

package sensor

import "math"

// Voltage band at either rail treated as saturation rather than signal
const railGuardVolts = 0.01

// Photoresistor converts a raw ADC code from the LDR voltage divider
// into lux via the inverse gamma power law. Readings pinned to the low
// rail are TooDark, readings pinned to the high rail are TooBright.
func (c Calibration) Photoresistor(code int) Illuminance {
	voltage := float64(code) / float64(c.ADCMax) * c.VRef

	if voltage <= railGuardVolts {
		return TooDark()
	}
	if voltage >= c.VRef-railGuardVolts {
		return TooBright()
	}

	resistance := c.LDRSeries * voltage / (c.VRef - voltage)
	if resistance <= 0 {
		return TooBright()
	}

	lux := math.Pow(c.LDRRL10*1e3*math.Pow(10, c.LDRGamma)/resistance, 1.0/c.LDRGamma)
	if math.IsInf(lux, 0) || math.IsNaN(lux) {
		return TooDark()
	}

	return IlluminanceOf(lux)
}

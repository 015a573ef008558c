package sensor

import (
	"codeberg.org/mutker/zonectl/internal/logger"
)

// Sampler produces one set of calibrated readings per cycle. It holds
// no reading state itself; the persistent Zone B fields are owned by
// the caller and updated in place.
type Sampler struct {
	cal    Calibration
	analog AnalogSource
	probe  ClimateProbe
}

func NewSampler(cal Calibration, analog AnalogSource, probe ClimateProbe) *Sampler {
	return &Sampler{
		cal:    cal,
		analog: analog,
		probe:  probe,
	}
}

// Sample reads both zones. A failed probe read escalates never-read
// Zone B fields to Stale and leaves previously valid values untouched;
// a successful read overwrites both fields unconditionally.
func (s *Sampler) Sample(zoneB *ZoneB) ZoneA {
	zoneA := s.sampleZoneA()
	s.sampleZoneB(zoneB)

	return zoneA
}

func (s *Sampler) sampleZoneA() ZoneA {
	var reading ZoneA

	code, err := s.analog.ThermistorCode()
	if err != nil {
		logger.Warn().Err(err).Msg("Thermistor channel read failed")
		reading.Temp = NoTemperature()
	} else {
		reading.Temp = s.cal.Thermistor(code)
		if !reading.Temp.Valid() {
			logger.Debug().Int("code", code).Msg("Thermistor code at or beyond rail")
		}
	}

	code, err = s.analog.PhotoresistorCode()
	if err != nil {
		logger.Warn().Err(err).Msg("Photoresistor channel read failed")
		reading.Light = TooDark()
	} else {
		reading.Light = s.cal.Photoresistor(code)
	}

	return reading
}

func (s *Sampler) sampleZoneB(zoneB *ZoneB) {
	humidity, temperature, err := s.probe.Read()
	if err != nil {
		logger.Warn().Err(err).Msg("Climate probe read failed")
		if zoneB.Temp.IsNoData() {
			zoneB.Temp = Stale()
		}
		if zoneB.Humidity.IsNoData() {
			zoneB.Humidity = Stale()
		}

		return
	}

	zoneB.Temp = ClimateValue(temperature)
	zoneB.Humidity = ClimateValue(humidity)
}

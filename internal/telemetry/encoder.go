package telemetry

import (
	"encoding/json"
	"strconv"

	"codeberg.org/mutker/zonectl/internal/errors"
	"codeberg.org/mutker/zonectl/internal/sensor"
)

// Wire layout. Field order is fixed and must not change: consumers
// depend on the exact byte sequence.
type payload struct {
	Zone1 zone1Payload `json:"zone1"`
	Zone2 zone2Payload `json:"zone2"`
	FanOn bool         `json:"fan_on"`
}

type zone1Payload struct {
	TempC tenths   `json:"tempC"`
	Lux   luxValue `json:"lux"`
	Alert bool     `json:"alert"`
}

type zone2Payload struct {
	DhtTempC tenths `json:"dhtTempC"`
	Humidity tenths `json:"humidity"`
	Alert    bool   `json:"alert"`
}

// tenths renders a number with exactly one fractional digit, or null
// when no valid value exists.
type tenths struct {
	value float64
	valid bool
}

func (t tenths) MarshalJSON() ([]byte, error) {
	if !t.valid {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, t.value, 'f', 1, 64), nil
}

// luxValue renders saturation states as quoted markers and finite
// readings as a truncated integer. A finite reading of exactly zero
// renders as the bright marker: on the wire, zero lux and saturation
// are the same value.
type luxValue struct {
	reading sensor.Illuminance
}

func (l luxValue) MarshalJSON() ([]byte, error) {
	if l.reading.IsDark() {
		return []byte(`"DARK"`), nil
	}
	lux, ok := l.reading.Lux()
	if l.reading.IsBright() || (ok && lux == 0) {
		return []byte(`"BRIGHT"`), nil
	}

	return strconv.AppendInt(nil, int64(lux), 10), nil
}

// Encode serializes a snapshot into the fixed wire layout.
func Encode(snapshot *Snapshot) ([]byte, error) {
	errFactory := errors.New()

	if snapshot == nil {
		return nil, errFactory.New(ErrInvalidSnapshot)
	}

	tempC, tempOK := snapshot.ZoneA.Temp.Celsius()
	dhtTempC, dhtTempOK := snapshot.ZoneB.Temp.Value()
	humidity, humidityOK := snapshot.ZoneB.Humidity.Value()

	body := payload{
		Zone1: zone1Payload{
			TempC: tenths{value: tempC, valid: tempOK},
			Lux:   luxValue{reading: snapshot.ZoneA.Light},
			Alert: snapshot.Alerts.ZoneA,
		},
		Zone2: zone2Payload{
			DhtTempC: tenths{value: dhtTempC, valid: dhtTempOK},
			Humidity: tenths{value: humidity, valid: humidityOK},
			Alert:    snapshot.Alerts.ZoneB,
		},
		FanOn: snapshot.FanOn,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, errFactory.Wrap(ErrEncodeFailed, err)
	}

	return data, nil
}

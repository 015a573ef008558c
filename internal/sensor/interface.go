package sensor

// AnalogSource delivers raw ADC codes for the two Zone A channels.
// Codes are expected in [0, ADCMax]; out-of-range codes are handled by
// the calibration math, not the source.
type AnalogSource interface {
	ThermistorCode() (int, error)
	PhotoresistorCode() (int, error)
}

// ClimateProbe performs one blocking read of the Zone B digital
// humidity/temperature sensor. Humidity is returned first, matching
// the driver convention.
type ClimateProbe interface {
	Read() (humidity, temperature float64, err error)
}

// Calibration holds the electrical constants that turn raw codes into
// physical units. The NTC series resistor doubles as the reference
// resistance of the beta model.
type Calibration struct {
	ADCMax    int
	VRef      float64
	NTCBeta   float64
	NTCKelvin float64
	NTCSeries float64
	LDRGamma  float64
	LDRRL10   float64 // kilohm resistance at 10 lux
	LDRSeries float64
}

// Temperature is a Zone A thermistor reading. The zero value is the
// no-reading sentinel.
type Temperature struct {
	celsius float64
	valid   bool
}

// TemperatureOf returns a valid reading of the given degrees Celsius.
func TemperatureOf(celsius float64) Temperature {
	return Temperature{celsius: celsius, valid: true}
}

// NoTemperature returns the out-of-range sentinel.
func NoTemperature() Temperature {
	return Temperature{}
}

func (t Temperature) Valid() bool {
	return t.valid
}

// Celsius returns the reading and whether it is valid.
func (t Temperature) Celsius() (float64, bool) {
	return t.celsius, t.valid
}

type illuminanceState uint8

const (
	illuminanceDark illuminanceState = iota
	illuminanceBright
	illuminanceMeasured
)

// Illuminance is a Zone A photoresistor reading: a finite lux value or
// one of the two saturation states. The zero value is TooDark.
type Illuminance struct {
	lux   float64
	state illuminanceState
}

// IlluminanceOf returns a measured reading of the given lux.
func IlluminanceOf(lux float64) Illuminance {
	return Illuminance{lux: lux, state: illuminanceMeasured}
}

// TooDark marks a reading at or below the low voltage rail.
func TooDark() Illuminance {
	return Illuminance{state: illuminanceDark}
}

// TooBright marks a reading saturated at the high voltage rail.
func TooBright() Illuminance {
	return Illuminance{state: illuminanceBright}
}

func (l Illuminance) IsDark() bool {
	return l.state == illuminanceDark
}

func (l Illuminance) IsBright() bool {
	return l.state == illuminanceBright
}

// Lux returns the measured value and whether the reading is finite.
func (l Illuminance) Lux() (float64, bool) {
	return l.lux, l.state == illuminanceMeasured
}

type climateState uint8

const (
	climateNoData climateState = iota
	climateStale
	climateValid
)

// ClimateField is one Zone B value (temperature or humidity) with its
// freshness tier. The zero value is NoData. A field that was NoData
// when a read failed degrades to Stale; a field holding a valid value
// keeps it across failed reads.
type ClimateField struct {
	value float64
	state climateState
}

// ClimateValue returns a fresh valid field.
func ClimateValue(v float64) ClimateField {
	return ClimateField{value: v, state: climateValid}
}

// NoData returns the never-read sentinel.
func NoData() ClimateField {
	return ClimateField{}
}

// Stale returns the degraded sentinel for a field that never held data
// when a read failed.
func Stale() ClimateField {
	return ClimateField{state: climateStale}
}

func (f ClimateField) IsNoData() bool {
	return f.state == climateNoData
}

func (f ClimateField) IsStale() bool {
	return f.state == climateStale
}

// Value returns the stored value and whether it is numerically valid.
func (f ClimateField) Value() (float64, bool) {
	return f.value, f.state == climateValid
}

// Readings per zone
type (
	ZoneA struct {
		Temp  Temperature
		Light Illuminance
	}

	// ZoneB is the only state that persists across cycles: the engine
	// owns one instance and passes it to Sample every cycle.
	ZoneB struct {
		Temp     ClimateField
		Humidity ClimateField
	}
)

// NewZoneB returns the boot state: both fields never read.
func NewZoneB() ZoneB {
	return ZoneB{Temp: NoData(), Humidity: NoData()}
}

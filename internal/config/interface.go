package config

// Config holds every recognized option. Values resolve in the usual
// order: defaults, then the TOML config file, then ZONECTL_* environment
// variables, then command line flags. All values are immutable after
// loading.
type Config struct {
	Debug   bool `mapstructure:"debug"`
	Verbose bool `mapstructure:"verbose"`
	Monitor bool `mapstructure:"monitor"`

	Cycle       CycleConfig       `mapstructure:"cycle"`
	Thresholds  ThresholdConfig   `mapstructure:"thresholds"`
	Calibration CalibrationConfig `mapstructure:"calibration"`
	Telemetry   TelemetryConfig   `mapstructure:"telemetry"`
	Hardware    HardwareConfig    `mapstructure:"hardware"`
	Link        LinkConfig        `mapstructure:"link"`
}

// CycleConfig times the acquisition loop.
type CycleConfig struct {
	// PeriodMs is the target wall-clock spacing between cycle starts
	PeriodMs int `mapstructure:"period_ms"`
	// SleepFloorMs is the minimum sleep applied when a cycle overruns
	SleepFloorMs int `mapstructure:"sleep_floor_ms"`
}

// ThresholdConfig holds the static alert thresholds. Comparisons are
// strict: a reading exactly at a threshold does not raise an alert.
type ThresholdConfig struct {
	TempHighC       float64 `mapstructure:"temp_high_c"`
	LightLowLux     float64 `mapstructure:"light_low_lux"`
	HumidityHighPct float64 `mapstructure:"humidity_high_pct"`
}

// CalibrationConfig holds the electrical constants used to convert raw
// ADC codes into physical units.
type CalibrationConfig struct {
	ADCMax        int     `mapstructure:"adc_max"`
	VRef          float64 `mapstructure:"vref_v"`
	NTCBeta       float64 `mapstructure:"ntc_beta"`
	NTCKelvin     float64 `mapstructure:"ntc_nominal_kelvin"`
	NTCSeriesOhms float64 `mapstructure:"ntc_series_ohms"`
	LDRGamma      float64 `mapstructure:"ldr_gamma"`
	LDRRL10       float64 `mapstructure:"ldr_rl10_kohms"`
	LDRSeriesOhms float64 `mapstructure:"ldr_series_ohms"`
}

// TelemetryConfig controls snapshot delivery to the collector.
type TelemetryConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
	AuthToken string `mapstructure:"auth_token"`
	Insecure  bool   `mapstructure:"insecure_skip_verify"`
}

// HardwareConfig names the buses, addresses and pins of the reference
// board. Pin names follow the host's gpioreg registry.
type HardwareConfig struct {
	I2CBus      string `mapstructure:"i2c_bus"`
	ADCAddr     int    `mapstructure:"adc_addr"`
	NTCChannel  int    `mapstructure:"ntc_channel"`
	LDRChannel  int    `mapstructure:"ldr_channel"`
	DHTPin      string `mapstructure:"dht_pin"`
	GreenPin    string `mapstructure:"green_pin"`
	YellowPin   string `mapstructure:"yellow_pin"`
	RedPin      string `mapstructure:"red_pin"`
	BuzzerPin   string `mapstructure:"buzzer_pin"`
	FanPin      string `mapstructure:"fan_pin"`
	ZoneLCDAddr int    `mapstructure:"zone_lcd_addr"`
	SysLCDAddr  int    `mapstructure:"sys_lcd_addr"`
}

// LinkConfig controls the boot-time network join. Joining is
// best-effort: the monitor runs with or without a link.
type LinkConfig struct {
	JoinAttempts   int `mapstructure:"join_attempts"`
	JoinIntervalMs int `mapstructure:"join_interval_ms"`
}

package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/mutker/zonectl/internal/errors"
)

// Reference-board defaults: 12-bit ADC, 3.3V rail, NTC 3950/10k at 25C,
// LDR gamma 0.7 with RL10=50k, and the stock pin assignment.
func setDefaults() {
	viper.SetDefault("debug", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("monitor", false)

	viper.SetDefault("cycle.period_ms", 30000)
	viper.SetDefault("cycle.sleep_floor_ms", 100)

	viper.SetDefault("thresholds.temp_high_c", 30.0)
	viper.SetDefault("thresholds.light_low_lux", 100.0)
	viper.SetDefault("thresholds.humidity_high_pct", 70.0)

	viper.SetDefault("calibration.adc_max", 4095)
	viper.SetDefault("calibration.vref_v", 3.3)
	viper.SetDefault("calibration.ntc_beta", 3950.0)
	viper.SetDefault("calibration.ntc_nominal_kelvin", 298.15)
	viper.SetDefault("calibration.ntc_series_ohms", 10000.0)
	viper.SetDefault("calibration.ldr_gamma", 0.7)
	viper.SetDefault("calibration.ldr_rl10_kohms", 50.0)
	viper.SetDefault("calibration.ldr_series_ohms", 10000.0)

	viper.SetDefault("telemetry.enabled", true)
	viper.SetDefault("telemetry.endpoint", "")
	viper.SetDefault("telemetry.timeout_ms", 10000)
	viper.SetDefault("telemetry.auth_token", "")
	viper.SetDefault("telemetry.insecure_skip_verify", false)

	viper.SetDefault("hardware.i2c_bus", "")
	viper.SetDefault("hardware.adc_addr", 0x48)
	viper.SetDefault("hardware.ntc_channel", 0)
	viper.SetDefault("hardware.ldr_channel", 1)
	viper.SetDefault("hardware.dht_pin", "GPIO25")
	viper.SetDefault("hardware.green_pin", "GPIO19")
	viper.SetDefault("hardware.yellow_pin", "GPIO18")
	viper.SetDefault("hardware.red_pin", "GPIO5")
	viper.SetDefault("hardware.buzzer_pin", "GPIO17")
	viper.SetDefault("hardware.fan_pin", "GPIO16")
	viper.SetDefault("hardware.zone_lcd_addr", 0x27)
	viper.SetDefault("hardware.sys_lcd_addr", 0x3F)

	viper.SetDefault("link.join_attempts", 30)
	viper.SetDefault("link.join_interval_ms", 250)
}

func Load() (*Config, error) {
	errFactory := errors.New()

	viper.Reset()
	setDefaults()

	// Define flags on a private flag set so Load stays re-entrant in tests
	fs := pflag.NewFlagSet("zonectl", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	configFlag := fs.String("config", "", "Path to config file")
	fs.Bool("debug", false, "Enable debugging mode")
	fs.Bool("verbose", false, "Enable verbose logging")
	fs.Bool("monitor", false, "Sample and report without driving actuators")
	fs.Int("period-ms", 0, "Cycle period in milliseconds")
	fs.String("endpoint", "", "Telemetry collector URL")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	// Load configuration from file
	configPath := *configFlag
	if configPath == "" {
		configPath = os.Getenv("ZONECTL_CONFIG")
	}
	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.SetConfigName("zonectl")
		viper.SetConfigType("toml")
		viper.AddConfigPath("/etc")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Environment variables: ZONECTL_TELEMETRY_ENDPOINT and friends
	viper.SetEnvPrefix("ZONECTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Override config file values with command line flags
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "period-ms":
			viper.Set("cycle.period_ms", f.Value.String())
		case "endpoint":
			viper.Set("telemetry.endpoint", f.Value.String())
		case "config":
			// handled above
		default:
			viper.Set(f.Name, f.Value.String())
		}
	})

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects values the cycle engine cannot run with.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Cycle.PeriodMs <= 0 {
		return errFactory.WithData(errors.ErrInvalidPeriod, c.Cycle.PeriodMs)
	}
	if c.Cycle.SleepFloorMs <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "sleep floor must be positive")
	}
	if c.Calibration.ADCMax <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "adc_max must be positive")
	}
	if c.Calibration.VRef <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "vref_v must be positive")
	}
	if c.Calibration.LDRGamma <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "ldr_gamma must be positive")
	}
	if c.Telemetry.TimeoutMs <= 0 {
		return errFactory.WithMessage(errors.ErrInvalidConfig, "telemetry timeout must be positive")
	}

	return nil
}

// Period returns the target cycle period.
func (c *Config) Period() time.Duration {
	return time.Duration(c.Cycle.PeriodMs) * time.Millisecond
}

// SleepFloor returns the minimum end-of-cycle sleep applied on overrun.
func (c *Config) SleepFloor() time.Duration {
	return time.Duration(c.Cycle.SleepFloorMs) * time.Millisecond
}

// RequestTimeout returns the per-delivery transport timeout.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Telemetry.TimeoutMs) * time.Millisecond
}

// JoinInterval returns the delay between boot-time link join attempts.
func (c *Config) JoinInterval() time.Duration {
	return time.Duration(c.Link.JoinIntervalMs) * time.Millisecond
}

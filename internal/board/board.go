package board

import (
	"io"

	"codeberg.org/mutker/zonectl/internal/actuator"
	"codeberg.org/mutker/zonectl/internal/config"
	"codeberg.org/mutker/zonectl/internal/errors"
	"codeberg.org/mutker/zonectl/internal/logger"
	"codeberg.org/mutker/zonectl/internal/sensor"
	dht "github.com/MichaelS11/go-dht"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"
)

// Lines groups the five actuator lines by role.
type Lines struct {
	Green  actuator.Line
	Yellow actuator.Line
	Red    actuator.Line
	Buzzer actuator.Line
	Fan    actuator.Line
}

// Board owns the hardware handles behind the monitor: the I2C bus, the
// two ADC channels, the climate probe, the actuator lines, and the
// display buses.
type Board struct {
	bus    i2c.BusCloser
	analog *Analog
	probe  *dht.DHT
	lines  Lines
	zone   *i2c.Dev
	status *i2c.Dev
}

func Open(hw config.HardwareConfig, cal config.CalibrationConfig) (*Board, error) {
	errFactory := errors.New()

	if _, err := host.Init(); err != nil {
		return nil, errFactory.Wrap(ErrHostInit, err)
	}

	bus, err := i2creg.Open(hw.I2CBus)
	if err != nil {
		return nil, errFactory.Wrap(ErrBusOpen, err)
	}

	b := &Board{bus: bus}
	if err := b.setup(hw, cal); err != nil {
		_ = bus.Close()
		return nil, err
	}

	return b, nil
}

func (b *Board) setup(hw config.HardwareConfig, cal config.CalibrationConfig) error {
	errFactory := errors.New()

	opts := ads1x15.DefaultOpts
	opts.I2cAddress = uint16(hw.ADCAddr)
	adc, err := ads1x15.NewADS1115(b.bus, &opts)
	if err != nil {
		return errFactory.Wrap(ErrADCInit, err)
	}

	vref := physic.ElectricPotential(cal.VRef * float64(physic.Volt))
	ntc, err := analogPin(adc, hw.NTCChannel, vref)
	if err != nil {
		return err
	}
	ldr, err := analogPin(adc, hw.LDRChannel, vref)
	if err != nil {
		return err
	}
	b.analog = &Analog{ntc: ntc, ldr: ldr, vref: vref, adcMax: cal.ADCMax}

	probe, err := dht.NewDHT(hw.DHTPin, dht.Celsius, "")
	if err != nil {
		return errFactory.Wrap(ErrProbeInit, err)
	}
	b.probe = probe

	for _, l := range []struct {
		name string
		dst  *actuator.Line
	}{
		{hw.GreenPin, &b.lines.Green},
		{hw.YellowPin, &b.lines.Yellow},
		{hw.RedPin, &b.lines.Red},
		{hw.BuzzerPin, &b.lines.Buzzer},
		{hw.FanPin, &b.lines.Fan},
	} {
		line, err := outputLine(l.name)
		if err != nil {
			return err
		}
		*l.dst = line
	}

	b.zone = &i2c.Dev{Bus: b.bus, Addr: uint16(hw.ZoneLCDAddr)}
	b.status = &i2c.Dev{Bus: b.bus, Addr: uint16(hw.SysLCDAddr)}

	logger.Debug().Str("bus", b.bus.String()).Msg("Board open")

	return nil
}

func analogPin(adc *ads1x15.Dev, channel int, vref physic.ElectricPotential) (ads1x15.PinADC, error) {
	ch, err := adcChannel(channel)
	if err != nil {
		return nil, err
	}
	pin, err := adc.PinForChannel(ch, vref, 1*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		return nil, errors.New().Wrap(ErrADCInit, err)
	}

	return pin, nil
}

func (b *Board) Analog() sensor.AnalogSource {
	return b.analog
}

// Climate returns the DHT22 probe. Its read order matches the probe
// interface: humidity first, then temperature.
func (b *Board) Climate() sensor.ClimateProbe {
	return b.probe
}

func (b *Board) Lines() Lines {
	return b.lines
}

// ZoneDisplayBus addresses the zone panel expander on the shared bus.
func (b *Board) ZoneDisplayBus() io.Writer {
	return b.zone
}

// StatusDisplayBus addresses the status panel expander.
func (b *Board) StatusDisplayBus() io.Writer {
	return b.status
}

// Close halts the ADC channels and releases the bus. GPIO lines keep
// their last driven level.
func (b *Board) Close() error {
	if b.analog != nil {
		if err := b.analog.ntc.Halt(); err != nil {
			logger.Warn().Err(err).Msg("Failed to halt thermistor channel")
		}
		if err := b.analog.ldr.Halt(); err != nil {
			logger.Warn().Err(err).Msg("Failed to halt photoresistor channel")
		}
	}

	return b.bus.Close()
}

type gpioLine struct {
	pin gpio.PinIO
}

func (l gpioLine) Set(high bool) error {
	return l.pin.Out(gpio.Level(high))
}

func outputLine(name string) (actuator.Line, error) {
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, errors.New().WithData(ErrPinMissing, name)
	}

	return gpioLine{pin: pin}, nil
}

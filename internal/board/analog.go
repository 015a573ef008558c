package board

import (
	"codeberg.org/mutker/zonectl/internal/errors"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// Analog reads the two divider channels through the ADS1115 and maps
// each sample onto the converter scale the calibration math expects.
// The ADC's own range can exceed the reference voltage; codes past the
// scale fall out as rail readings downstream.
type Analog struct {
	ntc    ads1x15.PinADC
	ldr    ads1x15.PinADC
	vref   physic.ElectricPotential
	adcMax int
}

func (a *Analog) ThermistorCode() (int, error) {
	return a.code(a.ntc)
}

func (a *Analog) PhotoresistorCode() (int, error) {
	return a.code(a.ldr)
}

func (a *Analog) code(pin ads1x15.PinADC) (int, error) {
	errFactory := errors.New()
	sample, err := pin.Read()
	if err != nil {
		return 0, errFactory.Wrap(ErrAnalogRead, err)
	}

	return int(int64(sample.V) * int64(a.adcMax) / int64(a.vref)), nil
}

func adcChannel(n int) (ads1x15.Channel, error) {
	switch n {
	case 0:
		return ads1x15.Channel0, nil
	case 1:
		return ads1x15.Channel1, nil
	case 2:
		return ads1x15.Channel2, nil
	case 3:
		return ads1x15.Channel3, nil
	}

	return 0, errors.New().WithData(ErrInvalidChannel, n)
}

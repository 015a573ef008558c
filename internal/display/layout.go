package display

import (
	"strconv"
	"strings"

	"codeberg.org/mutker/zonectl/internal/alert"
	"codeberg.org/mutker/zonectl/internal/sensor"
)

// Column where the link-down flag is painted on the last status row.
const linkFlagCol = 18

// ZoneFrame lays out the compact two-row zone panel. Faulted readings
// render as ERR, and a trailing bang marks an alerting zone.
func ZoneFrame(zoneA sensor.ZoneA, zoneB sensor.ZoneB, alerts alert.State) [ZoneRows]string {
	var frame [ZoneRows]string

	lux, _ := luxToken(zoneA.Light)
	frame[0] = "Z1:" + tempText(zoneA.Temp.Celsius()) + "C " + lux + "lx"
	if alerts.ZoneA {
		frame[0] += "!"
	}

	frame[1] = "Z2:" + tempText(zoneB.Temp.Value()) + "C " + humidityText(zoneB.Humidity)
	if alerts.ZoneB {
		frame[1] += "!"
	}

	return frame
}

// StatusFrame lays out the four-row system panel: alert banner, one
// summary row per zone, and the fan row with the link-down flag.
func StatusFrame(zoneA sensor.ZoneA, zoneB sensor.ZoneB, alerts alert.State, fanOn, linkUp bool) [StatusRows]string {
	var frame [StatusRows]string

	if alerts.Any() {
		frame[0] = "SYSTEM ALERT ACTIVE!"
	} else {
		frame[0] = "System Status: OK"
	}

	frame[1] = "Z1: " + statusTemp(zoneA.Temp.Celsius()) + statusLux(zoneA.Light)
	if alerts.ZoneA {
		frame[1] += " !"
	}

	frame[2] = "Z2: " + statusTemp(zoneB.Temp.Value()) + humidityText(zoneB.Humidity)
	if alerts.ZoneB {
		frame[2] += " !"
	}

	frame[3] = "Fan Status: "
	if fanOn {
		frame[3] += "ON"
	} else {
		frame[3] += "OFF"
	}
	if !linkUp {
		frame[3] = overlay(frame[3], linkFlagCol, "WF!")
	}

	return frame
}

func tempText(celsius float64, ok bool) string {
	if !ok {
		return "ERR"
	}

	return strconv.FormatFloat(celsius, 'f', 1, 64)
}

func statusTemp(celsius float64, ok bool) string {
	if !ok {
		return "T:ERR "
	}

	return "T:" + strconv.FormatFloat(celsius, 'f', 1, 64) + "C "
}

// luxToken renders a light reading as DARK, >BRT, or a whole-lux
// number. A measured zero renders as >BRT like a saturated reading.
func luxToken(light sensor.Illuminance) (text string, numeric bool) {
	if light.IsDark() {
		return "DARK", false
	}

	lux, ok := light.Lux()
	if light.IsBright() || (ok && lux == 0) {
		return ">BRT", false
	}

	return strconv.Itoa(int(lux)), true
}

func statusLux(light sensor.Illuminance) string {
	text, numeric := luxToken(light)
	if numeric {
		return "L:" + text + "lx"
	}

	return "L:" + text
}

func humidityText(humidity sensor.ClimateField) string {
	pct, ok := humidity.Value()
	if !ok {
		return "H:ERR"
	}

	return "H:" + strconv.Itoa(int(pct)) + "%"
}

// overlay places text at a fixed column, padding the row out with
// spaces when it is shorter. The result may run past the panel width;
// the driver clips it there.
func overlay(row string, col int, text string) string {
	if len(row) < col {
		row += strings.Repeat(" ", col-len(row))
	}

	return row[:col] + text
}

package display

import (
	"codeberg.org/mutker/zonectl/internal/alert"
	"codeberg.org/mutker/zonectl/internal/logger"
	"codeberg.org/mutker/zonectl/internal/sensor"
)

// Panels refreshes the zone and system status panels each cycle. Panel
// faults are logged and skipped so a dead display never stalls the
// monitor.
type Panels struct {
	zone   Surface
	status Surface
}

func NewPanels(zone, status Surface) *Panels {
	return &Panels{zone: zone, status: status}
}

// Show repaints both panels from the cycle's readings.
func (p *Panels) Show(zoneA sensor.ZoneA, zoneB sensor.ZoneB, alerts alert.State, fanOn, linkUp bool) {
	zone := ZoneFrame(zoneA, zoneB, alerts)
	status := StatusFrame(zoneA, zoneB, alerts, fanOn, linkUp)
	p.draw(p.zone, "zone", zone[:])
	p.draw(p.status, "status", status[:])
}

// Boot paints the power-on banners shown while the rest of the board
// comes up.
func (p *Panels) Boot() {
	p.draw(p.zone, "zone", []string{"Initializing Z1"})
	p.draw(p.status, "status", []string{"Initializing Sys..."})
}

// Connecting announces the network join on the status panel.
func (p *Panels) Connecting() {
	p.draw(p.status, "status", []string{"Connecting WiFi..."})
}

// LinkResult reports the join outcome on the status panel.
func (p *Panels) LinkResult(up bool, addr string) {
	if !up {
		p.draw(p.status, "status", []string{"WiFi Failed!"})
		return
	}
	p.draw(p.status, "status", []string{"WiFi Connected", "IP: " + addr})
}

func (p *Panels) draw(s Surface, name string, rows []string) {
	if err := s.Clear(); err != nil {
		logger.Warn().Err(err).Str("panel", name).Msg("Failed to clear panel")
	}
	for i, row := range rows {
		if err := s.WriteRow(i, row); err != nil {
			logger.Warn().Err(err).Str("panel", name).Int("row", i).Msg("Failed to write panel row")
		}
	}
}

package alert

// Thresholds are the static comparison points for alert evaluation.
// Comparisons are strict: a reading exactly at a threshold does not
// alert.
type Thresholds struct {
	TempHighC       float64
	LightLowLux     float64
	HumidityHighPct float64
}

// State holds one cycle's alert flags. It is recomputed from scratch
// every cycle and carries nothing forward.
type State struct {
	ZoneA    bool
	ZoneB    bool
	HighTemp bool
}

// Any reports whether either zone is alerting. HighTemp alone never
// counts: it is always accompanied by its zone's flag.
func (s State) Any() bool {
	return s.ZoneA || s.ZoneB
}

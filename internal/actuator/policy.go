package actuator

import (
	"time"

	"codeberg.org/mutker/zonectl/internal/alert"
)

// Hold time of the buzzer when any zone alerts
const buzzerPulse = 100 * time.Millisecond

// Plan maps alert flags to actuator commands: yellow mirrors zone A,
// red mirrors zone B, green means all clear, and the fan follows the
// aggregate high-temperature flag. Pure derivation, no state.
func Plan(alerts alert.State) Commands {
	cmd := Commands{
		Green:  !alerts.Any(),
		Yellow: alerts.ZoneA,
		Red:    alerts.ZoneB,
		Fan:    alerts.HighTemp,
	}
	if alerts.Any() {
		cmd.BuzzerPulse = buzzerPulse
	}

	return cmd
}

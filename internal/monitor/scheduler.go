package monitor

import "time"

// NextSleep computes the end-of-cycle sleep. work is the cycle's
// duration excluding the buzzer pulse; the pulse is passed separately
// so it is neither missed nor double-counted. A negative result
// clamps to floor and reports an overrun.
func NextSleep(period, work, pulse, floor time.Duration) (sleep time.Duration, overrun bool) {
	sleep = period - work - pulse
	if sleep < 0 {
		return floor, true
	}

	return sleep, false
}

//go:build rp2040 || rp2350

package hal

import "tinygo.org/x/drivers/delay"

// BusyWait is a cycle-counted spin. Durations above ~16ms fall back to
// time.Sleep inside delay.Sleep.
var BusyWait Sleeper = delay.Sleep

//go:build !(rp2040 || rp2350)

package hal

import "time"

// BusyWait blocks for the given duration. On AVR the TinyGo runtime sleeps on
// the hardware timer, which is good enough for millisecond LCD strobes.
var BusyWait Sleeper = time.Sleep

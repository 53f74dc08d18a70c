package core

import "fmt"

// FormatOffset renders a millisecond track offset as m:ss.mmm for HUD and
// log output. Negative offsets keep a leading sign.
func FormatOffset(ms int64) string {
	neg := ms < 0
	if neg {
		ms = -ms
	}
	min := ms / 60000
	sec := (ms % 60000) / 1000
	rem := ms % 1000
	if neg {
		return fmt.Sprintf("-%d:%02d.%03d", min, sec, rem)
	}
	return fmt.Sprintf("%d:%02d.%03d", min, sec, rem)
}

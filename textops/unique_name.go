package textops

import "time"

// TimestampLayout is the suffix format of generated names.
const TimestampLayout = "2006_01_02_15_04_05"

// Namer builds unique names from the current time.
type Namer struct {
	Now func() time.Time
}

// UniqueName returns base + sep + the current local time. seed is accepted
// so the host re-evaluates the node on every run; it never affects the
// result.
func (n Namer) UniqueName(base, sep string, seed int64) string {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	return base + sep + now().Format(TimestampLayout)
}

// UniqueName uses the system clock.
func UniqueName(base, sep string, seed int64) string {
	return Namer{}.UniqueName(base, sep, seed)
}

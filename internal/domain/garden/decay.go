package garden

import "time"

// DecayDelta is the passive effect of elapsed real time. Health is never
// positive; soil moves toward the configured baseline without overshooting.
type DecayDelta struct {
	Health    int
	Soil      int
	Hours     int
	ClockSkew bool
}

func (d DecayDelta) IsZero() bool {
	return d.Health == 0 && d.Soil == 0
}

// evaluateDecay converts the time between lastUpdated and now into a decay
// delta. A reference time earlier than lastUpdated is clock skew and is
// clamped to zero elapsed time rather than producing a healing effect.
// Only whole elapsed hours count; sub-hour windows decay nothing.
func (e Engine) evaluateDecay(soil int, lastUpdated, now time.Time) DecayDelta {
	if now.Before(lastUpdated) {
		return DecayDelta{ClockSkew: true}
	}

	hours := int(now.Sub(lastUpdated).Hours())
	if hours <= 0 {
		return DecayDelta{}
	}

	delta := DecayDelta{
		Health: -hours * e.cfg.HealthDecayPerHour,
		Hours:  hours,
	}

	// One drift step per evaluation, capped at the baseline.
	step := e.cfg.SoilDriftStep
	switch {
	case soil < e.cfg.SoilBaseline:
		delta.Soil = minInt(step, e.cfg.SoilBaseline-soil)
	case soil > e.cfg.SoilBaseline:
		delta.Soil = -minInt(step, soil-e.cfg.SoilBaseline)
	}
	return delta
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package garden

import "math"

// resolveAction maps an action plus the plant's current soil quality into a
// raw effect triple. Fertilizer effectiveness scales linearly with soil
// quality and depletes the soil; fertilizing dead soil is a valid no-op.
func (e Engine) resolveAction(action ActionType, soil int) (EffectDelta, error) {
	switch action {
	case ActionFertilize:
		return EffectDelta{
			Health: scaleBySoil(e.cfg.FertilizeHealthMax, soil),
			XP:     scaleBySoil(e.cfg.FertilizeXPMax, soil),
			Soil:   -e.cfg.FertilizeSoilCost,
		}, nil
	case ActionWater, ActionFeed, ActionRain, ActionCheckSoil:
		return e.cfg.Effects[action], nil
	default:
		return EffectDelta{}, ErrInvalidAction
	}
}

func scaleBySoil(max, soil int) int {
	return int(math.Round(float64(max) * float64(soil) / float64(MaxStat)))
}

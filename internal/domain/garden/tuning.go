package garden

const (
	MinStat = 0
	MaxStat = 100

	DefaultHealthDecayPerHour = 1
	DefaultSoilBaseline       = 50
	DefaultSoilDriftStep      = 1

	DefaultFertilizeHealthMax = 10
	DefaultFertilizeXPMax     = 20
	DefaultFertilizeSoilCost  = 5

	DefaultHappyHealthMin   = 70
	DefaultNeutralHealthMin = 30

	InitialHealth      = 100
	InitialSoilQuality = 50
)

// EffectDelta is a raw pre-clamp (health, xp, soil) triple.
type EffectDelta struct {
	Health int
	XP     int
	Soil   int
}

type LevelStep struct {
	XPThreshold int
	Level       int
}

// Tuning is the static configuration surface consumed at engine
// construction. Start from DefaultTuning and override fields.
type Tuning struct {
	HealthDecayPerHour int
	SoilBaseline       int
	SoilDriftStep      int

	Effects map[ActionType]EffectDelta

	FertilizeHealthMax int
	FertilizeXPMax     int
	FertilizeSoilCost  int

	LevelTable []LevelStep

	HappyHealthMin   int
	NeutralHealthMin int

	Badges []BadgeDef
}

func DefaultTuning() Tuning {
	return Tuning{
		HealthDecayPerHour: DefaultHealthDecayPerHour,
		SoilBaseline:       DefaultSoilBaseline,
		SoilDriftStep:      DefaultSoilDriftStep,
		Effects: map[ActionType]EffectDelta{
			ActionWater:     {Health: 10, XP: 2, Soil: 0},
			ActionFeed:      {Health: 3, XP: 15, Soil: 0},
			ActionRain:      {Health: 15, XP: 0, Soil: 5},
			ActionCheckSoil: {},
		},
		FertilizeHealthMax: DefaultFertilizeHealthMax,
		FertilizeXPMax:     DefaultFertilizeXPMax,
		FertilizeSoilCost:  DefaultFertilizeSoilCost,
		LevelTable: []LevelStep{
			{XPThreshold: 0, Level: 1},
			{XPThreshold: 100, Level: 2},
			{XPThreshold: 300, Level: 3},
			{XPThreshold: 600, Level: 4},
			{XPThreshold: 1000, Level: 5},
			{XPThreshold: 1500, Level: 6},
		},
		HappyHealthMin:   DefaultHappyHealthMin,
		NeutralHealthMin: DefaultNeutralHealthMin,
		Badges:           DefaultBadges(),
	}
}

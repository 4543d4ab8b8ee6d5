package autoplan

// Built-in scoring weights. Scores are additive; a penalty of the order of
// 5000 or more effectively excludes a candidate without making the score non-finite.
const (
	// WeightUnderTarget is applied per shift of monthly delta. Under-target
	// employees (negative delta) score higher.
	WeightUnderTarget = 120

	// WeightOvershootBase and WeightOvershootPerShift penalise a delta above +1:
	// base + (delta-1) * perShift
	WeightOvershootBase     = 5000
	WeightOvershootPerShift = 500

	// WeightOvershootReluctance is the small penalty at exactly one shift over target.
	// With the default MaxShiftsOverTarget of 1 such candidates are vetoed, so it
	// only takes effect when maxShiftsOverTarget is set to 0.
	WeightOvershootReluctance = 80

	// WeightWeekExcess is applied per shift above the weekly target,
	// WeightWeekShortfall per shift below it
	WeightWeekExcess    = 60
	WeightWeekShortfall = 10

	// Streak penalties by number of consecutive worked days before the candidate day
	WeightStreakForbidden = 9999
	WeightStreakThree     = 400
	WeightStreakTwo       = 120
	WeightStreakOne       = 40

	// WeightPairBonus is added back at streak 1 to prefer two-day blocks
	WeightPairBonus = 15

	// WeightTuesdayAfterSunday keeps Tuesday free for employees working that week's Sunday
	WeightTuesdayAfterSunday = 500

	// WeightConsecutiveSunday blocks a Sunday right after a worked Sunday
	WeightConsecutiveSunday = 9999

	// WeightSundayDeficit is applied per owed Sunday in the fairness window
	WeightSundayDeficit = 250

	// WeightSundayOverTarget discourages Sundays for employees two or more shifts over target
	WeightSundayOverTarget = 200
)

// Weights holds every tunable scoring constant
type Weights struct {
	UnderTarget         float64 `yaml:"underTarget" validate:"min=0"`
	OvershootBase       float64 `yaml:"overshootBase" validate:"min=0"`
	OvershootPerShift   float64 `yaml:"overshootPerShift" validate:"min=0"`
	OvershootReluctance float64 `yaml:"overshootReluctance" validate:"min=0"`
	WeekExcess          float64 `yaml:"weekExcess" validate:"min=0"`
	WeekShortfall       float64 `yaml:"weekShortfall" validate:"min=0"`
	StreakForbidden     float64 `yaml:"streakForbidden" validate:"min=0"`
	StreakThree         float64 `yaml:"streakThree" validate:"min=0"`
	StreakTwo           float64 `yaml:"streakTwo" validate:"min=0"`
	StreakOne           float64 `yaml:"streakOne" validate:"min=0"`
	PairBonus           float64 `yaml:"pairBonus" validate:"min=0"`
	TuesdayAfterSunday  float64 `yaml:"tuesdayAfterSunday" validate:"min=0"`
	ConsecutiveSunday   float64 `yaml:"consecutiveSunday" validate:"min=0"`
	SundayDeficit       float64 `yaml:"sundayDeficit" validate:"min=0"`
	SundayOverTarget    float64 `yaml:"sundayOverTarget" validate:"min=0"`
}

// DefaultWeights returns the built-in weight set
func DefaultWeights() Weights {
	return Weights{
		UnderTarget:         WeightUnderTarget,
		OvershootBase:       WeightOvershootBase,
		OvershootPerShift:   WeightOvershootPerShift,
		OvershootReluctance: WeightOvershootReluctance,
		WeekExcess:          WeightWeekExcess,
		WeekShortfall:       WeightWeekShortfall,
		StreakForbidden:     WeightStreakForbidden,
		StreakThree:         WeightStreakThree,
		StreakTwo:           WeightStreakTwo,
		StreakOne:           WeightStreakOne,
		PairBonus:           WeightPairBonus,
		TuesdayAfterSunday:  WeightTuesdayAfterSunday,
		ConsecutiveSunday:   WeightConsecutiveSunday,
		SundayDeficit:       WeightSundayDeficit,
		SundayOverTarget:    WeightSundayOverTarget,
	}
}

// Hard limits enforced through criterion vetoes
const (
	// DefaultMaxShiftsOverTarget is how far past the monthly target the
	// planner may push an employee
	DefaultMaxShiftsOverTarget = 1

	// DefaultMaxConsecutiveDays is the longest run of working days the planner creates
	DefaultMaxConsecutiveDays = 4
)

// Limits holds the hard caps. A zero field disables that cap.
type Limits struct {
	MaxShiftsOverTarget int `yaml:"maxShiftsOverTarget" validate:"min=0"`
	MaxConsecutiveDays  int `yaml:"maxConsecutiveDays" validate:"min=0"`
}

// DefaultLimits returns the built-in limits
func DefaultLimits() Limits {
	return Limits{
		MaxShiftsOverTarget: DefaultMaxShiftsOverTarget,
		MaxConsecutiveDays:  DefaultMaxConsecutiveDays,
	}
}

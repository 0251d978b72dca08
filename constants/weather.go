package constants

// Engine defaults at program start
const (
	// InitialWind is the horizontal bias applied to velocities before any key press
	InitialWind = 0.0

	// InitialIntensity is the spawn probability per tick before any key press
	InitialIntensity = 0.3
)

// Parameter command steps and clamps
const (
	// WindStep is the wind change per a/d press, wind is unbounded
	WindStep = 0.05

	// IntensityStep is the intensity change per w/s press
	IntensityStep = 0.05

	// IntensityMin and IntensityMax bound intensity after every adjustment
	IntensityMin = 0.05
	IntensityMax = 1.0
)

// Rain particle defaults
const (
	RainGlyph     = '|'
	RainVelocityY = 1.2
)

// Snow particle defaults
const (
	SnowGlyph     = '*'
	SnowVelocityY = 0.4

	// SnowDriftMax bounds the initial horizontal velocity of a flake to [-SnowDriftMax, SnowDriftMax]
	SnowDriftMax = 0.2
)

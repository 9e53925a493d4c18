package physics

// TickRate is the reference number of steps per second. The default drag
// coefficient is calibrated against it.
const TickRate = 64

// Config holds the tunables of a Scene. Scene files override it field by
// field through prefabs.PhysicsSpec.
type Config struct {
	// GravityScale multiplies G so attraction is visible at screen scale.
	GravityScale float64
	// Restitution scales a reflected velocity; values above 1 add energy.
	Restitution float64
	// DragCoefficient is the drag deceleration, in units/s^2, of a body moving
	// at DragReference.
	DragCoefficient float64
	DragReference   float64
	// ApproachOnly skips the reflection when the bodies already move apart.
	ApproachOnly bool
	// Epsilon bounds the distances and speeds treated as zero.
	Epsilon float64
}

// DefaultConfig returns the reference tuning: gravity scaled by 1e16, a 1.33
// bounce and drag of 10 units/s per 64 Hz tick at 500 units/s.
func DefaultConfig() Config {
	return Config{
		GravityScale:    1e16,
		Restitution:     1.33,
		DragCoefficient: 640,
		DragReference:   500,
		Epsilon:         1e-9,
	}
}

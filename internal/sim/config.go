package sim

// Flight integration.
// The flight clock advances by TimeStep every frame; vertical speed loses
// clock*Gravity per frame, so the pull grows the longer a bird is airborne.
const (
	TimeStep = 0.005
	Gravity  = 0.08
	KillY    = -6.0 // below this a bird has left the playfield
)

// Launch parameters.
const (
	PowerScale   = 1.0 / 9.0 // world units per frame per unit of power
	DefaultAngle = 45.0
	DefaultPower = 1.0
	AngleStep    = 1.0
	PowerStep    = 0.1
	MinAngle     = 0.0
	MaxAngle     = 90.0
	MinPower     = 0.1
	MaxPower     = 3.0
)

// Ground box used for collision. The drawn slab sits lower (GroundDrawY)
// so a resting bird appears to sit on top of it.
const (
	GroundX     = 0.0
	GroundY     = -2.6
	GroundHalfW = 8.0
	GroundHalfH = 0.5
	RestY       = -2.46
	GroundDrawY = -3.2
)

// Birds and the roster queue.
const (
	BirdRadius    = 0.24
	BirdSegments  = 360
	RosterSize    = 6
	MaxRosterSize = 12
	FirstBirdX    = -5.2
	FirstBirdY    = -1.1
	QueueStartX   = -5.6
	QueueY        = -2.5
	QueueSpacing  = 0.5
)

// Launch slot the next bird slides into after a shot lands.
const (
	SlotX     = -5.3
	SlotY     = -1.2
	SlideStep = 0.1
)

// Catapult and power bar placement.
const (
	PowerBarX = -5.0
	PowerBarY = -1.0
)

// View volume (world units) and camera limits.
const (
	ViewHalfW = 8.0
	ViewHalfH = 3.5
	ViewNear  = 0.1
	ViewFar   = 500.0
	MinZoom   = 0.8
	MaxZoom   = 1.0
	ZoomStep  = 0.01
	PanStep   = 0.1
)

// Window defaults.
const (
	WindowWidth  = 1600
	WindowHeight = 700
)

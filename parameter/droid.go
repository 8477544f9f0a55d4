package parameter

// Droid Reference Dimensions
const (
	// DroidArmHeight is the reference arm height, all vertical proportions derive from it
	DroidArmHeight = 20.0

	// DroidBodyWidth is the reference body diameter
	DroidBodyWidth = 14.0

	ShoulderWidthRatio = 0.2 // of body width
	FootHeightRatio    = 0.3 // of arm height

	// HeadLiftRatio places the head above the body pivot, in shoulder widths
	HeadLiftRatio = 1.9
)

// Droid Movement
const (
	// MoveStep is the root displacement per forward/backward action
	MoveStep = 5.0

	// TurnStepDegrees is the yaw increment per left/right action
	TurnStepDegrees = 15.0
)

// Degrees of Freedom (rotations in degrees)
const (
	HeadRotationMin  = -80.0
	HeadRotationMax  = 80.0
	HeadRotationStep = 5.0

	BodyTiltMin  = -45.0
	BodyTiltMax  = 30.0
	BodyTiltStep = 5.0

	ArmScaleMin  = 1.0
	ArmScaleMax  = 1.2
	ArmScaleStep = 0.02

	// DOFTolerance absorbs float accumulation noise at range bounds
	DOFTolerance = 1e-9
)

// ContactWidthFactor scales body width into the collision contact radius
const ContactWidthFactor = 0.75

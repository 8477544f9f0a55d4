package parameter

// Court (play-field) geometry, centered on the origin of the XZ plane
const (
	CourtHalfWidth  = 400.0
	CourtHalfLength = 400.0

	// SpawnGap is the distance past the far edge where the spawn band begins
	SpawnGap = 200.0

	// SpawnFarBand is the depth of the band obstacles are placed in
	SpawnFarBand = 800.0
)

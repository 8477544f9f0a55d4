package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameInterval is the frame tick interval (~60 FPS); obstacle speeds are expressed per frame
	FrameInterval = 16 * time.Millisecond

	// ActionQueueSize is the capacity of the session input inbox
	ActionQueueSize = 64

	// SnapshotObstacleHint is the initial capacity for snapshot obstacle slices
	SnapshotObstacleHint = 32
)

package parameter

import "time"

// Obstacle Spawning
const (
	// SpawnTarget is the total number of obstacles spawned per run
	SpawnTarget = 20

	// BenignRatio of SpawnTarget must be benign by the end of the run
	BenignRatio = 0.2

	// BenignChance is the per-spawn probability of benign while the quota is open
	BenignChance = 0.2

	// SpawnInterval is the spawn timer period, independent of frame rate
	SpawnInterval = 1000 * time.Millisecond

	// ObstacleSpeedFloor is added under the difficulty-scaled lower bound (units per frame)
	// 0 rolls speed from [difficulty, difficulty+spread)
	ObstacleSpeedFloor = 0.0

	// ObstacleSpeedSpread is the width of the speed roll above the lower bound
	ObstacleSpeedSpread = 2.0
)

// Difficulty
const (
	// DifficultyRampInterval raises difficulty by one per interval of game time, 0 disables
	DifficultyRampInterval = 30 * time.Second
)

package parameter

// Energy & Score
const (
	InitialEnergy = 300

	// MoveEnergyCost is charged per accepted movement action regardless of direction
	MoveEnergyCost = 1

	// HarmfulEnergyPenalty is subtracted on first contact with a harmful obstacle
	HarmfulEnergyPenalty = 10

	// BenignAwardPool splits between points and energy: points in [0, pool), energy += pool - points
	BenignAwardPool = 5
)

package cofre

// Experience point rewards, awarded by the mutation that completes the action.
const (
	RewardTransaction = 25  // creating an income or expense record
	RewardTransfer    = 30  // completing a manual transfer
	RewardGoalCreated = 100 // creating a goal
	RewardGoalMove    = 50  // moving value into or out of a goal reserve
)

// LevelThreshold is the number of experience points spanned by each level.
const LevelThreshold = 500

var levelNames = [...]string{"Poupador", "Investidor", "Estrategista"}

// masterLevelName is the terminal level; progress pins at 100%.
const masterLevelName = "Mestre das Finanças"

// Level is the projection of a cumulative experience point total.
type Level struct {
	Index    int
	Name     string
	Progress float64 // progress within the level, 0 to 100
}

// LevelFor computes the level reached with the given cumulative points.
// It is total over any non-negative input; negative inputs clamp to zero.
func LevelFor(points int) Level {
	if points < 0 {
		points = 0
	}
	index := points / LevelThreshold
	if index >= len(levelNames) {
		return Level{Index: index, Name: masterLevelName, Progress: 100}
	}
	return Level{
		Index:    index,
		Name:     levelNames[index],
		Progress: float64(points%LevelThreshold) / LevelThreshold * 100,
	}
}

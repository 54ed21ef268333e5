package defs

// fallbackLevelExp is used for levels the table does not list.
const fallbackLevelExp = 100

// LevelExp maps a level to the experience needed to leave it.
var LevelExp = map[int]int{
	1:  100,
	2:  200,
	3:  400,
	4:  800,
	5:  1600,
	6:  3200,
	7:  6400,
	8:  12800,
	9:  25600,
	10: 51200,
	11: 102400,
	12: 204800,
	13: 409600,
	14: 819200,
	15: 819200 * 2,
}

// ExpForLevel returns the experience threshold for the given level.
func ExpForLevel(level int) int {
	if exp, ok := LevelExp[level]; ok {
		return exp
	}
	return fallbackLevelExp
}

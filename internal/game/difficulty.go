package game

type Difficulty struct {
	Name string
	Rank int
}

var RankMap = map[string]int{
	"Easy":       1,
	"Normal":     3,
	"Hard":       5,
	"Expert":     7,
	"ExpertPlus": 9,
}

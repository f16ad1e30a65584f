package game

// Accuracy grades a resolved hit. The order is significant: a larger value is
// a better grade.
type Accuracy uint8

const (
	Bad Accuracy = iota
	Good
	Perfect
)

func (a Accuracy) String() string {
	switch a {
	case Bad:
		return "BAD"
	case Good:
		return "GOOD"
	case Perfect:
		return "PERFECT"
	}
	return "UNKNOWN"
}

// Accuracies lists every grade from worst to best.
var Accuracies = [...]Accuracy{Bad, Good, Perfect}

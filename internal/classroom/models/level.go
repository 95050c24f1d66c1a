package models

// Level is the difficulty tier of a class.
type Level int

const (
	LevelBeginner     Level = 1
	LevelIntermediate Level = 2
	LevelExpert       Level = 3
)

func (l Level) Valid() bool {
	return l >= LevelBeginner && l <= LevelExpert
}

// String returns the display label.
func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelExpert:
		return "Expert"
	default:
		return "Unknown"
	}
}

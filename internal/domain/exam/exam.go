package exam

// Level is a CA course level.
type Level string

const (
	LevelFinal Level = "CA Final"
	LevelInter Level = "CA Inter"
)

// Difficulty of a generated paper.
type Difficulty string

const (
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

var finalSubjects = []string{
	"Financial Reporting (FR)",
	"Advanced Financial Management (AFM)",
	"Advanced Auditing",
	"Direct Tax",
	"Indirect Tax (GST)",
	"IBS",
}

var interSubjects = []string{
	"Advanced Accounting",
	"Corporate Laws",
	"Taxation",
	"Costing",
	"Auditing",
	"FM-SM",
}

// Subjects returns the subject catalogue for a level. The store does not
// constrain the subject column; these lists bound what the UI offers at
// write time.
func Subjects(level Level) []string {
	if level == LevelInter {
		return interSubjects
	}
	return finalSubjects
}

func ValidLevel(s string) bool {
	return Level(s) == LevelFinal || Level(s) == LevelInter
}

func ValidDifficulty(s string) bool {
	return Difficulty(s) == DifficultyMedium || Difficulty(s) == DifficultyHard
}

// ValidSubject reports whether subject belongs to the level's catalogue.
func ValidSubject(level Level, subject string) bool {
	for _, s := range Subjects(level) {
		if s == subject {
			return true
		}
	}
	return false
}

package course

// Difficulty is the level a chapter is aimed at.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// AllDifficulties returns all difficulty levels in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyBeginner,
		DifficultyIntermediate,
		DifficultyAdvanced,
	}
}

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyBeginner:
		return "Beginner"
	case DifficultyIntermediate:
		return "Intermediate"
	case DifficultyAdvanced:
		return "Advanced"
	default:
		return string(d)
	}
}

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	for _, known := range AllDifficulties() {
		if d == known {
			return true
		}
	}
	return false
}

// Feature is a highlight shown on the course listing.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Chapter is one unit of the course. Chapters are immutable once loaded.
type Chapter struct {
	ID           int        `yaml:"id"`
	Title        string     `yaml:"title"`
	Description  string     `yaml:"description"`
	Duration     string     `yaml:"duration"`
	Difficulty   Difficulty `yaml:"difficulty"`
	Topics       []string   `yaml:"topics"`
	Introduction string     `yaml:"introduction"`
	Sections     []Section  `yaml:"sections"`
}

// QuizCount returns the number of sections that carry a quiz.
func (c Chapter) QuizCount() int {
	n := 0
	for _, s := range c.Sections {
		if s.Quiz != nil {
			n++
		}
	}
	return n
}

// Section is one step of a chapter.
type Section struct {
	ID    string      `yaml:"id"`
	Title string      `yaml:"title"`
	Body  string      `yaml:"body"`
	Code  *CodeSample `yaml:"code,omitempty"`
	Quiz  *QuizSpec   `yaml:"quiz,omitempty"`
}

// CodeSample is a source listing attached to a section.
type CodeSample struct {
	Language    string `yaml:"language"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Source      string `yaml:"source"`
}

// QuizSpec is a multiple-choice question. Exactly one option is correct.
type QuizSpec struct {
	Question    string   `yaml:"question"`
	Options     []Option `yaml:"options"`
	Explanation string   `yaml:"explanation"`
}

// Option looks up an option by id.
func (q QuizSpec) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Option is one answer of a quiz.
type Option struct {
	ID      string `yaml:"id"`
	Text    string `yaml:"text"`
	Correct bool   `yaml:"correct"`
}

package course

import (
	"fmt"
	"strings"
)

// Validate performs the integrity checks on a set of chapters and returns a
// combined error describing all problems found, or nil if valid.
func Validate(chapters []Chapter) error {
	var errs []string

	if len(chapters) == 0 {
		errs = append(errs, "course has no chapters")
	}

	ids := make(map[int]bool, len(chapters))
	for _, ch := range chapters {
		if ch.ID <= 0 {
			errs = append(errs, fmt.Sprintf("chapter %q: id must be > 0, got %d", ch.Title, ch.ID))
		}
		if ids[ch.ID] {
			errs = append(errs, fmt.Sprintf("duplicate chapter ID: %d", ch.ID))
		}
		ids[ch.ID] = true

		if !ch.Difficulty.Valid() {
			errs = append(errs, fmt.Sprintf("chapter %d: unknown difficulty %q", ch.ID, ch.Difficulty))
		}
		if len(ch.Sections) == 0 {
			errs = append(errs, fmt.Sprintf("chapter %d has no sections", ch.ID))
		}

		sectionIDs := make(map[string]bool, len(ch.Sections))
		for _, sec := range ch.Sections {
			prefix := fmt.Sprintf("chapter %d section %q", ch.ID, sec.ID)
			if sec.ID == "" {
				errs = append(errs, fmt.Sprintf("chapter %d: section %q has an empty id", ch.ID, sec.Title))
			}
			if sectionIDs[sec.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate section ID", prefix))
			}
			sectionIDs[sec.ID] = true

			if sec.Code != nil && strings.TrimSpace(sec.Code.Source) == "" {
				errs = append(errs, fmt.Sprintf("%s: code sample has no source", prefix))
			}
			if sec.Quiz != nil {
				errs = append(errs, validateQuiz(prefix, *sec.Quiz)...)
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidContent, strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuiz(prefix string, q QuizSpec) []string {
	var errs []string

	optionIDs := make(map[string]bool, len(q.Options))
	correct := 0
	for _, o := range q.Options {
		if optionIDs[o.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate quiz option %q", prefix, o.ID))
		}
		optionIDs[o.ID] = true
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		errs = append(errs, fmt.Sprintf("%s: quiz must have exactly one correct option, got %d", prefix, correct))
	}
	return errs
}

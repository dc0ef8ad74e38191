package course

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

var (
	// ErrChapterNotFound is returned when a chapter id is not part of the course.
	ErrChapterNotFound = errors.New("chapter not found")

	// ErrInvalidContent is returned when a course document fails validation.
	ErrInvalidContent = errors.New("invalid course content")

	// ErrUnsupportedFormat is returned when a course document declares a
	// format version this build cannot read.
	ErrUnsupportedFormat = errors.New("unsupported course format")
)

// Store holds a loaded course. It is read-only after construction.
type Store struct {
	title    string
	tagline  string
	features []Feature
	chapters []Chapter
	byID     map[int]int
}

// newStore indexes chapters by id and orders them ascending.
func newStore(doc document) *Store {
	chapters := slices.Clone(doc.Chapters)
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].ID < chapters[j].ID
	})

	s := &Store{
		title:    doc.Title,
		tagline:  doc.Tagline,
		features: slices.Clone(doc.Features),
		chapters: chapters,
		byID:     make(map[int]int, len(chapters)),
	}
	for i, ch := range chapters {
		s.byID[ch.ID] = i
	}
	return s
}

// Title returns the course title.
func (s *Store) Title() string { return s.title }

// Tagline returns the course tagline.
func (s *Store) Tagline() string { return s.tagline }

// Features returns the course highlights.
func (s *Store) Features() []Feature { return slices.Clone(s.features) }

// Chapters returns all chapters ordered by id.
func (s *Store) Chapters() []Chapter { return slices.Clone(s.chapters) }

// Len returns the number of chapters.
func (s *Store) Len() int { return len(s.chapters) }

// Chapter returns the chapter with the given id. Unknown ids return an error
// wrapping ErrChapterNotFound.
func (s *Store) Chapter(id int) (Chapter, error) {
	i, ok := s.byID[id]
	if !ok {
		return Chapter{}, fmt.Errorf("chapter %d: %w", id, ErrChapterNotFound)
	}
	return s.chapters[i], nil
}

// IDs returns all chapter ids in order.
func (s *Store) IDs() []int {
	ids := make([]int, len(s.chapters))
	for i, ch := range s.chapters {
		ids[i] = ch.ID
	}
	return ids
}

// Prev returns the chapter numbered id-1, if any.
func (s *Store) Prev(id int) (Chapter, bool) {
	ch, err := s.Chapter(id - 1)
	return ch, err == nil
}

// Next returns the chapter numbered id+1, if any.
func (s *Store) Next(id int) (Chapter, bool) {
	ch, err := s.Chapter(id + 1)
	return ch, err == nil
}

package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EmbeddedCourseIsValid(t *testing.T) {
	s := Default()
	require.NotNil(t, s)
	assert.NoError(t, Validate(s.Chapters()))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.IDs())
	assert.NotEmpty(t, s.Title())
	assert.NotEmpty(t, s.Features())
}

func TestDefault_EveryQuizHasExactlyOneCorrectOption(t *testing.T) {
	for _, ch := range Default().Chapters() {
		for _, sec := range ch.Sections {
			if sec.Quiz == nil {
				continue
			}
			correct := 0
			for _, o := range sec.Quiz.Options {
				if o.Correct {
					correct++
				}
			}
			assert.Equal(t, 1, correct, "chapter %d section %q", ch.ID, sec.ID)
		}
	}
}

func TestDefault_ReturnsSameStore(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestStore_ChapterNotFound(t *testing.T) {
	_, err := Default().Chapter(999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChapterNotFound)
	assert.Contains(t, err.Error(), "999")
}

func TestStore_ChapterLookup(t *testing.T) {
	ch, err := Default().Chapter(3)
	require.NoError(t, err)
	assert.Equal(t, 3, ch.ID)
	assert.Equal(t, DifficultyIntermediate, ch.Difficulty)
	assert.NotEmpty(t, ch.Sections)
}

func TestStore_PrevNext(t *testing.T) {
	s := Default()

	_, ok := s.Prev(1)
	assert.False(t, ok, "first chapter has no predecessor")

	next, ok := s.Next(1)
	require.True(t, ok)
	assert.Equal(t, 2, next.ID)

	prev, ok := s.Prev(5)
	require.True(t, ok)
	assert.Equal(t, 4, prev.ID)

	_, ok = s.Next(5)
	assert.False(t, ok, "last chapter has no successor")
}

func TestStore_ChaptersIsACopy(t *testing.T) {
	s := Default()
	chapters := s.Chapters()
	chapters[0].Title = "mutated"

	ch, err := s.Chapter(chapters[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", ch.Title)
}

func TestDifficulty(t *testing.T) {
	assert.Equal(t, "Beginner", DifficultyBeginner.DisplayName())
	assert.Equal(t, "Advanced", DifficultyAdvanced.DisplayName())
	assert.True(t, DifficultyIntermediate.Valid())
	assert.False(t, Difficulty("expert").Valid())
	assert.Equal(t, "expert", Difficulty("expert").DisplayName())
}

func TestQuizSpec_Option(t *testing.T) {
	q := QuizSpec{Options: []Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B", Correct: true}}}

	o, ok := q.Option("b")
	require.True(t, ok)
	assert.True(t, o.Correct)

	_, ok = q.Option("z")
	assert.False(t, ok)
}

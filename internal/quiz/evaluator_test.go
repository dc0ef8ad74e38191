package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/roscourse/internal/course"
)

func twoOptionQuiz() course.QuizSpec {
	return course.QuizSpec{
		Question: "Which one?",
		Options: []course.Option{
			{ID: "a", Text: "Wrong"},
			{ID: "b", Text: "Right", Correct: true},
		},
		Explanation: "b is right.",
	}
}

func TestEvaluator_Fresh(t *testing.T) {
	e := New(twoOptionQuiz())

	_, ok := e.Selected()
	assert.False(t, ok)
	assert.False(t, e.Answered())
	assert.False(t, e.CanSubmit())
	assert.Equal(t, Unanswered, e.Outcome())
}

func TestEvaluator_SubmitWithoutSelection(t *testing.T) {
	e := New(twoOptionQuiz())

	assert.False(t, e.Submit())
	assert.False(t, e.Answered())
}

func TestEvaluator_SelectUnknownOption(t *testing.T) {
	e := New(twoOptionQuiz())

	assert.False(t, e.Select("z"))
	_, ok := e.Selected()
	assert.False(t, ok)
}

func TestEvaluator_SelectChangesBeforeSubmit(t *testing.T) {
	e := New(twoOptionQuiz())

	assert.True(t, e.Select("a"))
	assert.False(t, e.Select("a"), "same option is not a change")
	assert.True(t, e.Select("b"))

	id, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, "b", id)
}

func TestEvaluator_SelectAfterSubmitIgnored(t *testing.T) {
	e := New(twoOptionQuiz())
	e.Select("b")
	require.True(t, e.Submit())

	assert.False(t, e.Select("a"))
	id, _ := e.Selected()
	assert.Equal(t, "b", id)
	assert.True(t, e.IsCorrect())
	assert.False(t, e.Submit(), "second submit is a no-op")
}

func TestEvaluator_CorrectThenResetThenIncorrect(t *testing.T) {
	e := New(twoOptionQuiz())

	e.Select("b")
	e.Submit()
	assert.True(t, e.Answered())
	assert.True(t, e.IsCorrect())
	assert.Equal(t, Correct, e.Outcome())

	e.Reset()
	assert.False(t, e.Answered())
	_, ok := e.Selected()
	assert.False(t, ok)

	e.Select("a")
	e.Submit()
	assert.True(t, e.Answered())
	assert.False(t, e.IsCorrect())
	assert.Equal(t, Incorrect, e.Outcome())
}

func TestEvaluator_IsCorrectWithoutSelection(t *testing.T) {
	e := New(twoOptionQuiz())
	assert.False(t, e.IsCorrect())
}

func TestEvaluator_CorrectOption(t *testing.T) {
	o, ok := New(twoOptionQuiz()).CorrectOption()
	require.True(t, ok)
	assert.Equal(t, "b", o.ID)

	_, ok = New(course.QuizSpec{Options: []course.Option{{ID: "a"}}}).CorrectOption()
	assert.False(t, ok)
}

func TestEvaluator_EmbeddedQuizzes(t *testing.T) {
	for _, ch := range course.Default().Chapters() {
		for _, sec := range ch.Sections {
			if sec.Quiz == nil {
				continue
			}
			e := New(*sec.Quiz)
			right, ok := e.CorrectOption()
			require.True(t, ok, "chapter %d section %s", ch.ID, sec.ID)

			e.Select(right.ID)
			e.Submit()
			assert.Equal(t, Correct, e.Outcome(), "chapter %d section %s", ch.ID, sec.ID)
		}
	}
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "Correct!", Correct.String())
	assert.Equal(t, "Incorrect", Incorrect.String())
	assert.Equal(t, "Unanswered", Unanswered.String())
}

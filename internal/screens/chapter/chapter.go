// Package chapter implements the chapter view: a stepper over the chapter's
// sections with code samples, quizzes and progress tracking.
package chapter

import (
	"fmt"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/roscourse/internal/clipboard"
	"github.com/abhisek/roscourse/internal/course"
	"github.com/abhisek/roscourse/internal/highlight"
	"github.com/abhisek/roscourse/internal/progress"
	"github.com/abhisek/roscourse/internal/quiz"
	"github.com/abhisek/roscourse/internal/screen"
	"github.com/abhisek/roscourse/internal/ui/components"
	"github.com/abhisek/roscourse/internal/ui/layout"
)

// DefaultStatusDuration is how long the copy status line stays visible.
const DefaultStatusDuration = 2 * time.Second

// Deps holds the collaborators shared by every chapter view.
type Deps struct {
	Store        *course.Store
	Highlighter  *highlight.Highlighter
	Clipboard    clipboard.Writer
	Logger       *slog.Logger
	AdvanceDelay time.Duration

	// StatusDuration defaults to DefaultStatusDuration.
	StatusDuration time.Duration
}

// ChapterScreen shows one chapter. Its progress and quiz answers live only as
// long as the screen.
type ChapterScreen struct {
	deps    Deps
	id      uuid.UUID
	chapter course.Chapter

	tracker *progress.Tracker
	advance progress.Pending
	quizzes map[int]*quiz.Evaluator

	showTOC bool
	toc     components.Menu

	status      string
	statusErr   bool
	statusTimer progress.Pending

	vp             viewport.Model
	scrollToActive bool
	codeCache      map[int]string
	closed         bool
}

var _ screen.Screen = (*ChapterScreen)(nil)
var _ screen.KeyHintProvider = (*ChapterScreen)(nil)
var _ screen.Closer = (*ChapterScreen)(nil)
var _ screen.StatusProvider = (*ChapterScreen)(nil)

// New creates a view for ch with fresh progress and quiz state.
func New(deps Deps, ch course.Chapter) *ChapterScreen {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.AdvanceDelay <= 0 {
		deps.AdvanceDelay = progress.DefaultAdvanceDelay
	}
	if deps.StatusDuration <= 0 {
		deps.StatusDuration = DefaultStatusDuration
	}
	if deps.Highlighter == nil {
		deps.Highlighter = highlight.New(highlight.DefaultStyle)
	}

	quizzes := make(map[int]*quiz.Evaluator)
	for i, sec := range ch.Sections {
		if sec.Quiz != nil {
			quizzes[i] = quiz.New(*sec.Quiz)
		}
	}

	s := &ChapterScreen{
		deps:      deps,
		id:        uuid.New(),
		chapter:   ch,
		tracker:   progress.New(len(ch.Sections)),
		quizzes:   quizzes,
		vp:        viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
		codeCache: make(map[int]string),
	}
	s.rebuildTOC()
	return s
}

// Chapter returns the chapter being shown.
func (s *ChapterScreen) Chapter() course.Chapter { return s.chapter }

// Tracker exposes the view's progress state.
func (s *ChapterScreen) Tracker() *progress.Tracker { return s.tracker }

// Quiz returns the evaluator for the section at index i, if it has a quiz.
func (s *ChapterScreen) Quiz(i int) (*quiz.Evaluator, bool) {
	e, ok := s.quizzes[i]
	return e, ok
}

func (s *ChapterScreen) Init() tea.Cmd {
	s.deps.Logger.Debug("chapter opened", "chapter", s.chapter.ID, "view", s.id)
	return nil
}

func (s *ChapterScreen) Title() string {
	return fmt.Sprintf("Chapter %d", s.chapter.ID)
}

// Status reports reading progress for the header.
func (s *ChapterScreen) Status() string {
	return fmt.Sprintf("%d/%d read · %d%%",
		s.tracker.CompletedCount(), s.tracker.Len(), s.tracker.CompletionPercent())
}

// Close cancels pending timers. Late timer messages are then ignored.
func (s *ChapterScreen) Close() {
	s.closed = true
	s.advance.Cancel()
	s.statusTimer.Cancel()
	s.deps.Logger.Debug("chapter closed", "chapter", s.chapter.ID, "view", s.id)
}

func (s *ChapterScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if s.owns(msg.View) && s.advance.Fire(msg.Ticket) {
			s.tracker.Advance()
			s.sectionChanged()
		}
		return s, nil

	case statusExpiredMsg:
		if s.owns(msg.View) && s.statusTimer.Fire(msg.Ticket) {
			s.status = ""
			s.statusErr = false
		}
		return s, nil

	case gotoSectionMsg:
		if s.owns(msg.View) {
			s.goTo(msg.Index)
			s.showTOC = false
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ChapterScreen) owns(view uuid.UUID) bool {
	return !s.closed && view == s.id
}

func (s *ChapterScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if key.Matches(msg, keys.Contents) {
		s.showTOC = !s.showTOC
		if s.showTOC {
			s.rebuildTOC()
		}
		return s, nil
	}

	if s.showTOC {
		var cmd tea.Cmd
		s.toc, cmd = s.toc.Update(msg)
		return s, cmd
	}

	switch {
	case key.Matches(msg, keys.Prev):
		s.retreat()
	case key.Matches(msg, keys.Next):
		s.goTo(s.tracker.Active() + 1)
	case key.Matches(msg, keys.Complete):
		return s, s.markComplete()
	case key.Matches(msg, keys.Up):
		s.vp.ScrollUp(1)
	case key.Matches(msg, keys.Down):
		s.vp.ScrollDown(1)
	case key.Matches(msg, keys.PageUp):
		s.vp.PageUp()
	case key.Matches(msg, keys.PageDown):
		s.vp.PageDown()
	case key.Matches(msg, keys.Option):
		s.selectOption(msg.String())
	case key.Matches(msg, keys.Submit):
		s.submitQuiz()
	case key.Matches(msg, keys.Reset):
		if e, ok := s.activeQuiz(); ok {
			e.Reset()
		}
	case key.Matches(msg, keys.Copy):
		return s, s.copyCode()
	case key.Matches(msg, keys.PrevChapter):
		if prev, ok := s.deps.Store.Prev(s.chapter.ID); ok {
			return s, openChapter(prev.ID)
		}
	case key.Matches(msg, keys.NextChapter):
		if next, ok := s.deps.Store.Next(s.chapter.ID); ok {
			return s, openChapter(next.ID)
		}
	}
	return s, nil
}

func openChapter(id int) tea.Cmd {
	return func() tea.Msg { return screen.OpenChapterMsg{ID: id} }
}

// goTo is explicit navigation; it cancels any pending auto-advance.
func (s *ChapterScreen) goTo(i int) {
	s.advance.Cancel()
	before := s.tracker.Active()
	s.tracker.GoTo(i)
	if s.tracker.Active() != before {
		s.sectionChanged()
	}
}

func (s *ChapterScreen) retreat() {
	s.advance.Cancel()
	if s.tracker.CanRetreat() {
		s.tracker.Retreat()
		s.sectionChanged()
	}
}

// markComplete completes the active section. A newly completed section
// advances after the configured delay; an already completed one advances
// immediately.
func (s *ChapterScreen) markComplete() tea.Cmd {
	i := s.tracker.Active()
	switch s.tracker.MarkComplete(i) {
	case progress.AdvanceDeferred:
		s.deps.Logger.Debug("section completed",
			"chapter", s.chapter.ID, "section", s.chapter.Sections[i].ID,
			"percent", s.tracker.CompletionPercent())
		s.rebuildTOC()
		if !s.tracker.CanAdvance() {
			return nil
		}
		ticket := s.advance.Arm(i)
		view := s.id
		return tea.Tick(s.deps.AdvanceDelay, func(time.Time) tea.Msg {
			return advanceMsg{View: view, Ticket: ticket}
		})
	default:
		if s.tracker.CanAdvance() {
			s.goTo(i + 1)
		}
		return nil
	}
}

func (s *ChapterScreen) activeQuiz() (*quiz.Evaluator, bool) {
	e, ok := s.quizzes[s.tracker.Active()]
	return e, ok
}

func (s *ChapterScreen) selectOption(k string) {
	e, ok := s.activeQuiz()
	if !ok {
		return
	}
	idx, ok := optionIndex(k)
	if !ok || idx >= len(e.Spec().Options) {
		return
	}
	e.Select(e.Spec().Options[idx].ID)
}

func (s *ChapterScreen) submitQuiz() {
	e, ok := s.activeQuiz()
	if !ok || !e.Submit() {
		return
	}
	s.deps.Logger.Debug("quiz submitted",
		"chapter", s.chapter.ID, "section", s.chapter.Sections[s.tracker.Active()].ID,
		"outcome", e.Outcome().String())
}

// copyCode puts the active section's code sample on the clipboard and shows
// a transient status line.
func (s *ChapterScreen) copyCode() tea.Cmd {
	sec := s.chapter.Sections[s.tracker.Active()]
	if sec.Code == nil {
		return nil
	}

	if s.deps.Clipboard == nil {
		s.setStatus("Copy failed: "+clipboard.ErrUnavailable.Error(), true)
	} else if err := s.deps.Clipboard.WriteAll(sec.Code.Source); err != nil {
		s.deps.Logger.Error("copy code sample",
			"chapter", s.chapter.ID, "section", sec.ID, "error", err)
		s.setStatus("Copy failed: "+err.Error(), true)
	} else {
		s.setStatus("Code copied!", false)
	}

	ticket := s.statusTimer.Arm(s.tracker.Active())
	view := s.id
	return tea.Tick(s.deps.StatusDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{View: view, Ticket: ticket}
	})
}

func (s *ChapterScreen) setStatus(text string, isErr bool) {
	s.status = text
	s.statusErr = isErr
}

func (s *ChapterScreen) sectionChanged() {
	s.scrollToActive = true
	s.rebuildTOC()
}

func (s *ChapterScreen) rebuildTOC() {
	items := make([]components.MenuItem, len(s.chapter.Sections))
	for i, sec := range s.chapter.Sections {
		idx := i
		view := s.id
		item := components.MenuItem{
			Label: fmt.Sprintf("%d. %s", i+1, sec.Title),
			Action: func() tea.Cmd {
				return func() tea.Msg { return gotoSectionMsg{View: view, Index: idx} }
			},
		}
		if s.tracker.IsCompleted(i) {
			item.Marker = "✓"
		}
		items[i] = item
	}
	s.toc = components.NewMenu(items)
	s.toc.Selected = s.tracker.Active()
}

// completeLabel names the primary action for the active section.
func (s *ChapterScreen) completeLabel() string {
	switch {
	case s.tracker.IsLast():
		return "Finish"
	case s.tracker.IsCompleted(s.tracker.Active()):
		return "Next"
	default:
		return "Mark as read"
	}
}

func (s *ChapterScreen) KeyHints() []layout.KeyHint {
	if s.showTOC {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Go to section"},
			{Key: "t", Description: "Close contents"},
			{Key: "Esc", Description: "Back"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "←→", Description: "Section"},
		{Key: "Enter", Description: s.completeLabel()},
		{Key: "t", Description: "Contents"},
	}
	if _, ok := s.activeQuiz(); ok {
		hints = append(hints,
			layout.KeyHint{Key: "a-d", Description: "Choose"},
			layout.KeyHint{Key: "s", Description: "Submit"},
		)
	}
	if s.chapter.Sections[s.tracker.Active()].Code != nil {
		hints = append(hints, layout.KeyHint{Key: "y", Description: "Copy"})
	}
	return append(hints,
		layout.KeyHint{Key: "[ ]", Description: "Chapter"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

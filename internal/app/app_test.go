package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/roscourse/internal/course"
	"github.com/abhisek/roscourse/internal/screen"
	"github.com/abhisek/roscourse/internal/screens/chapter"
	"github.com/abhisek/roscourse/internal/screens/home"
)

func testModel(initial int) AppModel {
	return newAppModel(Options{
		Deps: chapter.Deps{
			Store:        course.Default(),
			AdvanceDelay: time.Millisecond,
		},
		InitialChapter: initial,
	})
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(AppModel), cmd
}

func TestApp_StartsOnListing(t *testing.T) {
	m := testModel(0)

	assert.Nil(t, m.Init())
	assert.Equal(t, 1, m.router.Depth())
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestApp_InitialChapter(t *testing.T) {
	m := testModel(3)

	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = update(m, cmd())

	require.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "Chapter 3", m.router.Active().Title())
}

func TestApp_UnknownChapterFallsBackToListing(t *testing.T) {
	m := testModel(999)

	m, _ = update(m, m.Init()())

	assert.Equal(t, 1, m.router.Depth())
	assert.Same(t, m.home, m.router.Active())
	assert.Contains(t, m.home.Notice(), "Chapter 999 not found")
}

func TestApp_UnknownChapterFromChapterView(t *testing.T) {
	m := testModel(1)
	m, _ = update(m, m.Init()())
	require.Equal(t, 2, m.router.Depth())

	m, _ = update(m, screen.OpenChapterMsg{ID: 42})
	assert.Equal(t, 1, m.router.Depth())
	assert.NotEmpty(t, m.home.Notice())
}

func TestApp_OpenChapterFromListing(t *testing.T) {
	m := testModel(0)

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Nil(t, cmd)
	m, cmd = update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = update(m, cmd())

	assert.Equal(t, "Chapter 2", m.router.Active().Title())
}

func TestApp_SwitchChapterReplacesView(t *testing.T) {
	m := testModel(1)
	m, _ = update(m, m.Init()())
	first := m.router.Active().(*chapter.ChapterScreen)

	m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	m, cmd := update(m, tea.KeyPressMsg{Code: ']', Text: "]"})
	require.NotNil(t, cmd)
	m, _ = update(m, cmd())

	assert.Equal(t, 2, m.router.Depth(), "chapter switch keeps the stack shallow")
	assert.Equal(t, "Chapter 2", m.router.Active().Title())
	assert.True(t, first.Tracker().IsCompleted(0))
}

func TestApp_ClosedViewDropsLateAdvance(t *testing.T) {
	m := testModel(1)
	m, _ = update(m, m.Init()())
	first := m.router.Active().(*chapter.ChapterScreen)

	m, advance := update(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, advance)

	m, open := update(m, tea.KeyPressMsg{Code: ']', Text: "]"})
	m, _ = update(m, open())
	second := m.router.Active().(*chapter.ChapterScreen)

	m, _ = update(m, advance())
	assert.Equal(t, 0, first.Tracker().Active())
	assert.Equal(t, 0, second.Tracker().Active())
}

func TestApp_EscReturnsToListing(t *testing.T) {
	m := testModel(2)
	m, _ = update(m, m.Init()())

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m, _ = update(m, cmd())

	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_QuitFromListing(t *testing.T) {
	m := testModel(0)

	_, cmd := update(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_View(t *testing.T) {
	m := testModel(1)
	m, _ = update(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(m, m.Init()())

	assert.True(t, m.View().AltScreen)
	out := m.render()
	assert.Contains(t, out, "Chapter 1")
	assert.Contains(t, out, "ROS 2 Course")
}

func TestApp_ViewTooSmall(t *testing.T) {
	m := testModel(0)
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})

	assert.Contains(t, m.render(), "Terminal too small")
}

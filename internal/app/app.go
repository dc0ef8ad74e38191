package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/roscourse/internal/course"
	"github.com/abhisek/roscourse/internal/router"
	"github.com/abhisek/roscourse/internal/screen"
	"github.com/abhisek/roscourse/internal/screens/chapter"
	"github.com/abhisek/roscourse/internal/screens/home"
	"github.com/abhisek/roscourse/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Deps chapter.Deps

	// InitialChapter opens a chapter on start when non-zero.
	InitialChapter int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	home    *home.HomeScreen
	deps    chapter.Deps
	initial int
	width   int
	height  int
}

// newAppModel creates a new AppModel with the chapter listing at the root.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Deps.Store)
	return AppModel{
		router:  router.New(homeScreen),
		home:    homeScreen,
		deps:    opts.Deps,
		initial: opts.InitialChapter,
	}
}

func (m AppModel) Init() tea.Cmd {
	if m.initial == 0 {
		return nil
	}
	id := m.initial
	return func() tea.Msg { return screen.OpenChapterMsg{ID: id} }
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.PopToRoot()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case screen.OpenChapterMsg:
		return m, m.openChapter(msg.ID)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// openChapter shows chapter id, replacing any open chapter. Unknown ids
// return to the listing with a notice.
func (m AppModel) openChapter(id int) tea.Cmd {
	ch, err := m.deps.Store.Chapter(id)
	if err != nil {
		if m.deps.Logger != nil {
			m.deps.Logger.Warn("open chapter", "chapter", id, "error", err)
		}
		m.router.PopToRoot()
		if errors.Is(err, course.ErrChapterNotFound) {
			m.home.SetNotice(fmt.Sprintf("Chapter %d not found. Showing all chapters.", id))
		}
		return nil
	}

	view := chapter.New(m.deps, ch)
	if m.router.Depth() > 1 {
		return m.router.Replace(view)
	}
	return m.router.Push(view)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

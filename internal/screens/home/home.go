package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/roscourse/internal/course"
	"github.com/abhisek/roscourse/internal/screen"
	"github.com/abhisek/roscourse/internal/ui/components"
	"github.com/abhisek/roscourse/internal/ui/layout"
)

// HomeScreen lists the chapters of the course.
type HomeScreen struct {
	store        *course.Store
	chapters     []course.Chapter
	menu         components.Menu
	scrollOffset int
	notice       string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen for the given course.
func New(store *course.Store) *HomeScreen {
	chapters := store.Chapters()

	items := make([]components.MenuItem, len(chapters))
	for i, ch := range chapters {
		id := ch.ID
		items[i] = components.MenuItem{
			Label: ch.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg { return screen.OpenChapterMsg{ID: id} }
			},
		}
	}

	return &HomeScreen{
		store:    store,
		chapters: chapters,
		menu:     components.NewMenu(items),
	}
}

// SetNotice shows a one-off message above the chapter list until the next key press.
func (h *HomeScreen) SetNotice(notice string) {
	h.notice = notice
}

// Notice returns the message currently shown, if any.
func (h *HomeScreen) Notice() string { return h.notice }

// Selected returns the id of the highlighted chapter.
func (h *HomeScreen) Selected() int {
	if len(h.chapters) == 0 {
		return 0
	}
	return h.chapters[h.menu.Selected].ID
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	h.notice = ""
	if kmsg.String() == "q" {
		return h, tea.Quit
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	cw := layout.ReadingWidth(width)

	var sections []string
	sections = append(sections, renderTitle(h.store.Title(), h.store.Tagline(), cw))
	if !compact {
		sections = append(sections, renderFeatures(h.store.Features(), cw))
	}
	if h.notice != "" {
		sections = append(sections, renderNotice(h.notice, cw))
	}

	top := strings.Join(sections, "\n\n")
	listHeight := height - strings.Count(top, "\n") - 3

	cards := make([]string, len(h.chapters))
	for i, ch := range h.chapters {
		cards[i] = renderChapterCard(ch, i == h.menu.Selected, cw, compact)
	}
	h.adjustScroll(cards, listHeight)

	list := visibleCards(cards, h.scrollOffset, listHeight)
	return components.Centered(top+"\n\n"+list, width)
}

func (h *HomeScreen) Title() string {
	return "Chapters"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open chapter"},
		{Key: "q", Description: "Quit"},
	}
}

// adjustScroll ensures the selected card is visible within the list area.
func (h *HomeScreen) adjustScroll(cards []string, height int) {
	sel := h.menu.Selected
	if sel < h.scrollOffset {
		h.scrollOffset = sel
	}
	for h.scrollOffset < sel && cardsHeight(cards[h.scrollOffset:sel+1]) > height {
		h.scrollOffset++
	}
}

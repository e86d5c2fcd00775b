package router

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/screen"
)

// SplashDoneMsg requests the router to drop the splash screen.
type SplashDoneMsg struct{}

// Router maps the machine's current view to a screen. The ritual modal
// is layered over the active view while the gate shows it.
type Router struct {
	state   screen.State
	screens map[grimoire.View]screen.Screen
	modal   screen.Screen
	splash  screen.Screen

	current    grimoire.View
	modalShown bool
}

// New creates a Router over the given per-view screens.
func New(state screen.State, screens map[grimoire.View]screen.Screen, modal screen.Screen) *Router {
	return &Router{
		state:   state,
		screens: screens,
		modal:   modal,
		current: state.View(),
	}
}

// WithSplash shows s before any view screen until SplashDoneMsg arrives.
func (r *Router) WithSplash(s screen.Screen) *Router {
	r.splash = s
	return r
}

// Init initializes the first visible screen.
func (r *Router) Init() tea.Cmd {
	if r.splash != nil {
		return r.splash.Init()
	}
	if s := r.screens[r.current]; s != nil {
		return s.Init()
	}
	return nil
}

// Sync re-reads the machine and initializes any screen that just became
// visible. Call it after every machine mutation.
func (r *Router) Sync() tea.Cmd {
	if r.splash != nil {
		return nil
	}

	var cmds []tea.Cmd
	if view := r.state.View(); view != r.current {
		r.current = view
		if s := r.screens[view]; s != nil {
			cmds = append(cmds, s.Init())
		}
	}

	modal := r.state.Gate().ModalVisible
	if modal && !r.modalShown && r.modal != nil {
		cmds = append(cmds, r.modal.Init())
	}
	r.modalShown = modal

	return tea.Batch(cmds...)
}

// Active returns the screen receiving input.
func (r *Router) Active() screen.Screen {
	if r.splash != nil {
		return r.splash
	}
	if r.modalShown && r.modal != nil {
		return r.modal
	}
	return r.screens[r.current]
}

// Splashing reports whether the splash screen is still up.
func (r *Router) Splashing() bool {
	return r.splash != nil
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(SplashDoneMsg); ok {
		if r.splash == nil {
			return nil
		}
		r.splash = nil
		r.current = r.state.View()
		return tea.Batch(r.Init(), r.Sync())
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	switch {
	case r.splash != nil:
		r.splash = updated
	case r.modalShown && r.modal != nil:
		r.modal = updated
	default:
		r.screens[r.current] = updated
	}
	return cmd
}

// View renders the active screen, with the modal drawn over its center.
func (r *Router) View(width, height int) string {
	if r.splash != nil {
		return r.splash.View(width, height)
	}

	var page string
	if s := r.screens[r.current]; s != nil {
		page = s.View(width, height)
	}
	if r.modalShown && r.modal != nil {
		return overlayCenter(page, r.modal.View(width, height), width, height)
	}
	return page
}

// overlayCenter draws box over the middle of page. Page cells outside the
// box stay visible.
func overlayCenter(page, box string, width, height int) string {
	lines := strings.Split(page, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}

	boxLines := strings.Split(box, "\n")
	boxW := lipgloss.Width(box)
	x := max((width-boxW)/2, 0)
	y := max((height-len(boxLines))/2, 0)

	for i, bl := range boxLines {
		row := y + i
		for row >= len(lines) {
			lines = append(lines, "")
		}
		bg := lines[row]
		left := ansi.Truncate(bg, x, "")
		if w := lipgloss.Width(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		if w := lipgloss.Width(bl); w < boxW {
			bl += strings.Repeat(" ", boxW-w)
		}
		lines[row] = left + bl + ansi.TruncateLeft(bg, x+boxW, "")
	}
	return strings.Join(lines, "\n")
}

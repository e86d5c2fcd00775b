package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grimoire/internal/router"
	"github.com/abhisek/grimoire/internal/screen"
	"github.com/abhisek/grimoire/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const tomeArt = `    ______ ______
  _/      Y      \_
 // ~~ ~~ | ~~ ~  \\
//  ~ ~~ ~| ~ ~~ ~ \\
// ~~ ~ ~ | ~~~ ~~  \\
//________.|.________\\
'---------'-'---------'`

// candle flames flicker beside the tome
var flameFrames = []string{"🕯", "✧"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before the library opens.
type WelcomeScreen struct {
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New() *WelcomeScreen {
	return &WelcomeScreen{}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return screen.Emit(router.SplashDoneMsg{})
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Accent).Render(tomeArt)

	if w.elapsed >= phase1End {
		flame := flameFrames[w.tickCount%len(flameFrames)]
		lit := lipgloss.NewStyle().Foreground(theme.Gold).Render(flame)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 3 {
			lines[3] = lit + "  " + lines[3] + "  " + lit
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections, "")
		sections = append(sections, RenderBanner(width))
		sections = append(sections, "")

		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Italic(true).
			Render("The pages remember those who read them.")
		sections = append(sections, tagline)

		sections = append(sections, "")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to open the tome")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

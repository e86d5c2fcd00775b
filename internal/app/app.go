// Package app hosts the Bubble Tea root model. It owns the grimoire
// machine and turns the machine's request descriptors into commands.
package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/grimoire/internal/curator"
	"github.com/abhisek/grimoire/internal/effects"
	"github.com/abhisek/grimoire/internal/grimoire"
	"github.com/abhisek/grimoire/internal/router"
	"github.com/abhisek/grimoire/internal/screen"
	"github.com/abhisek/grimoire/internal/screens/home"
	"github.com/abhisek/grimoire/internal/screens/ritual"
	"github.com/abhisek/grimoire/internal/screens/sanctum"
	"github.com/abhisek/grimoire/internal/screens/skill"
	"github.com/abhisek/grimoire/internal/screens/welcome"
	"github.com/abhisek/grimoire/internal/tutorial"
	"github.com/abhisek/grimoire/internal/ui/layout"
)

// Deps are the collaborators and timings the root model runs with.
type Deps struct {
	Tutorials tutorial.Generator
	Curator   curator.Replier
	Logger    *zap.Logger

	Topics         grimoire.Topics
	RitualDelay    time.Duration
	RewardLifetime time.Duration
	RequestTimeout time.Duration

	// SessionID stamps every LLM event of this run. Generated when empty.
	SessionID string
	// Splash shows the welcome animation first.
	Splash bool
}

func (d *Deps) fillDefaults() {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.RitualDelay <= 0 {
		d.RitualDelay = grimoire.RitualDelay
	}
	if d.RewardLifetime <= 0 {
		d.RewardLifetime = effects.DefaultLifetime
	}
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 60 * time.Second
	}
	if d.SessionID == "" {
		d.SessionID = uuid.NewString()
	}
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx     context.Context
	deps    Deps
	machine *grimoire.Machine
	tracker *effects.Tracker
	router  *router.Router
	anim    *animState
	now     func() time.Time
	width   int
	height  int
}

// newAppModel wires the machine, screens and router.
func newAppModel(ctx context.Context, deps Deps) AppModel {
	deps.fillDefaults()

	machine := grimoire.New(grimoire.Config{Topics: deps.Topics}, deps.Logger.Named("grimoire"))
	r := router.New(machine, map[grimoire.View]screen.Screen{
		grimoire.Home:        home.New(machine),
		grimoire.SkillDetail: skill.New(machine),
		grimoire.Chat:        sanctum.New(machine),
	}, ritual.New(machine))
	if deps.Splash {
		r.WithSplash(welcome.New())
	}

	return AppModel{
		ctx:     ctx,
		deps:    deps,
		machine: machine,
		tracker: effects.NewTracker(deps.RewardLifetime),
		router:  r,
		anim:    &animState{},
		now:     time.Now,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	if cmd, handled := m.handle(msg); handled {
		return m, tea.Batch(cmd, m.router.Sync())
	}

	cmd := m.router.Update(msg)
	return m, cmd
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

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	if m.router.Splashing() {
		return m.router.View(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.machine.Progress().Ratio(), m.machine.Gate().HasPaid, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	content = m.decorate(content, m.width)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(newAppModel(ctx, deps), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/grimoire/internal/ui/theme"
)

const (
	frameInterval = 60 * time.Millisecond
	markerRise    = 4 // rows a marker climbs over its lifetime
)

var shakeOffsets = []int{0, 2, 1, 2, 0, 1}

// animState is shared by value copies of AppModel.
type animState struct {
	running bool
	frame   int
}

// animFrameMsg advances marker and shake animation.
type animFrameMsg struct{}

// animate starts the frame loop unless it is already running.
func (m AppModel) animate() tea.Cmd {
	if m.anim.running {
		return nil
	}
	m.anim.running = true
	return nextFrame()
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return animFrameMsg{} })
}

// onFrame keeps the loop alive while any marker is live.
func (m AppModel) onFrame() tea.Cmd {
	if !m.tracker.Shaking(m.now()) {
		m.anim.running = false
		m.anim.frame = 0
		return nil
	}
	m.anim.frame++
	return nextFrame()
}

// decorate shakes the content and floats live reward markers over it.
func (m AppModel) decorate(content string, width int) string {
	now := m.now()
	markers := m.tracker.Active(now)
	if len(markers) == 0 {
		return content
	}

	lines := strings.Split(content, "\n")

	if shift := shakeOffsets[m.anim.frame%len(shakeOffsets)]; shift > 0 {
		pad := strings.Repeat(" ", shift)
		for i, l := range lines {
			lines[i] = ansi.Truncate(pad+l, width, "")
		}
	}

	for i, mk := range markers {
		label := theme.Reward.Render(mk.Label)
		row := markerRise + i - int(mk.Progress(now)*markerRise)
		if row < 0 || row >= len(lines) {
			continue
		}
		col := max(width-lipgloss.Width(label)-4, 0)
		lines[row] = overlay(lines[row], label, col)
	}

	return strings.Join(lines, "\n")
}

// overlay writes label over line starting at display column col.
func overlay(line, label string, col int) string {
	left := ansi.Truncate(line, col, "")
	if w := lipgloss.Width(left); w < col {
		left += strings.Repeat(" ", col-w)
	}
	return left + label
}

package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grimoire/internal/ui/theme"
)

// TaskChosenMsg reports that the task at Index was submitted.
type TaskChosenMsg struct {
	Index int
}

// TaskList is a selectable list of quest tasks. A task may be submitted
// more than once; Done counts the submissions per task.
type TaskList struct {
	Tasks    []string
	Selected int
	Done     []int
}

// NewTaskList creates a task list with the first task selected.
func NewTaskList(tasks []string) TaskList {
	return TaskList{
		Tasks: tasks,
		Done:  make([]int, len(tasks)),
	}
}

// Update handles keyboard navigation and submission.
func (l TaskList) Update(msg tea.Msg) (TaskList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(l.Tasks) == 0 {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "j":
		if l.Selected < len(l.Tasks)-1 {
			l.Selected++
		}
	case "enter", "space":
		idx := l.Selected
		return l, func() tea.Msg { return TaskChosenMsg{Index: idx} }
	}

	return l, nil
}

// MarkDone records a submission of the task at index.
func (l *TaskList) MarkDone(index int) {
	if index >= 0 && index < len(l.Done) {
		l.Done[index]++
	}
}

// View renders the task list.
func (l TaskList) View(width int) string {
	var b strings.Builder
	for i, task := range l.Tasks {
		mark := "☐"
		if l.Done[i] > 0 {
			mark = "☑"
		}
		prefix := "  "
		if i == l.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, task)

		style := theme.Unselected
		switch {
		case i == l.Selected:
			style = theme.Selected
		case l.Done[i] > 0:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// Package tui is the terminal front end of the food dashboard. It renders the
// controller's state and turns key presses into controller operations.
package tui

import (
	"context"
	"fmt"
	"time"

	"food-dashboard/internal/dashboard"
	"food-dashboard/internal/model"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const defaultTimeout = 10 * time.Second

// Model is the bubbletea model of the dashboard.
type Model struct {
	ctrl    *dashboard.Controller
	timeout time.Duration

	state  dashboard.State // last snapshot taken from ctrl
	cursor int
	form   foodForm

	pending int // I/O commands in flight
	spinner spinner.Model
	status  string
	err     error

	width int
	keys  keyMap
	help  help.Model
}

type loadedMsg struct{ err error }

type savedMsg struct {
	food    model.Food
	editing bool
	err     error
}

type removedMsg struct {
	id  string
	err error
}

// New returns a model driving ctrl. Each remote call is bounded by timeout.
func New(ctrl *dashboard.Controller, timeout time.Duration) Model {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		ctrl:    ctrl,
		timeout: timeout,
		state:   ctrl.State(),
		pending: 1,
		spinner: s,
		keys:    keys,
		help:    help.New(),
	}
}

// Init starts the initial load, which New already counts as pending.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

// Loading reports whether any remote call is still in flight.
func (m Model) Loading() bool { return m.pending > 0 }

func (m Model) load() tea.Cmd {
	ctrl, timeout := m.ctrl, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return loadedMsg{err: ctrl.Load(ctx)}
	}
}

func (m Model) add(draft model.FoodDraft) tea.Cmd {
	ctrl, timeout := m.ctrl, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		food, err := ctrl.Add(ctx, draft)
		return savedMsg{food: food, err: err}
	}
}

func (m Model) update(patch model.FoodPatch) tea.Cmd {
	ctrl, timeout := m.ctrl, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		food, err := ctrl.Update(ctx, patch)
		return savedMsg{food: food, editing: true, err: err}
	}
}

func (m Model) remove(id string) tea.Cmd {
	ctrl, timeout := m.ctrl, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return removedMsg{id: id, err: ctrl.Remove(ctx, id)}
	}
}

// startIO marks a command as in flight and keeps the spinner ticking.
func (m Model) startIO(cmd tea.Cmd) (Model, tea.Cmd) {
	m.pending++
	m.err = nil
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) finishIO() Model {
	if m.pending > 0 {
		m.pending--
	}
	m.state = m.ctrl.State()
	m.clampCursor()
	return m
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Items) {
		m.cursor = len(m.state.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (model.Food, bool) {
	if len(m.state.Items) == 0 {
		return model.Food{}, false
	}
	return m.state.Items[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m = m.finishIO()
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("Loaded %d foods", len(m.state.Items))
		return m, nil

	case savedMsg:
		m = m.finishIO()
		if msg.err != nil {
			m.err = msg.err
			m.form.err = msg.err.Error()
			return m, nil
		}
		m.state = m.closeModal(msg.editing)
		if msg.editing {
			m.status = fmt.Sprintf("Updated %s", msg.food.Name)
		} else {
			m.status = fmt.Sprintf("Added %s", msg.food.Name)
			m.cursor = len(m.state.Items) - 1
			m.clampCursor()
		}
		return m, nil

	case removedMsg:
		m = m.finishIO()
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Deleted food " + msg.id
		return m, nil

	case tea.KeyMsg:
		if m.state.Modal != dashboard.ModalClosed {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

// closeModal closes the modal a successful save came from, if it is still open.
func (m Model) closeModal(editing bool) dashboard.State {
	switch {
	case editing && m.state.EditModalOpen():
		return m.ctrl.ToggleEditModal()
	case !editing && m.state.AddModalOpen():
		return m.ctrl.ToggleAddModal()
	}
	return m.state
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Reload):
		return m.startIO(m.load())

	case key.Matches(msg, m.keys.Add):
		m.state = m.ctrl.ToggleAddModal()
		m.form = newFoodForm(nil)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		food, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.state = m.ctrl.SelectForEdit(food)
		m.form = newFoodForm(&food)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		food, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.status = "Deleting " + food.Name + "..."
		return m.startIO(m.remove(food.ID))
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, formKeys.Cancel):
		m.state = m.closeModal(m.state.EditModalOpen())
		m.form = foodForm{}
		return m, nil

	case key.Matches(msg, formKeys.Next):
		m.form.next()
		return m, nil

	case key.Matches(msg, formKeys.Prev):
		m.form.prev()
		return m, nil

	case key.Matches(msg, formKeys.Available):
		m.form.toggleAvailable()
		return m, nil

	case key.Matches(msg, formKeys.Submit):
		if m.Loading() {
			return m, nil
		}
		m.form.err = ""
		if m.state.EditModalOpen() {
			patch, err := m.form.patch()
			if err != nil {
				m.form.err = err.Error()
				return m, nil
			}
			return m.startIO(m.update(patch))
		}
		draft, err := m.form.draft()
		if err != nil {
			m.form.err = err.Error()
			return m, nil
		}
		return m.startIO(m.add(draft))
	}

	cmd := m.form.update(msg)
	return m, cmd
}

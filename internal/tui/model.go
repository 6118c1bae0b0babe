package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/engine"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

type dashboardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	hunter *storage.Hunter
	quests []engine.Quest
	done   map[string]bool

	selected int
	percent  int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	hunter    *storage.Hunter
	completed []string
	err       error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type undoneMsg struct {
	res *engine.UndoResult
	err error
}

func newDashboardModel(ctx context.Context, svc *engine.Service) dashboardModel {
	return dashboardModel{
		ctx:     ctx,
		svc:     svc,
		quests:  svc.Catalog().Daily(),
		done:    map[string]bool{},
		percent: 100,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		h, err := m.svc.Hunter(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		completed, err := m.svc.CompletedToday(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{hunter: h, completed: completed}
	}
}

func (m dashboardModel) completeCmd(key string, fraction float64) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, key, fraction)
		return completedMsg{res: res, err: err}
	}
}

func (m dashboardModel) undoCmd(key string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.UndoQuest(m.ctx, key)
		return undoneMsg{res: res, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.hunter = msg.hunter
		m.done = map[string]bool{}
		for _, k := range msg.completed {
			m.done[k] = true
		}
		return m, nil

	case completedMsg:
		if msg.err != nil {
			m.lastLog = ui.Bad.Render(msg.err.Error())
			return m, nil
		}
		res := msg.res
		m.lastLog = fmt.Sprintf("%s +%d XP, +%d G", ui.Good.Render("Logged "+res.QuestKey), res.XPGained, res.GoldGained)
		if res.LevelUp {
			m.lastLog += " " + ui.BadgeLevelUp + fmt.Sprintf(" → Level %d (+%d SP)", res.LevelAfter, res.SkillPointsGained)
		}
		return m, m.loadCmd()

	case undoneMsg:
		if msg.err != nil {
			m.lastLog = ui.Bad.Render(msg.err.Error())
			return m, nil
		}
		m.lastLog = ui.Warn.Render(fmt.Sprintf("Undid %s (-%d XP, -%d G)", msg.res.QuestKey, msg.res.XPDeducted, msg.res.GoldDeducted))
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.quests)-1 {
				m.selected++
			}
		case "left", "h":
			if m.percent > 10 {
				m.percent -= 10
			}
		case "right", "l":
			if m.percent < 100 {
				m.percent += 10
			}
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "u":
			if q := m.current(); q != nil && m.done[q.Key] {
				return m, m.undoCmd(q.Key)
			}
			m.lastLog = ui.Muted.Render("Nothing to undo.")
		case "enter", " ":
			if q := m.current(); q != nil {
				if m.done[q.Key] {
					m.lastLog = ui.Muted.Render("Already completed today.")
					return m, nil
				}
				return m, m.completeCmd(q.Key, float64(m.percent)/100)
			}
		}
	}
	return m, nil
}

func (m dashboardModel) current() *engine.Quest {
	if m.selected < 0 || m.selected >= len(m.quests) {
		return nil
	}
	return &m.quests[m.selected]
}

func (m dashboardModel) View() string {
	if m.loading {
		return "Loading..."
	}
	if m.err != nil {
		return ui.Bad.Render("Error: " + m.err.Error())
	}

	var b strings.Builder

	h := m.hunter
	header := fmt.Sprintf("%s  %s\n%s  %s %d G  %s %d SP\n%s",
		ui.Heading(ui.IconCrown, h.Name),
		ui.Muted.Render(h.Rank),
		ui.LabelValue("Level", h.Level),
		ui.IconGold, h.Gold,
		ui.IconSparkle, h.SkillPoints,
		ui.XPBar(h.XP, h.XPToNext, 30),
	)
	b.WriteString(ui.Panel.Render(header))
	b.WriteString("\n\n")

	doneCount := 0
	for _, q := range m.quests {
		if m.done[q.Key] {
			doneCount++
		}
	}
	b.WriteString(ui.H2.Render(fmt.Sprintf("%s Daily Quests (%d/%d)", ui.IconQuest, doneCount, len(m.quests))))
	b.WriteString("\n")

	for i, q := range m.quests {
		mark := "[ ]"
		if m.done[q.Key] {
			mark = "[" + ui.IconDone + "]"
		}
		mandatory := ""
		if q.Mandatory {
			mandatory = " " + ui.Warn.Render("!")
		}
		line := fmt.Sprintf("%s %s%s %s", mark, q.Name, mandatory,
			ui.Muted.Render(fmt.Sprintf("(+%d XP, +%d G)", q.XP, q.Gold)))
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.LabelValue("Completion", fmt.Sprintf("%d%%", m.percent)))
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n\n")
	b.WriteString(ui.Muted.Render("↑/↓ select · ←/→ percent · enter complete · u undo · r refresh · q quit"))
	b.WriteString("\n")

	return b.String()
}

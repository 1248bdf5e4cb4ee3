package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/realmquest/internal/config"
	"github.com/jwebster45206/realmquest/internal/game"
	"github.com/jwebster45206/realmquest/pkg/actor"
	"github.com/jwebster45206/realmquest/pkg/campaign"
	"github.com/jwebster45206/realmquest/pkg/dice"
	"github.com/jwebster45206/realmquest/pkg/item"
	"github.com/muesli/reflow/wordwrap"
)

const NamePlaceholder = "Name your hero..."

// storyKind selects the styling for a story entry.
type storyKind int

const (
	storyNarration storyKind = iota
	storyHeading
	storyAction
	storyNotice
	storyAlert
)

// storyEntry is one block of story text, kept unwrapped so the view can
// reflow it when the window resizes.
type storyEntry struct {
	kind storyKind
	text string
}

// GameUI is the BubbleTea model that runs the game.
// https://github.com/charmbracelet/bubbletea
type GameUI struct {
	cfg     *config.Config
	logger  *slog.Logger
	session *game.Session

	storyViewport viewport.Model
	metaViewport  viewport.Model
	nameInput     textinput.Model
	story         []storyEntry

	ready  bool
	width  int
	height int
	err    error

	// Campaign selection state
	showCampaignModal bool
	campaigns         []string
	campaignMap       map[string]string
	selectedCampaign  int
	loadingCampaigns  bool
	loading           bool

	// Hero setup state
	showNameModal   bool
	showWeaponModal bool
	selectedWeapon  int
	heroName        string
	inputErr        error

	// Item selection state
	showItemModal bool
	selectedItem  int

	// Quit confirmation state
	showQuitModal bool
}

type campaignsLoadedMsg struct {
	campaigns   []string
	campaignMap map[string]string
	err         error
}

type campaignLoadedMsg struct {
	campaign *campaign.Campaign
	err      error
}

var (
	storyPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(2).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)

	modalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	modalSelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true)
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

func NewGameUI(cfg *config.Config, logger *slog.Logger) GameUI {
	ti := textinput.New()
	ti.Placeholder = NamePlaceholder
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 32
	ti.Width = 30

	storyVp := viewport.New(50, 20)
	storyVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return GameUI{
		cfg:               cfg,
		logger:            logger,
		nameInput:         ti,
		storyViewport:     storyVp,
		metaViewport:      metaVp,
		ready:             false,
		showCampaignModal: true,
		loadingCampaigns:  true,
		selectedCampaign:  0,
	}
}

func (m GameUI) Init() tea.Cmd {
	return m.loadCampaigns()
}

// layout sizes the panels for the current window.
func (m *GameUI) layout() {
	storyWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - storyWidth - 6

	m.storyViewport.Width = storyWidth - 2
	m.storyViewport.Height = m.height - 7
	m.metaViewport.Width = metaWidth - 2
	m.metaViewport.Height = m.height - 4
}

// appendStory adds a block of story text. Callers refresh the panels once
// they are done appending.
func (m *GameUI) appendStory(kind storyKind, text string) {
	if text == "" {
		return
	}
	m.story = append(m.story, storyEntry{kind: kind, text: text})
}

// refreshPanels rewrites both viewports from current game state.
func (m *GameUI) refreshPanels() {
	m.writeStoryContent()
	m.metaViewport.SetContent(writeMetadata(m.session, m.metaViewport.Width))
}

// writeStoryContent rebuilds the story viewport, rewrapping every entry for
// the current viewport width.
func (m *GameUI) writeStoryContent() {
	storyWidth := m.storyViewport.Width - 6 // Account for left(3) + right(3) padding
	if storyWidth < 10 {
		storyWidth = 10
	}

	var content strings.Builder
	content.WriteString(titleStyle.Render("REALMQUEST") + "\n\n")
	if m.session != nil {
		content.WriteString(m.session.Campaign().Name + "\n")
	}
	content.WriteString(separatorStyle.Render(strings.Repeat("─", storyWidth)) + "\n\n")

	for _, entry := range m.story {
		wrapped := wordwrap.String(entry.text, storyWidth)
		switch entry.kind {
		case storyHeading:
			content.WriteString(speakerStyle.Render(wrapped))
		case storyAction:
			content.WriteString(userStyle.Render("> ") + wrapped)
		case storyNotice:
			content.WriteString(loadingStyle.Render(wrapped))
		case storyAlert:
			content.WriteString(errorStyle.Render(wrapped))
		default:
			content.WriteString(narratorStyle.Render(wrapped))
		}
		content.WriteString("\n\n")
	}

	m.storyViewport.SetContent(content.String())
	m.storyViewport.GotoBottom()
}

// writeMetadata builds the side panel content for the current session.
func writeMetadata(s *game.Session, width int) string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("ADVENTURE") + "\n\n")

	if s == nil || s.Hero() == nil {
		content.WriteString("Preparing...\n")
		return content.String()
	}

	barWidth := width - 8
	if barWidth < 10 {
		barWidth = 10
	} else if barWidth > 24 {
		barWidth = 24
	}

	hero := s.Hero()
	content.WriteString(speakerStyle.Render(hero.Name()) + "\n")
	content.WriteString(renderHealthBar(hero.Health(), hero.MaxHealth(), barWidth) + "\n")
	if w, ok := hero.Weapon(); ok {
		content.WriteString(fmt.Sprintf("%s (+%d damage)\n", w.Name, w.DamageBonus))
	}
	content.WriteString("\n")

	if enemy := s.Enemy(); enemy != nil && !s.Over() {
		content.WriteString(speakerStyle.Render(enemy.Name()) + "\n")
		content.WriteString(renderHealthBar(enemy.Health(), enemy.MaxHealth(), barWidth) + "\n\n")
	}

	content.WriteString("Session:\n")
	content.WriteString(s.ID.String()[:8] + "...\n\n")

	content.WriteString("Boss:\n")
	content.WriteString(fmt.Sprintf("%d of %d\n\n", s.BossNumber(), s.BossCount()))

	content.WriteString("Round:\n")
	content.WriteString(fmt.Sprintf("%d\n\n", s.RoundNumber()))

	pack := s.Pack()
	content.WriteString("Gold:\n")
	content.WriteString(fmt.Sprintf("%d\n\n", pack.Gold()))

	content.WriteString(fmt.Sprintf("Pack (%d/%d):\n", pack.Len(), pack.Slots()))
	if pack.Len() == 0 {
		content.WriteString("Empty\n")
	} else {
		for _, it := range pack.Items() {
			content.WriteString("• " + it.Name + "\n")
		}
	}
	content.WriteString("\n")

	content.WriteString("Commands:\n")
	content.WriteString("• 1: Attack\n")
	content.WriteString("• 2: Use Item\n")
	content.WriteString("• 3: Pack\n")
	content.WriteString("• Ctrl+Y: Copy Log\n")
	content.WriteString("• Esc: Quit\n")

	return content.String()
}

// renderHealthBar draws a proportional bar that shifts color as health runs
// low.
func renderHealthBar(current, max, width int) string {
	if width < 10 {
		width = 10
	}
	if max <= 0 {
		max = 1
	}

	filled := (current * width) / max
	if current > 0 && filled == 0 {
		filled = 1 // Keep a sliver visible while the fighter stands
	}

	var bar strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}

	style := narratorStyle
	switch {
	case current*4 <= max:
		style = errorStyle
	case current*2 <= max:
		style = loadingStyle
	}
	return style.Render(bar.String()) + fmt.Sprintf(" %d/%d", current, max)
}

func (m GameUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle campaign modal first
	if m.showCampaignModal {
		return m.updateCampaignModal(msg)
	}

	// Handle quit modal second
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	if m.showNameModal {
		return m.updateNameModal(msg)
	}

	if m.showWeaponModal {
		return m.updateWeaponModal(msg)
	}

	if m.showItemModal {
		return m.updateItemModal(msg)
	}

	var (
		svCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		// Pass mouse events to the viewports for scrolling and selection
		m.storyViewport, svCmd = m.storyViewport.Update(msg)
		m.metaViewport, mvCmd = m.metaViewport.Update(msg)
		return m, tea.Batch(svCmd, mvCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshPanels()

	case tea.KeyMsg:
		return m.handleStoryKey(msg)
	}

	m.storyViewport, svCmd = m.storyViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(svCmd, mvCmd)
}

// handleStoryKey routes key presses on the main view by game phase.
func (m GameUI) handleStoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		if m.session.Over() {
			return m, tea.Quit
		}
		m.showQuitModal = true
		return m, nil

	case tea.KeyCtrlY:
		return m.copyTranscript()

	case tea.KeyEnter:
		switch m.session.Phase() {
		case game.PhaseBossIntro:
			return m.beginBattle()
		case game.PhaseVictory:
			return m.nextBattle()
		case game.PhaseDefeat, game.PhaseComplete:
			return m, tea.Quit
		}
		return m, nil
	}

	if m.session.Phase() != game.PhaseBattle {
		return m, nil
	}

	switch msg.String() {
	case "1":
		return m.attack()
	case "2":
		m.showItemModal = true
		m.selectedItem = 0
		m.inputErr = nil
		return m, nil
	case "3":
		m.showPack()
		m.refreshPanels()
		return m, nil
	}

	return m, nil
}

func (m GameUI) beginBattle() (tea.Model, tea.Cmd) {
	if err := m.session.BeginBattle(); err != nil {
		m.appendStory(storyAlert, err.Error())
		m.refreshPanels()
		return m, nil
	}
	m.appendStory(storyNotice, fmt.Sprintf("The battle against %s begins!", m.session.Enemy().Name()))
	m.refreshPanels()
	return m, nil
}

func (m GameUI) attack() (tea.Model, tea.Cmd) {
	round, err := m.session.Attack()
	if err != nil {
		m.appendStory(storyAlert, err.Error())
		m.refreshPanels()
		return m, nil
	}

	m.appendStory(storyAction, fmt.Sprintf("Attack! (round %d)", round.Number))
	for _, line := range m.session.Narrate(round) {
		m.appendStory(storyNarration, line)
	}

	switch {
	case round.EnemyDefeated:
		m.appendStory(storyHeading, m.session.BattleWonText())
	case round.HeroDefeated:
		m.appendStory(storyHeading, m.session.DefeatText())
		m.appendStory(storyNarration, m.session.GameOverText())
	}

	m.refreshPanels()
	return m, nil
}

func (m GameUI) nextBattle() (tea.Model, tea.Cmd) {
	if err := m.session.NextBattle(); err != nil {
		m.appendStory(storyAlert, err.Error())
		m.refreshPanels()
		return m, nil
	}

	if m.session.Phase() == game.PhaseComplete {
		m.appendStory(storyHeading, "Victory!")
		m.appendStory(storyNarration, m.session.GameWonText())
		m.appendStory(storyNotice, fmt.Sprintf("Final tally: %d gold, %d items in the pack.",
			m.session.Pack().Gold(), m.session.Pack().Len()))
	} else {
		m.appendStory(storyHeading, fmt.Sprintf("Boss %d of %d", m.session.BossNumber(), m.session.BossCount()))
		m.appendStory(storyNarration, m.session.BossIntroText())
	}

	m.refreshPanels()
	return m, nil
}

// showPack appends the pack contents to the story view.
func (m *GameUI) showPack() {
	pack := m.session.Pack()

	var listing strings.Builder
	listing.WriteString(fmt.Sprintf("Pack (%d/%d):", pack.Len(), pack.Slots()))
	if pack.Len() == 0 {
		listing.WriteString("\n• Empty")
	}
	for _, it := range pack.Items() {
		listing.WriteString("\n• " + itemLabel(it))
	}
	listing.WriteString(fmt.Sprintf("\nGold: %d", pack.Gold()))

	m.appendStory(storyNotice, listing.String())
}

func (m GameUI) copyTranscript() (tea.Model, tea.Cmd) {
	if err := clipboard.WriteAll(m.session.CombatLog().Transcript()); err != nil {
		m.appendStory(storyAlert, fmt.Sprintf("Could not copy combat log: %v", err))
	} else {
		m.appendStory(storyNotice, "Combat log copied to clipboard.")
	}
	m.refreshPanels()
	return m, nil
}

func itemLabel(it item.Item) string {
	switch it.Kind {
	case item.KindPotion:
		return fmt.Sprintf("%s (restores %d health)", it.Name, it.Heal)
	case item.KindKey:
		return fmt.Sprintf("%s (opens %s)", it.Name, it.Opens)
	default:
		return it.Name
	}
}

func (m GameUI) loadCampaigns() tea.Cmd {
	return func() tea.Msg {
		list, err := campaign.List(m.cfg.DataDir, m.logger)
		if err != nil {
			return campaignsLoadedMsg{err: err}
		}
		if len(list) == 0 {
			return campaignsLoadedMsg{err: fmt.Errorf("no campaigns found in %s", m.cfg.DataDir)}
		}

		names := make([]string, 0, len(list))
		for name := range list {
			names = append(names, name)
		}
		sort.Strings(names)
		return campaignsLoadedMsg{campaigns: names, campaignMap: list}
	}
}

func (m GameUI) loadCampaign(fileName string) tea.Cmd {
	return func() tea.Msg {
		c, err := campaign.Load(filepath.Join(m.cfg.DataDir, "campaigns", fileName))
		return campaignLoadedMsg{c, err}
	}
}

func (m GameUI) updateCampaignModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case campaignsLoadedMsg:
		m.loadingCampaigns = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.campaigns = msg.campaigns
			m.campaignMap = msg.campaignMap
		}

	case campaignLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		session := game.NewSession(msg.campaign, dice.NewRoller(m.cfg.Seed), m.logger)
		if m.cfg.CombatLogDir != "" {
			if err := session.CombatLog().AttachFile(m.cfg.CombatLogDir); err != nil {
				m.logger.Warn("combat log file unavailable", "error", err)
			}
		}
		m.session = session

		if m.width > 0 && m.height > 0 {
			m.layout()
		}
		m.appendStory(storyNarration, session.WelcomeText())
		m.refreshPanels()

		m.showCampaignModal = false
		m.showNameModal = true
		m.nameInput.Focus()
		return m, textinput.Blink

	case tea.KeyMsg:
		if m.loadingCampaigns {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		if m.err != nil {
			if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			// No session yet, nothing to confirm
			return m, tea.Quit
		case tea.KeyUp:
			if m.selectedCampaign > 0 {
				m.selectedCampaign--
			}
		case tea.KeyDown:
			if m.selectedCampaign < len(m.campaigns)-1 {
				m.selectedCampaign++
			}
		case tea.KeyEnter:
			if len(m.campaigns) > 0 && !m.loading {
				name := m.campaigns[m.selectedCampaign]
				m.loading = true
				return m, m.loadCampaign(m.campaignMap[name])
			}
		}
	}

	return m, nil
}

func (m GameUI) updateNameModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEnter:
			name, err := actor.ValidateName(m.nameInput.Value())
			if err != nil {
				m.inputErr = err
				return m, nil
			}
			m.heroName = name
			m.inputErr = nil
			m.showNameModal = false
			m.showWeaponModal = true
			m.selectedWeapon = 0
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m GameUI) updateWeaponModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		weapons := m.session.Campaign().Weapons

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.showQuitModal = true
			return m, nil
		case tea.KeyUp:
			if m.selectedWeapon > 0 {
				m.selectedWeapon--
			}
		case tea.KeyDown:
			if m.selectedWeapon < len(weapons)-1 {
				m.selectedWeapon++
			}
		case tea.KeyEnter:
			weapon := weapons[m.selectedWeapon]
			if err := m.session.Start(m.heroName, weapon.Name); err != nil {
				m.inputErr = err
				return m, nil
			}
			m.inputErr = nil
			m.showWeaponModal = false

			m.appendStory(storyNarration, m.session.IntroText())
			m.appendStory(storyHeading, fmt.Sprintf("Boss %d of %d", m.session.BossNumber(), m.session.BossCount()))
			m.appendStory(storyNarration, m.session.BossIntroText())
			m.refreshPanels()
			return m, nil
		}
	}

	return m, nil
}

func (m GameUI) updateItemModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		items := m.session.Pack().Items()

		switch msg.Type {
		case tea.KeyCtrlC:
			m.showQuitModal = true
			return m, nil
		case tea.KeyEsc:
			m.showItemModal = false
			m.inputErr = nil
			return m, nil
		case tea.KeyUp:
			if m.selectedItem > 0 {
				m.selectedItem--
			}
		case tea.KeyDown:
			if m.selectedItem < len(items)-1 {
				m.selectedItem++
			}
		case tea.KeyEnter:
			if len(items) == 0 {
				m.showItemModal = false
				return m, nil
			}
			if m.selectedItem >= len(items) {
				m.selectedItem = len(items) - 1
			}
			used, err := m.session.UseItem(items[m.selectedItem].Name)
			if err != nil {
				m.inputErr = err
				return m, nil
			}
			m.inputErr = nil
			m.showItemModal = false
			m.selectedItem = 0
			m.appendStory(storyNotice, used)
			m.refreshPanels()
			return m, nil
		}
	}

	return m, nil
}

func (m GameUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
				if m.showNameModal {
					m.nameInput.Focus()
					return m, textinput.Blink
				}
				return m, nil
			}
		}
	}

	return m, nil
}

func (m GameUI) renderQuitModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Quit Game?"))
	content.WriteString("\n\n")
	content.WriteString("Are you sure you want to quit your adventure?")
	content.WriteString("\n\n")
	content.WriteString(promptStyle.Render("Press Y to quit, N to continue, or Ctrl+C to force quit"))

	modal := modalStyle.Width(50).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderCampaignModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder

	if m.loadingCampaigns {
		content.WriteString(modalTitleStyle.Render("Loading Campaigns..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Please wait while campaigns are read from disk..."))
	} else if m.err != nil {
		content.WriteString(modalTitleStyle.Render("Error"))
		content.WriteString("\n\n")
		content.WriteString(errorStyle.Render(fmt.Sprintf("Failed to load campaigns: %v", m.err)))
		content.WriteString("\n\n")
		content.WriteString("Press Ctrl+C to exit")
	} else if m.loading {
		content.WriteString(modalTitleStyle.Render("Preparing Adventure..."))
		content.WriteString("\n\n")
		content.WriteString(loadingStyle.Render("Setting up your adventure..."))
	} else {
		content.WriteString(modalTitleStyle.Render("Select a Campaign"))
		content.WriteString("\n\n")

		for i, name := range m.campaigns {
			if i == m.selectedCampaign {
				content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", name)))
			} else {
				content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", name)))
			}
			content.WriteString("\n")
		}

		content.WriteString("\n")
		content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Ctrl+C to exit"))
	}

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderNameModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Name Your Hero"))
	content.WriteString("\n\n")
	content.WriteString(m.nameInput.View())
	content.WriteString("\n\n")
	if m.inputErr != nil {
		content.WriteString(errorStyle.Render(m.inputErr.Error()))
		content.WriteString("\n\n")
	}
	content.WriteString(promptStyle.Render("Letters only, 3 to 16. Enter to confirm, Esc to quit"))

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderWeaponModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Choose Your Weapon"))
	content.WriteString("\n\n")

	for i, w := range m.session.Campaign().Weapons {
		label := fmt.Sprintf("%s (+%d damage)", w.Name, w.DamageBonus)
		if i == m.selectedWeapon {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", label)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", label)))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	if m.inputErr != nil {
		content.WriteString(errorStyle.Render(m.inputErr.Error()))
		content.WriteString("\n\n")
	}
	content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to select, Esc to quit"))

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

func (m GameUI) renderItemModal() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Use an Item"))
	content.WriteString("\n\n")

	items := m.session.Pack().Items()
	if len(items) == 0 {
		content.WriteString("Your pack is empty.")
		content.WriteString("\n")
	}
	for i, it := range items {
		label := itemLabel(it)
		if i == m.selectedItem {
			content.WriteString(modalSelectedItemStyle.Render(fmt.Sprintf("▶ %s", label)))
		} else {
			content.WriteString(modalItemStyle.Render(fmt.Sprintf("  %s", label)))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	if m.inputErr != nil {
		content.WriteString(errorStyle.Render(m.inputErr.Error()))
		content.WriteString("\n\n")
	}
	content.WriteString(promptStyle.Render("Use ↑/↓ to navigate, Enter to use, Esc to go back"))

	modal := modalStyle.Width(60).Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal, lipgloss.WithWhitespaceChars(" "))
}

// footerText is the action bar under the story panel.
func (m GameUI) footerText() string {
	if m.session == nil {
		return ""
	}
	switch m.session.Phase() {
	case game.PhaseBossIntro:
		return "[Enter] Begin Battle   [Ctrl+Y] Copy Log   [Esc] Quit"
	case game.PhaseBattle:
		return "[1] Attack   [2] Use Item   [3] Pack   [Ctrl+Y] Copy Log   [Esc] Quit"
	case game.PhaseVictory:
		return "[Enter] Continue   [Ctrl+Y] Copy Log   [Esc] Quit"
	default:
		return "[Enter] Exit   [Ctrl+Y] Copy Log"
	}
}

func (m GameUI) View() string {
	if m.showCampaignModal {
		return m.renderCampaignModal()
	}

	if m.showQuitModal {
		return m.renderQuitModal()
	}

	if m.showNameModal {
		return m.renderNameModal()
	}

	if m.showWeaponModal {
		return m.renderWeaponModal()
	}

	if m.showItemModal {
		return m.renderItemModal()
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	storyWidth := int(float64(m.width)*0.75) - 4
	metaWidth := m.width - storyWidth - 6

	storyPanel := storyPanelStyle.Width(storyWidth).Height(m.height - 3).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.storyViewport.View(),
			"", // Add empty line for spacing
			separatorStyle.Render(strings.Repeat("─", storyWidth-4)),
			promptStyle.Render(m.footerText()),
		),
	)

	metaPanel := metaPanelStyle.Width(metaWidth).Height(m.height - 2).Render(
		m.metaViewport.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, storyPanel, metaPanel)
}

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/fresh-alert/internal/logger"
	"github.com/MKhiriev/fresh-alert/internal/service"
	"github.com/MKhiriev/fresh-alert/internal/session"
	"github.com/MKhiriev/fresh-alert/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenLogin
	screenRegister
	screenFoods
	screenAddFood
	screenAccount
)

// appModel is the TUI router: it owns the session, keeps the active screen,
// runs at most one backend request at a time and shows alerts.
type appModel struct {
	ctx             context.Context
	session         *session.Session
	buildInfo       models.AppBuildInfo
	defaultProvider string
	now             func() time.Time
	logger          *logger.Logger

	screen  screen
	menu    menuModel
	auth    authFormModel
	foods   foodsModel
	food    foodFormModel
	account accountModel

	spinner spinner.Model
	// busy labels the request in flight; "" when idle.
	busy string

	alert         alertModel
	showBuildInfo bool
	quitting      bool
}

func newAppModel(ctx context.Context, sess *session.Session, defaultProvider string, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:             ctx,
		session:         sess,
		buildInfo:       buildInfo,
		defaultProvider: defaultProvider,
		now:             time.Now,
		logger:          log,
		screen:          screenMenu,
		menu:            newMenuModel(),
		foods:           newFoodsModel(),
		spinner:         s,
		busy:            "restoring session",
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRestore())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.busy == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case alertExpiredMsg:
		if msg.seq == m.alert.seq {
			m.alert = alertModel{seq: m.alert.seq}
		}
		return m, nil

	case restoreDoneMsg:
		m.busy = ""
		if msg.ok {
			m = m.openFoods()
		}
		return m.showError(msg.err)

	case authDoneMsg:
		m.busy = ""
		if m.session.Status() != session.LoggedIn {
			return m.showError(msg.err)
		}
		m = m.openFoods()
		if msg.err != nil {
			// logged in, but the list could not be fetched
			return m.showError(msg.err)
		}
		if msg.register {
			return m.showSuccess("Account created")
		}
		return m, nil

	case loggedOutMsg:
		m.busy = ""
		m.screen = screenMenu
		m.menu = newMenuModel()
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("could not forget local session")
		}
		return m, nil

	case listLoadedMsg:
		m.busy = ""
		if msg.err != nil {
			return m.showError(msg.err)
		}
		m.foods = m.foods.clamp(len(m.visibleFoods()))
		return m, nil

	case foodAddedMsg:
		m.busy = ""
		if msg.err != nil {
			return m.showError(msg.err)
		}
		m.screen = screenFoods
		m.food = newFoodFormModel(m.now())
		return m.showSuccess("Added " + msg.food.Name)

	case foodDeletedMsg:
		m.busy = ""
		if msg.err != nil {
			return m.showError(msg.err)
		}
		m.foods = m.foods.clamp(len(m.visibleFoods()))
		return m.showSuccess("Deleted " + msg.name)

	case recognizedMsg:
		m.busy = ""
		if msg.err != nil {
			return m.showError(msg.err)
		}
		m.food = m.food.applyRecognition(msg.result)
		return m.showSuccess("Photo recognised, check the filled fields")

	case passwordChangedMsg:
		m.busy = ""
		if msg.err != nil {
			return m.showError(msg.err)
		}
		m.account = m.account.clearPasswords()
		return m.showSuccess("Password changed")

	case secretKeyAddedMsg:
		m.busy = ""
		if msg.err != nil {
			return m.showError(msg.err)
		}
		m.account = m.account.clearSecretKey()
		return m.showSuccess("Secret key added")

	case copiedMsg:
		if msg.err != nil {
			return m.showError(msg.err)
		}
		return m.showSuccess("Copied to clipboard")
	}

	return m.updateActive(msg)
}

// updateActive forwards non-key messages (cursor blink) to the focused form.
func (m appModel) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenLogin, screenRegister:
		m.auth, cmd, _ = m.auth.Update(msg)
	case screenAddFood:
		m.food, cmd, _ = m.food.Update(msg)
	case screenAccount:
		m.account, cmd, _ = m.account.Update(msg)
	}
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.alert.visible() {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.alert = alertModel{seq: m.alert.seq}
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	// one request at a time
	if m.busy != "" {
		return m, nil
	}

	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenLogin, screenRegister:
		return m.handleAuthKey(msg)
	case screenFoods:
		return m.handleFoodsKey(msg)
	case screenAddFood:
		return m.handleFoodFormKey(msg)
	case screenAccount:
		return m.handleAccountKey(msg)
	}
	return m, nil
}

func (m appModel) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	}

	var action menuAction
	m.menu, action = m.menu.Update(msg)

	switch action {
	case menuLogin:
		m.screen = screenLogin
		m.auth = newAuthFormModel(false)
		return m, textinput.Blink
	case menuRegister:
		m.screen = screenRegister
		m.auth = newAuthFormModel(true)
		return m, textinput.Blink
	case menuQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.screen = screenMenu
		return m, nil
	}

	var (
		cmd    tea.Cmd
		submit bool
	)
	m.auth, cmd, submit = m.auth.Update(msg)
	if !submit {
		return m, cmd
	}

	username, password := m.auth.values()
	if m.auth.register {
		return m.run("creating account", m.cmdRegister(username, password))
	}
	return m.run("logging in", m.cmdLogin(username, password))
}

func (m appModel) handleFoodsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleFoods()

	var (
		cmd    tea.Cmd
		action foodsAction
	)
	m.foods, cmd, action = m.foods.Update(msg, len(visible))

	switch action {
	case foodsAdd:
		m.screen = screenAddFood
		m.food = newFoodFormModel(m.now())
		return m, textinput.Blink
	case foodsDelete:
		if m.foods.idx < len(visible) {
			return m.run("deleting", m.cmdDelete(visible[m.foods.idx]))
		}
	case foodsRefresh:
		return m.run("refreshing", m.cmdRefresh())
	case foodsCopy:
		if m.foods.idx < len(visible) {
			return m, cmdCopy(visible[m.foods.idx])
		}
	case foodsAccount:
		m.screen = screenAccount
		m.account = newAccountModel(m.defaultProvider)
		return m, nil
	case foodsLogout:
		return m.run("logging out", m.cmdLogout())
	case foodsQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m appModel) handleFoodFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		action foodFormAction
	)
	m.food, cmd, action = m.food.Update(msg)

	switch action {
	case foodFormCancel:
		m.screen = screenFoods
		return m, nil
	case foodFormRecognize:
		return m.run("recognising photo", m.cmdRecognize(m.food.imagePath()))
	case foodFormSubmit:
		food, err := m.food.toNewFood()
		if err != nil {
			return m.showError(err)
		}
		return m.run("saving", m.cmdAddFood(food, m.food.imagePath()))
	}

	return m, cmd
}

func (m appModel) handleAccountKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		action accountAction
	)
	m.account, cmd, action = m.account.Update(msg)

	switch action {
	case accountBack:
		m.screen = screenFoods
		return m, nil
	case accountChangePassword:
		return m.run("changing password", m.cmdChangePassword(m.account.password.Value(), m.account.confirm.Value()))
	case accountAddSecretKey:
		return m.run("saving secret key", m.cmdAddSecretKey(m.account.provider, m.account.secret.Value()))
	}

	return m, cmd
}

// run starts cmd as the single in-flight request and shows the pending
// indicator until its result arrives.
func (m appModel) run(label string, cmd tea.Cmd) (appModel, tea.Cmd) {
	if m.busy != "" {
		return m, nil
	}
	m.busy = label
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m appModel) openFoods() appModel {
	m.screen = screenFoods
	m.foods = newFoodsModel()
	return m
}

func (m appModel) showError(err error) (appModel, tea.Cmd) {
	if err == nil {
		return m, nil
	}

	m.logger.Err(err).Msg("operation failed")
	if errors.Is(err, session.ErrNotLoggedIn) {
		m.screen = screenMenu
	}

	m.alert = alertModel{message: service.UserMessage(err), seq: m.alert.seq + 1}
	return m, nil
}

func (m appModel) showSuccess(message string) (appModel, tea.Cmd) {
	m.alert = alertModel{message: message, success: true, seq: m.alert.seq + 1}
	return m, m.alert.expireCmd()
}

func (m appModel) visibleFoods() []models.Food {
	return m.session.Filter(m.foods.term())
}

func (m appModel) busyView() string {
	if m.busy == "" {
		return ""
	}
	return m.spinner.View() + " " + m.busy + "..."
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch {
	case m.showBuildInfo:
		content = renderBuildInfoWindow(m.buildInfo)
	case m.screen == screenLogin, m.screen == screenRegister:
		content = m.auth.View()
	case m.screen == screenFoods:
		content = m.foods.View(m.session.User(), m.visibleFoods(), m.session.Summary(), m.busyView())
	case m.screen == screenAddFood:
		content = m.food.View(m.now())
	case m.screen == screenAccount:
		content = m.account.View(m.session.User())
	default:
		content = m.menu.View()
	}

	if m.screen != screenFoods && m.busy != "" {
		content += "\n\n" + m.busyView()
	}
	if m.alert.visible() {
		content += "\n\n" + m.alert.View()
	}

	return appStyle.Render(content)
}

// ── commands ─────────────────────────────────────────────────────────────────

func (m appModel) cmdRestore() tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		ok, err := s.Restore(ctx)
		return restoreDoneMsg{ok: ok, err: err}
	}
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return authDoneMsg{err: s.Login(ctx, username, password)}
	}
}

func (m appModel) cmdRegister(username, password string) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return authDoneMsg{register: true, err: s.Register(ctx, username, password)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return loggedOutMsg{err: s.Logout(ctx)}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return listLoadedMsg{err: s.Refresh(ctx)}
	}
}

func (m appModel) cmdAddFood(food models.NewFood, imagePath string) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		if imagePath != "" {
			image, err := loadImage(imagePath)
			if err != nil {
				return foodAddedMsg{err: err}
			}
			food.Image = image
		}
		created, err := s.AddFood(ctx, food)
		return foodAddedMsg{food: created, err: err}
	}
}

func (m appModel) cmdDelete(food models.Food) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return foodDeletedMsg{name: food.Name, err: s.DeleteFood(ctx, food.ID)}
	}
}

func (m appModel) cmdRecognize(imagePath string) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		image, err := loadImage(imagePath)
		if err != nil {
			return recognizedMsg{err: err}
		}
		result, err := s.Recognize(ctx, *image)
		return recognizedMsg{result: result, err: err}
	}
}

func (m appModel) cmdChangePassword(password, confirmation string) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return passwordChangedMsg{err: s.ChangePassword(ctx, password, confirmation)}
	}
}

func (m appModel) cmdAddSecretKey(provider, secretKey string) tea.Cmd {
	ctx, s := m.ctx, m.session
	return func() tea.Msg {
		return secretKeyAddedMsg{err: s.AddSecretKey(ctx, provider, secretKey)}
	}
}

func cmdCopy(food models.Food) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(foodSummary(food))}
	}
}

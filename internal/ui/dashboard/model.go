// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package dashboard

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/accessdash/internal/rbac"
	"github.com/jeranaias/accessdash/internal/store"
	"github.com/jeranaias/accessdash/internal/ui/components"
	"github.com/jeranaias/accessdash/internal/ui/styles"
)

// Options configures a dashboard Model.
type Options struct {
	// Theme defaults to styles.NewTheme().
	Theme *styles.Theme
	// ShowHelp shows the key help footer.
	ShowHelp bool
	// Clipboard defaults to the system clipboard.
	Clipboard ClipboardFunc
	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Model is the access management dashboard.
type Model struct {
	store *store.Store

	theme      *styles.Theme
	keys       KeyMap
	dialogKeys DialogKeyMap
	help       help.Model
	showHelp   bool

	header    *components.Header
	tabs      *components.Tabs
	userTable *components.Table
	roleTable *components.Table
	search    textinput.Model

	userEditor    *UserEditor
	roleEditor    *RoleEditor
	deleteConfirm *DeleteConfirm
	helpOverlay   *components.HelpOverlay
	toast         *components.Toast

	clipboard ClipboardFunc
	logger    *log.Logger

	width  int
	height int
}

// New creates a dashboard over st.
func New(st *store.Store, opts Options) Model {
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.FullKey = theme.ShortcutKey
	h.Styles.FullDesc = theme.ShortcutDesc

	dialogKeys := DefaultDialogKeyMap()

	m := Model{
		store:         st,
		theme:         theme,
		keys:          DefaultKeyMap(),
		dialogKeys:    dialogKeys,
		help:          h,
		showHelp:      opts.ShowHelp,
		header:        components.NewHeader(theme),
		tabs:          components.NewTabs(theme, "Users", "Roles"),
		userTable:     components.NewTable(theme),
		roleTable:     components.NewTable(theme),
		search:        components.NewStyledInput(theme, "/ ", "Search users..."),
		userEditor:    NewUserEditor(theme, dialogKeys, h),
		roleEditor:    NewRoleEditor(theme, dialogKeys, h),
		deleteConfirm: NewDeleteConfirm(theme, dialogKeys),
		helpOverlay:   components.NewHelpOverlay(theme, helpMarkdown),
		toast:         components.NewToast(),
		clipboard:     copyFn,
		logger:        logger,
	}
	m.userTable.Empty = "No users. Press n to add one."
	m.roleTable.Empty = "No roles. Press n to add one."
	m.layout()
	m.sync()
	return m
}

// State returns the current store state.
func (m Model) State() store.State {
	return m.store.State()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReloaded(msg)

	case components.ToastExpiredMsg:
		m.toast.Expire(msg)
		return m, nil

	default:
		if m.search.Focused() {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// =============================================================================
// MESSAGE HANDLERS
// =============================================================================

func (m Model) handleConfigReloaded(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m, m.toast.Show(components.ToastError, "Config reload failed: "+msg.Err.Error())
	}
	// Seeds are never re-applied; only [ui] settings change.
	m.theme.Compact = msg.Config.UI.Compact
	m.showHelp = msg.Config.UI.ShowHelp
	m.layout()
	return m, m.toast.Show(components.ToastSuccess, "Config reloaded")
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, including dialogs and the search box
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Help overlay has priority when visible
	if m.helpOverlay.IsVisible() {
		switch msg.String() {
		case "?", "esc", "q", "enter":
			m.helpOverlay.Hide()
		}
		return m, nil
	}

	st := m.store.State()

	// Dialogs capture every key while open
	if _, ok := st.PendingDelete(); ok {
		if a := m.deleteConfirm.Update(msg); a != nil {
			m.dispatch(a)
		}
		return m, nil
	}
	if store.IsOpen(st.UserDialog) {
		a, cmd := m.userEditor.Update(msg)
		if a != nil {
			m.dispatch(a)
		}
		return m, cmd
	}
	if store.IsOpen(st.RoleDialog) {
		a, cmd := m.roleEditor.Update(msg)
		if a != nil {
			m.dispatch(a)
		}
		return m, cmd
	}

	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}

	return m.handleListKey(msg, st)
}

// handleSearchKey feeds the search box. The text is not applied to the list.
// Tab leaves the box and then switches tabs as it would from the list.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.search.Blur()
		return m, nil
	case "tab":
		m.search.Blur()
		return m.handleListKey(msg, m.store.State())
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg, st store.State) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpOverlay.Show()
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.selectTab(st.Tab.Next())
		return m, nil

	case key.Matches(msg, m.keys.UsersTab):
		m.selectTab(store.TabUsers)
		return m, nil

	case key.Matches(msg, m.keys.RolesTab):
		m.selectTab(store.TabRoles)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.activeTable(st.Tab).MoveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.activeTable(st.Tab).MoveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Search):
		if st.Tab == store.TabUsers {
			return m, m.search.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m, m.openCreate(st.Tab)

	case key.Matches(msg, m.keys.Edit):
		return m, m.openEdit(st)

	case key.Matches(msg, m.keys.Delete):
		m.requestDelete(st)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyEmail(st)
	}

	return m, nil
}

// =============================================================================
// ACTIONS
// =============================================================================

// dispatch sends a to the store and refreshes the tables.
func (m *Model) dispatch(a store.Action) {
	m.store.Dispatch(a)
	m.sync()
}

func (m *Model) selectTab(tab store.Tab) {
	m.search.Blur()
	m.dispatch(store.SelectTab{Tab: tab})
}

func (m *Model) openCreate(tab store.Tab) tea.Cmd {
	if tab == store.TabRoles {
		m.dispatch(store.OpenRoleEditor{})
		return m.roleEditor.Open(m.store.State().RoleForm(), true)
	}
	m.dispatch(store.OpenUserEditor{})
	st := m.store.State()
	return m.userEditor.Open(st.UserForm(), rbac.RoleNames(st.Roles), true)
}

func (m *Model) openEdit(st store.State) tea.Cmd {
	if st.Tab == store.TabRoles {
		role, ok := m.selectedRole(st)
		if !ok {
			return nil
		}
		m.dispatch(store.EditRole{ID: role.ID})
		return m.roleEditor.Open(m.store.State().RoleForm(), false)
	}

	user, ok := m.selectedUser(st)
	if !ok {
		return nil
	}
	m.dispatch(store.EditUser{ID: user.ID})
	next := m.store.State()
	return m.userEditor.Open(next.UserForm(), rbac.RoleNames(next.Roles), false)
}

func (m *Model) requestDelete(st store.State) {
	if st.Tab == store.TabRoles {
		role, ok := m.selectedRole(st)
		if !ok {
			return
		}
		m.deleteConfirm.Open(store.KindRole, role.Name, rbac.CountMembers(role, st.Users))
		m.dispatch(store.RequestDelete{Target: store.Target{Kind: store.KindRole, ID: role.ID}})
		return
	}

	user, ok := m.selectedUser(st)
	if !ok {
		return
	}
	m.deleteConfirm.Open(store.KindUser, user.Name, 0)
	m.dispatch(store.RequestDelete{Target: store.Target{Kind: store.KindUser, ID: user.ID}})
}

func (m *Model) copyEmail(st store.State) tea.Cmd {
	if st.Tab != store.TabUsers {
		return nil
	}
	user, ok := m.selectedUser(st)
	if !ok || user.Email == "" {
		return nil
	}
	if err := m.clipboard(user.Email); err != nil {
		m.logger.Printf("CLIPBOARD_FAILED | user_id=%d error=%v", user.ID, err)
		return m.toast.Show(components.ToastError, "Clipboard unavailable")
	}
	m.logger.Printf("CLIPBOARD_COPY | user_id=%d", user.ID)
	return m.toast.Show(components.ToastSuccess, "Copied "+user.Email)
}

// =============================================================================
// SELECTION HELPERS
// =============================================================================

func (m Model) activeTable(tab store.Tab) *components.Table {
	if tab == store.TabRoles {
		return m.roleTable
	}
	return m.userTable
}

func (m Model) selectedUser(st store.State) (rbac.User, bool) {
	i := m.userTable.Cursor
	if i < 0 || i >= len(st.Users) {
		return rbac.User{}, false
	}
	return st.Users[i], true
}

func (m Model) selectedRole(st store.State) (rbac.Role, bool) {
	i := m.roleTable.Cursor
	if i < 0 || i >= len(st.Roles) {
		return rbac.Role{}, false
	}
	return st.Roles[i], true
}

package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"trove/internal/config"
	"trove/internal/domain"
	"trove/internal/eventbus"
	"trove/internal/ui/batch"
	"trove/internal/ui/input"
	"trove/internal/ui/services/clipboard"
	"trove/internal/ui/services/contextmenu"
	"trove/internal/ui/services/dragdrop"
	"trove/internal/ui/services/rubberband"
	"trove/internal/ui/services/selection"
	"trove/internal/ui/state"
	"trove/internal/ui/views"
	"trove/internal/workspace"
)

// statusTTL is how long a notice stays in the status bar
const statusTTL = 4 * time.Second

// pressState tracks an in-progress left press between down and up
type pressState struct {
	key     domain.Key
	point   domain.Point
	mods    selection.Modifiers
	wasItem bool
	moved   bool
}

// Model represents the UI state
type Model struct {
	bus   eventbus.EventBus
	cfg   *config.Config
	store *workspace.Store
	state *state.AppState

	sel     *selection.Service
	rb      *rubberband.Service
	drag    *dragdrop.Service
	clip    *clipboard.Service
	menuSvc *contextmenu.Service

	inputHandler *input.Handler
	renderer     *views.Renderer
	pager        *PagerOps
	help         help.Model
	keys         keyMap

	width  int
	height int

	projects   []domain.Project
	projectIdx int

	menu       *contextmenu.Menu
	menuAt     domain.Point
	menuCursor int

	pendingDelete []domain.EntityRef
	renameTarget  *domain.EntityRef

	pressed      *pressState
	lastClickKey domain.Key
	lastClickAt  time.Time

	statusIsError bool
	statusStamp   time.Time
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *workspace.Store) *Model {
	sel := selection.NewService(bus)
	drag := dragdrop.NewService(bus, sel, store, store)
	clip := clipboard.NewService(bus, store, store, store)
	drag.SetConcurrency(cfg.UISettings.MoveConcurrency)
	clip.SetConcurrency(cfg.UISettings.MoveConcurrency)

	m := &Model{
		bus:          bus,
		cfg:          cfg,
		store:        store,
		state:        state.NewAppState(),
		sel:          sel,
		rb:           rubberband.NewService(sel),
		drag:         drag,
		clip:         clip,
		menuSvc:      contextmenu.NewService(sel, clip, store),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		pager:        NewPagerOps(),
		help:         help.New(),
		keys:         newKeyMap(),
		width:        80,
		height:       24,
	}

	m.projects = store.Projects()
	if len(m.projects) > 0 {
		m.state.Container = domain.ContainerID{ProjectID: m.projects[0].ID}
	}
	m.refreshItems()
	return m
}

// SetProgram wires the Bubble Tea program for pager terminal handoff
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.ViewportHeight = maxInt(msg.Height-views.HeaderHeight-4, 3)
		m.refreshItems()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if !m.cfg.UISettings.MouseEnabled {
			return m, nil
		}
		return m, m.handleMouse(msg)

	case dropDoneMsg:
		return m, m.finishDrop(msg)

	case pasteDoneMsg:
		return m, m.finishPaste(msg)

	case deleteDoneMsg:
		m.state.BatchInFlight = false
		m.sel.Clear()
		m.refreshItems()
		if msg.err != nil {
			return m, m.setStatus("Delete failed: "+msg.err.Error(), true)
		}
		return m, m.setStatus(fmt.Sprintf("%d deleted", msg.count), false)

	case pagerDoneMsg:
		if msg.err != nil {
			return m, m.setStatus("Pager error: "+msg.err.Error(), true)
		}
		return m, nil

	case clearStatusMsg:
		if msg.stamp.Equal(m.statusStamp) {
			m.state.StatusMessage = ""
		}
		return m, nil

	case EventMsg:
		// External refreshes: another handler mutated the workspace.
		switch msg.Event.Type() {
		case eventbus.EventItemsMoved, eventbus.EventItemDuplicated,
			eventbus.EventFolderCreated, eventbus.EventItemRenamed,
			eventbus.EventItemsDeleted:
			m.refreshItems()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m *Model) View() string {
	return m.renderer.Render(m.viewState())
}

// --- keyboard ---

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state.BatchInFlight {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		return nil
	}

	if m.menu != nil && m.inputHandler.Mode() == input.ModeNormal {
		return m.handleMenuKey(msg)
	}

	actions, cmd := m.inputHandler.HandleKey(msg)
	var cmds []tea.Cmd
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	for _, action := range actions {
		if c := m.applyAction(action); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q":
		m.menu = nil
	case "up", "k":
		m.moveMenuCursor(-1)
	case "down", "j":
		m.moveMenuCursor(1)
	case "enter":
		menu := m.menu
		m.menu = nil
		if m.menuCursor < len(menu.Entries) {
			entry := menu.Entries[m.menuCursor]
			if !entry.Disabled {
				return m.executeMenuEntry(menu, entry)
			}
		}
	}
	return nil
}

func (m *Model) moveMenuCursor(delta int) {
	if m.menu == nil || len(m.menu.Entries) == 0 {
		return
	}
	idx := m.menuCursor
	for i := 0; i < len(m.menu.Entries); i++ {
		idx += delta
		if idx < 0 {
			idx = len(m.menu.Entries) - 1
		}
		if idx >= len(m.menu.Entries) {
			idx = 0
		}
		if !m.menu.Entries[idx].Disabled {
			m.menuCursor = idx
			return
		}
	}
}

func (m *Model) applyAction(action input.Action) tea.Cmd {
	switch a := action.(type) {
	case input.MoveCursorAction:
		m.state.CursorIndex = clamp(m.state.CursorIndex+a.Delta, 0, maxInt(len(m.state.Items)-1, 0))
		m.state.ClampViewport()
	case input.OpenAction:
		if ref, ok := m.state.CursorItem(); ok {
			return m.openItem(ref)
		}
	case input.NavigateUpAction:
		return m.navigateUp()
	case input.SwitchProjectAction:
		if len(m.projects) > 1 {
			m.projectIdx = (m.projectIdx + 1) % len(m.projects)
			m.navigateTo(domain.ContainerID{ProjectID: m.projects[m.projectIdx].ID})
		}
	case input.ToggleSelectAction:
		if ref, ok := m.state.CursorItem(); ok {
			m.sel.Toggle(ref.Kind, ref.ID)
		}
	case input.SelectAllAction:
		keys := make([]domain.Key, 0, len(m.state.Items))
		for _, item := range m.state.Items {
			keys = append(keys, item.Key())
		}
		m.sel.Replace(keys)
	case input.ClearSelectionAction:
		m.sel.Clear()
	case input.CutAction:
		m.clip.CutItems(m.actionRefs())
	case input.CopyAction:
		m.clip.CopyItems(m.actionRefs())
	case input.PasteAction:
		return m.pasteCmd(m.pasteKinds(), m.state.Container)
	case input.NewFolderRequestAction:
		return m.inputHandler.EnterTextMode(input.ModeNewFolder, "")
	case input.RenameRequestAction:
		if ref, ok := m.state.CursorItem(); ok {
			target := ref
			m.renameTarget = &target
			return m.inputHandler.EnterTextMode(input.ModeRename, ref.Name)
		}
	case input.NewFolderAction:
		if _, err := m.store.CreateFolder(a.Name, m.state.Container); err != nil {
			return m.setStatus("New folder failed: "+err.Error(), true)
		}
		m.refreshItems()
	case input.RenameAction:
		if m.renameTarget != nil {
			if err := m.store.Rename(m.renameTarget.Key(), a.Name); err != nil {
				return m.setStatus("Rename failed: "+err.Error(), true)
			}
			m.renameTarget = nil
			m.refreshItems()
		}
	case input.DeleteRequestAction:
		refs := m.actionRefs()
		if len(refs) > 0 {
			m.pendingDelete = refs
			m.inputHandler.EnterConfirm()
		}
	case input.DeleteConfirmedAction:
		refs := m.pendingDelete
		m.pendingDelete = nil
		return m.deleteCmd(refs)
	case input.HelpAction:
		return m.pagerCmd(helpContent())
	case input.QuitAction:
		return tea.Quit
	}
	return nil
}

// actionRefs resolves the refs an action applies to: the selection, or
// the cursor item when nothing is selected
func (m *Model) actionRefs() []domain.EntityRef {
	if m.sel.Count() == 0 {
		if ref, ok := m.state.CursorItem(); ok {
			return []domain.EntityRef{ref}
		}
		return nil
	}
	var refs []domain.EntityRef
	for _, key := range m.sel.Keys() {
		if ref, ok := m.store.Entity(key); ok {
			refs = append(refs, ref)
		}
	}
	return refs
}

func (m *Model) pasteKinds() []domain.Kind {
	var kinds []domain.Kind
	for _, kind := range domain.Kinds {
		if _, ok := m.clip.Slot(kind); ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// --- mouse ---

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state.BatchInFlight {
		return nil
	}

	p := m.toLocal(msg.X, msg.Y)
	mods := selection.Modifiers{Ctrl: msg.Ctrl, Shift: msg.Shift}

	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		m.state.ViewportOffset = maxInt(m.state.ViewportOffset-2, 0)
		return nil
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		maxOffset := maxInt(len(m.state.Items)-m.state.ViewportHeight, 0)
		m.state.ViewportOffset = minInt(m.state.ViewportOffset+2, maxOffset)
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			return m.leftPress(p, mods)
		case tea.MouseButtonRight:
			m.rightPress(p)
		}
	case tea.MouseActionMotion:
		m.pointerMove(p)
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			return m.leftRelease(p)
		}
	}
	return nil
}

func (m *Model) leftPress(p domain.Point, mods selection.Modifiers) tea.Cmd {
	if m.menu != nil {
		m.menu = nil
		return nil
	}

	item, over := m.state.ItemAt(p)
	m.pressed = &pressState{point: p, mods: mods, wasItem: over}
	if over {
		m.pressed.key = item.Key()
	}

	// The synthetic press trailing a drop must not start a band or
	// collapse the selection.
	if m.drag.SuppressClicks() {
		return nil
	}

	// Only ctrl defers a band over an item; a shift press stays a
	// click or an item drag.
	if !over {
		m.rb.PointerDown(p, false, mods)
	} else if mods.Ctrl {
		m.rb.PointerDown(p, true, mods)
	}
	return nil
}

func (m *Model) pointerMove(p domain.Point) {
	if m.drag.Session() != nil {
		m.dragOverAt(p)
		return
	}

	if _, active := m.rb.Band(); active || m.rb.Pending() {
		m.rb.PointerMove(p, m.itemRects())
		return
	}

	if m.pressed != nil && m.pressed.wasItem && !m.pressed.mods.Ctrl && p != m.pressed.point {
		m.pressed.moved = true
		if ref, ok := m.state.ItemByKey(m.pressed.key); ok {
			m.drag.StartDrag(ref.Kind, ref.ID)
			m.dragOverAt(p)
		}
	}
}

func (m *Model) leftRelease(p domain.Point) tea.Cmd {
	defer func() { m.pressed = nil }()

	if m.drag.Session() != nil {
		m.dragOverAt(p)
		return m.dropCmd()
	}

	if _, active := m.rb.Band(); active {
		m.rb.PointerUp()
		return nil
	}
	// A still-pending band means the press never travelled far enough
	// to become one; treat the release as a click.
	m.rb.PointerUp()

	if m.pressed == nil || !m.pressed.wasItem || m.pressed.moved {
		return nil
	}
	if m.drag.SuppressClicks() {
		return nil
	}

	ref, ok := m.state.ItemByKey(m.pressed.key)
	if !ok {
		return nil
	}

	doubleClick := time.Duration(m.cfg.UISettings.DoubleClickMs) * time.Millisecond
	now := time.Now()
	if m.lastClickKey == ref.Key() && now.Sub(m.lastClickAt) < doubleClick {
		m.lastClickAt = time.Time{}
		return m.openItem(ref)
	}
	m.lastClickKey = ref.Key()
	m.lastClickAt = now

	m.sel.Click(ref.Kind, ref.ID, m.pressed.mods)
	return nil
}

func (m *Model) rightPress(p domain.Point) {
	if item, over := m.state.ItemAt(p); over {
		menu := m.menuSvc.ResolveItem(item.Kind, item.ID)
		m.menu = &menu
	} else {
		menu := m.menuSvc.ResolveContainer()
		m.menu = &menu
	}
	m.menuAt = p
	m.menuCursor = 0
	if len(m.menu.Entries) > 0 && m.menu.Entries[0].Disabled {
		m.moveMenuCursor(1)
	}
}

// dragOverAt records the folder under the pointer as the drop target.
// Anything else, including empty space, clears it.
func (m *Model) dragOverAt(p domain.Point) {
	item, over := m.state.ItemAt(p)
	if over && item.Kind == domain.KindFolder {
		m.drag.DragOver(dragdrop.FolderTarget{FolderID: item.ID, OK: true})
		return
	}
	m.drag.DragOver(dragdrop.FolderTarget{})
}

func (m *Model) itemRects() []rubberband.ItemRect {
	rects := make([]rubberband.ItemRect, 0, len(m.state.Items))
	for _, item := range m.state.Items {
		if rect, ok := m.state.Rects[item.Key()]; ok {
			rects = append(rects, rubberband.ItemRect{Key: item.Key(), Rect: rect})
		}
	}
	return rects
}

// toLocal translates terminal coordinates into container-local,
// scroll-adjusted coordinates
func (m *Model) toLocal(x, y int) domain.Point {
	return domain.Point{X: x, Y: y - views.HeaderHeight + m.state.ViewportOffset}
}

// --- menu execution ---

func (m *Model) executeMenuEntry(menu *contextmenu.Menu, entry contextmenu.Entry) tea.Cmd {
	switch entry.Action {
	case contextmenu.ActionOpen:
		if len(menu.Targets) > 0 {
			return m.openItem(menu.Targets[0])
		}
	case contextmenu.ActionRename:
		if len(menu.Targets) > 0 {
			target := menu.Targets[0]
			m.renameTarget = &target
			return m.inputHandler.EnterTextMode(input.ModeRename, target.Name)
		}
	case contextmenu.ActionCut:
		m.clip.CutItems(menu.Targets)
	case contextmenu.ActionCopy:
		m.clip.CopyItems(menu.Targets)
	case contextmenu.ActionDelete:
		m.pendingDelete = menu.Targets
		m.inputHandler.EnterConfirm()
	case contextmenu.ActionPaste:
		return m.pasteCmd([]domain.Kind{entry.Kind}, m.state.Container)
	case contextmenu.ActionPasteInto:
		target := domain.ContainerID{ProjectID: m.state.Container.ProjectID, FolderID: entry.FolderID}
		return m.pasteCmd([]domain.Kind{entry.Kind}, target)
	case contextmenu.ActionNewFolder:
		return m.inputHandler.EnterTextMode(input.ModeNewFolder, "")
	}
	return nil
}

// --- async operations ---

// dropCmd resolves the drop on the update loop. Cancels and no-ops
// settle immediately; only a dispatched plan crosses into a goroutine,
// and that goroutine touches nothing but the store.
func (m *Model) dropCmd() tea.Cmd {
	outcome, plan, err := m.drag.Drop()
	switch outcome {
	case dragdrop.DropCancelled:
		if err != nil {
			return m.setStatus(err.Error(), true)
		}
		return nil
	case dragdrop.DropNoop:
		return nil
	}

	m.state.BatchInFlight = true
	return func() tea.Msg {
		return dropDoneMsg{plan: plan, report: m.drag.Dispatch(context.Background(), plan)}
	}
}

// pasteCmd consumes the staged slots on the update loop, then runs the
// plans' store calls in a goroutine. The folder slot is consumed first
// and is the only kind with a pre-dispatch validation rule, so a
// rejection leaves every slot intact.
func (m *Model) pasteCmd(kinds []domain.Kind, target domain.ContainerID) tea.Cmd {
	var plans []*clipboard.PastePlan
	for _, kind := range kinds {
		plan, err := m.clip.Paste(kind, target.FolderID, target.ProjectID)
		if err != nil {
			return m.setStatus(err.Error(), true)
		}
		if plan != nil {
			plans = append(plans, plan)
		}
	}
	if len(plans) == 0 {
		return nil
	}

	m.state.BatchInFlight = true
	return func() tea.Msg {
		msg := pasteDoneMsg{entries: make([]pasteEntry, 0, len(plans))}
		for _, plan := range plans {
			msg.entries = append(msg.entries, pasteEntry{
				plan:   plan,
				report: m.clip.Dispatch(context.Background(), plan),
			})
		}
		return msg
	}
}

func (m *Model) deleteCmd(refs []domain.EntityRef) tea.Cmd {
	keys := make([]domain.Key, 0, len(refs))
	for _, ref := range refs {
		keys = append(keys, ref.Key())
	}
	m.state.BatchInFlight = true
	return func() tea.Msg {
		err := m.store.Delete(context.Background(), keys)
		return deleteDoneMsg{count: len(keys), err: err}
	}
}

func (m *Model) pagerCmd(content string) tea.Cmd {
	return func() tea.Msg {
		return pagerDoneMsg{err: m.pager.Show(content)}
	}
}

// --- batch completion ---

func (m *Model) finishDrop(msg dropDoneMsg) tea.Cmd {
	m.state.BatchInFlight = false
	m.drag.Complete(msg.plan, msg.report)
	m.refreshItems()
	return m.setStatus(batchNotice("moved", msg.plan.Kind, msg.report), msg.report.Failed > 0)
}

func (m *Model) finishPaste(msg pasteDoneMsg) tea.Cmd {
	m.state.BatchInFlight = false

	var parts []string
	failed := false
	for _, entry := range msg.entries {
		m.clip.Complete(entry.plan, entry.report)
		verb := "copied"
		if entry.plan.Action == clipboard.Cut {
			verb = "moved"
		}
		parts = append(parts, batchNotice(verb, entry.plan.Kind, entry.report))
		if entry.report.Failed > 0 {
			failed = true
		}
	}
	m.refreshItems()
	if len(parts) == 0 {
		return nil
	}
	return m.setStatus(strings.Join(parts, "; "), failed)
}

// batchNotice builds the count-aware aggregate notice for one batch
func batchNotice(verb string, kind domain.Kind, report batch.Report) string {
	total := report.Succeeded + report.Failed
	switch {
	case report.Failed == 0:
		label := kind.Label(report.Succeeded)
		if report.Succeeded == 1 {
			return fmt.Sprintf("%s %s", capitalize(label), verb)
		}
		return fmt.Sprintf("%d %s %s", report.Succeeded, label, verb)
	case report.Succeeded == 0:
		return fmt.Sprintf("Could not %s %d %s", verbStem(verb), total, kind.Label(total))
	default:
		return fmt.Sprintf("Some items failed (%d succeeded, %d failed)", report.Succeeded, report.Failed)
	}
}

// verbStem maps a past-tense batch verb back to its base form for the
// "Could not ..." notice
func verbStem(verb string) string {
	switch verb {
	case "moved":
		return "move"
	case "copied":
		return "copy"
	case "deleted":
		return "delete"
	}
	return verb
}

// --- navigation and content ---

func (m *Model) openItem(ref domain.EntityRef) tea.Cmd {
	switch ref.Kind {
	case domain.KindFolder:
		m.navigateTo(domain.ContainerID{ProjectID: ref.ProjectID, FolderID: ref.ID})
	case domain.KindConversation:
		if convo, ok := m.store.Conversation(ref.ID); ok {
			return m.pagerCmd(convo.Title + "\n\n" + convo.Transcript)
		}
	case domain.KindFile:
		if file, ok := m.store.File(ref.ID); ok {
			return m.pagerCmd(file.Name + "\n\n" + file.Content)
		}
	}
	return nil
}

func (m *Model) navigateUp() tea.Cmd {
	if m.state.Container.IsRoot() {
		return nil
	}
	folder, ok := m.store.Folder(m.state.Container.FolderID)
	if !ok {
		m.navigateTo(domain.ContainerID{ProjectID: m.state.Container.ProjectID})
		return nil
	}
	m.navigateTo(domain.ContainerID{ProjectID: folder.ProjectID, FolderID: folder.ParentFolderID})
	return nil
}

// navigateTo switches containers. Selection does not survive
// navigation; the clipboard does.
func (m *Model) navigateTo(c domain.ContainerID) {
	m.sel.Clear()
	m.rb.PointerUp()
	m.menu = nil
	m.state.Container = c
	m.state.CursorIndex = 0
	m.state.ViewportOffset = 0
	m.refreshItems()
	if m.bus != nil {
		m.bus.Publish(domain.ContainerChangedEvent{Container: c})
	}
}

func (m *Model) refreshItems() {
	m.state.SetItems(m.store.ItemsIn(m.state.Container), maxInt(m.width, 1))
	m.state.ClampViewport()

	var crumbs []string
	for _, id := range m.store.AncestorChain(m.state.Container.FolderID) {
		if folder, ok := m.store.Folder(id); ok {
			crumbs = append([]string{folder.Name}, crumbs...)
		}
	}
	m.state.Crumbs = crumbs
}

func (m *Model) setStatus(msg string, isError bool) tea.Cmd {
	m.state.StatusMessage = msg
	m.statusIsError = isError
	m.statusStamp = time.Now()
	stamp := m.statusStamp
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{stamp: stamp}
	})
}

// --- rendering ---

func (m *Model) viewState() views.ViewState {
	session := m.drag.Session()
	dragState := m.drag.State()

	cutIDs := make(map[domain.Key]bool)
	for _, kind := range domain.Kinds {
		if slot, ok := m.clip.Slot(kind); ok && slot.Action == clipboard.Cut {
			for _, item := range slot.Items {
				cutIDs[item.Key()] = true
			}
		}
	}

	rows := make([]views.Row, 0, len(m.state.Items))
	for i, item := range m.state.Items {
		row := views.Row{
			Ref:      item,
			Selected: m.sel.IsSelected(item.Kind, item.ID),
			Cursor:   i == m.state.CursorIndex,
			Cut:      cutIDs[item.Key()],
		}
		if session != nil {
			if item.Kind == session.Kind() && session.Carries(item.ID) {
				row.Dragged = true
			}
			if session.OverTarget.OK && item.Kind == domain.KindFolder && item.ID == session.OverTarget.FolderID {
				if dragState == dragdrop.OverValidTarget {
					row.Drop = views.DropOK
				} else {
					row.Drop = views.DropRejected
				}
			}
		}
		rows = append(rows, row)
	}

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		ProjectName:    m.projectName(),
		Breadcrumb:     breadcrumb(m.state.Crumbs),
		Rows:           rows,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		StatusMessage:  m.state.StatusMessage,
		StatusIsError:  m.statusIsError,
		PromptLabel:    m.inputHandler.PromptLabel(),
		PromptView:     m.inputHandler.PromptView(),
		HelpView:       m.help.View(m.keys),
		Menu:           m.menu,
		MenuAt:         m.menuAt,
		MenuCursor:     m.menuCursor,
	}

	if band, active := m.rb.Band(); active {
		vs.Band = &band
	}
	if session != nil {
		n := len(session.DraggedIDs)
		vs.DragTag = fmt.Sprintf("%d %s", n, session.Kind().Label(n))
	}
	return vs
}

func (m *Model) projectName() string {
	if p, ok := m.store.Project(m.state.Container.ProjectID); ok {
		return p.Name
	}
	return ""
}

func breadcrumb(crumbs []string) string {
	var b strings.Builder
	for _, crumb := range crumbs {
		b.WriteString(" / " + crumb)
	}
	return b.String()
}

// --- helpers ---

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

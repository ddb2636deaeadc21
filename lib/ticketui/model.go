// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/digitalnest/nestqueue/lib/ticket"
	"github.com/digitalnest/nestqueue/lib/ticketstore"
	"github.com/digitalnest/nestqueue/lib/tui"
)

// overlayKind identifies which overlay, if any, is active. Exactly one
// value holds at a time: opening an overlay closes whatever was open,
// so the create form and the detail panel can never stack.
type overlayKind int

const (
	// overlayNone means the plain ticket list has keyboard focus.
	overlayNone overlayKind = iota
	// overlayCreate means the create form is active and owns all
	// keyboard input except quit.
	overlayCreate
	// overlayDetail means the read-only detail panel for the
	// selected ticket is active.
	overlayDetail
)

// noticeFadeDelay is how long a transient status-bar notice stays
// visible.
const noticeFadeDelay = 3 * time.Second

// ticketsMsg delivers the result of a collection load through the
// bubbletea message loop.
type ticketsMsg struct {
	tickets []ticket.Ticket
	err     error
}

// createdMsg delivers the outcome of a submitted draft. Exactly one of
// created and err is set.
type createdMsg struct {
	created *ticket.Ticket
	err     error
}

// storeEventMsg wraps a store Event for delivery through the bubbletea
// message loop.
type storeEventMsg struct {
	event ticketstore.Event
}

// noticeFadeMsg is sent after a delay to clear the transient notice
// from the status bar.
type noticeFadeMsg struct{}

// Model is the top-level bubbletea model for the ticket viewer.
type Model struct {
	store     *ticketstore.Store
	theme     Theme
	keys      KeyMap
	createdBy string

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Collection state, refreshed from the store.
	tickets []ticket.Ticket
	loadErr error
	loading bool

	// List state.
	cursor       int
	scrollOffset int

	// Overlay state. selectedID is only meaningful for
	// overlayDetail; form only for overlayCreate.
	overlay    overlayKind
	selectedID string
	form       FormModel

	// Transient status-bar notice, cleared by noticeFadeMsg.
	notice string

	// Store event subscription, re-armed after each delivery.
	events <-chan ticketstore.Event
}

// NewModel creates a Model over the given store. The createdBy
// identity is stamped on every draft the create form produces.
func NewModel(store *ticketstore.Store, createdBy string) Model {
	return Model{
		store:     store,
		theme:     DefaultTheme,
		keys:      DefaultKeyMap,
		createdBy: createdBy,
		loading:   true,
		events:    store.Subscribe(),
	}
}

// SetTheme overrides the color palette. Call before running the
// bubbletea program.
func (model *Model) SetTheme(theme Theme) {
	model.theme = theme
}

// Init implements tea.Model. Kicks off the initial load and starts
// listening for store events.
func (model Model) Init() tea.Cmd {
	return tea.Batch(
		loadTickets(model.store),
		listenForStoreEvent(model.events),
	)
}

// loadTickets returns a tea.Cmd that loads the collection through the
// store's cache and delivers the result as a ticketsMsg.
func loadTickets(store *ticketstore.Store) tea.Cmd {
	return func() tea.Msg {
		tickets, err := store.Load(context.Background())
		return ticketsMsg{tickets: tickets, err: err}
	}
}

// createTicket returns a tea.Cmd that submits the draft and delivers
// the outcome as a createdMsg. The draft is validated before this is
// dispatched, so a non-nil error here is always a remote failure.
func createTicket(store *ticketstore.Store, draft ticket.Draft) tea.Cmd {
	return func() tea.Msg {
		var result createdMsg
		err := store.Create(context.Background(), draft, ticketstore.Callbacks{
			OnSuccess: func(created ticket.Ticket) {
				result.created = &created
			},
			OnError: func(err error) {
				result.err = err
			},
		})
		if err != nil && result.err == nil {
			result.err = err
		}
		return result
	}
}

// listenForStoreEvent returns a tea.Cmd that blocks until an event
// arrives on the store channel, then delivers it as a storeEventMsg.
func listenForStoreEvent(channel <-chan ticketstore.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-channel
		if !ok {
			return nil
		}
		return storeEventMsg{event: event}
	}
}

// fadeNotice schedules the status-bar notice to clear.
func fadeNotice() tea.Cmd {
	return tea.Tick(noticeFadeDelay, func(time.Time) tea.Msg {
		return noticeFadeMsg{}
	})
}

// Update implements tea.Model. Keyboard input routes to the active
// overlay first; everything else mutates the list.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		// Ctrl+C always quits, even with a text input focused.
		if message.String() == "ctrl+c" {
			return model, tea.Quit
		}

		switch model.overlay {
		case overlayCreate:
			return model.handleFormKeys(message)
		case overlayDetail:
			return model.handleDetailKeys(message)
		default:
			return model.handleListKeys(message)
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.clampScroll()

	case ticketsMsg:
		model.applyTickets(message.tickets, message.err)

	case createdMsg:
		return model.handleCreated(message)

	case storeEventMsg:
		return model.handleStoreEvent(message.event)

	case noticeFadeMsg:
		model.notice = ""
	}
	return model, nil
}

// applyTickets installs a load result: sorted collection on success,
// the error otherwise. The cursor is clamped to the new bounds, and a
// detail overlay whose ticket vanished from the collection is closed
// rather than left pointing at nothing.
func (model *Model) applyTickets(tickets []ticket.Ticket, err error) {
	model.loading = false
	model.loadErr = err
	if err != nil {
		return
	}

	ticket.SortByPriority(tickets)
	model.tickets = tickets
	if model.cursor >= len(model.tickets) {
		model.cursor = len(model.tickets) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.clampScroll()

	if model.overlay == overlayDetail && model.findTicket(model.selectedID) == nil {
		model.overlay = overlayNone
		model.selectedID = ""
	}
}

// findTicket returns the ticket with the given ID, or nil.
func (model *Model) findTicket(id string) *ticket.Ticket {
	for index := range model.tickets {
		if model.tickets[index].ID == id {
			return &model.tickets[index]
		}
	}
	return nil
}

func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)
	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)
	case key.Matches(message, model.keys.PageUp):
		model.moveCursor(-model.visibleRows())
	case key.Matches(message, model.keys.PageDown):
		model.moveCursor(model.visibleRows())
	case key.Matches(message, model.keys.Home):
		model.cursor = 0
		model.clampScroll()
	case key.Matches(message, model.keys.End):
		model.cursor = len(model.tickets) - 1
		if model.cursor < 0 {
			model.cursor = 0
		}
		model.clampScroll()

	case key.Matches(message, model.keys.Open):
		if model.cursor < len(model.tickets) {
			model.overlay = overlayDetail
			model.selectedID = model.tickets[model.cursor].ID
		}

	case key.Matches(message, model.keys.Create):
		model.overlay = overlayCreate
		model.form = NewFormModel(model.theme, model.createdBy)

	case key.Matches(message, model.keys.Refresh):
		// Invalidation flows back as a store event, which triggers
		// exactly one reload.
		model.loading = true
		model.store.Invalidate()
	}
	return model, nil
}

func (model Model) handleDetailKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(message, model.keys.Dismiss), key.Matches(message, model.keys.Open):
		model.overlay = overlayNone
		model.selectedID = ""
	}
	return model, nil
}

func (model Model) handleFormKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Dismiss):
		// Dismissal discards the draft. Ignored while a submission
		// is in flight so its outcome still has a form to land in.
		if !model.form.Submitting() {
			model.overlay = overlayNone
			model.form = FormModel{}
		}
		return model, nil

	case key.Matches(message, model.keys.Submit):
		if model.form.Submitting() {
			// Repeated submit keypresses are inert until the
			// in-flight call settles.
			return model, nil
		}
		draft := model.form.Draft()
		if errs := draft.Validate(); len(errs) > 0 {
			model.form.fieldErrors = errs
			model.form.submitError = ""
			return model, nil
		}
		model.form.fieldErrors = nil
		model.form.submitError = ""
		model.form.submitting = true
		return model, createTicket(model.store, draft)
	}

	form, cmd := model.form.handleKey(message)
	model.form = form
	return model, cmd
}

// handleCreated settles a submission. Success closes the form and
// announces the new ticket; the reload arrives separately through the
// invalidation event. Failure re-enables the form with the draft
// intact.
func (model Model) handleCreated(message createdMsg) (tea.Model, tea.Cmd) {
	model.form.submitting = false
	if message.err != nil {
		model.form.submitError = message.err.Error()
		return model, nil
	}

	if model.overlay == overlayCreate {
		model.overlay = overlayNone
	}
	model.form = FormModel{}
	model.notice = fmt.Sprintf("Created ticket %s", message.created.ID)
	return model, fadeNotice()
}

// handleStoreEvent reacts to a cache change and re-arms the listener.
// Invalidation triggers a single reload; a refresh that some other
// caller completed is adopted from the store's snapshot.
func (model Model) handleStoreEvent(event ticketstore.Event) (tea.Model, tea.Cmd) {
	commands := []tea.Cmd{listenForStoreEvent(model.events)}

	switch event.Kind {
	case ticketstore.EventInvalidated:
		model.loading = true
		commands = append(commands, loadTickets(model.store))

	case ticketstore.EventRefreshed:
		snapshot := model.store.Snapshot()
		if snapshot.Loaded {
			model.applyTickets(snapshot.Tickets, snapshot.Err)
		}
	}
	return model, tea.Batch(commands...)
}

// moveCursor moves the selection by delta rows, clamped to the list.
func (model *Model) moveCursor(delta int) {
	model.cursor += delta
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.cursor >= len(model.tickets) {
		model.cursor = len(model.tickets) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	model.clampScroll()
}

// visibleRows is how many ticket rows fit between the header and the
// status bar.
func (model Model) visibleRows() int {
	rows := model.height - chromeLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampScroll keeps the cursor inside the visible window.
func (model *Model) clampScroll() {
	rows := model.visibleRows()
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+rows {
		model.scrollOffset = model.cursor - rows + 1
	}
	if model.scrollOffset < 0 {
		model.scrollOffset = 0
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	base := model.renderList()

	switch model.overlay {
	case overlayCreate:
		return tui.CenterOverlay(base, model.form.View(), model.width, model.height)
	case overlayDetail:
		if selected := model.findTicket(model.selectedID); selected != nil {
			return tui.CenterOverlay(base, model.renderDetail(*selected), model.width, model.height)
		}
	}
	return base
}

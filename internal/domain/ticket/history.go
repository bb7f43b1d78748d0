package ticket

import (
	"fmt"
	"time"
)

// HistoryField identifies which ticket field a history entry records.
type HistoryField string

const (
	FieldStatus     HistoryField = "status"
	FieldPriority   HistoryField = "priority"
	FieldAssignedTo HistoryField = "assigned_to"
)

func (f HistoryField) IsValid() bool {
	switch f {
	case FieldStatus, FieldPriority, FieldAssignedTo:
		return true
	}
	return false
}

// UnassignedDisplay is recorded when a ticket has no assignee, and as the
// old status value of the synthetic entry written on creation.
const UnassignedDisplay = "N/A"

// HistoryEntry is an append-only audit record of a single field change.
// Old and new values are display strings captured at the time of the
// change; assignee names in particular are resolved then, not re-derived.
type HistoryEntry struct {
	id       uint
	ticketID uint
	actorID  *uint
	field    HistoryField
	oldValue string
	newValue string
	loggedAt time.Time
}

func NewHistoryEntry(ticketID uint, actorID *uint, field HistoryField, oldValue, newValue string) (*HistoryEntry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !field.IsValid() {
		return nil, fmt.Errorf("invalid history field: %s", field)
	}

	return &HistoryEntry{
		ticketID: ticketID,
		actorID:  actorID,
		field:    field,
		oldValue: oldValue,
		newValue: newValue,
		loggedAt: time.Now(),
	}, nil
}

func ReconstructHistoryEntry(id, ticketID uint, actorID *uint, field HistoryField, oldValue, newValue string, loggedAt time.Time) (*HistoryEntry, error) {
	if id == 0 {
		return nil, fmt.Errorf("history entry ID cannot be zero")
	}
	return &HistoryEntry{
		id:       id,
		ticketID: ticketID,
		actorID:  actorID,
		field:    field,
		oldValue: oldValue,
		newValue: newValue,
		loggedAt: loggedAt,
	}, nil
}

func (h *HistoryEntry) ID() uint            { return h.id }
func (h *HistoryEntry) TicketID() uint      { return h.ticketID }
func (h *HistoryEntry) ActorID() *uint      { return h.actorID }
func (h *HistoryEntry) Field() HistoryField { return h.field }
func (h *HistoryEntry) OldValue() string    { return h.oldValue }
func (h *HistoryEntry) NewValue() string    { return h.newValue }
func (h *HistoryEntry) LoggedAt() time.Time { return h.loggedAt }

func (h *HistoryEntry) SetID(id uint) error {
	if h.id != 0 {
		return fmt.Errorf("history entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("history entry ID cannot be zero")
	}
	h.id = id
	return nil
}

package domain

import (
	"strings"
	"time"
)

// PlanID is the remote identifier of a plan. It is opaque to this program.
type PlanID string

// Plan is one instance of the recurring worship service.
type Plan struct {
	ID          PlanID
	SortDate    time.Time
	Title       string
	SeriesTitle string
	Dates       string
}

type AssignmentStatus string

// StatusConfirmed is the only status that puts a name on the bulletin.
// Other codes ("U" unconfirmed, "D" declined) are never shown.
const StatusConfirmed AssignmentStatus = "C"

// TeamAssignment is a person scheduled into a team position for a plan.
type TeamAssignment struct {
	Status       AssignmentStatus
	PositionName string
	Name         string
}

// IsConfirmed reports whether the assignee accepted the request. The API
// uses the single-letter code; the spelled-out form is accepted too.
func (a TeamAssignment) IsConfirmed() bool {
	return a.Status == StatusConfirmed || strings.EqualFold(string(a.Status), "confirmed")
}

type ItemType string

// Item types the bulletin treats specially. Any other type is rendered as
// prose.
const (
	ItemHeader ItemType = "header"
	ItemSong   ItemType = "song"
)

type ServicePosition string

// PositionPre marks items scheduled before the service starts.
const PositionPre ServicePosition = "pre"

// ServiceItem is one entry in a plan's order of service.
type ServiceItem struct {
	Type            ItemType
	ServicePosition ServicePosition
	Title           string
	Description     string
	HTMLDetails     string
}

// Hidden reports whether the item is left off the bulletin: section headers
// and anything scheduled before the service starts.
func (i ServiceItem) Hidden() bool {
	return i.Type == ItemHeader || i.ServicePosition == PositionPre
}

func (i ServiceItem) IsSong() bool {
	return i.Type == ItemSong
}

// IsSermon matches the title "Sermon" ignoring case and surrounding space.
func (i ServiceItem) IsSermon() bool {
	return strings.EqualFold(strings.TrimSpace(i.Title), "sermon")
}

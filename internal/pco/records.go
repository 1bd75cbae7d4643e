package pco

import (
	"time"

	"github.com/alexanderramin/bulletin/internal/domain"
)

// document is the JSON:API envelope shared by every list endpoint.
type document[A any] struct {
	Data  *[]record[A] `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

type record[A any] struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes *A     `json:"attributes"`
}

type planAttributes struct {
	SortDate    string `json:"sort_date"`
	Title       string `json:"title"`
	SeriesTitle string `json:"series_title"`
	Dates       string `json:"dates"`
}

type teamMemberAttributes struct {
	Status           string `json:"status"`
	TeamPositionName string `json:"team_position_name"`
	Name             string `json:"name"`
}

// itemAttributes uses pointers so that a missing item_type can be told
// apart from an empty one.
type itemAttributes struct {
	ItemType        *string `json:"item_type"`
	ServicePosition *string `json:"service_position"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	HTMLDetails     *string `json:"html_details"`
}

// Page is one page of decoded records. HasNext is set when the API
// advertises further pages; the client never follows them.
type Page[T any] struct {
	Records []T
	HasNext bool
}

func (d *document[A]) validate(resource Resource) error {
	if d.Data == nil {
		return malformed(resource, "missing data array")
	}
	for i, r := range *d.Data {
		if r.Attributes == nil {
			return malformed(resource, "record %d has no attributes", i)
		}
	}
	return nil
}

func toPlan(r record[planAttributes]) domain.Plan {
	p := domain.Plan{
		ID:          domain.PlanID(r.ID),
		Title:       r.Attributes.Title,
		SeriesTitle: r.Attributes.SeriesTitle,
		Dates:       r.Attributes.Dates,
	}
	if t, err := time.Parse(time.RFC3339, r.Attributes.SortDate); err == nil {
		p.SortDate = t
	}
	return p
}

func toAssignment(r record[teamMemberAttributes]) domain.TeamAssignment {
	return domain.TeamAssignment{
		Status:       domain.AssignmentStatus(r.Attributes.Status),
		PositionName: r.Attributes.TeamPositionName,
		Name:         r.Attributes.Name,
	}
}

func toServiceItem(i int, r record[itemAttributes]) (domain.ServiceItem, error) {
	a := r.Attributes
	if a.ItemType == nil {
		return domain.ServiceItem{}, malformed(ResourceItems, "record %d has no item_type", i)
	}
	return domain.ServiceItem{
		Type:            domain.ItemType(*a.ItemType),
		ServicePosition: domain.ServicePosition(deref(a.ServicePosition)),
		Title:           deref(a.Title),
		Description:     deref(a.Description),
		HTMLDetails:     deref(a.HTMLDetails),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

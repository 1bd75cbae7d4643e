package testutil

import (
	"time"

	"github.com/google/uuid"
)

// Record is one JSON:API resource object as served by the fake API.
type Record map[string]any

// RecordOption adjusts the attributes of a fixture record.
type RecordOption func(attrs map[string]any)

func WithServicePosition(pos string) RecordOption {
	return func(a map[string]any) {
		a["service_position"] = pos
	}
}

func WithDescription(desc string) RecordOption {
	return func(a map[string]any) {
		a["description"] = desc
	}
}

func WithHTMLDetails(html string) RecordOption {
	return func(a map[string]any) {
		a["html_details"] = html
	}
}

// WithNull sets an attribute to JSON null.
func WithNull(key string) RecordOption {
	return func(a map[string]any) {
		a[key] = nil
	}
}

// WithoutAttribute removes an attribute entirely.
func WithoutAttribute(key string) RecordOption {
	return func(a map[string]any) {
		delete(a, key)
	}
}

func NewPlanRecord(id string, sortDate time.Time, opts ...RecordOption) Record {
	attrs := map[string]any{
		"sort_date":    sortDate.UTC().Format(time.RFC3339),
		"title":        "",
		"series_title": "",
		"dates":        sortDate.Format("January 2, 2006"),
	}
	return newRecord("Plan", id, attrs, opts)
}

func NewTeamMemberRecord(status, position, name string, opts ...RecordOption) Record {
	attrs := map[string]any{
		"status":             status,
		"team_position_name": position,
		"name":               name,
	}
	return newRecord("PlanPerson", uuid.NewString(), attrs, opts)
}

func NewItemRecord(itemType, title string, opts ...RecordOption) Record {
	attrs := map[string]any{
		"item_type":        itemType,
		"service_position": "during",
		"title":            title,
		"description":      nil,
		"html_details":     nil,
	}
	return newRecord("Item", uuid.NewString(), attrs, opts)
}

// NewRecordWithoutAttributes builds a resource object missing its
// attributes member.
func NewRecordWithoutAttributes(typ string) Record {
	return Record{"type": typ, "id": uuid.NewString()}
}

func newRecord(typ, id string, attrs map[string]any, opts []RecordOption) Record {
	for _, opt := range opts {
		opt(attrs)
	}
	return Record{
		"type":       typ,
		"id":         id,
		"attributes": attrs,
	}
}

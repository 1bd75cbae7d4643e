package app

import (
	"errors"
	"iter"
	"time"

	"github.com/alexanderramin/bulletin/internal/domain"
)

type BulletinRequest struct {
	// Today selects the service week; nil means the current local date.
	Today *time.Time
}

func NewBulletinRequest() BulletinRequest {
	return BulletinRequest{}
}

// RoleAssignment pairs a role with its confirmed assignee. An empty Name
// means nobody confirmed for the role.
type RoleAssignment struct {
	Role domain.Role
	Name string
}

// Assignments lists every taxonomy role in bulletin order.
type Assignments []RoleAssignment

// Lines renders one "Role: Name" line per role, applying title overrides
// and showing "None" for unassigned roles.
func (a Assignments) Lines(titles domain.NameTitles) []string {
	lines := make([]string, 0, len(a))
	for _, ra := range a {
		name := "None"
		if ra.Name != "" {
			name = titles.Display(ra.Name)
		}
		lines = append(lines, string(ra.Role)+": "+name)
	}
	return lines
}

type TeamResponse struct {
	PlanID      domain.PlanID
	Assignments Assignments
	Warnings    []string
	// FetchErr is set when the team could not be loaded; every role is
	// then unassigned.
	FetchErr error
}

type BlockKind string

const (
	BlockSong    BlockKind = "song"
	BlockContent BlockKind = "content"
)

// Section is an indented sub-block under a rendered item.
type Section struct {
	Label string
	Lines []string
}

// RenderedBlock is one service item ready for printing.
type RenderedBlock struct {
	Kind     BlockKind
	Heading  string
	Sections []Section
}

type BulletinResponse struct {
	Plan     *domain.Plan
	Team     *TeamResponse
	Items    iter.Seq[RenderedBlock]
	Warnings []string
}

// PlanFound reports whether a plan was resolved for the requested week.
func (r *BulletinResponse) PlanFound() bool {
	return r.Plan != nil
}

type BulletinErrorCode string

const (
	ErrNoPlanFound           BulletinErrorCode = "NO_PLAN_FOUND"
	ErrAssignmentFetchFailed BulletinErrorCode = "ASSIGNMENT_FETCH_FAILED"
	ErrMalformedItems        BulletinErrorCode = "MALFORMED_ITEM_RESPONSE"
)

type BulletinError struct {
	Code    BulletinErrorCode
	Message string
	Err     error
}

func (e *BulletinError) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *BulletinError) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is a BulletinError with the given code.
func HasCode(err error, code BulletinErrorCode) bool {
	var be *BulletinError
	return errors.As(err, &be) && be.Code == code
}

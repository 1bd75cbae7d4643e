package pco

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/alexanderramin/bulletin/internal/domain"
)

// Client reads service plans from the Planning Center Services API.
type Client interface {
	// ListPlansAfter returns plans whose sort date is at or after the given
	// instant, ordered by sort date ascending.
	ListPlansAfter(ctx context.Context, after time.Time) (*Page[domain.Plan], error)

	// ListTeamMembers returns the first page of team assignments for a plan.
	ListTeamMembers(ctx context.Context, planID domain.PlanID) (*Page[domain.TeamAssignment], error)

	// ListItems returns the plan's order of service.
	ListItems(ctx context.Context, planID domain.PlanID) (*Page[domain.ServiceItem], error)
}

// apiClient implements Client over HTTP with basic auth.
type apiClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured service type.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &apiClient{
		cfg: cfg,
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// AfterTimestamp formats the plan cutoff for a calendar day: 10:00 with the
// API's UTC suffix, regardless of the local zone.
func AfterTimestamp(day time.Time) string {
	return day.Format("2006-01-02") + "T10:00:00Z"
}

func (c *apiClient) ListPlansAfter(ctx context.Context, after time.Time) (*Page[domain.Plan], error) {
	q := url.Values{}
	q.Set("order", "sort_date")
	q.Set("after", AfterTimestamp(after))
	q.Set("filter", "after")

	var doc document[planAttributes]
	if err := c.get(ctx, ResourcePlans, "/plans", q, &doc); err != nil {
		return nil, err
	}

	page := &Page[domain.Plan]{HasNext: doc.Links.Next != ""}
	for i, r := range *doc.Data {
		if r.ID == "" {
			return nil, malformed(ResourcePlans, "record %d has no id", i)
		}
		page.Records = append(page.Records, toPlan(r))
	}
	return page, nil
}

func (c *apiClient) ListTeamMembers(ctx context.Context, planID domain.PlanID) (*Page[domain.TeamAssignment], error) {
	var doc document[teamMemberAttributes]
	path := "/plans/" + url.PathEscape(string(planID)) + "/team_members"
	if err := c.get(ctx, ResourceTeamMembers, path, nil, &doc); err != nil {
		return nil, err
	}

	page := &Page[domain.TeamAssignment]{HasNext: doc.Links.Next != ""}
	for _, r := range *doc.Data {
		page.Records = append(page.Records, toAssignment(r))
	}
	return page, nil
}

func (c *apiClient) ListItems(ctx context.Context, planID domain.PlanID) (*Page[domain.ServiceItem], error) {
	var doc document[itemAttributes]
	path := "/plans/" + url.PathEscape(string(planID)) + "/items"
	if err := c.get(ctx, ResourceItems, path, nil, &doc); err != nil {
		return nil, err
	}

	page := &Page[domain.ServiceItem]{HasNext: doc.Links.Next != ""}
	for i, r := range *doc.Data {
		item, err := toServiceItem(i, r)
		if err != nil {
			return nil, err
		}
		page.Records = append(page.Records, item)
	}
	return page, nil
}

// validator is implemented by every document type.
type validator interface {
	validate(resource Resource) error
}

func (c *apiClient) get(ctx context.Context, resource Resource, path string, query url.Values, out validator) error {
	start := time.Now()
	status, err := c.doRequest(ctx, resource, path, query, out)

	event := CallEvent{
		Resource:   resource,
		Path:       path,
		StatusCode: status,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if err != nil {
		err = classify(ctx, err)
		event.ErrorCode = errorCode(err)
	}
	c.observer.OnCallComplete(ctx, event)
	return err
}

func (c *apiClient) doRequest(ctx context.Context, resource Resource, path string, query url.Values, out validator) (int, error) {
	u := c.cfg.serviceTypeURL() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.cfg.AppID, c.cfg.Secret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, &StatusError{Resource: resource, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return resp.StatusCode, malformed(resource, "decoding body: %v", err)
	}
	return resp.StatusCode, out.validate(resource)
}

// classify maps transport failures onto the package's sentinel errors.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrUnexpectedStatus), errors.Is(err, ErrMalformedResponse):
		return err
	case ctx.Err() != nil, isTimeout(err):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnexpectedStatus):
		return "BAD_STATUS"
	case errors.Is(err, ErrMalformedResponse):
		return "MALFORMED"
	default:
		return "UNKNOWN"
	}
}

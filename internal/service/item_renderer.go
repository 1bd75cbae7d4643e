package service

import (
	"context"
	"iter"
	"strings"
	"time"

	"github.com/alexanderramin/bulletin/internal/app"
	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/alexanderramin/bulletin/internal/pco"
	"github.com/alexanderramin/bulletin/internal/richtext"
)

const (
	SectionDescription = "Description"
	SectionDetails     = "Details"
)

type itemRenderer struct {
	client   pco.Client
	observer UseCaseObserver
}

func NewItemRenderer(client pco.Client, observers ...UseCaseObserver) ItemRenderer {
	return &itemRenderer{
		client:   client,
		observer: useCaseObserverOrNoop(observers),
	}
}

// RenderItems fetches the plan's order of service and returns its printable
// blocks in service order. The items are fetched and validated up front; a
// failure here means the API broke its contract and is returned as a
// BulletinError with code ErrMalformedItems. The sequence renders lazily
// and can be ranged over once.
func (s *itemRenderer) RenderItems(ctx context.Context, planID domain.PlanID) (iter.Seq[app.RenderedBlock], error) {
	start := time.Now()
	fields := map[string]any{"plan_id": string(planID)}

	page, err := s.client.ListItems(ctx, planID)
	if err != nil {
		itemsErr := &app.BulletinError{
			Code:    app.ErrMalformedItems,
			Message: fetchFailureMessage("plan items", err),
			Err:     err,
		}
		observe(ctx, s.observer, "render_items", start, false, itemsErr, fields)
		return nil, itemsErr
	}

	fields["records"] = len(page.Records)
	observe(ctx, s.observer, "render_items", start, true, nil, fields)
	return renderOnce(page.Records), nil
}

func renderOnce(items []domain.ServiceItem) iter.Seq[app.RenderedBlock] {
	consumed := false
	return func(yield func(app.RenderedBlock) bool) {
		if consumed {
			return
		}
		consumed = true
		for _, item := range items {
			block, ok := RenderItem(item)
			if !ok {
				continue
			}
			if !yield(block) {
				return
			}
		}
	}
}

// RenderItem converts one service item to a printable block. Headers and
// pre-service items report ok=false. Songs render as their title only. Other
// items carry their description and, for the sermon, the text of its HTML
// details.
func RenderItem(item domain.ServiceItem) (block app.RenderedBlock, ok bool) {
	if item.Hidden() {
		return app.RenderedBlock{}, false
	}

	title := strings.TrimSpace(item.Title)
	if item.IsSong() {
		return app.RenderedBlock{Kind: app.BlockSong, Heading: "SONG: " + title}, true
	}

	block = app.RenderedBlock{Kind: app.BlockContent, Heading: title}

	if desc := strings.TrimSpace(item.Description); desc != "" {
		block.Sections = append(block.Sections, app.Section{
			Label: SectionDescription,
			Lines: splitLines(desc),
		})
	}

	if item.HTMLDetails != "" && item.IsSermon() {
		if lines := richtext.Lines(item.HTMLDetails); len(lines) > 0 {
			block.Sections = append(block.Sections, app.Section{
				Label: SectionDetails,
				Lines: lines,
			})
		}
	}

	return block, true
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}

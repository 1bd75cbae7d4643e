package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/bulletin/internal/pco"
	"github.com/alexanderramin/bulletin/internal/testutil"
)

// newTestClient returns a client pointed at a fresh fake API.
func newTestClient(t *testing.T) (*testutil.FakePCO, pco.Client) {
	t.Helper()
	fake := testutil.NewFakePCO(t)
	cfg := pco.DefaultConfig()
	cfg.BaseURL = fake.URL()
	cfg.ServiceTypeID = testutil.FakeServiceTypeID
	cfg.AppID = "app"
	cfg.Secret = "secret"
	cfg.Timeout = 2 * time.Second
	return fake, pco.NewClient(cfg, pco.NoopObserver{})
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	var out []string
	for _, e := range o.events {
		out = append(out, e.Name)
	}
	return out
}

package cli

import (
	"testing"

	"github.com/alexanderramin/bulletin/internal/domain"
	"github.com/alexanderramin/bulletin/internal/teatest"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistForm_TickAndSubmit(t *testing.T) {
	items := domain.Checklist()
	var done []string
	form := newChecklistForm(items, &done)

	d := teatest.New(t, form, teatest.WithSize(100, 40))
	d.DrainInit()
	assert.Contains(t, d.View(), "Weekly Bulletin Checklist")

	d.PressKey('x')
	d.PressDown()
	d.PressDown()
	d.PressKey('x')
	d.PressEnter()

	require.Equal(t, huh.StateCompleted, form.State)
	assert.Equal(t, []string{items[0], items[2]}, done)
	assert.Equal(t, items[1], remainingItems(items, done)[0])
}

func TestChecklistForm_NothingTicked(t *testing.T) {
	items := domain.Checklist()
	var done []string
	form := newChecklistForm(items, &done)

	d := teatest.New(t, form, teatest.WithSize(100, 40))
	d.DrainInit()
	d.PressEnter()

	require.Equal(t, huh.StateCompleted, form.State)
	assert.Empty(t, done)
	assert.Equal(t, items, remainingItems(items, done))
}

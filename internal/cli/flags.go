package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateValue is a pflag.Value holding a local calendar date.
type dateValue struct {
	t   time.Time
	set bool
}

var _ pflag.Value = (*dateValue)(nil)

func (d *dateValue) String() string {
	if !d.set {
		return ""
	}
	return d.t.Format(dateLayout)
}

func (d *dateValue) Set(s string) error {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	d.t = t
	d.set = true
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}

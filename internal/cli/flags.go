package cli

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/rvannest/joist/internal/domain"
)

// addDateFlag registers a YYYY-MM-DD string flag.
func addDateFlag(fs *pflag.FlagSet, p *string, name, usage string) {
	fs.StringVar(p, name, "", usage+" (YYYY-MM-DD)")
}

// parseDateFlag parses a date flag value; empty returns nil.
func parseDateFlag(fs *pflag.FlagSet, name string) (*time.Time, error) {
	v, err := fs.GetString(name)
	if err != nil || v == "" {
		return nil, err
	}
	t, err := domain.ParseDate(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// timeOrZero dereferences an optional time, mapping nil to the zero time.
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

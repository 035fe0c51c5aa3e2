package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/backline/internal/output"
)

// Sink fans an analysis run out to several destinations. Writes go to every
// sink even when one fails; errors are joined.
type Sink struct {
	sinks []output.Sink
}

// New creates a fan-out sink.
func New(sinks ...output.Sink) *Sink {
	return &Sink{sinks: sinks}
}

func (s *Sink) Write(ctx context.Context, doc output.Document) error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Write(ctx, doc); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Sink) Close() error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

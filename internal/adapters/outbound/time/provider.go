package time

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-appointments/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CurrentTimeProvider is an implementation of domain.CurrentTimeProvider that
// reports wall-clock time in a fixed location.
type CurrentTimeProvider struct {
	location *time.Location
}

// NewCurrentTimeProvider creates a CurrentTimeProvider for the given location.
func NewCurrentTimeProvider(location *time.Location) CurrentTimeProvider {
	if location == nil {
		location = time.UTC
	}
	return CurrentTimeProvider{location: location}
}

// Now returns the current time in the provider location.
func (ts CurrentTimeProvider) Now() time.Time {
	if ts.location == nil {
		return time.Now().UTC()
	}
	return time.Now().In(ts.location)
}

// InitCurrentTimeProvider initializes the CurrentTimeProvider and registers it in the dependency container.
type InitCurrentTimeProvider struct {
	Location string `config:"APP_TIMEZONE" default:"UTC"`
}

// Initialize registers the CurrentTimeProvider in the dependency container.
func (its InitCurrentTimeProvider) Initialize(ctx context.Context) (context.Context, error) {
	location, err := time.LoadLocation(its.Location)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.CurrentTimeProvider](NewCurrentTimeProvider(location))
	return ctx, nil
}

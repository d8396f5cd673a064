package repository

import "context"

// PrepStateRepository is the (day, item-key) -> prepared side table the
// kitchen prep sheet merges over its pure aggregation output. Keeping it out
// of process memory means a restart does not lose the kitchen's progress.
type PrepStateRepository interface {
	SetPrepared(ctx context.Context, dayKey, itemKey string, prepared bool) error
	// Flags returns every prepared flag recorded for the day.
	Flags(ctx context.Context, dayKey string) (map[string]bool, error)
	// MarkAll sets every given item key prepared for the day.
	MarkAll(ctx context.Context, dayKey string, itemKeys []string) error
	// Reset clears all preparation state for the day.
	Reset(ctx context.Context, dayKey string) error
}

package health

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/minikit/core/storage"
)

// StorageProbe writes, reads back and removes a marker key.
func StorageProbe(s *storage.Storage) func(context.Context) error {
	return func(ctx context.Context) error {
		marker := strconv.FormatInt(time.Now().UnixNano(), 10)
		if err := s.SetE(ctx, storageProbeKey, marker); err != nil {
			return fmt.Errorf("storage write: %w", err)
		}

		var got string
		if err := s.GetE(ctx, storageProbeKey, &got); err != nil {
			return fmt.Errorf("storage read: %w", err)
		}
		if got != marker {
			return fmt.Errorf("storage read: got %q, want %q", got, marker)
		}

		if err := s.RemoveE(ctx, storageProbeKey); err != nil {
			return fmt.Errorf("storage remove: %w", err)
		}
		return nil
	}
}

package logs

import (
	"context"
	"fmt"
)

// WrapUnit prefixes err with the unit carried by ctx.
func WrapUnit(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	unit, ok := UnitOf(ctx)
	if !ok {
		return err
	}
	return fmt.Errorf("%s: %w", unit, err)
}

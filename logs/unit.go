package logs

import "context"

// Unit names the compilation unit a context works on.
type Unit string

type unitKey struct{}

func WithUnit(ctx context.Context, unit Unit) context.Context {
	return context.WithValue(ctx, unitKey{}, unit)
}

func UnitOf(ctx context.Context) (Unit, bool) {
	unit, ok := ctx.Value(unitKey{}).(Unit)
	return unit, ok
}

package db

import "github.com/exaring/otelpgx"

// newTracer creates a new tracer for the pgx pool.
func newTracer() *otelpgx.Tracer {
	return otelpgx.NewTracer(
		otelpgx.WithTrimSQLInSpanName(),
	)
}

package sheets

import (
	"context"

	"pendingboard/internal/core"
)

// TablePublisher pushes a report table to a shared spreadsheet so people
// without the dashboard can read it. Publishing never mutates the table.
type TablePublisher interface {
	// PublishTable replaces the target sheet's contents with the table and
	// returns a reference to where it landed.
	PublishTable(ctx context.Context, t core.Table) (ref string, err error)
}

package ingest

import (
	"context"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

// TxRunner executes the upload batch inside one transaction scope: fn gets
// repositories bound to the transaction, and any error rolls the whole batch
// back. The store is never left with a partially applied upload.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		startupRepo repository.StartupRepository,
		metaRepo repository.MetaRepository,
	) error) error
}

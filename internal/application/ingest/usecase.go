package ingest

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/application/dto"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

// UploadInput is one raw tabular upload as produced by the spreadsheet
// readers: the header row plus every data row as text cells.
type UploadInput struct {
	Header  []string
	Rows    [][]string
	Replace bool // replace the whole master instead of merging by name
}

// UploadUseCase ingests a startup master upload: normalize, then persist the
// accepted rows as one atomic batch.
//
// After the first successful upload the master is locked (app_meta flag);
// further uploads must set Replace explicitly, mirroring the admin "replace
// existing master" confirmation.
type UploadUseCase struct {
	tx       TxRunner
	metaRepo repository.MetaRepository
}

// NewUploadUseCase builds the use case.
func NewUploadUseCase(tx TxRunner, metaRepo repository.MetaRepository) *UploadUseCase {
	return &UploadUseCase{tx: tx, metaRepo: metaRepo}
}

// Upload normalizes the input and commits the batch.
//
// Merge mode upserts by name; rows whose name already exists in the store are
// counted as overwritten in the report. Replace mode clears the master first.
// Any store failure mid-batch rolls back to the pre-batch state.
func (uc *UploadUseCase) Upload(ctx context.Context, in UploadInput) (*dto.UploadReport, error) {
	batch, err := NormalizeBatch(in.Header, in.Rows)
	if err != nil {
		return nil, err
	}

	locked, err := uc.metaRepo.Get(ctx, repository.MetaStartupLocked)
	if err != nil {
		return nil, err
	}
	if locked == "1" && !in.Replace {
		return nil, domain.ErrMasterLocked
	}

	report := &dto.UploadReport{
		TotalRows:   batch.TotalRows,
		Accepted:    len(batch.Records),
		Overwritten: batch.OverwrittenInBatch,
		Rejected:    batch.Rejected,
		Replaced:    in.Replace,
	}

	now := time.Now().UTC()
	err = uc.tx.Run(ctx, func(startupRepo repository.StartupRepository, metaRepo repository.MetaRepository) error {
		if in.Replace {
			if err := startupRepo.DeleteAll(ctx); err != nil {
				return err
			}
		} else {
			names := make([]string, 0, len(batch.Records))
			for _, r := range batch.Records {
				names = append(names, r.Name)
			}
			existing, err := startupRepo.ExistingNames(ctx, names)
			if err != nil {
				return err
			}
			report.Overwritten += len(existing)
		}

		for _, rec := range batch.Records {
			rec.ID = uuid.New().String()
			rec.CreatedAt = now
			rec.UpdatedAt = now
			if err := startupRepo.Upsert(ctx, rec); err != nil {
				return err
			}
		}

		count, err := startupRepo.Count(ctx)
		if err != nil {
			return err
		}
		if err := metaRepo.Set(ctx, repository.MetaStartupLocked, "1"); err != nil {
			return err
		}
		return metaRepo.Set(ctx, repository.MetaStartupCount, strconv.Itoa(count))
	})
	if err != nil {
		return nil, err
	}

	if report.Rejected == nil {
		report.Rejected = []dto.RejectedRow{}
	}
	return report, nil
}

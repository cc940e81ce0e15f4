package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/entity"
	"github.com/nikhilbasfor45/jvl-franchise-dashboard/internal/domain/repository"
)

var _ repository.StartupRepository = (*StartupRepo)(nil)

const startupColumns = `id, name, sector, city, year, amount, website, leadership, source_link, address, contact, raw_attrs, created_at, updated_at`

// prefixedStartupColumns qualifies the column list with a table alias for
// joined queries.
func prefixedStartupColumns(alias string) string {
	cols := strings.Split(startupColumns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

// StartupRepo implements the StartupRepository port on PostgreSQL.
type StartupRepo struct {
	db querier
}

// NewStartupRepository builds the startup persistence adapter.
func NewStartupRepository(db querier) *StartupRepo {
	return &StartupRepo{db: db}
}

// Upsert inserts the startup or, when the name already exists, overwrites the
// attribute fields of the existing row (last-write-wins). Existing id and
// created_at are kept so ratings and shortlists keep pointing at the same row.
func (r *StartupRepo) Upsert(ctx context.Context, s *entity.Startup) error {
	query := `
		INSERT INTO startups (` + startupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (name) DO UPDATE SET
			sector      = EXCLUDED.sector,
			city        = EXCLUDED.city,
			year        = EXCLUDED.year,
			amount      = EXCLUDED.amount,
			website     = EXCLUDED.website,
			leadership  = EXCLUDED.leadership,
			source_link = EXCLUDED.source_link,
			address     = EXCLUDED.address,
			contact     = EXCLUDED.contact,
			raw_attrs   = EXCLUDED.raw_attrs,
			updated_at  = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Sector, s.City, s.Year, s.Amount, s.Website,
		s.Leadership, s.SourceLink, s.Address, s.Contact, s.RawAttrs,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert startup: %w", err)
	}
	return nil
}

// DeleteAll clears the startup master (replace mode). Ratings and shortlists
// cascade with it.
func (r *StartupRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM startups`); err != nil {
		return fmt.Errorf("delete startups: %w", err)
	}
	return nil
}

// GetByID fetches one startup; nil when absent.
func (r *StartupRepo) GetByID(ctx context.Context, id string) (*entity.Startup, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetByName fetches one startup by its unique name; nil when absent.
func (r *StartupRepo) GetByName(ctx context.Context, name string) (*entity.Startup, error) {
	return r.getOne(ctx, `WHERE name = $1`, name)
}

func (r *StartupRepo) getOne(ctx context.Context, where string, arg any) (*entity.Startup, error) {
	query := `SELECT ` + startupColumns + ` FROM startups ` + where
	row := r.db.QueryRow(ctx, query, arg)
	s, err := scanStartup(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get startup: %w", err)
	}
	return s, nil
}

// List returns a filtered page of startups ordered by name.
func (r *StartupRepo) List(ctx context.Context, f repository.StartupFilter) ([]*entity.Startup, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if f.Query != "" {
		conds = append(conds, `name ILIKE `+arg("%"+f.Query+"%"))
	}
	if f.Sector != "" {
		conds = append(conds, `sector = `+arg(f.Sector))
	}
	if f.City != "" {
		conds = append(conds, `city = `+arg(f.City))
	}
	if f.Year != 0 {
		conds = append(conds, `year = `+arg(f.Year))
	}

	query := `SELECT ` + startupColumns + ` FROM startups`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY name ASC`
	if f.Limit > 0 {
		query += ` LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset)
	}

	return r.queryMany(ctx, query, args...)
}

// ListAll returns the whole master ordered by name (export path).
func (r *StartupRepo) ListAll(ctx context.Context) ([]*entity.Startup, error) {
	return r.queryMany(ctx, `SELECT `+startupColumns+` FROM startups ORDER BY name ASC`)
}

func (r *StartupRepo) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Startup, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list startups: %w", err)
	}
	defer rows.Close()
	var list []*entity.Startup
	for rows.Next() {
		s, err := scanStartup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan startup: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ExistingNames returns which of the given names already exist in the master.
func (r *StartupRepo) ExistingNames(ctx context.Context, names []string) (map[string]bool, error) {
	if len(names) == 0 {
		return map[string]bool{}, nil
	}
	rows, err := r.db.Query(ctx, `SELECT name FROM startups WHERE name = ANY($1)`, names)
	if err != nil {
		return nil, fmt.Errorf("existing names: %w", err)
	}
	defer rows.Close()
	out := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		out[name] = true
	}
	return out, rows.Err()
}

// Count returns the number of startups.
func (r *StartupRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM startups`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count startups: %w", err)
	}
	return n, nil
}

func scanStartup(row pgx.Row) (*entity.Startup, error) {
	var s entity.Startup
	err := row.Scan(
		&s.ID, &s.Name, &s.Sector, &s.City, &s.Year, &s.Amount, &s.Website,
		&s.Leadership, &s.SourceLink, &s.Address, &s.Contact, &s.RawAttrs,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

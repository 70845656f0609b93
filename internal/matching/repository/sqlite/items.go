package sqlite

import (
	"context"
	"database/sql"

	repo "campus-lostfound/internal/matching/repository"
	"campus-lostfound/internal/model"
)

const itemColumns = `id, user_id, type, name, description, category, location, contact, date_occurred, status, created_at, updated_at`

// GetItemByID resolves an item for discovery or joining.
// Returns zero-value Item (ID == "") when not found.
func (r *implRepository) GetItemByID(ctx context.Context, id string) (model.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = ? LIMIT 1`

	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItemByID"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListCandidates returns active items of the given type passing the coarse
// pre-filter: same category, or the candidate's location containing the given
// location (case-insensitive). Newest first.
func (r *implRepository) ListCandidates(ctx context.Context, opt repo.CandidateOptions) ([]model.Item, error) {
	const query = `
		SELECT ` + itemColumns + ` FROM items
		WHERE type = ?
		  AND status = 'active'
		  AND (category = ? OR instr(lower(location), lower(?)) > 0)
		ORDER BY created_at DESC`

	items, err := r.queryItems(ctx, query, opt.Type, opt.Category, opt.Location)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCandidates"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// ListAllItems returns the full item collection for read-side joins.
func (r *implRepository) ListAllItems(ctx context.Context) ([]model.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM items`

	items, err := r.queryItems(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListAllItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (model.Item, error) {
	var it model.Item
	err := row.Scan(
		&it.ID, &it.UserID, &it.Type, &it.Name, &it.Description, &it.Category,
		&it.Location, &it.Contact, &it.DateOccurred, &it.Status, &it.CreatedAt, &it.UpdatedAt,
	)
	return it, err
}

func (r *implRepository) queryItems(ctx context.Context, query string, args ...any) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

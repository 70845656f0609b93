package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	repo "campus-lostfound/internal/item/repository"
	"campus-lostfound/internal/model"
)

const itemColumns = `id, user_id, type, name, description, category, location, contact, date_occurred, status, created_at, updated_at`

// CreateItem inserts a new Item row and returns the created entity.
// IDs are UUIDs assigned here so callers only ever see opaque tokens.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	now := time.Now().UTC()
	it := model.Item{
		ID:           uuid.NewString(),
		UserID:       opt.UserID,
		Type:         opt.Type,
		Name:         opt.Name,
		Description:  opt.Description,
		Category:     opt.Category,
		Location:     opt.Location,
		Contact:      opt.Contact,
		DateOccurred: opt.DateOccurred,
		Status:       model.ItemStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	const query = `
		INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		it.ID, it.UserID, it.Type, it.Name, it.Description, it.Category,
		it.Location, it.Contact, it.DateOccurred, it.Status, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// GetOneItem retrieves a single Item by the provided filters.
// Returns zero-value Item (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id = ? LIMIT 1`, itemColumns)

	it, err := r.scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Item{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// ListItems returns Items matching the filters plus the total matching count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, int, error) {
	where, args := buildListWhere(opt)

	countQuery := "SELECT COUNT(*) FROM items WHERE " + where
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(`SELECT %s FROM items WHERE %s ORDER BY %s`, itemColumns, where, orderBy(opt))
	if opt.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opt.Limit)
	}

	items, err := r.queryItems(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// SearchItems returns items whose name, description, category or location
// contains the term (case-insensitive), newest first.
func (r *implRepository) SearchItems(ctx context.Context, term string) ([]model.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM items
		WHERE instr(lower(name), lower(?)) > 0
		   OR instr(lower(description), lower(?)) > 0
		   OR instr(lower(category), lower(?)) > 0
		   OR instr(lower(location), lower(?)) > 0
		ORDER BY created_at DESC`, itemColumns)

	items, err := r.queryItems(ctx, query, term, term, term, term)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem updates an Item by ID and returns the updated entity.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	const query = `
		UPDATE items
		SET name = ?, description = ?, category = ?, location = ?, contact = ?, status = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query,
		opt.Name, opt.Description, opt.Category, opt.Location, opt.Contact,
		opt.Status, time.Now().UTC(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Item{}, nil
	}
	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: opt.ID})
}

// DeleteItem removes an Item by ID. Matches referencing the item are left in
// place; read-side joins surface the missing item as absent.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanItem(row rowScanner) (model.Item, error) {
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
		it, err := r.scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

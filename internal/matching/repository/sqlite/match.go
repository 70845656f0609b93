package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "campus-lostfound/internal/matching/repository"
	"campus-lostfound/internal/model"
)

const matchColumns = `id, lost_item_id, found_item_id, match_score, status, created_at`

// CreateMatch inserts a pending match. The unique pair index turns a lost
// insert race into ErrDuplicatePair instead of a second record.
func (r *implRepository) CreateMatch(ctx context.Context, opt repo.CreateMatchOptions) (model.Match, error) {
	m := model.Match{
		ID:          uuid.NewString(),
		LostItemID:  opt.LostItemID,
		FoundItemID: opt.FoundItemID,
		MatchScore:  opt.MatchScore,
		Status:      model.MatchStatusPending,
		CreatedAt:   time.Now().UTC(),
	}

	const query = `
		INSERT INTO matches (` + matchColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.LostItemID, m.FoundItemID, m.MatchScore, m.Status, m.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.Match{}, repo.ErrDuplicatePair
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMatch"), err)
		return model.Match{}, repo.ErrFailedToInsert
	}
	return m, nil
}

// GetOneMatch retrieves a single Match by ID.
// Returns zero-value Match (ID == "") when not found — no error for not-found.
func (r *implRepository) GetOneMatch(ctx context.Context, opt repo.GetOneMatchOptions) (model.Match, error) {
	const query = `SELECT ` + matchColumns + ` FROM matches WHERE id = ? LIMIT 1`

	var m model.Match
	err := r.db.QueryRowContext(ctx, query, opt.ID).Scan(
		&m.ID, &m.LostItemID, &m.FoundItemID, &m.MatchScore, &m.Status, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Match{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneMatch"), err)
		return model.Match{}, repo.ErrFailedToGet
	}
	return m, nil
}

// MatchExists reports whether the exact (lost, found) pair is already recorded.
func (r *implRepository) MatchExists(ctx context.Context, lostItemID, foundItemID string) (bool, error) {
	const query = `SELECT COUNT(*) FROM matches WHERE lost_item_id = ? AND found_item_id = ?`

	var n int
	if err := r.db.QueryRowContext(ctx, query, lostItemID, foundItemID).Scan(&n); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MatchExists"), err)
		return false, repo.ErrFailedToGet
	}
	return n > 0, nil
}

// ListMatches returns matches ordered by score descending, then creation time
// ascending so equal scores list oldest first.
func (r *implRepository) ListMatches(ctx context.Context, opt repo.ListMatchesOptions) ([]model.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches`
	var args []any
	if opt.ItemID != "" {
		query += ` WHERE lost_item_id = ? OR found_item_id = ?`
		args = append(args, opt.ItemID, opt.ItemID)
	}
	query += ` ORDER BY match_score DESC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMatches"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.LostItemID, &m.FoundItemID, &m.MatchScore, &m.Status, &m.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMatches"), err)
			return nil, repo.ErrFailedToList
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// UpdateMatchStatus sets the review status of a match.
func (r *implRepository) UpdateMatchStatus(ctx context.Context, id string, status model.MatchStatus) error {
	const query = `UPDATE matches SET status = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, status, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateMatchStatus"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteMatch removes a match record by ID.
func (r *implRepository) DeleteMatch(ctx context.Context, id string) error {
	const query = `DELETE FROM matches WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMatch"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

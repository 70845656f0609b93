package sqlite

import (
	"strings"

	repo "campus-lostfound/internal/item/repository"
)

// buildListWhere builds the WHERE clause + args for ListItems.
// All non-empty fields are applied as AND conditions.
func buildListWhere(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, opt.Type)
	}
	if opt.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, opt.Category)
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, opt.Status)
	}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func orderBy(opt repo.ListItemsOptions) string {
	if opt.OrderBy != "" {
		return opt.OrderBy
	}
	return "created_at DESC"
}

package sqlite

import (
	"context"
	"fmt"

	"github.com/Vamsi7889/Ice-cream/internal/models"
	"github.com/Vamsi7889/Ice-cream/internal/storage"
)

// AddToCart inserts a cart entry if the flavor exists. The existence check
// and the insert are one statement, so it takes the write lock up front and
// concurrent callers wait on busy_timeout instead of failing.
func (s *SQLiteStore) AddToCart(ctx context.Context, flavorID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO cart (flavor_id) SELECT id FROM flavors WHERE id = ?",
		flavorID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cart entry: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return 0, storage.ErrNotFound
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read cart entry id: %w", err)
	}
	return id, nil
}

// ListCart returns one flavor per cart entry, in the order entries were added.
func (s *SQLiteStore) ListCart(ctx context.Context) ([]models.Flavor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT flavors.id, flavors.name, flavors.ingredients, flavors.allergens
		FROM cart
		JOIN flavors ON flavors.id = cart.flavor_id
		ORDER BY cart.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	defer rows.Close()

	return scanFlavors(rows)
}

// RemoveFromCart deletes every cart entry for flavorID.
func (s *SQLiteStore) RemoveFromCart(ctx context.Context, flavorID int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM cart WHERE flavor_id = ?", flavorID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cart entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

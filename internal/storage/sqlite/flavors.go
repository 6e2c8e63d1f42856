package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Vamsi7889/Ice-cream/internal/models"
	"github.com/Vamsi7889/Ice-cream/internal/storage"
)

// CreateFlavor inserts a new flavor and sets flavor.ID.
func (s *SQLiteStore) CreateFlavor(ctx context.Context, flavor *models.Flavor) error {
	var allergens interface{} = nil
	if flavor.Allergens != nil {
		allergens = *flavor.Allergens
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO flavors (name, ingredients, allergens) VALUES (?, ?, ?)",
		flavor.Name, flavor.Ingredients, allergens,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert flavor: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read flavor id: %w", err)
	}
	flavor.ID = id

	return nil
}

// ListFlavors returns all flavors, or those whose name contains query
// (case-insensitive, matched literally), in insertion order. Only the empty
// query lists all; whitespace is matched like any other text.
func (s *SQLiteStore) ListFlavors(ctx context.Context, query string) ([]models.Flavor, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if query == "" {
		rows, err = s.db.QueryContext(ctx,
			"SELECT id, name, ingredients, allergens FROM flavors ORDER BY id",
		)
	} else {
		rows, err = s.db.QueryContext(ctx,
			`SELECT id, name, ingredients, allergens FROM flavors
			 WHERE instr(`+foldCaseFunc+`(name), ?) > 0 ORDER BY id`,
			foldCase(query),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list flavors: %w", err)
	}
	defer rows.Close()

	return scanFlavors(rows)
}

// DeleteFlavor removes a flavor; its cart entries go with it through the
// foreign key cascade. Not exposed over HTTP.
func (s *SQLiteStore) DeleteFlavor(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM flavors WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete flavor: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// scanFlavors reads id, name, ingredients, allergens rows.
func scanFlavors(rows *sql.Rows) ([]models.Flavor, error) {
	flavors := make([]models.Flavor, 0)
	for rows.Next() {
		var (
			f         models.Flavor
			allergens sql.NullString
		)
		if err := rows.Scan(&f.ID, &f.Name, &f.Ingredients, &allergens); err != nil {
			return nil, fmt.Errorf("failed to scan flavor: %w", err)
		}
		if allergens.Valid {
			value := allergens.String
			f.Allergens = &value
		}
		flavors = append(flavors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate flavors: %w", err)
	}
	return flavors, nil
}

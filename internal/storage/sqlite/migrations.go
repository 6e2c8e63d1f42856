package sqlite

import "database/sql"

// schema sets up the database tables. It runs on startup and is idempotent.
// flavors must be created before cart because of the foreign key.
const schema = `
CREATE TABLE IF NOT EXISTS flavors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    ingredients TEXT NOT NULL,
    allergens TEXT
);

CREATE TABLE IF NOT EXISTS cart (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    flavor_id INTEGER NOT NULL,
    FOREIGN KEY (flavor_id) REFERENCES flavors(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_cart_flavor_id ON cart(flavor_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

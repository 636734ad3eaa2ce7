// Package orders records completed checkouts in a local SQLite database.
// The history is device-local, best effort, and read back only for the
// confirmation screen and the `breza orders` listing.
package orders

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"breza/internal/cart"
)

// Checkout pricing, matching the storefront's order summary.
const (
	ShippingFlat = 9.99
	TaxRate      = 0.08
)

// Totals is the checkout price breakdown.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Summarize derives the checkout totals from a cart subtotal.
func Summarize(subtotal float64) Totals {
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Shipping: ShippingFlat,
		Tax:      tax,
		Total:    subtotal + ShippingFlat + tax,
	}
}

// Line is one ordered item, snapshotted at purchase time so later catalog
// changes cannot rewrite history.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Color     string  `json:"color,omitempty"`
	Size      string  `json:"size,omitempty"`
}

// Order is a completed checkout.
type Order struct {
	ID       string    `json:"id"`
	Customer string    `json:"customer"` // shipping full name
	Lines    []Line    `json:"lines"`
	Totals   Totals    `json:"totals"`
	PlacedAt time.Time `json:"placed_at"`
}

// FromCart builds an order from the current cart state and shipping name.
// The order id is assigned here; PlacedAt is set when the order is stored.
func FromCart(state cart.State, customer string) Order {
	lines := make([]Line, 0, len(state.Items))
	for _, li := range state.Items {
		lines = append(lines, Line{
			ProductID: li.Product.ID,
			Name:      li.Product.Name,
			Price:     li.Product.Price,
			Quantity:  li.Quantity,
			Color:     li.Color,
			Size:      li.Size,
		})
	}
	return Order{
		ID:       uuid.NewString(),
		Customer: customer,
		Lines:    lines,
		Totals:   Summarize(state.Total),
	}
}

// Store persists orders in SQLite.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	dbPath string
}

// NewStore opens (creating if needed) the order database at the given path.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, dbPath: path}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// initialize creates the required tables.
func (s *Store) initialize() error {
	ddl := `
	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer TEXT NOT NULL,
		lines_json TEXT NOT NULL,
		subtotal REAL NOT NULL,
		shipping REAL NOT NULL,
		tax REAL NOT NULL,
		total REAL NOT NULL,
		placed_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_orders_placed_at ON orders(placed_at);
	`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create orders table: %w", err)
	}
	return nil
}

// Place stores a completed order. The caller clears the cart only after
// Place returns nil, so a storage failure never loses the cart.
func (s *Store) Place(o Order) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.PlacedAt.IsZero() {
		o.PlacedAt = time.Now().UTC()
	}
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return Order{}, fmt.Errorf("failed to encode order lines: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO orders (id, customer, lines_json, subtotal, shipping, tax, total, placed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.Customer, string(lines),
		o.Totals.Subtotal, o.Totals.Shipping, o.Totals.Tax, o.Totals.Total,
		o.PlacedAt,
	)
	if err != nil {
		return Order{}, fmt.Errorf("failed to store order: %w", err)
	}
	return o, nil
}

// Recent returns up to limit orders, newest first.
func (s *Store) Recent(limit int) ([]Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, customer, lines_json, subtotal, shipping, tax, total, placed_at
		 FROM orders ORDER BY placed_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var lines string
		if err := rows.Scan(&o.ID, &o.Customer, &lines,
			&o.Totals.Subtotal, &o.Totals.Shipping, &o.Totals.Tax, &o.Totals.Total,
			&o.PlacedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal([]byte(lines), &o.Lines); err != nil {
			return nil, fmt.Errorf("failed to decode order lines: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

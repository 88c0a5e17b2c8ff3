package sdgdb

import (
	"database/sql"
	"fmt"
	"time"
)

// Client is the main entry point for the indicator row store.
type Client struct {
	config        Config
	DB            *sql.DB
	Queries       *Queries
	importRuntime time.Duration
}

// NewClient opens the database, applies the schema, and returns a ready
// client.
func NewClient(config Config) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create database: %w", err)
	}

	return &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRuntime reports how long the last Import call took.
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}

// TableCounts returns the number of rows in each indicator table.
func (c *Client) TableCounts() (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, table := range []string{"undernourishment", "production", "food_security", "nutrition"} {
		var n int64
		if err := c.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s rows: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

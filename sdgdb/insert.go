package sdgdb

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// Import replaces the stored indicator rows with the given families. The
// whole swap runs in a single transaction so readers never observe a
// half-imported dataset, and rows absent from the new data do not linger.
func (c *Client) Import(ctx context.Context,
	undernourishment []UndernourishmentRow,
	production []ProductionRow,
	security []SecurityRow,
	nutrition []NutritionRow,
) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)

		if c.config.verbose {
			log.Println("Importing indicator data took", c.importRuntime.String())
		}
	}()

	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting import transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	qtx := c.Queries.WithTx(tx)
	if err := qtx.DeleteAllIndicators(ctx); err != nil {
		return fmt.Errorf("error clearing indicator tables: %w", err)
	}

	if err := insertUndernourishment(ctx, tx, undernourishment); err != nil {
		return fmt.Errorf("error importing undernourishment rows: %w", err)
	}
	if err := insertProduction(ctx, tx, production); err != nil {
		return fmt.Errorf("error importing production rows: %w", err)
	}
	if err := insertSecurity(ctx, tx, security); err != nil {
		return fmt.Errorf("error importing food security rows: %w", err)
	}
	if err := insertNutrition(ctx, tx, nutrition); err != nil {
		return fmt.Errorf("error importing nutrition rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing import transaction: %w", err)
	}

	return nil
}

func insertUndernourishment(ctx context.Context, tx *sql.Tx, rows []UndernourishmentRow) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO undernourishment (region, year, rate)
		VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Region, row.Year, row.Rate); err != nil {
			return fmt.Errorf("error inserting undernourishment row: %w", err)
		}
	}

	return nil
}

func insertProduction(ctx context.Context, tx *sql.Tx, rows []ProductionRow) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO production (crop, year, tonnes)
		VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Crop, row.Year, row.Tonnes); err != nil {
			return fmt.Errorf("error inserting production row: %w", err)
		}
	}

	return nil
}

func insertSecurity(ctx context.Context, tx *sql.Tx, rows []SecurityRow) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO food_security (country, region, year, level, population_affected)
		VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Country, row.Region, row.Year, row.Level, row.PopulationAffected); err != nil {
			return fmt.Errorf("error inserting food security row: %w", err)
		}
	}

	return nil
}

func insertNutrition(ctx context.Context, tx *sql.Tx, rows []NutritionRow) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO nutrition (region, indicator, year, rate)
		VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row.Region, row.Indicator, row.Year, row.Rate); err != nil {
			return fmt.Errorf("error inserting nutrition row: %w", err)
		}
	}

	return nil
}

package sdgdb

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so the same query methods
// run inside and outside transactions.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries bundles the SQL for reading and clearing the indicator tables.
type Queries struct {
	db DBTX
}

// WithTx returns a copy of Queries bound to the given transaction.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

var deleteAllStatements = []string{
	`DELETE FROM undernourishment;`,
	`DELETE FROM production;`,
	`DELETE FROM food_security;`,
	`DELETE FROM nutrition;`,
}

// DeleteAllIndicators empties every indicator table. Callers are expected to
// run it inside the import transaction via WithTx.
func (q *Queries) DeleteAllIndicators(ctx context.Context) error {
	for _, stmt := range deleteAllStatements {
		if _, err := q.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

const listUndernourishment = `
SELECT region, year, rate
FROM undernourishment
WHERE (? = '' OR region = ?)
  AND (? = 0 OR year >= ?)
  AND (? = 0 OR year <= ?)
ORDER BY region, year
LIMIT ?;
`

// ListUndernourishmentParams filters the undernourishment listing. Zero
// values leave a filter unset; Limit <= 0 returns all matching rows.
type ListUndernourishmentParams struct {
	Region   string
	FromYear int64
	ToYear   int64
	Limit    int64
}

func (q *Queries) ListUndernourishment(ctx context.Context, arg ListUndernourishmentParams) ([]UndernourishmentRow, error) {
	rows, err := q.db.QueryContext(ctx, listUndernourishment,
		arg.Region, arg.Region,
		arg.FromYear, arg.FromYear,
		arg.ToYear, arg.ToYear,
		normalizeLimit(arg.Limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var items []UndernourishmentRow
	for rows.Next() {
		var i UndernourishmentRow
		if err := rows.Scan(&i.Region, &i.Year, &i.Rate); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listProduction = `
SELECT crop, year, tonnes
FROM production
WHERE (? = '' OR crop = ?)
  AND (? = 0 OR year >= ?)
  AND (? = 0 OR year <= ?)
ORDER BY crop, year
LIMIT ?;
`

// ListProductionParams filters the production listing. Zero values leave a
// filter unset; Limit <= 0 returns all matching rows.
type ListProductionParams struct {
	Crop     string
	FromYear int64
	ToYear   int64
	Limit    int64
}

func (q *Queries) ListProduction(ctx context.Context, arg ListProductionParams) ([]ProductionRow, error) {
	rows, err := q.db.QueryContext(ctx, listProduction,
		arg.Crop, arg.Crop,
		arg.FromYear, arg.FromYear,
		arg.ToYear, arg.ToYear,
		normalizeLimit(arg.Limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var items []ProductionRow
	for rows.Next() {
		var i ProductionRow
		if err := rows.Scan(&i.Crop, &i.Year, &i.Tonnes); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listSecurity = `
SELECT country, region, year, level, population_affected
FROM food_security
WHERE (? = '' OR country = ?)
  AND (? = '' OR region = ?)
  AND (? = 0 OR year >= ?)
  AND (? = 0 OR year <= ?)
ORDER BY country, year
LIMIT ?;
`

// ListSecurityParams filters the food security listing. Zero values leave a
// filter unset; Limit <= 0 returns all matching rows.
type ListSecurityParams struct {
	Country  string
	Region   string
	FromYear int64
	ToYear   int64
	Limit    int64
}

func (q *Queries) ListSecurity(ctx context.Context, arg ListSecurityParams) ([]SecurityRow, error) {
	rows, err := q.db.QueryContext(ctx, listSecurity,
		arg.Country, arg.Country,
		arg.Region, arg.Region,
		arg.FromYear, arg.FromYear,
		arg.ToYear, arg.ToYear,
		normalizeLimit(arg.Limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanSecurityRows(rows)
}

const listNutrition = `
SELECT region, indicator, year, rate
FROM nutrition
WHERE (? = '' OR region = ?)
  AND (? = '' OR indicator = ?)
  AND (? = 0 OR year >= ?)
  AND (? = 0 OR year <= ?)
ORDER BY region, indicator, year
LIMIT ?;
`

// ListNutritionParams filters the nutrition listing. Zero values leave a
// filter unset; Limit <= 0 returns all matching rows.
type ListNutritionParams struct {
	Region    string
	Indicator string
	FromYear  int64
	ToYear    int64
	Limit     int64
}

func (q *Queries) ListNutrition(ctx context.Context, arg ListNutritionParams) ([]NutritionRow, error) {
	rows, err := q.db.QueryContext(ctx, listNutrition,
		arg.Region, arg.Region,
		arg.Indicator, arg.Indicator,
		arg.FromYear, arg.FromYear,
		arg.ToYear, arg.ToYear,
		normalizeLimit(arg.Limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var items []NutritionRow
	for rows.Next() {
		var i NutritionRow
		if err := rows.Scan(&i.Region, &i.Indicator, &i.Year, &i.Rate); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const listCrisisCountries = `
SELECT country, region, year, level, population_affected
FROM food_security
WHERE year = ? AND level >= ?
ORDER BY level DESC, population_affected DESC;
`

// ListCrisisCountriesParams selects assessments at or above MinLevel for a
// single year, worst first.
type ListCrisisCountriesParams struct {
	Year     int64
	MinLevel float64
}

func (q *Queries) ListCrisisCountries(ctx context.Context, arg ListCrisisCountriesParams) ([]SecurityRow, error) {
	rows, err := q.db.QueryContext(ctx, listCrisisCountries, arg.Year, arg.MinLevel)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanSecurityRows(rows)
}

const getSecurityTrend = `
SELECT country, region, year, level, population_affected
FROM food_security
WHERE country = ?
ORDER BY year;
`

// GetSecurityTrend returns every assessment for one country, oldest first.
func (q *Queries) GetSecurityTrend(ctx context.Context, country string) ([]SecurityRow, error) {
	rows, err := q.db.QueryContext(ctx, getSecurityTrend, country)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	return scanSecurityRows(rows)
}

const listRegions = `
SELECT region FROM undernourishment
UNION
SELECT region FROM nutrition
ORDER BY region;
`

func (q *Queries) ListRegions(ctx context.Context) ([]string, error) {
	return q.listStrings(ctx, listRegions)
}

const listCountries = `
SELECT DISTINCT country FROM food_security ORDER BY country;
`

func (q *Queries) ListCountries(ctx context.Context) ([]string, error) {
	return q.listStrings(ctx, listCountries)
}

const listCrops = `
SELECT DISTINCT crop FROM production ORDER BY crop;
`

func (q *Queries) ListCrops(ctx context.Context) ([]string, error) {
	return q.listStrings(ctx, listCrops)
}

const listIndicators = `
SELECT DISTINCT indicator FROM nutrition ORDER BY indicator;
`

func (q *Queries) ListIndicators(ctx context.Context) ([]string, error) {
	return q.listStrings(ctx, listIndicators)
}

const yearRange = `
SELECT MIN(year), MAX(year) FROM (
	SELECT year FROM undernourishment
	UNION ALL SELECT year FROM production
	UNION ALL SELECT year FROM food_security
	UNION ALL SELECT year FROM nutrition
);
`

// GetYearRange returns the earliest and latest year across every indicator
// table. Both fields are zero when the store is empty.
func (q *Queries) GetYearRange(ctx context.Context) (YearRange, error) {
	var first, last sql.NullInt64
	if err := q.db.QueryRowContext(ctx, yearRange).Scan(&first, &last); err != nil {
		return YearRange{}, err
	}
	return YearRange{First: first.Int64, Last: last.Int64}, nil
}

func (q *Queries) listStrings(ctx context.Context, query string) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var items []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func scanSecurityRows(rows *sql.Rows) ([]SecurityRow, error) {
	var items []SecurityRow
	for rows.Next() {
		var i SecurityRow
		if err := rows.Scan(&i.Country, &i.Region, &i.Year, &i.Level, &i.PopulationAffected); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// normalizeLimit maps "no limit" requests onto SQLite's LIMIT -1.
func normalizeLimit(limit int64) int64 {
	if limit <= 0 {
		return -1
	}
	return limit
}

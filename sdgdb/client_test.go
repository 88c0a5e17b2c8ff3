package sdgdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Terry84/sdg2-dashboard/internal/appconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

func createTestClient(t *testing.T) *Client {
	t.Helper()

	config := Config{
		DBPath:  ":memory:",
		Env:     appconf.Test,
		verbose: false,
	}

	client, err := NewClient(config)
	require.NoError(t, err, "NewClient should succeed")
	t.Cleanup(func() { _ = client.Close() })

	return client
}

// seedTestRows imports a small dataset spanning two regions, three crops,
// three countries, and three nutrition indicators.
func seedTestRows(t *testing.T, client *Client) {
	t.Helper()

	err := client.Import(context.Background(),
		[]UndernourishmentRow{
			{Region: "Sub-Saharan Africa", Year: 2020, Rate: 22.5},
			{Region: "Sub-Saharan Africa", Year: 2021, Rate: 21.9},
			{Region: "Asia", Year: 2020, Rate: 11.2},
			{Region: "Asia", Year: 2021, Rate: 10.8},
		},
		[]ProductionRow{
			{Crop: "Cereals", Year: 2020, Tonnes: 310.0},
			{Crop: "Cereals", Year: 2021, Tonnes: 325.5},
			{Crop: "Fruits", Year: 2020, Tonnes: 150.25},
			{Crop: "Vegetables", Year: 2022, Tonnes: 201.75},
		},
		[]SecurityRow{
			{Country: "Kenya", Region: "Sub-Saharan Africa", Year: 2020, Level: 3.2, PopulationAffected: 12.5},
			{Country: "Kenya", Region: "Sub-Saharan Africa", Year: 2021, Level: 3.4, PopulationAffected: 14.0},
			{Country: "India", Region: "Asia", Year: 2020, Level: 2.1, PopulationAffected: 30.0},
			{Country: "India", Region: "Asia", Year: 2021, Level: 2.0, PopulationAffected: 28.5},
			{Country: "Ethiopia", Region: "Sub-Saharan Africa", Year: 2021, Level: 3.9, PopulationAffected: 22.0},
		},
		[]NutritionRow{
			{Region: "Sub-Saharan Africa", Indicator: "Stunting", Year: 2020, Rate: 33.1},
			{Region: "Sub-Saharan Africa", Indicator: "Wasting", Year: 2020, Rate: 7.4},
			{Region: "Asia", Indicator: "Stunting", Year: 2020, Rate: 24.2},
			{Region: "Latin America", Indicator: "Overweight", Year: 2021, Rate: 12.9},
		},
	)
	require.NoError(t, err, "Import should succeed")
}

func TestNewClientInMemory(t *testing.T) {
	client := createTestClient(t)

	counts, err := client.TableCounts()
	require.NoError(t, err, "TableCounts should succeed on a fresh database")

	assert.Len(t, counts, 4, "Every indicator table should exist")
	for table, count := range counts {
		assert.Equal(t, int64(0), count, "Table %s should start empty", table)
	}
}

func TestNewClientRejectsFileInTestEnv(t *testing.T) {
	config := Config{
		DBPath: filepath.Join(t.TempDir(), "indicators.db"),
		Env:    appconf.Test,
	}

	client, err := NewClient(config)
	require.Error(t, err, "Test environment must refuse file-backed databases")
	assert.Nil(t, client, "No client should be returned on failure")
}

func TestNewClientFileDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "data", "indicators.db")
	config := Config{
		DBPath: dbPath,
		Env:    appconf.Development,
	}

	client, err := NewClient(config)
	require.NoError(t, err, "NewClient should create the database file and its directory")
	defer func() { _ = client.Close() }()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "Database file should exist on disk")
}

func TestSingleConnection(t *testing.T) {
	client := createTestClient(t)

	stats := client.DB.Stats()
	assert.Equal(t, 1, stats.MaxOpenConnections, "In-memory databases need a single shared connection")
}

func TestImportAndTableCounts(t *testing.T) {
	client := createTestClient(t)
	seedTestRows(t, client)

	counts, err := client.TableCounts()
	require.NoError(t, err, "TableCounts should succeed")

	assert.Equal(t, int64(4), counts["undernourishment"], "Undernourishment row count should match")
	assert.Equal(t, int64(4), counts["production"], "Production row count should match")
	assert.Equal(t, int64(5), counts["food_security"], "Food security row count should match")
	assert.Equal(t, int64(4), counts["nutrition"], "Nutrition row count should match")
}

func TestImportReplacesPreviousData(t *testing.T) {
	client := createTestClient(t)
	seedTestRows(t, client)

	// A second import must not leave rows from the first one behind.
	err := client.Import(context.Background(),
		[]UndernourishmentRow{
			{Region: "Oceania", Year: 2023, Rate: 3.5},
		},
		nil, nil, nil,
	)
	require.NoError(t, err, "Second import should succeed")

	counts, err := client.TableCounts()
	require.NoError(t, err, "TableCounts should succeed")

	assert.Equal(t, int64(1), counts["undernourishment"], "Only the new undernourishment row should remain")
	assert.Equal(t, int64(0), counts["production"], "Stale production rows should be gone")
	assert.Equal(t, int64(0), counts["food_security"], "Stale food security rows should be gone")
	assert.Equal(t, int64(0), counts["nutrition"], "Stale nutrition rows should be gone")

	rows, err := client.Queries.ListUndernourishment(context.Background(), ListUndernourishmentParams{})
	require.NoError(t, err, "Listing should succeed after re-import")
	require.Len(t, rows, 1, "Exactly one row should survive the re-import")
	assert.Equal(t, "Oceania", rows[0].Region, "The surviving row should come from the second import")
}

func TestImportDeduplicatesKeys(t *testing.T) {
	client := createTestClient(t)

	// Duplicate (region, year) keys in one batch: the last row wins.
	err := client.Import(context.Background(),
		[]UndernourishmentRow{
			{Region: "Asia", Year: 2020, Rate: 11.2},
			{Region: "Asia", Year: 2020, Rate: 11.9},
		},
		nil, nil, nil,
	)
	require.NoError(t, err, "Import with duplicate keys should succeed")

	rows, err := client.Queries.ListUndernourishment(context.Background(), ListUndernourishmentParams{})
	require.NoError(t, err, "Listing should succeed")
	require.Len(t, rows, 1, "Duplicate keys should collapse to one row")
	assert.InDelta(t, 11.9, rows[0].Rate, 0.0001, "The last duplicate should win")
}

func TestImportRuntimeTracked(t *testing.T) {
	client := createTestClient(t)

	assert.Zero(t, client.ImportRuntime(), "Runtime should be zero before any import")

	seedTestRows(t, client)
	assert.Greater(t, client.ImportRuntime().Nanoseconds(), int64(0), "Runtime should be recorded after an import")
}

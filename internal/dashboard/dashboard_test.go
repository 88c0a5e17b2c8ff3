package dashboard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/appconf"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
	"github.com/stretchr/testify/require"
)

// newTestManager loads the deterministic sample dataset backed by an
// in-memory store.
func newTestManager(t *testing.T) *sdg.Manager {
	t.Helper()

	manager, err := sdg.InitManager(sdg.Config{
		SampleSeed: 42,
		DBPath:     ":memory:",
		Env:        appconf.Test,
	})
	require.NoError(t, err, "InitManager should succeed")
	t.Cleanup(manager.Shutdown)

	return manager
}

// newFixtureManager loads a small hand-written dataset with known values for
// tests that assert exact numbers.
func newFixtureManager(t *testing.T) *sdg.Manager {
	t.Helper()

	files := map[string]string{
		"undernourishment.csv": "region,year,rate\n" +
			"Sub-Saharan Africa,2015,25.0\n" +
			"Sub-Saharan Africa,2020,22.0\n" +
			"Sub-Saharan Africa,2023,19.0\n" +
			"Asia,2015,12.0\n" +
			"Asia,2020,10.0\n" +
			"Asia,2023,9.0\n" +
			"Europe,2015,3.0\n" +
			"Europe,2020,2.5\n" +
			"Europe,2023,2.0\n",
		"production.csv": "crop,year,tonnes\n" +
			"Cereals,2015,400.0\n" +
			"Cereals,2023,480.0\n" +
			"Fruits,2015,100.0\n" +
			"Fruits,2023,90.0\n",
		"food_security.csv": "country,region,year,level,population_affected\n" +
			"Kenya,Sub-Saharan Africa,2015,3.0,12.0\n" +
			"Kenya,Sub-Saharan Africa,2023,3.5,15.0\n" +
			"India,Asia,2015,2.5,30.0\n" +
			"India,Asia,2023,2.0,25.0\n",
		"nutrition.csv": "region,indicator,year,rate\n" +
			"Sub-Saharan Africa,Stunting,2015,35.0\n" +
			"Sub-Saharan Africa,Stunting,2023,30.0\n" +
			"Sub-Saharan Africa,Wasting,2015,8.0\n" +
			"Sub-Saharan Africa,Wasting,2023,7.0\n" +
			"Sub-Saharan Africa,Overweight,2015,5.0\n" +
			"Sub-Saharan Africa,Overweight,2023,6.0\n" +
			"Asia,Stunting,2015,25.0\n" +
			"Asia,Stunting,2023,22.0\n" +
			"Asia,Wasting,2015,12.0\n" +
			"Asia,Wasting,2023,11.0\n" +
			"Asia,Overweight,2015,8.0\n" +
			"Asia,Overweight,2023,9.0\n" +
			"Europe,Stunting,2015,3.0\n" +
			"Europe,Stunting,2023,2.5\n" +
			"Europe,Wasting,2015,1.0\n" +
			"Europe,Wasting,2023,0.8\n" +
			"Europe,Overweight,2015,13.0\n" +
			"Europe,Overweight,2023,14.0\n",
	}

	dir := t.TempDir()
	for name, body := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644)
		require.NoError(t, err, "Writing fixture %s should succeed", name)
	}

	manager, err := sdg.InitManager(sdg.Config{
		Source: dir,
		DBPath: ":memory:",
		Env:    appconf.Test,
	})
	require.NoError(t, err, "InitManager should succeed")
	t.Cleanup(manager.Shutdown)

	return manager
}

func seriesNames(config analytics.ChartConfig) []string {
	names := make([]string, 0, len(config.Series))
	for _, s := range config.Series {
		names = append(names, s.Name)
	}
	return names
}

func pointLabels(series analytics.ChartSeries) []string {
	labels := make([]string, 0, len(series.Data))
	for _, p := range series.Data {
		labels = append(labels, p.Label)
	}
	return labels
}

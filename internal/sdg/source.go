package sdg

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Terry84/sdg2-dashboard/sdgdb"
)

func isRemoteSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// loadDataset resolves the configured source. An empty source yields
// generated sample data, http(s) URLs and .zip paths are CSV bundles, and
// anything else is read as a directory of CSV files. The int reports how
// many malformed rows were skipped.
func loadDataset(config Config) (*Dataset, int, error) {
	source := config.Source

	if source == "" {
		return GenerateSample(config.SampleSeed), 0, nil
	}

	if isRemoteSource(source) {
		b, err := downloadData(source)
		if err != nil {
			return nil, 0, err
		}
		return LoadZip(b)
	}

	if strings.HasSuffix(source, ".zip") {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, 0, fmt.Errorf("error reading indicator bundle: %w", err)
		}
		return LoadZip(b)
	}

	return LoadDir(source)
}

func downloadData(source string) ([]byte, error) {
	resp, err := http.Get(source)
	if err != nil {
		return nil, fmt.Errorf("error downloading indicator data: %w", err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading indicator data: unexpected status %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading indicator data: %w", err)
	}
	return b, nil
}

func buildStore(config Config) (*sdgdb.Client, error) {
	dbConfig := sdgdb.NewConfig(config.DBPath, config.Env, config.Verbose)
	client, err := sdgdb.NewClient(dbConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create indicator database client: %w", err)
	}
	return client, nil
}

// importToStore mirrors the in-memory dataset into the row store.
func (manager *Manager) importToStore(ctx context.Context, dataset *Dataset) error {
	undernourishment := make([]sdgdb.UndernourishmentRow, 0, len(dataset.Undernourishment))
	for _, r := range dataset.Undernourishment {
		undernourishment = append(undernourishment, sdgdb.UndernourishmentRow{
			Region: r.Region,
			Year:   int64(r.Year),
			Rate:   r.Rate,
		})
	}

	production := make([]sdgdb.ProductionRow, 0, len(dataset.Production))
	for _, p := range dataset.Production {
		production = append(production, sdgdb.ProductionRow{
			Crop:   p.Crop,
			Year:   int64(p.Year),
			Tonnes: p.Tonnes,
		})
	}

	security := make([]sdgdb.SecurityRow, 0, len(dataset.Security))
	for _, s := range dataset.Security {
		security = append(security, sdgdb.SecurityRow{
			Country:            s.Country,
			Region:             s.Region,
			Year:               int64(s.Year),
			Level:              s.Level,
			PopulationAffected: s.PopulationAffected,
		})
	}

	nutrition := make([]sdgdb.NutritionRow, 0, len(dataset.Nutrition))
	for _, n := range dataset.Nutrition {
		nutrition = append(nutrition, sdgdb.NutritionRow{
			Region:    n.Region,
			Indicator: n.Indicator,
			Year:      int64(n.Year),
			Rate:      n.Rate,
		})
	}

	return manager.Store.Import(ctx, undernourishment, production, security, nutrition)
}

// refreshData reloads remote sources on a regular schedule. Local sources
// never change underneath us, so they are loaded once at startup.
func (manager *Manager) refreshData() { // nolint
	defer manager.wg.Done()

	if !manager.isRemote {
		log.Printf("Indicator source is local, skipping periodic refresh")
		return
	}

	// Refresh every 24 hours
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for { // nolint
		select {
		case <-ticker.C:
			dataset, skipped, err := loadDataset(manager.config)
			if err != nil {
				// Log the error but keep serving the previous dataset.
				log.Printf("Error refreshing indicator data: %v", err)
				continue
			}
			if dataset.IsEmpty() {
				log.Printf("Refusing to swap in an empty dataset from %s", manager.config.Source)
				continue
			}
			if skipped > 0 {
				log.Printf("Skipped %d malformed indicator rows while refreshing", skipped)
			}

			manager.setDataset(dataset)

			if err := manager.importToStore(context.Background(), dataset); err != nil {
				log.Printf("Error re-importing indicator data: %v", err)
			}
		case <-manager.shutdownChan:
			log.Println("Shutting down indicator data refresh")
			return
		}
	}
}

// setDataset swaps in a dataset along with every lookup derived from it.
func (manager *Manager) setDataset(dataset *Dataset) {
	frames := frameSet{
		undernourishment: dataset.UndernourishmentFrame(),
		production:       dataset.ProductionFrame(),
		security:         dataset.SecurityFrame(),
		nutrition:        dataset.NutritionFrame(),
	}

	regions := unionStrings(
		frames.undernourishment.DimValues(DimRegion),
		frames.nutrition.DimValues(DimRegion),
		frames.security.DimValues(DimRegion),
	)
	countries := frames.security.DimValues(DimCountry)
	crops := frames.production.DimValues(DimCrop)
	indicators := frames.nutrition.DimValues(DimIndicator)
	years := unionYears(frames.undernourishment, frames.production, frames.security, frames.nutrition)

	countryRegions := make(map[string]string, len(countries))
	for _, assessment := range dataset.Security {
		countryRegions[assessment.Country] = assessment.Region
	}

	manager.dataMutex.Lock()
	manager.dataset = dataset
	manager.frames = frames
	manager.regions = regions
	manager.countries = countries
	manager.crops = crops
	manager.indicators = indicators
	manager.years = years
	manager.countryRegions = countryRegions
	manager.lastUpdated = time.Now()
	manager.dataMutex.Unlock()

	if manager.config.Verbose {
		log.Printf("Indicator data updated successfully for %v", manager.config.describeSource())
	}
}

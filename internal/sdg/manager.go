package sdg

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/appconf"
	"github.com/Terry84/sdg2-dashboard/sdgdb"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Config controls where the Manager loads indicator data from and how it
// stores it.
type Config struct {
	// Source is a directory of CSV files, a .zip bundle path, or an http(s)
	// URL to such a bundle. An empty Source serves generated sample data.
	Source     string
	SampleSeed int64
	DBPath     string
	Env        appconf.Environment
	Verbose    bool
}

func (config Config) describeSource() string {
	if config.Source == "" {
		return fmt.Sprintf("generated sample data (seed %d)", config.SampleSeed)
	}
	return config.Source
}

// frameSet caches the per-family analytics frames derived from a dataset.
type frameSet struct {
	undernourishment *analytics.Frame
	production       *analytics.Frame
	security         *analytics.Frame
	nutrition        *analytics.Frame
}

// Manager owns the indicator dataset and provides methods to access it.
// The dataset and everything derived from it swap atomically on refresh.
type Manager struct {
	dataset        *Dataset
	frames         frameSet
	regions        []string
	countries      []string
	crops          []string
	indicators     []string
	years          []int
	countryRegions map[string]string
	Store        *sdgdb.Client
	lastUpdated  time.Time
	isRemote     bool
	dataMutex    sync.RWMutex
	config       Config
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads the configured indicator source, imports it into the row
// store, and starts the periodic refresh when the source is a URL.
func InitManager(config Config) (*Manager, error) {
	dataset, skipped, err := loadDataset(config)
	if err != nil {
		return nil, err
	}
	if dataset.IsEmpty() {
		return nil, fmt.Errorf("indicator source %q produced an empty dataset", config.describeSource())
	}
	if skipped > 0 {
		log.Printf("Skipped %d malformed indicator rows while loading", skipped)
	}

	manager := &Manager{
		isRemote:     isRemoteSource(config.Source),
		config:       config,
		shutdownChan: make(chan struct{}),
	}
	manager.setDataset(dataset)

	store, err := buildStore(config)
	if err != nil {
		return nil, fmt.Errorf("error building indicator database: %w", err)
	}
	manager.Store = store

	if err := manager.importToStore(context.Background(), dataset); err != nil {
		return nil, fmt.Errorf("error importing indicator data: %w", err)
	}

	if manager.isRemote {
		manager.wg.Add(1)
		go manager.refreshData()
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.Store != nil {
			_ = manager.Store.Close()
		}
	})
}

// GetDataset returns the currently served dataset.
func (manager *Manager) GetDataset() *Dataset {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.dataset
}

func (manager *Manager) UndernourishmentFrame() *analytics.Frame {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.frames.undernourishment
}

func (manager *Manager) ProductionFrame() *analytics.Frame {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.frames.production
}

func (manager *Manager) SecurityFrame() *analytics.Frame {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.frames.security
}

func (manager *Manager) NutritionFrame() *analytics.Frame {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.frames.nutrition
}

// Regions returns every region, in first-seen dataset order.
func (manager *Manager) Regions() []string {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.regions
}

// Countries returns every assessed country, in first-seen dataset order.
func (manager *Manager) Countries() []string {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.countries
}

// Crops returns every crop, in first-seen dataset order.
func (manager *Manager) Crops() []string {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.crops
}

// NutritionIndicators returns the nutrition indicator names, in first-seen
// dataset order.
func (manager *Manager) NutritionIndicators() []string {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.indicators
}

// RegionForCountry returns the region an assessed country belongs to, and
// whether the country is known at all.
func (manager *Manager) RegionForCountry(country string) (string, bool) {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	region, ok := manager.countryRegions[country]
	return region, ok
}

// Years returns every year covered by any family, ascending.
func (manager *Manager) Years() []int {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.years
}

// EarliestYear returns the first covered year, or 0 for an empty dataset.
func (manager *Manager) EarliestYear() int {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	if len(manager.years) == 0 {
		return 0
	}
	return manager.years[0]
}

// LatestYear returns the last covered year, or 0 for an empty dataset.
func (manager *Manager) LatestYear() int {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	if len(manager.years) == 0 {
		return 0
	}
	return manager.years[len(manager.years)-1]
}

func (manager *Manager) LastUpdated() time.Time {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()
	return manager.lastUpdated
}

func (manager *Manager) PrintStatistics() {
	manager.dataMutex.RLock()
	defer manager.dataMutex.RUnlock()

	fmt.Printf("Source: %s\n", manager.config.describeSource())
	fmt.Printf("Last Updated: %s\n", manager.lastUpdated)
	fmt.Println("Undernourishment Rows: ", len(manager.dataset.Undernourishment))
	fmt.Println("Production Rows: ", len(manager.dataset.Production))
	fmt.Println("Food Security Rows: ", len(manager.dataset.Security))
	fmt.Println("Nutrition Rows: ", len(manager.dataset.Nutrition))
	fmt.Println("Regions: ", len(manager.regions))
	fmt.Println("Countries: ", len(manager.countries))
}

func unionStrings(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

func unionYears(frames ...*analytics.Frame) []int {
	seen := make(map[int]bool)
	var out []int
	for _, f := range frames {
		for _, y := range f.Years() {
			if !seen[y] {
				seen[y] = true
				out = append(out, y)
			}
		}
	}
	sort.Ints(out)
	return out
}

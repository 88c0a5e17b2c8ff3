package sdgdb

// UndernourishmentRow is one undernourishment observation as stored.
type UndernourishmentRow struct {
	Region string  `json:"region"`
	Year   int64   `json:"year"`
	Rate   float64 `json:"rate"`
}

// ProductionRow is one crop production observation as stored.
type ProductionRow struct {
	Crop   string  `json:"crop"`
	Year   int64   `json:"year"`
	Tonnes float64 `json:"tonnes"`
}

// SecurityRow is one food security assessment as stored.
type SecurityRow struct {
	Country            string  `json:"country"`
	Region             string  `json:"region"`
	Year               int64   `json:"year"`
	Level              float64 `json:"level"`
	PopulationAffected float64 `json:"populationAffected"`
}

// NutritionRow is one nutrition indicator observation as stored.
type NutritionRow struct {
	Region    string  `json:"region"`
	Indicator string  `json:"indicator"`
	Year      int64   `json:"year"`
	Rate      float64 `json:"rate"`
}

// YearRange is the inclusive span of years present in a table.
type YearRange struct {
	First int64 `json:"first"`
	Last  int64 `json:"last"`
}

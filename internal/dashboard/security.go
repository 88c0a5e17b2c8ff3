package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Terry84/sdg2-dashboard/internal/analytics"
	"github.com/Terry84/sdg2-dashboard/internal/models"
	"github.com/Terry84/sdg2-dashboard/internal/sdg"
	"github.com/Terry84/sdg2-dashboard/sdgdb"
)

// BuildFoodSecurity assembles the Food Security page. The country trend and
// the crisis table read from the store; an empty country selects the first
// known country.
func BuildFoodSecurity(ctx context.Context, manager *sdg.Manager, country string) (models.FoodSecurityData, error) {
	frame := manager.SecurityFrame()
	latestYear := frame.LatestYear()
	latest := frame.Filter(yearFilter(latestYear))

	selected := country
	if selected == "" {
		if countries := manager.Countries(); len(countries) > 0 {
			selected = countries[0]
		}
	}

	countryTrend, err := securityCountryTrend(ctx, manager, selected)
	if err != nil {
		return models.FoodSecurityData{}, err
	}

	crisisTable, err := securityCrisisTable(ctx, manager, latestYear)
	if err != nil {
		return models.FoodSecurityData{}, err
	}

	totals := frame.SeriesByYear(sdg.ValPopulation, analytics.AggSum)

	return models.FoodSecurityData{
		Scatter: analytics.ChartConfig{
			ChartType: analytics.ChartScatter,
			Title:     fmt.Sprintf("Food Security Status by Country (%d)", latestYear),
			XAxis:     "Country",
			YAxis:     "Food Security Level (1-4)",
			Series: []analytics.ChartSeries{{
				Name:  "Countries",
				Data:  securityScatterPoints(latest),
				Color: "#FF9800",
			}},
		},
		LevelPie:     securityLevelPie(latest),
		CountryTrend: countryTrend,
		AffectedArea: analytics.ChartConfig{
			ChartType: analytics.ChartArea,
			Title:     "Total Population Affected by Food Insecurity",
			XAxis:     "Year",
			YAxis:     "Population Affected (Millions)",
			Series: []analytics.ChartSeries{
				yearTrendSeries("Population affected", totals, "#FF6B6B"),
			},
		},
		CrisisTable: crisisTable,
	}, nil
}

// securityScatterPoints plots one bubble per country: ordinal position on X,
// security level on Y, population affected as bubble size.
func securityScatterPoints(latest *analytics.Frame) []analytics.ChartPoint {
	points := make([]analytics.ChartPoint, 0, latest.Len())
	for i := 0; i < latest.Len(); i++ {
		points = append(points, analytics.ChartPoint{
			Label: latest.Dim(i, sdg.DimCountry),
			X:     float64(i + 1),
			Value: analytics.RoundTo(latest.Value(i, sdg.ValLevel), 2),
			Size:  analytics.RoundTo(latest.Value(i, sdg.ValPopulation), 1),
		})
	}
	return points
}

// securityLevelPie buckets the latest assessments by level name, keeping the
// 1-4 scale order and each level's severity color.
func securityLevelPie(latest *analytics.Frame) analytics.ChartConfig {
	counts := make(map[string]int)
	for i := 0; i < latest.Len(); i++ {
		counts[sdg.SecurityLevelName(latest.Value(i, sdg.ValLevel))]++
	}

	var points []analytics.ChartPoint
	var colors []string
	for _, name := range sdg.SecurityLevelNames() {
		if counts[name] == 0 {
			continue
		}
		points = append(points, analytics.ChartPoint{Label: name, Value: float64(counts[name])})
		colors = append(colors, levelColors[name])
	}

	return analytics.ChartConfig{
		ChartType:  analytics.ChartPie,
		Title:      "Distribution of Food Security Levels",
		Series:     []analytics.ChartSeries{{Name: "Countries", Data: points}},
		Colors:     colors,
		ShowLegend: true,
	}
}

func securityCountryTrend(ctx context.Context, manager *sdg.Manager, country string) (analytics.ChartConfig, error) {
	series := analytics.ChartSeries{Name: country, Color: palette[0]}
	if country != "" {
		rows, err := manager.Store.Queries.GetSecurityTrend(ctx, country)
		if err != nil {
			return analytics.ChartConfig{}, fmt.Errorf("error loading security trend for %s: %w", country, err)
		}
		for _, row := range rows {
			series.Data = append(series.Data, analytics.ChartPoint{
				Label: strconv.FormatInt(row.Year, 10),
				Value: analytics.RoundTo(row.Level, 2),
			})
		}
	}

	return analytics.ChartConfig{
		ChartType: analytics.ChartLine,
		Title:     fmt.Sprintf("Food Security Trend - %s", country),
		XAxis:     "Year",
		YAxis:     "Food Security Level (1-4)",
		Series:    []analytics.ChartSeries{series},
	}, nil
}

func securityCrisisTable(ctx context.Context, manager *sdg.Manager, year int) (analytics.TableData, error) {
	rows, err := manager.Store.Queries.ListCrisisCountries(ctx, sdgdb.ListCrisisCountriesParams{
		Year:     int64(year),
		MinLevel: sdg.LevelCrisis,
	})
	if err != nil {
		return analytics.TableData{}, fmt.Errorf("error listing crisis countries: %w", err)
	}

	table := analytics.TableData{
		Title: fmt.Sprintf("Countries at Crisis Level or Above (%d)", year),
		Columns: []analytics.Column{
			{Key: "country", Label: "Country", Type: "text", Align: "left"},
			{Key: "region", Label: "Region", Type: "text", Align: "left"},
			{Key: "level", Label: "Level", Type: "number", Align: "right"},
			{Key: "status", Label: "Status", Type: "text", Align: "left"},
			{Key: "population", Label: "Population Affected", Type: "number", Align: "right"},
		},
	}
	totalAffected := 0.0
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Country,
			row.Region,
			analytics.FormatNumber(row.Level, 1),
			sdg.SecurityLevelName(row.Level),
			analytics.FormatMillions(row.PopulationAffected),
		})
		totalAffected += row.PopulationAffected
	}
	if len(rows) > 0 {
		table.Summary = &analytics.Summary{
			Label: "Total",
			Values: map[string]string{
				"population": analytics.FormatMillions(totalAffected),
			},
		}
	}
	return table, nil
}

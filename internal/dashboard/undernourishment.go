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

// BuildUndernourishment assembles the Hunger & Undernourishment page. A
// region narrows every chart to that region and fills the detail table from
// the store; fromYear/toYear bound the trend and heatmap (zero leaves a
// bound open).
func BuildUndernourishment(ctx context.Context, manager *sdg.Manager, region string, fromYear, toYear int) (models.UndernourishmentData, error) {
	frame := manager.UndernourishmentFrame()

	filters := analytics.Filters{FromYear: fromYear, ToYear: toYear}
	if region != "" {
		filters.Dims = map[string][]string{sdg.DimRegion: {region}}
	}
	scoped := frame.Filter(filters)
	latestYear := scoped.LatestYear()

	trend := colorSeries(scoped.GroupedSeriesByYear(sdg.DimRegion, sdg.ValRate, analytics.AggMean))

	latestGroups := scoped.Filter(yearFilter(latestYear)).
		GroupAndAggregate(sdg.DimRegion, sdg.ValRate, analytics.AggMean, "value_desc", 0)

	matrix := scoped.Pivot(sdg.DimRegion, analytics.DimYear, sdg.ValRate, analytics.AggMean)
	min, max := matrix.MinMax()

	details, err := undernourishmentDetails(ctx, manager, region, fromYear, toYear)
	if err != nil {
		return models.UndernourishmentData{}, err
	}

	return models.UndernourishmentData{
		Trend: analytics.ChartConfig{
			ChartType:  analytics.ChartLine,
			Title:      "Undernourishment Trends by Region",
			XAxis:      "Year",
			YAxis:      "Undernourishment Rate (%)",
			Series:     trend,
			ShowLegend: true,
		},
		LatestBar: analytics.ChartConfig{
			ChartType: analytics.ChartBar,
			Title:     fmt.Sprintf("Undernourishment Rate by Region (%d)", latestYear),
			XAxis:     "Region",
			YAxis:     "Undernourishment Rate (%)",
			Series: []analytics.ChartSeries{{
				Name:  "Undernourishment",
				Data:  groupPoints(latestGroups),
				Color: "#C62828",
			}},
		},
		Heatmap: models.HeatmapData{
			Title:  "Undernourishment Rate Heatmap",
			Matrix: matrix,
			Min:    min,
			Max:    max,
			Unit:   "%",
		},
		Details: details,
	}, nil
}

// undernourishmentDetails lists the selected region's rows from the store.
// Without a region selection the table carries its columns and no rows.
func undernourishmentDetails(ctx context.Context, manager *sdg.Manager, region string, fromYear, toYear int) (analytics.TableData, error) {
	details := analytics.TableData{
		Title: "Detailed Data",
		Columns: []analytics.Column{
			{Key: "region", Label: "Region", Type: "text", Align: "left"},
			{Key: "year", Label: "Year", Type: "number", Align: "right"},
			{Key: "rate", Label: "Undernourishment Rate (%)", Type: "number", Align: "right"},
		},
	}
	if region == "" {
		return details, nil
	}

	rows, err := manager.Store.Queries.ListUndernourishment(ctx, sdgdb.ListUndernourishmentParams{
		Region:   region,
		FromYear: int64(fromYear),
		ToYear:   int64(toYear),
	})
	if err != nil {
		return analytics.TableData{}, fmt.Errorf("error listing undernourishment rows for %s: %w", region, err)
	}

	details.Title = fmt.Sprintf("Detailed Data - %s", region)
	sum := 0.0
	for _, row := range rows {
		details.Rows = append(details.Rows, []string{
			row.Region,
			strconv.FormatInt(row.Year, 10),
			analytics.FormatNumber(row.Rate, 1),
		})
		sum += row.Rate
	}
	if len(rows) > 0 {
		details.Summary = &analytics.Summary{
			Label: "Mean",
			Values: map[string]string{
				"rate": analytics.FormatNumber(sum/float64(len(rows)), 1),
			},
		}
	}
	return details, nil
}

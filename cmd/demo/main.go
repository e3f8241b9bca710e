package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bls-chart/internal/config"
	"bls-chart/internal/model"
	"bls-chart/internal/render"
	"bls-chart/internal/series"
)

// Demo:
// - Build a synthetic BLS payload in code (no API key needed)
// - Normalize it into the wide table
// - Render the annotated chart to demo.png to show how the pieces fit together
func main() {
	outPath := flag.String("out", "demo.png", "Output PNG path")
	months := flag.Int("months", 36, "Number of synthetic monthly observations")
	flag.Parse()

	payload := syntheticPayload(*months)

	table, err := series.Normalize(payload)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Normalized %d observations into %d rows x %d series\n",
		*months, table.Len(), len(table.Columns))

	cfg := config.Default()
	cfg.Chart.Title = "Synthetic unemployment rate"
	cfg.Chart.Subtitle = "Generated data, for demonstration only"

	opts, err := cfg.RenderOptions()
	if err != nil {
		panic(err)
	}

	rendered, err := render.New(opts).Render(table)
	if err != nil {
		panic(err)
	}

	if dir := filepath.Dir(*outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			panic(err)
		}
	}
	if err := rendered.WriteFile(*outPath); err != nil {
		panic(err)
	}

	v, _ := table.Latest(config.DefaultSeriesID)
	fmt.Printf("Wrote %s (latest value %.1f%%)\n", *outPath, v)
}

// syntheticPayload fabricates a gently oscillating monthly series ending at
// the current month, in the exact JSON shape the BLS API returns.
func syntheticPayload(months int) *model.BLSResponse {
	now := time.Now().UTC()
	cur := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	obs := make([]model.Observation, 0, months)
	for i := 0; i < months; i++ {
		d := cur.AddDate(0, -i, 0)
		value := 4.0 + 0.8*float64((i/6)%3) // steps between 4.0 and 5.6
		obs = append(obs, model.Observation{
			Year:       fmt.Sprintf("%d", d.Year()),
			Period:     fmt.Sprintf("M%02d", int(d.Month())),
			PeriodName: d.Month().String(),
			Value:      fmt.Sprintf("%.1f", value),
		})
	}

	return &model.BLSResponse{
		Status: model.StatusSucceeded,
		Results: &model.Results{
			Series: []model.Series{
				{SeriesID: config.DefaultSeriesID, Data: obs},
			},
		},
	}
}

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bls-chart/internal/config"
	"bls-chart/internal/data"
	"bls-chart/internal/model"
	"bls-chart/internal/render"
	"bls-chart/internal/series"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "chart":
		cmdChart(os.Args[2:])
	case "fetch":
		cmdFetch(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli chart --config examples/config.yaml --out results/chart.png [--data saved.json]")
	fmt.Println("  cli fetch --out results/raw.json [--config examples/config.yaml]")
	fmt.Println("  cli export --out results/series.csv [--data saved.json]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - without --data, observations are fetched live (BLS_API_KEY required)")
	fmt.Println("  - chart writes a PNG with recession shading and the latest value marked")
	fmt.Println("  - export writes the normalized table as CSV, one column per series")
}

func cmdChart(args []string) {
	fs := flag.NewFlagSet("chart", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	dataPath := fs.String("data", "", "Path to saved BLS JSON response (skips the live fetch)")
	outPath := fs.String("out", "results/chart.png", "Output PNG path")
	title := fs.String("title", "", "Override chart title")
	subtitle := fs.String("subtitle", "", "Override chart subtitle")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	if *title != "" {
		cfg.Chart.Title = *title
	}
	if *subtitle != "" {
		cfg.Chart.Subtitle = *subtitle
	}

	payload := loadPayload(cfg, *dataPath)

	table, err := series.Normalize(payload)
	if err != nil {
		panic(err)
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		panic(err)
	}

	rendered, err := render.New(opts).Render(table)
	if err != nil {
		panic(err)
	}
	if rendered.LogoErr != nil {
		fmt.Printf("warning: %v\n", rendered.LogoErr)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := rendered.WriteFile(*outPath); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %s (%d rows, %d series)\n", *outPath, table.Len(), len(table.Columns))
	for _, col := range table.Columns {
		if v, ok := table.Latest(col); ok {
			fmt.Printf("Latest %s = %.1f%% (%s)\n", col, v, table.End().Format("Jan 2006"))
		}
	}
}

func cmdFetch(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	outPath := fs.String("out", "results/raw.json", "Output JSON path")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	payload := fetchLive(cfg)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := data.SaveBLSJSON(*outPath, payload); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %s\n", *outPath)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config (optional)")
	dataPath := fs.String("data", "", "Path to saved BLS JSON response (skips the live fetch)")
	outPath := fs.String("out", "results/series.csv", "Output CSV path")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)
	payload := loadPayload(cfg, *dataPath)

	table, err := series.Normalize(payload)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := series.WriteTableCSV(*outPath, table); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", table.Len(), *outPath)
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func loadPayload(cfg *config.Config, dataPath string) *model.BLSResponse {
	if dataPath != "" {
		payload, err := data.LoadBLSJSON(dataPath)
		if err != nil {
			panic(err)
		}
		return payload
	}
	return fetchLive(cfg)
}

func fetchLive(cfg *config.Config) *model.BLSResponse {
	apiKey := os.Getenv("BLS_API_KEY")
	if apiKey == "" {
		fmt.Println("BLS_API_KEY environment variable is required for a live fetch")
		os.Exit(2)
	}

	startYear, endYear := cfg.YearRange(time.Now())
	client := data.NewBLSClient(apiKey, "")
	payload, err := client.QuerySeries(data.QuerySeriesParams{
		SeriesIDs: cfg.SeriesIDs,
		StartYear: startYear,
		EndYear:   endYear,
	})
	if err != nil {
		panic(err)
	}
	return payload
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"bls-chart/internal/config"
	"bls-chart/internal/data"
	"bls-chart/internal/series"
)

func main() {
	var (
		outputPath = flag.String("output", "", "Output file path (default: ./data/catalog.json)")
		seedFile   = flag.String("seed", "", "Path to existing catalog file to use as seed")
		years      = flag.Int("years", 1, "Number of years to look back when probing each series")
	)
	flag.Parse()

	apiKey := os.Getenv("BLS_API_KEY")
	if apiKey == "" {
		log.Fatal("BLS_API_KEY environment variable is required")
	}

	if *outputPath == "" {
		*outputPath = data.GetDefaultCatalogPath()
	}

	client := data.NewBLSClient(apiKey, "")

	// Load existing catalog as seed if provided
	seed := builtinSeed()
	if *seedFile != "" {
		if catalog, err := data.LoadCatalog(*seedFile); err == nil {
			seed = catalog.Series
			fmt.Printf("Loaded %d series from seed file\n", len(seed))
		}
	} else {
		// Try to load from default path
		if catalog, err := data.LoadCatalog(data.GetDefaultCatalogPath()); err == nil {
			seed = catalog.Series
			fmt.Printf("Loaded %d series from default file\n", len(seed))
		}
	}

	endYear := time.Now().Year()
	startYear := endYear - *years

	fmt.Printf("Probing %d series from %d to %d...\n", len(seed), startYear, endYear)

	verified := make([]data.CatalogSeries, 0, len(seed))
	for _, s := range seed {
		payload, err := client.QuerySeries(data.QuerySeriesParams{
			SeriesIDs: []string{s.ID},
			StartYear: startYear,
			EndYear:   endYear,
		})
		if err != nil {
			log.Printf("Skipping %s: %v", s.ID, err)
			continue
		}
		table, err := series.Normalize(payload)
		if err != nil {
			log.Printf("Skipping %s: %v", s.ID, err)
			continue
		}
		if table.Len() == 0 {
			log.Printf("Skipping %s: no monthly observations", s.ID)
			continue
		}
		fmt.Printf("  %s ok (%d monthly observations)\n", s.ID, table.Len())
		verified = append(verified, s)
	}

	catalog := &data.SeriesCatalog{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Series:    verified,
	}
	if err := data.SaveCatalog(catalog, *outputPath); err != nil {
		log.Fatalf("Failed to save catalog: %v", err)
	}

	fmt.Printf("Wrote %d series to %s\n", len(verified), *outputPath)
}

// builtinSeed returns the series probed when no catalog exists yet.
func builtinSeed() []data.CatalogSeries {
	seed := []data.CatalogSeries{
		{ID: "LNS14000000", Survey: "Current Population Survey", Units: "percent"},
		{ID: "LNS11300000", Name: "Labor Force Participation Rate (%)", Survey: "Current Population Survey", Units: "percent"},
		{ID: "LNS12300000", Name: "Employment-Population Ratio (%)", Survey: "Current Population Survey", Units: "percent"},
	}
	names := config.DefaultSeriesNames()
	for i := range seed {
		if seed[i].Name == "" {
			seed[i].Name = names[seed[i].ID]
		}
	}
	return seed
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"leetcrawl/internal/config"
	"leetcrawl/internal/crawl"
	"leetcrawl/internal/crawl/leetcode"
	"leetcrawl/internal/crawl/util"
	"leetcrawl/internal/domain"
	"leetcrawl/internal/export"
	"leetcrawl/internal/export/sheets"
	"leetcrawl/internal/group"
	"leetcrawl/internal/secrets"
	"leetcrawl/internal/store"

	"github.com/gofrs/flock"
)

func main() {
	var (
		company   = flag.String("company", "google", "company tag to filter questions")
		pages     = flag.Int("pages", 10, "number of listing pages to crawl")
		output    = flag.String("output", "leetcode_interview_questions.csv", "output CSV file path")
		outputDir = flag.String("output-dir", "output", "directory for monthly CSV files")
		verbose   = flag.Bool("verbose", false, "enable verbose logging")
		category  = flag.String("category", "interview-question", "forum category to crawl")
		dataDir   = flag.String("data-dir", "", "config/state directory (default: $LEETCRAWL_DATA_DIR or .)")
		useSheets = flag.Bool("sheets", false, "also export to Google Sheets")
		sheetName = flag.String("sheet-name", "", "spreadsheet name for the sheets export")
		dbPath    = flag.String("db", "", "also record posts into this sqlite database")
	)
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("LEETCRAWL_DATA_DIR")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("create data dir %s: %v", dir, err)
	}

	// One crawl at a time per data dir; two runs interleaving writes into the
	// same output files would corrupt both.
	lock := flock.New(filepath.Join(dir, "leetcrawl.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("acquire lock: %v", err)
	}
	if !locked {
		log.Fatalf("another crawl is already running (lock held in %s)", dir)
	}
	defer lock.Unlock()

	cfgPath, err := config.EnsureUserConfig(dir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}

	config.ApplyOverrides(&cfg, config.Overrides{
		Company:    setString("company", company),
		Category:   setString("category", category),
		Pages:      setInt("pages", pages),
		CSVPath:    setString("output", output),
		MonthlyDir: setString("output-dir", outputDir),
		Sheets:     setBool("sheets", useSheets),
		SheetName:  setString("sheet-name", sheetName),
		DBPath:     setString("db", dbPath),
	})

	cfg, v := config.NormalizeAndValidate(cfg)
	for _, w := range v.Warnings {
		log.Printf("[config] warn: %s", w)
	}
	if !v.OK() {
		log.Fatalf("config invalid:\n  %s", strings.Join(v.Errors, "\n  "))
	}

	// Fail on the output dir now, before any network work.
	if err := os.MkdirAll(cfg.Output.MonthlyDir, 0o755); err != nil {
		log.Fatalf("create output dir %s: %v", cfg.Output.MonthlyDir, err)
	}

	ctx := context.Background()

	client := leetcode.New(leetcode.Config{
		BaseURL:  cfg.Crawl.BaseURL,
		Category: cfg.Crawl.Category,
		Tag:      cfg.Crawl.Company,
		PageSize: cfg.Crawl.PageSize,
		Verbose:  *verbose,
	}, util.NewLimiter(cfg.Crawl.RequestsPerSec, 1))

	log.Printf("[crawl] starting company=%q pages=%d category=%q", cfg.Crawl.Company, cfg.Crawl.Pages, cfg.Crawl.Category)

	posts := crawl.Run(ctx, client, cfg.Crawl.Pages, crawl.Options{
		Company: cfg.Crawl.Company,
		Hydrate: cfg.Crawl.HydrateDetails,
		Verbose: *verbose,
	})

	if err := export.WriteCSV(posts, cfg.Output.CSVPath); err != nil {
		log.Printf("[export] %v", err)
	} else {
		log.Printf("[export] wrote %d posts to %s", len(posts), cfg.Output.CSVPath)
	}

	groups := group.ByMonth(posts)
	written, err := export.WriteMonthly(groups, cfg.Output.MonthlyDir)
	if err != nil {
		log.Printf("[export] monthly: %v", err)
	}
	log.Printf("[export] wrote %d monthly files to %s", written, cfg.Output.MonthlyDir)

	if cfg.DB.Enabled {
		saveToDB(ctx, cfg, posts)
	}
	if cfg.Sheets.Enabled {
		exportToSheets(ctx, cfg, groups)
	}

	fmt.Printf("Crawl finished: %d posts in %d month buckets.\n", len(posts), len(groups))
}

func saveToDB(ctx context.Context, cfg config.Config, posts []domain.Post) {
	db, err := store.Open(cfg.DB.Path)
	if err != nil {
		log.Printf("[store] open %s: %v", cfg.DB.Path, err)
		return
	}
	defer db.Close()

	added, err := db.SaveAll(ctx, posts)
	if err != nil {
		log.Printf("[store] save: %v", err)
	}
	log.Printf("[store] recorded %d new posts in %s", added, cfg.DB.Path)
}

func exportToSheets(ctx context.Context, cfg config.Config, groups []group.Group) {
	ts, err := secrets.SheetsTokenSource(ctx, cfg.Sheets.CredentialsPath, cfg.Sheets.TokenPath)
	if err != nil {
		log.Printf("[sheets] credentials: %v", err)
		return
	}
	exp, err := sheets.NewExporter(ctx, ts)
	if err != nil {
		log.Printf("[sheets] %v", err)
		return
	}
	id, err := exp.ExportGroups(ctx, cfg.Sheets.SpreadsheetName, groups)
	if err != nil {
		log.Printf("[sheets] export failed: %v", err)
		return
	}
	log.Printf("[sheets] https://docs.google.com/spreadsheets/d/%s", id)
}

// setString and friends report a flag's value only when the user actually set
// it, so file config survives unset flags.
func setString(name string, v *string) *string {
	if flagWasSet(name) {
		return v
	}
	return nil
}

func setInt(name string, v *int) *int {
	if flagWasSet(name) {
		return v
	}
	return nil
}

func setBool(name string, v *bool) *bool {
	if flagWasSet(name) {
		return v
	}
	return nil
}

func flagWasSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

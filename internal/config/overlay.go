package config

// Overrides carries the CLI flags the user actually set. Nil fields leave the
// file value alone.
type Overrides struct {
	Company    *string
	Category   *string
	Pages      *int
	CSVPath    *string
	MonthlyDir *string
	Sheets     *bool
	SheetName  *string
	DBPath     *string
}

// ApplyOverrides layers explicit flag values over the loaded config.
func ApplyOverrides(cfg *Config, o Overrides) {
	if o.Company != nil {
		cfg.Crawl.Company = *o.Company
	}
	if o.Category != nil {
		cfg.Crawl.Category = *o.Category
	}
	if o.Pages != nil {
		cfg.Crawl.Pages = *o.Pages
	}
	if o.CSVPath != nil {
		cfg.Output.CSVPath = *o.CSVPath
	}
	if o.MonthlyDir != nil {
		cfg.Output.MonthlyDir = *o.MonthlyDir
	}
	if o.Sheets != nil {
		cfg.Sheets.Enabled = *o.Sheets
	}
	if o.SheetName != nil {
		cfg.Sheets.SpreadsheetName = *o.SheetName
	}
	if o.DBPath != nil {
		cfg.DB.Enabled = true
		cfg.DB.Path = *o.DBPath
	}
}

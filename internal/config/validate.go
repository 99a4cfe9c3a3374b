package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims the string settings and checks the numeric ones.
// Errors stop the run before any work begins; warnings just get logged.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Crawl.BaseURL = strings.TrimRight(strings.TrimSpace(out.Crawl.BaseURL), "/")
	out.Crawl.Category = strings.TrimSpace(out.Crawl.Category)
	out.Crawl.Company = strings.ToLower(strings.TrimSpace(out.Crawl.Company))
	out.Output.CSVPath = strings.TrimSpace(out.Output.CSVPath)
	out.Output.MonthlyDir = strings.TrimSpace(out.Output.MonthlyDir)

	if out.Crawl.BaseURL == "" {
		res.addErr("crawl.base_url must not be empty")
	}
	if out.Crawl.Category == "" {
		res.addErr("crawl.category must not be empty")
	}
	if out.Crawl.Company == "" {
		res.addErr("crawl.company must not be empty")
	}
	if out.Crawl.Pages < 0 {
		res.addErr("crawl.pages must be >= 0")
	} else if out.Crawl.Pages > 100 {
		res.addWarn("crawl.pages is very high (%d); the forum may throttle you.", out.Crawl.Pages)
	}
	if out.Crawl.PageSize <= 0 {
		res.addErr("crawl.page_size must be > 0")
	}
	if out.Crawl.RequestsPerSec <= 0 {
		res.addErr("crawl.requests_per_sec must be > 0")
	} else if out.Crawl.RequestsPerSec > 5 {
		res.addWarn("crawl.requests_per_sec is very high (%.1f); consider slowing down.", out.Crawl.RequestsPerSec)
	}

	if out.Output.CSVPath == "" {
		res.addErr("output.csv_path must not be empty")
	}
	if out.Output.MonthlyDir == "" {
		res.addErr("output.monthly_dir must not be empty")
	}

	if out.Sheets.Enabled {
		if strings.TrimSpace(out.Sheets.CredentialsPath) == "" {
			res.addErr("sheets.credentials_path is required when sheets.enabled=true")
		}
		if strings.TrimSpace(out.Sheets.SpreadsheetName) == "" {
			res.addErr("sheets.spreadsheet_name is required when sheets.enabled=true")
		}
	}
	if out.DB.Enabled && strings.TrimSpace(out.DB.Path) == "" {
		res.addErr("db.path is required when db.enabled=true")
	}

	return out, res
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Crawl struct {
		BaseURL        string  `yaml:"base_url"`
		Category       string  `yaml:"category"`
		Company        string  `yaml:"company"`
		Pages          int     `yaml:"pages"`
		PageSize       int     `yaml:"page_size"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		HydrateDetails bool    `yaml:"hydrate_details"`
	} `yaml:"crawl"`

	Output struct {
		CSVPath    string `yaml:"csv_path"`
		MonthlyDir string `yaml:"monthly_dir"`
	} `yaml:"output"`

	Sheets struct {
		Enabled         bool   `yaml:"enabled"`
		CredentialsPath string `yaml:"credentials_path"`
		TokenPath       string `yaml:"token_path"`
		SpreadsheetName string `yaml:"spreadsheet_name"`
	} `yaml:"sheets"`

	DB struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"db"`
}

// Default returns the documented out-of-the-box settings.
func Default() Config {
	var cfg Config
	cfg.Crawl.BaseURL = "https://leetcode.com"
	cfg.Crawl.Category = "interview-question"
	cfg.Crawl.Company = "google"
	cfg.Crawl.Pages = 10
	cfg.Crawl.PageSize = 15
	cfg.Crawl.RequestsPerSec = 1
	cfg.Crawl.HydrateDetails = true
	cfg.Output.CSVPath = "leetcode_interview_questions.csv"
	cfg.Output.MonthlyDir = "output"
	cfg.Sheets.CredentialsPath = "credentials.json"
	cfg.Sheets.TokenPath = "token.json"
	cfg.Sheets.SpreadsheetName = "LeetCode Interview Questions"
	cfg.DB.Path = "leetcrawl.db"
	return cfg
}

func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

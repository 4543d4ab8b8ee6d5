package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/dienstplan/pkg/core/autoplan"
)

// Storage backends
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// rruleAnchor is the DTSTART used for Monday openings without an explicit dtstart.
// A fixed Monday keeps INTERVAL rules in the same phase from month to month.
var rruleAnchor = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// MondayOpening describes Mondays that are open by rule rather than by a
// one-off entry in the plan
type MondayOpening struct {
	RRule   string `yaml:"rrule" validate:"required"`
	DTStart string `yaml:"dtstart,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Config represents the application configuration
type Config struct {
	Storage        string          `yaml:"storage" validate:"required,oneof=file postgres"`
	DataFile       string          `yaml:"dataFile,omitempty" validate:"required_if=Storage file"`
	DatabaseURL    string          `yaml:"databaseURL,omitempty" validate:"required_if=Storage postgres"`
	MondayOpenings []MondayOpening `yaml:"mondayOpenings,omitempty" validate:"dive"`

	PlanSheetID    string   `yaml:"planSheetID,omitempty"`
	GmailUserID    string   `yaml:"gmailUserID,omitempty"`
	GmailSender    string   `yaml:"gmailSender,omitempty" validate:"omitempty,email"`
	PlanRecipients []string `yaml:"planRecipients,omitempty" validate:"omitempty,dive,email"`

	// Weights and Limits start from the built-in defaults; keys present in the
	// file override individual values
	Weights autoplan.Weights `yaml:"weights"`
	Limits  autoplan.Limits  `yaml:"limits"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// defaultConfig returns a config holding only default values
func defaultConfig() Config {
	return Config{
		Weights: autoplan.DefaultWeights(),
		Limits:  autoplan.DefaultLimits(),
	}
}

// LoadWithEnv loads and validates dienstplan_config.<env>.yaml.
// An empty env loads dienstplan_config.yaml.
func LoadWithEnv(env string) (*Config, error) {
	name := "dienstplan_config.yaml"
	if env != "" {
		name = "dienstplan_config." + env + ".yaml"
	}

	configPath, err := findFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// A relative dataFile is resolved against the config file's directory.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	if cfg.DataFile != "" && !filepath.IsAbs(cfg.DataFile) {
		cfg.DataFile = filepath.Join(filepath.Dir(path), cfg.DataFile)
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks every Monday opening
// rule parses and only yields Mondays
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, opening := range cfg.MondayOpenings {
		rule, err := opening.rule()
		if err != nil {
			return fmt.Errorf("invalid rrule in mondayOpenings[%d]: %w", i, err)
		}
		start := rule.GetDTStart()
		for _, occurrence := range rule.Between(start, start.AddDate(2, 0, 0), true) {
			if occurrence.Weekday() != time.Monday {
				return fmt.Errorf("mondayOpenings[%d] yields %s which is a %s", i, occurrence.Format(time.DateOnly), occurrence.Weekday())
			}
		}
	}

	return nil
}

func (o MondayOpening) rule() (*rrule.RRule, error) {
	rule, err := rrule.StrToRRule(o.RRule)
	if err != nil {
		return nil, err
	}

	start := rruleAnchor
	if o.DTStart != "" {
		start, err = time.Parse(time.DateOnly, o.DTStart)
		if err != nil {
			return nil, fmt.Errorf("invalid dtstart %q: %w", o.DTStart, err)
		}
	}
	rule.DTStart(start)
	return rule, nil
}

// OpenMondays expands the Monday opening rules between from and to inclusive
// into sorted, duplicate-free ISO dates
func (c *Config) OpenMondays(from, to time.Time) ([]string, error) {
	seen := make(map[string]bool)
	var dates []string
	for i, opening := range c.MondayOpenings {
		rule, err := opening.rule()
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule for mondayOpenings[%d]: %w", i, err)
		}
		for _, occurrence := range rule.Between(from, to, true) {
			date := occurrence.Format(time.DateOnly)
			if occurrence.Weekday() != time.Monday || seen[date] {
				continue
			}
			seen[date] = true
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

// CanPublish reports whether a plan spreadsheet is configured
func (c *Config) CanPublish() bool {
	return c.PlanSheetID != ""
}

// CanEmail reports whether a Gmail account and at least one recipient are configured
func (c *Config) CanEmail() bool {
	return c.GmailUserID != "" && len(c.PlanRecipients) > 0
}

// findFile searches for name in the current directory, then the home directory
func findFile(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(homeDir, name)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", name)
}

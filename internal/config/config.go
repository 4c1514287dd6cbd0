package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/shiftdesk/pkg/core/model"
	"github.com/jakechorley/shiftdesk/pkg/notify"
)

// EmployeeSeed defines a rostered employee in the config file
type EmployeeSeed struct {
	ID    string `yaml:"id,omitempty"`
	Name  string `yaml:"name" validate:"required"`
	Role  string `yaml:"role" validate:"required"`
	Color string `yaml:"color,omitempty"`
}

// Notifications controls which notification categories are delivered
type Notifications struct {
	Enabled    bool            `yaml:"enabled"`
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// Sound controls audible feedback volumes
type Sound struct {
	Enabled        bool    `yaml:"enabled"`
	TickVolume     float64 `yaml:"tickVolume" validate:"min=0,max=1"`
	FeedbackVolume float64 `yaml:"feedbackVolume" validate:"min=0,max=1"`
}

// Reminders configures the downstream reminder-scheduling check
type Reminders struct {
	RRule       string `yaml:"rrule,omitempty"`
	LeadMinutes int    `yaml:"leadMinutes" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	DefaultRole            string         `yaml:"defaultRole" validate:"required"`
	DefaultStatus          string         `yaml:"defaultStatus" validate:"required"`
	DefaultStartTime       string         `yaml:"defaultStartTime" validate:"required"`
	DefaultEndTime         string         `yaml:"defaultEndTime" validate:"required"`
	PersistDelayMs         int            `yaml:"persistDelayMs" validate:"min=0"`
	OnboardingNudgeDelayMs int            `yaml:"onboardingNudgeDelayMs" validate:"min=0"`
	Notifications          Notifications  `yaml:"notifications"`
	Sound                  Sound          `yaml:"sound"`
	Reminders              Reminders      `yaml:"reminders"`
	Employees              []EmployeeSeed `yaml:"employees,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the built-in configuration used when no config file is
// present. The draft template values match the form's defaults: Server role,
// a 09:00-17:00 range, status Confirmed.
func Default() *Config {
	return &Config{
		DefaultRole:            string(model.RoleServer),
		DefaultStatus:          string(model.StatusConfirmed),
		DefaultStartTime:       "09:00",
		DefaultEndTime:         "17:00",
		PersistDelayMs:         600,
		OnboardingNudgeDelayMs: 1500,
		Notifications: Notifications{
			Enabled: true,
		},
		Sound: Sound{
			Enabled:        true,
			TickVolume:     0.2,
			FeedbackVolume: 0.6,
		},
		Reminders: Reminders{
			RRule:       "FREQ=DAILY;BYHOUR=9;BYMINUTE=0;BYSECOND=0",
			LeadMinutes: 60,
		},
	}
}

// Load loads and validates the configuration from shiftdesk_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory. If no file exists, the built-in defaults are used.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return Default(), nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the enum-valued fields, and
// the reminder rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if !model.Role(cfg.DefaultRole).IsValid() {
		return fmt.Errorf("invalid defaultRole: %q", cfg.DefaultRole)
	}
	if !model.Status(cfg.DefaultStatus).IsValid() {
		return fmt.Errorf("invalid defaultStatus: %q", cfg.DefaultStatus)
	}

	for i, emp := range cfg.Employees {
		if !model.Role(emp.Role).IsValid() {
			return fmt.Errorf("invalid role in employees[%d]: %q", i, emp.Role)
		}
	}

	// Validate rrule syntax for the reminder cadence
	if cfg.Reminders.RRule != "" {
		if _, err := rrule.StrToRRule(cfg.Reminders.RRule); err != nil {
			return fmt.Errorf("invalid rrule in reminders: %w", err)
		}
	}

	return nil
}

// PersistDelay returns the simulated persistence latency
func (c *Config) PersistDelay() time.Duration {
	return time.Duration(c.PersistDelayMs) * time.Millisecond
}

// OnboardingNudgeDelay returns the delay before the first-shift nudge
func (c *Config) OnboardingNudgeDelay() time.Duration {
	return time.Duration(c.OnboardingNudgeDelayMs) * time.Millisecond
}

// ReminderLead returns how long before shift start reminders should land
func (c *Config) ReminderLead() time.Duration {
	return time.Duration(c.Reminders.LeadMinutes) * time.Minute
}

// NotificationsEnabledFor reports whether notifications in the given
// category should be delivered. An absent category map enables everything.
func (c *Config) NotificationsEnabledFor(category notify.Category) bool {
	if !c.Notifications.Enabled {
		return false
	}
	if len(c.Notifications.Categories) == 0 {
		return true
	}
	enabled, known := c.Notifications.Categories[string(category)]
	if !known {
		return true
	}
	return enabled
}

// RosterEmployees converts the employee seeds into model employees, filling
// in ids and role colors where the config leaves them out
func (c *Config) RosterEmployees() []model.Employee {
	employees := make([]model.Employee, 0, len(c.Employees))
	for i, seed := range c.Employees {
		emp := model.Employee{
			ID:    seed.ID,
			Name:  seed.Name,
			Role:  model.Role(seed.Role),
			Color: seed.Color,
		}
		if emp.ID == "" {
			emp.ID = fmt.Sprintf("emp-%d", i+1)
		}
		if emp.Color == "" {
			if color, ok := model.ColorForRole(emp.Role); ok {
				emp.Color = color
			}
		}
		employees = append(employees, emp)
	}
	return employees
}

// findConfigFile searches for shiftdesk_config.yaml in the current
// directory and the home directory
func findConfigFile() (string, error) {
	configFileName := "shiftdesk_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}

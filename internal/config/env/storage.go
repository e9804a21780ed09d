package envconfig

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type storageEnv struct {
	DataDir          string `env:"STORAGE_DATA_DIR" envDefault:"."`
	RepairsFile      string `env:"STORAGE_REPAIRS_FILE" envDefault:"repairs_data.json"`
	CustomersFile    string `env:"STORAGE_CUSTOMERS_FILE" envDefault:"customers_data.json"`
	InventoryFile    string `env:"STORAGE_INVENTORY_FILE" envDefault:"inventory_data.json"`
	AppointmentsFile string `env:"STORAGE_APPOINTMENTS_FILE" envDefault:"appointments_data.json"`
	SettingsFile     string `env:"STORAGE_SETTINGS_FILE" envDefault:"settings_data.json"`
	BootstrapDemo    bool   `env:"STORAGE_BOOTSTRAP_DEMO" envDefault:"false"`
}

type storage struct {
	raw storageEnv
}

func NewStorageConfig() (*storage, error) {
	var raw storageEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &storage{raw: raw}, nil
}

func (cfg *storage) DataDir() string          { return cfg.raw.DataDir }
func (cfg *storage) RepairsPath() string      { return cfg.path(cfg.raw.RepairsFile) }
func (cfg *storage) CustomersPath() string    { return cfg.path(cfg.raw.CustomersFile) }
func (cfg *storage) InventoryPath() string    { return cfg.path(cfg.raw.InventoryFile) }
func (cfg *storage) AppointmentsPath() string { return cfg.path(cfg.raw.AppointmentsFile) }
func (cfg *storage) SettingsPath() string     { return cfg.path(cfg.raw.SettingsFile) }
func (cfg *storage) BootstrapDemo() bool      { return cfg.raw.BootstrapDemo }

// Absolute file names are used as given, relative ones are resolved against the data dir.
func (cfg *storage) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.raw.DataDir, name)
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SchoolSource lists where one school publishes placement data. URLs
// are fetched over HTTP; Uploads are local files, for schools that only
// publish PDF placement lists (drop the PDF into the data dir).
type SchoolSource struct {
	URLs    []string `yaml:"urls"`
	Uploads []string `yaml:"uploads,omitempty"`
}

// HostRate overrides the fetch rate for one hostname, for sites that
// throttle harder (or tolerate more) than the global default. Omitted
// knobs inherit the defaults.
type HostRate struct {
	RequestsPerSecond float64 `yaml:"requests_per_second,omitempty"`
	Burst             int     `yaml:"burst,omitempty"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Fetch struct {
		TimeoutSeconds    int                 `yaml:"timeout_seconds"`
		RequestsPerSecond float64             `yaml:"requests_per_second"`
		Burst             int                 `yaml:"burst"`
		UserAgent         string              `yaml:"user_agent"`
		HostOverrides     map[string]HostRate `yaml:"host_overrides,omitempty"`
	} `yaml:"fetch"`

	Schools map[string]SchoolSource `yaml:"schools"`

	Filters struct {
		EmployersKeep []string `yaml:"employers_keep"`
		DropAcademia  bool     `yaml:"drop_academia"`
	} `yaml:"filters"`

	Enrich struct {
		Endpoint          string  `yaml:"endpoint"`
		Model             string  `yaml:"model"`
		Concurrency       int     `yaml:"concurrency"`
		RequestsPerSecond float64 `yaml:"requests_per_second"`
	} `yaml:"enrich"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

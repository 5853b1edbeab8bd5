package domain

// DefaultLogFile is the append-only run log written when no override
// is configured.
const DefaultLogFile = "order_status_updater.log"

// SweepConfig is the static per-run configuration: the store roster
// and where the run log goes. Read once at startup, immutable for the
// run.
type SweepConfig struct {
	Stores  []Store `yaml:"stores" json:"stores"`
	LogFile string  `yaml:"log_file" json:"log_file"`
}

// DefaultConfig returns the built-in roster used when no config file
// exists. API keys still come from the environment.
func DefaultConfig() SweepConfig {
	return SweepConfig{
		Stores: []Store{
			{Subdomain: "centricity-test-store", APIKeyEnv: "CENTRICITY_TEST_STORE_API_KEY"},
			{Subdomain: "bonappetit", APIKeyEnv: "BON_APPETIT_API_KEY"},
			{Subdomain: "amentuminventory", APIKeyEnv: "AMENTUM_INVENTORY_API_KEY"},
		},
		LogFile: DefaultLogFile,
	}
}

// WithDefaults fills unset fields. Stores are left as-is: entries with
// gaps are skipped at run time with an error log, not rejected here.
func (c SweepConfig) WithDefaults() SweepConfig {
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	return c
}

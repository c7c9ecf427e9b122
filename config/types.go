package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// CatalogConfig selects where the route and stop catalog comes from.
// Source is either "file" or "postgres"; the matching field must be set.
type CatalogConfig struct {
	Source      string `yaml:"source" validate:"omitempty,oneof=file postgres"`
	Path        string `yaml:"path" validate:"omitempty"`
	DatabaseURL string `yaml:"databaseURL" validate:"omitempty"`
}

// AdvisoryConfig contains the journey advisory service configuration.
// With no URL configured the planner falls back to the built-in heuristic
// when Heuristic is true, or to the standard strategy otherwise.
type AdvisoryConfig struct {
	URL       string `yaml:"url" validate:"omitempty,url"`
	APIKey    string `yaml:"apiKey" validate:"omitempty"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
	Heuristic bool   `yaml:"heuristic"`
}

// PlannerConfig contains search tuning knobs. Zero values mean "use the
// planner default".
type PlannerConfig struct {
	DetourToleranceFactor      float64 `yaml:"detourToleranceFactor" validate:"gte=0"`
	TransferOverheadMins       int     `yaml:"transferOverheadMins" validate:"gte=0"`
	MaxResults                 int     `yaml:"maxResults" validate:"gte=0"`
	DirectPriorityMarginMins   int     `yaml:"directPriorityMarginMins" validate:"gte=0"`
	PreferredHubBonusMins      int     `yaml:"preferredHubBonusMins" validate:"gte=0"`
	NonPreferredHubPenaltyMins int     `yaml:"nonPreferredHubPenaltyMins" validate:"gte=0"`
	DefaultLegFare             float64 `yaml:"defaultLegFare" validate:"gte=0"`
	MinQueryLen                int     `yaml:"minQueryLen" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Advisory AdvisoryConfig `yaml:"advisory"`
	Planner  PlannerConfig  `yaml:"planner"`
}

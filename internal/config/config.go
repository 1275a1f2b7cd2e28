// Package config provides configuration management for the PropsEdge pricing
// and statistics pipelines.
package config

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Pricing  PricingConfig  `mapstructure:"pricing" validate:"required"`
	Staking  StakingConfig  `mapstructure:"staking" validate:"required"`
	HitRates HitRatesConfig `mapstructure:"hit_rates"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// PricingConfig represents the pricing pipeline's policy inputs
type PricingConfig struct {
	// AssumedOverround is the market margin assumed for one-sided
	// (estimated) de-vig; a typical two-way market carries ~0.045
	AssumedOverround float64 `mapstructure:"assumed_overround" validate:"gte=0,lte=0.2"`
	// SharpBook is the reference book forced into top-N displays
	SharpBook string `mapstructure:"sharp_book" validate:"required"`
	// SharpBooks feed the sharp-mean reference price
	SharpBooks []string `mapstructure:"sharp_books" validate:"required,min=1"`
	// PriorityBooks rank ahead of other non-best quotes in displays
	PriorityBooks []string `mapstructure:"priority_books"`
	// ExcludedBooks never participate in best-price selection
	ExcludedBooks []string `mapstructure:"excluded_books"`
	// ReferenceMode selects the edge comparison: book, second_best,
	// sharp_mean or model
	ReferenceMode string `mapstructure:"reference_mode" validate:"required,refmode"`
	// ReferenceBook names the single comparison book for mode "book"
	ReferenceBook string `mapstructure:"reference_book"`
	// TopN is the display ranking depth
	TopN int `mapstructure:"top_n" validate:"gt=0"`
	// GradeThresholds are the minimum EV% per tier (a > b > c)
	GradeThresholds GradeThresholdsConfig `mapstructure:"grade_thresholds"`
}

// GradeThresholdsConfig holds minimum EV% per qualitative tier
type GradeThresholdsConfig struct {
	A float64 `mapstructure:"a"`
	B float64 `mapstructure:"b"`
	C float64 `mapstructure:"c"`
}

// StakingConfig represents the user's staking policy
type StakingConfig struct {
	Bankroll     float64 `mapstructure:"bankroll" validate:"gte=0"`
	KellyPercent float64 `mapstructure:"kelly_percent" validate:"gte=0,lte=100"`
	MaxStake     float64 `mapstructure:"max_stake" validate:"gte=0"`
}

// HitRatesConfig represents statistics pipeline configuration
type HitRatesConfig struct {
	// MemoTTLSeconds bounds how long memoized results live; 0 disables
	// the memo table entirely
	MemoTTLSeconds int `mapstructure:"memo_ttl_seconds" validate:"gte=0"`
}

// MetricsConfig represents metrics endpoint configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Path    string `mapstructure:"path"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new packing jobs
	DefaultCarrier string `json:"default_carrier"`
	DefaultSort    string `json:"default_sort"`

	// Application preferences
	RecentJobs    []string `json:"recent_jobs"`
	MaxRecentJobs int      `json:"max_recent_jobs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultCarrier: "Generic",
		DefaultSort:    "volume",
		RecentJobs:     []string{},
		MaxRecentJobs:  10,
	}
}

// AddRecentJob records a job file path at the front of the recent list,
// deduplicating and trimming to the configured maximum.
func (c *AppConfig) AddRecentJob(path string) {
	max := c.MaxRecentJobs
	if max <= 0 {
		max = 10
	}
	recent := []string{path}
	for _, p := range c.RecentJobs {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > max {
		recent = recent[:max]
	}
	c.RecentJobs = recent
}

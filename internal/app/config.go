package app

import "errors"

// Config holds everything an App instance needs to run one build.
type Config struct {
	// BuildFile is the path to a .hcl build file or a directory of them.
	BuildFile string
	// Targets are the requested target names, in execution order. Empty
	// means the project's default target.
	Targets []string
	// UserProperties are -D overrides, seeded with user origin before the
	// build file is applied.
	UserProperties map[string]string

	LogFormat string
	LogLevel  string

	// ListTargets prints the project's targets and descriptions instead of
	// executing.
	ListTargets bool
	// SkipGraphCheck disables the full-graph validation pass performed
	// after each execution-order computation.
	SkipGraphCheck bool
}

// NewConfig validates cfg and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.BuildFile == "" {
		return nil, errors.New("a build file path is required")
	}
	return &cfg, nil
}

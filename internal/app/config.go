package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command string   // list, lookup or resolve
	Args    []string // positional arguments after the command

	TargetsJSONPath string // targets.json file, or a directory to search
	DatabaseMode    string // auto, offline or online
	ProductCode     string // lookup criterion
	Slug            string // lookup criterion, paired with TargetType
	TargetType      string // lookup criterion, paired with Slug

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Command == "" {
		return nil, errors.New("Command is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}

package config

import _ "embed"

// DefaultConfigYAML is the embedded default configuration. External
// files and CLUBFUND_* environment variables override it.
//
//go:embed config.default.yaml
var DefaultConfigYAML []byte

//go:build setup_expander

package config

const Selected = SetupPicoExpander

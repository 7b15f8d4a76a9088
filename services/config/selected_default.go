//go:build !setup_expander

package config

// Selected names the setup compiled into the firmware.
const Selected = SetupPicoDefault

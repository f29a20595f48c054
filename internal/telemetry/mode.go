package telemetry

import (
	"fmt"
	"strings"
)

// set of telemetry flags
const (
	FlagMode      = "telemetry"
	FlagModeUsage = `Track command events (Allowed values: "on" writes them to the profile directory, "stdout", "off")`
)

// Mode is the telemetry mode
type Mode string

// set of supported telemetry modes
const (
	ModeEmpty  Mode = "" // zero-valued to be flag's default
	ModeOn     Mode = "on"
	ModeStdout Mode = "stdout"
	ModeOff    Mode = "off"
)

func (m Mode) String() string { return string(m) }

// Type returns the Mode type
func (m Mode) Type() string { return "string" }

// Set validates and sets the telemetry mode value
func (m *Mode) Set(val string) error {
	mode := Mode(strings.ToLower(val))

	if !isValidMode(mode) {
		return fmt.Errorf("unsupported value, use one of [%s, %s, %s] instead", ModeOn, ModeStdout, ModeOff)
	}

	*m = mode
	return nil
}

func isValidMode(mode Mode) bool {
	switch mode {
	case
		ModeEmpty,
		ModeOn,
		ModeStdout,
		ModeOff:
		return true
	}
	return false
}

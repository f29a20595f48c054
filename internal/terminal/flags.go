package terminal

import (
	"fmt"
	"strings"
)

// set of terminal ui flags
const (
	FlagAutoConfirm      = "yes"
	FlagAutoConfirmShort = "y"
	FlagAutoConfirmUsage = "Automatically proceed through command confirmations"

	FlagDisableColors      = "disable-colors"
	FlagDisableColorsUsage = "Disable all CLI output styling (e.g. colors, font styles, etc.)"

	FlagOutputFormat      = "output-format"
	FlagOutputFormatShort = "f"
	FlagOutputFormatUsage = `Set the CLI output format (Default value: "text"; Allowed values: "text", "json")`

	FlagOutputTarget      = "output-target"
	FlagOutputTargetShort = "o"
	FlagOutputTargetUsage = "Write CLI output to the specified filepath"
)

// OutputFormat is the terminal output format
type OutputFormat string

// set of supported terminal output formats
const (
	OutputFormatText OutputFormat = "" // zero-valued to be flag's default
	OutputFormatJSON OutputFormat = "json"
)

const outputFormatTextName = "text"

func (of OutputFormat) String() string {
	if of == OutputFormatText {
		return outputFormatTextName
	}
	return string(of)
}

// Type returns the OutputFormat type
func (of OutputFormat) Type() string { return "OutputFormat" }

// Set validates and sets the output format value
func (of *OutputFormat) Set(val string) error {
	outputFormat := OutputFormat(strings.ToLower(val))
	if outputFormat == outputFormatTextName {
		outputFormat = OutputFormatText
	}

	if !isValidOutputFormat(outputFormat) {
		return fmt.Errorf("unsupported value, use one of [%s, %s] instead", OutputFormatText, OutputFormatJSON)
	}

	*of = outputFormat
	return nil
}

func isValidOutputFormat(outputFormat OutputFormat) bool {
	switch outputFormat {
	case
		OutputFormatJSON,
		OutputFormatText:
		return true
	}
	return false
}

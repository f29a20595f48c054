package cli

var (
	// Name represents the CLI name; used for invoking the CLI commands
	Name = "smartlms"

	// Version represents the CLI version
	Version = "0.0.0" // value will be injected at build-time
)

// RequestOrigin identifies the CLI to the SmartLMS server
func RequestOrigin() string {
	return Name + "-cli/" + Version
}

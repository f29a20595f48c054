package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/smartlms/smartlms-cli/internal/api"
	"github.com/smartlms/smartlms-cli/internal/cli/user"
	"github.com/smartlms/smartlms-cli/internal/cloud/lms"
	"github.com/smartlms/smartlms-cli/internal/telemetry"
	"github.com/smartlms/smartlms-cli/internal/terminal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagDebug      = "debug"
	flagDebugUsage = "Log every request made to the SmartLMS server"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile   *user.Profile
	ui        terminal.UI
	uiConfig  terminal.UIConfig
	inReader  *os.File
	outWriter *os.File
	errWriter *os.File
	errLogger zerolog.Logger
	debug     bool
	telemetry telemetry.Service

	newClients func() Clients
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	profile, err := user.NewDefaultProfile()
	if err != nil {
		return nil, err
	}

	factory := &CommandFactory{
		profile:   profile,
		errLogger: newLogger(os.Stderr, zerolog.ErrorLevel),
	}
	factory.newClients = factory.clients
	return factory, nil
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command == nil {
		return &cmd
	}

	if command, ok := command.Command.(CommandFlags); ok {
		fs := cmd.Flags()
		fs.SortFlags = false // ensures command flags are added unsorted
		command.Flags(fs)
	}

	cmd.PersistentPreRun = func(c *cobra.Command, a []string) {
		factory.ensureUI()
		c.SetIn(factory.inReader)
		c.SetOut(factory.outWriter)
		c.SetErr(factory.errWriter)

		if err := factory.profile.ResolveFlags(); err != nil {
			factory.ui.Print(terminal.NewErrorLog(err))
			os.Exit(1)
		}
	}

	if command, ok := command.Command.(CommandInputs); ok {
		cmd.PreRunE = func(c *cobra.Command, a []string) error {
			if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
				return fmt.Errorf("%s setup failed: %w", display, err)
			}
			return nil
		}
	}

	cmd.RunE = func(c *cobra.Command, a []string) error {
		ctx := c.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		factory.telemetry = telemetry.NewService(telemetry.Config{
			Mode:     factory.profile.Flags.TelemetryMode,
			Username: factory.profile.User().Username,
			Command:  display,
			Version:  Version,
			Fs:       factory.profile.Fs(),
			Dir:      factory.profile.Dir(),
			Stdout:   factory.outWriter,
		})
		factory.telemetry.TrackEvent(telemetry.EventTypeCommandStart)

		if err := factory.handle(ctx, command.Command); err != nil {
			factory.telemetry.TrackEvent(telemetry.EventTypeCommandError, telemetry.EventDataError(err))
			return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
		}

		factory.telemetry.TrackEvent(telemetry.EventTypeCommandComplete)
		return nil
	}

	return &cmd
}

func (factory *CommandFactory) handle(ctx context.Context, command Command) error {
	loggedIn := factory.profile.Session().AccessToken != ""

	err := command.Handler(ctx, factory.profile, factory.ui, factory.newClients())
	if err == nil {
		return nil
	}

	// a 401 which ended a stored session means the user must log in again
	var expired ErrSessionExpired
	if loggedIn && factory.profile.Session().AccessToken == "" && api.IsUnauthorized(err) && !errors.As(err, &expired) {
		return ErrSessionExpired{err}
	}
	return err
}

func (factory *CommandFactory) clients() Clients {
	logger := zerolog.Nop()
	if factory.debug {
		logger = newLogger(factory.errWriter, zerolog.DebugLevel)
	}

	authClient := api.NewAuthClient(
		api.NewClient(factory.profile.Flags.BaseURL, nil),
		factory.profile,
		api.WithLogger(logger),
		api.WithDefaultHeader(api.HeaderRequestOrigin, RequestOrigin()),
		api.WithSessionInvalidatedHandler(func(cause error) {
			factory.ui.Print(terminal.NewWarningLog("Your session has expired and the stored credentials were cleared"))
		}),
	)

	return Clients{LMS: lms.NewClient(authClient)}
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.telemetry != nil {
		factory.telemetry.Close()
	}
	if factory.uiConfig.OutputTarget != "" && factory.outWriter != nil {
		factory.outWriter.Close()
	}
}

// Run executes the command and returns the exit code
func (factory *CommandFactory) Run(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	handleUsage(cmd, err)

	if factory.ui == nil {
		factory.errLogger.Error().Err(err).Send()
		return 1
	}

	logs := []terminal.Log{terminal.NewErrorLog(err)}

	var suggester CommandSuggester
	if errors.As(err, &suggester) {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommand, suggester.SuggestedCommands()...))
	}

	factory.ui.Print(logs...)
	return 1
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, user.FlagProfile, user.DefaultProfile, user.FlagProfileUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, terminal.FlagOutputTargetShort, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)
	fs.BoolVar(&factory.debug, flagDebug, false, flagDebugUsage)
	fs.Var(&factory.profile.Flags.TelemetryMode, telemetry.FlagMode, telemetry.FlagModeUsage)

	// hidden flags
	fs.StringVar(&factory.profile.Flags.BaseURL, user.FlagBaseURL, "", user.FlagBaseURLUsage)
	_ = fs.MarkHidden(user.FlagBaseURL)
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal().Err(err).Msg("failed to load CLI profile")
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal().Err(err).Msg("failed to open target file")
		}
		factory.outWriter = f
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func handleUsage(cmd *cobra.Command, err error) {
	var disableUsage DisableUsage
	if errors.As(err, &disableUsage) {
		return
	}
	cmd.Println(cmd.UsageString())
}

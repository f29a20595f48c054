package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/smartlms/smartlms-cli/internal/cli"
	"github.com/smartlms/smartlms-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to learn and teach on SmartLMS",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Whoami))
	cmd.AddCommand(factory.Build(commands.Login))
	cmd.AddCommand(factory.Build(commands.Logout))
	cmd.AddCommand(factory.Build(commands.Register))
	cmd.AddCommand(factory.Build(commands.Dashboard))
	cmd.AddCommand(factory.Build(commands.Course))
	cmd.AddCommand(factory.Build(commands.Module))
	cmd.AddCommand(factory.Build(commands.Lesson))
	cmd.AddCommand(factory.Build(commands.Enroll))
	cmd.AddCommand(factory.Build(commands.Enrollment))
	cmd.AddCommand(factory.Build(commands.Certificate))
	cmd.AddCommand(factory.Build(commands.Announcement))
	cmd.AddCommand(factory.Build(commands.Comment))
	cmd.AddCommand(factory.Build(commands.User))
	cmd.AddCommand(factory.Build(commands.Profile))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := factory.Run(ctx, cmd)

	stop()
	factory.Close()
	os.Exit(code)
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/loykin/svcman"
	"github.com/loykin/svcman/internal/config"
)

// GlobalFlags holds the persistent flags shared by all subcommands.
type GlobalFlags struct {
	ConfigPath string
}

// command binds the subcommand handlers to lazily-constructed state.
type command struct {
	flags *GlobalFlags
}

// buildRoot creates the root command and wires the subcommands.
func buildRoot() *cobra.Command {
	globalFlags := &GlobalFlags{}
	c := command{flags: globalFlags}

	root := createRootCommand(globalFlags)
	root.AddCommand(
		createStartCommand(c),
		createStopCommand(c),
		createListCommand(c),
	)
	return root
}

func createRootCommand(flags *GlobalFlags) *cobra.Command {
	root := &cobra.Command{
		Use:   "svcman",
		Short: "Minimal local service manager",
		Long: `svcman starts binaries as detached background services and stops them
again by path. The service registry is a single file under
~/.config/svcman; the binary path is the service identifier.

Examples:
  svcman start /usr/local/bin/myd
  svcman stop /usr/local/bin/myd
  svcman list`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.ConfigPath, "config", "", "path to TOML config file (optional)")

	return root
}

func createStartCommand(c command) *cobra.Command {
	return &cobra.Command{
		Use:   "start <binary_path>",
		Short: "Start a binary as a background service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Start(args[0])
		},
	}
}

func createStopCommand(c command) *cobra.Command {
	return &cobra.Command{
		Use:   "stop <binary_path>",
		Short: "Stop the service started from the given binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Stop(args[0])
		},
	}
}

func createListCommand(c command) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered services",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.List()
		},
	}
}

// newManager loads the optional config file and assembles the manager
// with its logger and history sink.
func (c command) newManager() (*svcman.Manager, error) {
	fc, err := config.Load(c.flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	logger := fc.LoggerConfig().NewSlogger()
	slog.SetDefault(logger)

	return svcman.New(svcman.Options{
		HistoryDSN: fc.HistoryDSN(),
		Logger:     logger,
	})
}

// Start launches the binary and registers it. A duplicate path is the
// recorded no-op outcome: reported, exit status zero.
func (c command) Start(binaryPath string) error {
	mgr, err := c.newManager()
	if err != nil {
		return err
	}
	rec, err := mgr.Start(binaryPath)
	if err != nil {
		if errors.Is(err, svcman.ErrAlreadyExists) {
			_, _ = fmt.Fprintf(os.Stderr, "Service with binary path %s already exists\n", binaryPath)
			return nil
		}
		return err
	}
	fmt.Printf("Service with binary path %s started (pid %d)\n", rec.BinaryPath, rec.PID)
	return nil
}

// Stop kills the registered service and removes it from the registry.
func (c command) Stop(binaryPath string) error {
	mgr, err := c.newManager()
	if err != nil {
		return err
	}
	rec, err := mgr.Stop(binaryPath)
	if err != nil {
		return err
	}
	fmt.Printf("Service with binary path %s stopped\n", rec.BinaryPath)
	return nil
}

// List prints the registry contents as indented JSON.
func (c command) List() error {
	mgr, err := c.newManager()
	if err != nil {
		return err
	}
	reg, err := mgr.List()
	if err != nil {
		return err
	}
	printJSON(reg)
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/quintus/internal/archive"
	"codeberg.org/snonux/quintus/internal/cli"
	"codeberg.org/snonux/quintus/internal/logging"
	"codeberg.org/snonux/quintus/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, rootCmd)
	stop()
	os.Exit(code)
}

// execute runs the command and returns the process exit code. Errors go
// through the structured logger instead of cobra's plain printer.
func execute(ctx context.Context, rootCmd *cobra.Command) int {
	rootCmd.SilenceErrors = true
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Error("quintus failed", "error", err)
		return 1
	}
	return 0
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cli.ResolveFlags(flags)

	if err := setupLogging(flags); err != nil {
		return err
	}

	// Handle --archive flag
	if flags.Archive {
		path, err := archive.ArchiveOutput(flags.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to archive output: %w", err)
		}
		fmt.Printf("Output directory archived to: %s\n", path)
		return nil
	}

	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}

	// Handle --list-sounds flag
	if flags.ListSounds {
		return proc.ListSounds(cmd.OutOrStdout())
	}

	// Single word mode
	if len(args) > 0 {
		return proc.ProcessWord(cmd.OutOrStdout(), args[0])
	}

	if _, err := proc.Run(cmd.Context()); err != nil {
		return err
	}

	fmt.Printf("\nDone! Sound table saved to: %s\n", flags.OutputDir)
	return nil
}

func setupLogging(flags *cli.Flags) error {
	level, err := logging.ParseLevel(flags.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(flags.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(os.Stderr, level, format)
	return nil
}

package main

import (
	"fmt"
	"log/slog"

	colorkey "github.com/gcslaoli/colorkey-go"
	"github.com/gcslaoli/colorkey-go/handler/console"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "colorkey [file]",
		Short:         "Make the (200, 191, 231) background of an image transparent",
		Long:          "colorkey replaces every pixel colored (200, 191, 231) with a fully transparent pixel and writes the result to new-<file> in the current directory.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each conversion step")

	return cmd
}

func runConvert(cmd *cobra.Command, args []string, verbose bool) error {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No image file specified")
		return nil
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(console.New(cmd.ErrOrStderr(), level))

	conv := colorkey.NewConverter(colorkey.WithLogger(logger))
	res, err := conv.ConvertFile(args[0], "")
	if err != nil {
		return err
	}

	logger.Info("converted",
		"input", res.Input,
		"output", res.Output,
		"format", res.Format,
		"keyed", res.Stats.Keyed,
		"pixels", res.Stats.Pixels,
	)
	return nil
}

// chromacy renders colour-blindness simulations and channel patterns.
//
// Usage:
//
//	chromacy monochromacy <filter> <image> [output]
//	chromacy dichromacy <red|green|blue> <filter> <image> [output]
//	chromacy pattern <pattern> <image> [output]
//
// Filters are read from <assets>/filters and patterns from
// <assets>/patterns.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/32bitkid/chromacy"
	"github.com/32bitkid/chromacy/filter"
)

type config struct {
	assets  string
	workers int
	verbose bool
}

func (c *config) options(stderr io.Writer) chromacy.Options {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	return chromacy.Options{
		Workers: c.workers,
		Logger:  slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	}
}

func (c *config) run(cmd *cobra.Command, job chromacy.Job) error {
	_, err := chromacy.Run(job, chromacy.NewLibrary(c.assets), c.options(cmd.ErrOrStderr()))
	return err
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:           "chromacy",
		Short:         "Simulate colour-vision deficiencies and overlay channel patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&cfg.assets, "assets", ".", "directory holding the filters and patterns directories")
	flags.IntVarP(&cfg.workers, "workers", "j", 0, "goroutines used per image (0 = one per CPU)")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log every step")

	root.AddCommand(
		&cobra.Command{
			Use:     "monochromacy <filter> <image> [output]",
			Aliases: []string{"1", "mono"},
			Short:   "Collapse the image to grayscale through a filter mask",
			Args:    cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return cfg.run(cmd, chromacy.Job{
					Mode:   chromacy.Monochromacy,
					Mask:   args[0],
					Source: args[1],
					Output: optional(args, 2),
				})
			},
		},
		&cobra.Command{
			Use:     "dichromacy <red|green|blue> <filter> <image> [output]",
			Aliases: []string{"2", "di"},
			Short:   "Replace stencilled pixels with the missing colour's intensity",
			Args:    cobra.RangeArgs(3, 4),
			RunE: func(cmd *cobra.Command, args []string) error {
				missing, err := filter.ParseChannel(args[0])
				if err != nil {
					return err
				}
				return cfg.run(cmd, chromacy.Job{
					Mode:    chromacy.Dichromacy,
					Missing: missing,
					Mask:    args[1],
					Source:  args[2],
					Output:  optional(args, 3),
				})
			},
		},
		&cobra.Command{
			Use:   "pattern <pattern> <image> [output]",
			Short: "Render a grayscale channel-pattern composite",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return cfg.run(cmd, chromacy.Job{
					Mode:   chromacy.Pattern,
					Mask:   args[0],
					Source: args[1],
					Output: optional(args, 2),
				})
			},
		},
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "chromacy: %v\n", err)
		os.Exit(1)
	}
}

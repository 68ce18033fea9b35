// Package main is contentcheck, an offline validator for the site's content
// documents. It loads every document the way the site does and reports, per
// resource, whether it loads, whether its structure is sound and how many
// entities survive the shape and visibility filters.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/exclusive-events/internal/adapters/content"
	"github.com/jsamuelsen11/exclusive-events/internal/platform/config"
)

var errStructure = errors.New("content has structural problems")

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "contentcheck [dir]",
		Short: "Validate the site's content documents",
		Long: `contentcheck loads the JSON content documents from dir, or the embedded
defaults when dir is omitted, and reports what the site would display.

It exits with status 1 when a document cannot be loaded or lacks its
expected structure. Entities rejected by validation are reported but only
fail the check with --strict.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg config.ContentConfig
			if len(args) == 1 {
				info, err := os.Stat(args[0])
				if err != nil {
					return fmt.Errorf("content directory: %w", err)
				}
				if !info.IsDir() {
					return fmt.Errorf("content directory: %s is not a directory", args[0])
				}
				cfg.Dir = args[0]
			}

			report := content.NewLoaderFromConfig(&cfg).Check(cmd.Context())
			if err := writeReport(out, report); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			if !report.OK() {
				return errStructure
			}
			if n := report.Dropped(); strict && n > 0 {
				return fmt.Errorf("%d entities rejected by validation", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any entity is rejected by validation")
	return cmd
}

func writeReport(out io.Writer, report content.Report) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RESOURCE\tFILE\tENTITIES\tVALID\tSHOWN\tSTATUS")
	for _, res := range report.Resources {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			res.Resource, res.File, res.Entities, res.Valid, res.Shown, status(res))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, res := range report.Resources {
		if res.Err != nil {
			fmt.Fprintf(out, "%s: %v\n", res.Resource, res.Err)
		}
		for _, p := range res.Problems {
			fmt.Fprintf(out, "%s: %s\n", res.Resource, p)
		}
	}
	return nil
}

func status(res content.ResourceReport) string {
	switch {
	case res.Err != nil:
		return "unavailable"
	case len(res.Problems) > 0:
		return "invalid"
	case res.Dropped() > 0:
		return fmt.Sprintf("ok (%d dropped)", res.Dropped())
	default:
		return "ok"
	}
}

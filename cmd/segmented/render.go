package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/segmented/internal/config"
	"github.com/alexisbeaulieu97/segmented/internal/diagnostics"
	"github.com/alexisbeaulieu97/segmented/internal/styles"
)

type renderOptions struct {
	width int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <scene.yaml>",
		Short: "Render a scene file once to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flags)
			if err != nil {
				return err
			}

			scene, err := config.ParseScene(args[0])
			if err != nil {
				log.Error(err, "failed to load scene")
				return err
			}

			width := opts.width
			if width <= 0 {
				width = detectWidth()
			}

			sink := diagnostics.NewLoggerSink(log.WithComponent("group"))
			groups := config.BuildGroups(scene, sink, styles.DefaultTheme())

			out := cmd.OutOrStdout()
			for _, g := range groups {
				g.SetWidth(width)
				fmt.Fprintln(out, g.Describe())
				fmt.Fprintln(out, g.View())
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Render width in columns (default: terminal width)")

	return cmd
}

// detectWidth returns the terminal width when stdout is a TTY, or a
// conservative default.
func detectWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

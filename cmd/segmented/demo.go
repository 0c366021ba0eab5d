package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/segmented/internal/config"
	"github.com/alexisbeaulieu97/segmented/internal/diagnostics"
	"github.com/alexisbeaulieu97/segmented/internal/styles"
	"github.com/alexisbeaulieu97/segmented/internal/tui"
)

func newDemoCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo [scene.yaml]",
		Short: "Launch the interactive demo",
		Long:  `Launch the interactive demo. Without a scene file a built-in showcase scene is used.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runDemo(flags, path)
		},
	}
}

func runDemo(flags *rootFlags, path string) error {
	log, err := newLogger(flags)
	if err != nil {
		return err
	}

	var scene *config.Scene
	if path != "" {
		scene, err = config.ParseScene(path)
	} else {
		scene, err = config.ParseSceneBytes([]byte(builtinScene))
	}
	if err != nil {
		log.Error(err, "failed to load scene")
		return err
	}

	capture := &diagnostics.Capture{}
	groups := config.BuildGroups(scene, capture, styles.DefaultTheme())

	m := tui.NewModel(scene.Name, groups, capture, log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

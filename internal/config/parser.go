package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	segmentederrors "github.com/alexisbeaulieu97/segmented/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseScene loads a scene file from disk, validates it, and returns the
// resulting model.
func ParseScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, segmentederrors.NewParseError(path, 0, err)
	}

	scene, err := ParseSceneBytes(data)
	if err != nil {
		if pe, ok := err.(*segmentederrors.ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return scene, nil
}

// ParseSceneBytes decodes and validates an in-memory scene document.
func ParseSceneBytes(data []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, segmentederrors.NewParseError("", extractLine(err), err)
	}

	if err := ValidateScene(&scene); err != nil {
		return nil, err
	}

	return &scene, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}

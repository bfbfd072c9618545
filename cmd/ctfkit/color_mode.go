package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type colorMode string

const (
	colorModeAuto colorMode = "auto"
	colorModeOn   colorMode = "on"
	colorModeOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorModeAuto, nil
	case "on":
		return colorModeOn, nil
	case "off":
		return colorModeOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// configureColor applies the persistent --color flag to the global color
// state before any output happens.
func configureColor(cmd *cobra.Command) error {
	value, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	mode, err := readColorMode(value)
	if err != nil {
		return err
	}
	switch mode {
	case colorModeOn:
		color.NoColor = false
	case colorModeOff:
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
	return nil
}

func quietEnabled(cmd *cobra.Command) bool {
	quiet, err := cmd.Flags().GetBool("quiet")
	return err == nil && quiet
}

// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toeirei/keyforge/internal/chart"
	"github.com/toeirei/keyforge/internal/i18n"
)

// newChartCmd represents the 'chart' command. It prints one row per
// exclusion catalog entry with a freshly generated sample.
func newChartCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "chart",
		Short: i18n.T("chart.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			color := !plain && term.IsTerminal(int(os.Stdout.Fd()))
			return chart.Render(cmd.OutOrStdout(), color)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "force unstyled output")

	return cmd
}

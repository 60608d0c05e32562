// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/toeirei/keyforge/internal/i18n"
	"github.com/toeirei/keyforge/internal/keygen"
)

// uuidConfig is the fixed recipe for UUID-shaped keys: 32 hex-range
// characters, dashes at the canonical 8-4-4-4-12 group boundaries, and an
// alphabet restricted to the characters a UUID may contain.
func uuidConfig() keygen.Config {
	return keygen.Config{
		Length:  32,
		Sep:     "-",
		SepAt:   []int{8, 12, 16, 20},
		Exclude: "non_rfc_4122",
	}
}

// newUUIDCmd represents the 'uuid' command.
func newUUIDCmd() *cobra.Command {
	var validate bool

	cmd := &cobra.Command{
		Use:   "uuid",
		Short: i18n.T("uuid.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := uuidConfig()
			g, err := keygen.New(cfg, keygen.WithSink(sink))
			if err != nil {
				return err
			}
			key, err := g.Key()
			if err != nil {
				return err
			}
			if validate {
				if _, err := uuid.Parse(key.String()); err != nil {
					return errors.New(i18n.T("uuid.invalid"))
				}
			}
			return emit(cmd, keygen.SingleOutput(key), cfg)
		},
	}

	cmd.Flags().BoolVar(&validate, "validate", false, "check the result parses as a UUID")
	addOutputFlags(cmd)

	return cmd
}

// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/toeirei/keyforge/internal/i18n"
	"github.com/toeirei/keyforge/internal/keygen"
	"github.com/toeirei/keyforge/internal/wordlist"
)

// newWordsCmd represents the 'words' command. It builds a passphrase from
// randomly sampled dictionary words instead of single characters.
func newWordsCmd() *cobra.Command {
	var (
		count    int
		sep      string
		sepWidth int
		unique   bool
		dict     string
	)

	cmd := &cobra.Command{
		Use:   "words",
		Short: i18n.T("words.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var provider keygen.WordProvider
			if dict != "" {
				list, err := wordlist.Load(dict)
				if err != nil {
					return err
				}
				provider = list
			} else {
				list, err := wordlist.Default()
				if err != nil {
					return err
				}
				provider = list
			}

			cfg := keygen.Config{
				UseWords:  true,
				WordCount: count,
				Unique:    unique,
				Sep:       sep,
				SepWidth:  sepWidth,
			}
			g, err := keygen.New(cfg, keygen.WithSink(sink), keygen.WithWordProvider(provider))
			if err != nil {
				return err
			}
			key, err := g.Key()
			if err != nil {
				return err
			}
			return emit(cmd, keygen.SingleOutput(key), cfg)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 4, "number of words in the passphrase")
	cmd.Flags().StringVarP(&sep, "sep", "s", "-", "separator between words")
	cmd.Flags().IntVar(&sepWidth, "sep-width", 0, "re-wrap the joined phrase at this width instead")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "only use words with no repeated letters")
	cmd.Flags().StringVar(&dict, "dict", "", "path to a custom word list (JSON)")
	addOutputFlags(cmd)

	return cmd
}

// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toeirei/keyforge/internal/db"
	"github.com/toeirei/keyforge/internal/i18n"
)

// newHistoryCmd represents the 'history' command. It lists recorded key
// fingerprints and their generation parameters, newest first.
func newHistoryCmd() *cobra.Command {
	var audit bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: i18n.T("history.short"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openStore(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if audit {
				entries, err := db.GetAllAuditLogEntries()
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintf(w, "%s  %s  %s  %s\n", e.Timestamp, e.Username, e.Action, e.Details)
				}
				return nil
			}

			records, err := db.GetKeyHistory()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(w, i18n.T("history.empty"))
				return nil
			}
			fmt.Fprintf(w, "%-20s %-12s %6s  %-24s %s\n",
				i18n.T("history.header.created"),
				i18n.T("history.header.label"),
				i18n.T("history.header.length"),
				i18n.T("history.header.charset"),
				i18n.T("history.header.fingerprint"))
			for _, r := range records {
				fp := r.Fingerprint
				if len(fp) > 16 {
					fp = fp[:16]
				}
				fmt.Fprintf(w, "%-20s %-12s %6d  %-24s %s\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"), r.Label, r.Length, r.Charset, fp)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&audit, "audit", false, "show the audit log instead of key records")

	return cmd
}

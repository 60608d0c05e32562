// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/toeirei/keyforge/internal/db"
	"github.com/toeirei/keyforge/internal/export"
	"github.com/toeirei/keyforge/internal/i18n"
	"github.com/toeirei/keyforge/internal/keygen"
	"github.com/toeirei/keyforge/internal/model"
	"github.com/toeirei/keyforge/internal/qr"
)

// genOpts holds the flag values shared by the root command and the
// explicit generate subcommand.
type genOpts struct {
	length       int
	count        int
	workers      int
	exclude      string
	excludeIndex int
	includeAll   bool
	unique       bool
	bypassUnique bool
	encode       bool
	urlsafe      bool
	sep          string
	sepWidth     int
	sepAt        []int
	copyOut      bool
	outFile      string
	format       string
	compress     bool
	overwrite    bool
	label        string
	record       bool
	qrFile       string
	qrTerm       bool
}

var gen genOpts

// addGenerateFlags registers the generation flags on cmd.
func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&gen.length, "length", "l", keygen.DefaultKeyLength, i18n.T("flag.length"))
	f.IntVarP(&gen.count, "count", "n", 1, i18n.T("flag.count"))
	f.IntVar(&gen.workers, "workers", 0, "worker goroutines for bulk generation (0 = one per CPU)")
	f.StringVarP(&gen.exclude, "exclude", "x", "", i18n.T("flag.exclude"))
	f.IntVar(&gen.excludeIndex, "exclude-index", 0, i18n.T("flag.exclude_index"))
	f.BoolVar(&gen.includeAll, "include-all", false, i18n.T("flag.include_all"))
	f.BoolVarP(&gen.unique, "unique", "u", false, i18n.T("flag.unique"))
	f.BoolVar(&gen.bypassUnique, "bypass-unique-limit", false, "disable uniqueness instead of failing when the alphabet is too small")
	f.BoolVar(&gen.encode, "encode", false, "base64-encode the key")
	f.BoolVar(&gen.urlsafe, "urlsafe", false, "URL-safe base64-encode the key")
	f.StringVarP(&gen.sep, "sep", "s", "", "separator character for wrapping")
	f.IntVar(&gen.sepWidth, "sep-width", 0, "characters between separators (0 = default width when --sep is set)")
	f.IntSliceVar(&gen.sepAt, "sep-at", nil, "explicit separator offsets")
	f.BoolVarP(&gen.copyOut, "copy", "c", false, i18n.T("flag.copy"))
	f.StringVarP(&gen.outFile, "out", "o", "", i18n.T("flag.out"))
	f.StringVar(&gen.format, "format", string(export.FormatJSON), `bundle export format ("json", "yaml")`)
	f.BoolVar(&gen.compress, "compress", false, "zstd-compress exported files")
	f.BoolVar(&gen.overwrite, "overwrite", false, "overwrite an existing export file")
	f.StringVar(&gen.label, "label", "", "label for the history record")
	f.BoolVar(&gen.record, "record", false, "record a fingerprint of the key in the history database")
	f.StringVar(&gen.qrFile, "qr", "", i18n.T("flag.qr"))
	f.BoolVar(&gen.qrTerm, "qr-terminal", false, i18n.T("flag.qr_terminal"))
}

// addOutputFlags registers just the output-side flags for commands that
// fix their own generation parameters.
func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVarP(&gen.copyOut, "copy", "c", false, i18n.T("flag.copy"))
	f.StringVarP(&gen.outFile, "out", "o", "", i18n.T("flag.out"))
	f.BoolVar(&gen.compress, "compress", false, "zstd-compress exported files")
	f.BoolVar(&gen.overwrite, "overwrite", false, "overwrite an existing export file")
	f.StringVar(&gen.label, "label", "", "label for the history record")
	f.BoolVar(&gen.record, "record", false, "record a fingerprint of the key in the history database")
	f.StringVar(&gen.qrFile, "qr", "", i18n.T("flag.qr"))
	f.BoolVar(&gen.qrTerm, "qr-terminal", false, i18n.T("flag.qr_terminal"))
}

// newGenerateCmd represents the 'generate' command.
func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: i18n.T("generate.short"),
		Long:  i18n.T("generate.long"),
		RunE:  runGenerate,
	}
	addGenerateFlags(cmd)
	return cmd
}

func (o genOpts) config() keygen.Config {
	return keygen.Config{
		Length:            o.length,
		Exclude:           o.exclude,
		ExcludeIndex:      o.excludeIndex,
		IncludeAll:        o.includeAll,
		Unique:            o.unique,
		BypassUniqueLimit: o.bypassUnique,
		Encoded:           o.encode,
		URLSafeEncoded:    o.urlsafe,
		Sep:               o.sep,
		SepWidth:          o.sepWidth,
		SepAt:             o.sepAt,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := gen.config()

	var out keygen.Output
	if gen.count > 1 {
		bundle, err := keygen.GenerateBundle(cfg, gen.count, gen.workers, keygen.WithSink(sink))
		if err != nil {
			return err
		}
		out = keygen.BundleOutput(bundle)
	} else {
		g, err := keygen.New(cfg, keygen.WithSink(sink))
		if err != nil {
			return err
		}
		key, err := g.Key()
		if err != nil {
			return err
		}
		out = keygen.SingleOutput(key)
	}

	return emit(cmd, out, cfg)
}

// emit handles the output side shared by all generating commands:
// printing, clipboard, export and history recording.
func emit(cmd *cobra.Command, out keygen.Output, cfg keygen.Config) error {
	rendered := renderOutput(out)

	if gen.outFile != "" {
		exp := &export.Exporter{
			Overwrite: gen.overwrite,
			Compress:  gen.compress,
			Sink:      sink,
		}
		path, err := exp.ExportOutput(out, gen.outFile, export.Format(gen.format))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), i18n.T("generate.exported")+"\n", path)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
	}

	if gen.copyOut {
		if err := clipboard.WriteAll(rendered); err != nil {
			return fmt.Errorf("clipboard copy failed: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("generate.copied"))
	}

	if gen.qrFile != "" || gen.qrTerm {
		if err := emitQR(cmd, out); err != nil {
			return err
		}
	}

	if gen.record {
		if err := recordOutput(out, cfg); err != nil {
			return err
		}
	}
	return nil
}

// emitQR renders a single key as a QR code. Bundles are refused since one
// code per key would flood the terminal and a combined code is useless.
func emitQR(cmd *cobra.Command, out keygen.Output) error {
	if out.Kind == keygen.KindBundle {
		return fmt.Errorf("qr output supports a single key only")
	}
	text := out.Key.String()
	if gen.qrFile != "" {
		if err := qr.WritePNG(text, gen.qrFile, 0); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), i18n.T("generate.exported")+"\n", gen.qrFile)
	}
	if gen.qrTerm {
		s, err := qr.Terminal(text)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), s)
	}
	return nil
}

func renderOutput(out keygen.Output) string {
	if out.Kind == keygen.KindBundle {
		s := ""
		for i, k := range out.Bundle.Keys {
			s += fmt.Sprintf("%s: %s\n", out.Bundle.Name(i), k.String())
		}
		return s
	}
	return out.Key.String() + "\n"
}

func recordOutput(out keygen.Output, cfg keygen.Config) error {
	if err := openStore(); err != nil {
		return err
	}
	charsetTag := cfg.Exclude
	if charsetTag == "" {
		charsetTag = "punct"
	}
	keys := []keygen.Key{out.Key}
	if out.Kind == keygen.KindBundle {
		keys = out.Bundle.Keys
	}
	for _, k := range keys {
		rec := model.KeyRecord{
			Label:       gen.label,
			Length:      cfg.Length,
			Charset:     charsetTag,
			Fingerprint: k.Fingerprint(),
			Wrapped:     cfg.Sep != "",
			Encoded:     cfg.Encoded || cfg.URLSafeEncoded,
			Words:       cfg.UseWords,
			CreatedAt:   time.Now(),
		}
		if _, err := db.AddKeyRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

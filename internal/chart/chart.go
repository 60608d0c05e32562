// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package chart renders the exclusion catalog as a table: one row per
// catalog option with a sample key, the distinct character count of the
// remaining alphabet, and its per-character entropy.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/toeirei/keyforge/internal/charset"
	"github.com/toeirei/keyforge/internal/keygen"
)

// sampleLen is how much of each generated key the table shows.
const sampleLen = 16

// probeLen is the key length used to produce the samples. Long enough to
// visit most of each alphabet.
const probeLen = 500

// Row is one rendered catalog entry.
type Row struct {
	Index    int
	Tag      string
	Sample   string
	Distinct int
	Entropy  float64
}

// Rows generates one row per catalog option. Options whose uniqueness
// support is disabled carry a marker on the tag.
func Rows() ([]Row, error) {
	rows := make([]Row, 0, charset.Len())
	for i, opt := range charset.Options() {
		gen, err := keygen.New(keygen.Config{
			Length:  probeLen,
			Exclude: opt.Tag,
		})
		if err != nil {
			return nil, fmt.Errorf("chart row %s: %w", opt.Tag, err)
		}
		key, err := gen.Key()
		if err != nil {
			return nil, fmt.Errorf("chart row %s: %w", opt.Tag, err)
		}

		text := key.String()
		sample := text
		if len(sample) > sampleLen {
			sample = sample[:sampleLen]
		}

		tag := opt.Tag
		if _, disabled := charset.UniqueDisabled[opt.Tag]; disabled {
			tag += " (UD)"
		}

		alphabet := charset.DistinctChars(text)
		rows = append(rows, Row{
			Index:    i + 1,
			Tag:      tag,
			Sample:   sample,
			Distinct: len(alphabet),
			Entropy:  charset.Entropy(alphabet),
		})
	}
	return rows, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Render writes the chart to w. Styled output goes through lipgloss when
// color is on; otherwise a plain aligned table is emitted.
func Render(w io.Writer, color bool) error {
	rows, err := Rows()
	if err != nil {
		return err
	}
	if !color {
		return renderPlain(w, rows)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers("#", "Exclusion", "Sample", "Chars", "Bits/char")
	for _, r := range rows {
		t.Row(
			fmt.Sprintf("%d", r.Index),
			r.Tag,
			r.Sample,
			fmt.Sprintf("%d", r.Distinct),
			fmt.Sprintf("%.2f", r.Entropy),
		)
	}
	_, err = fmt.Fprintln(w, t.Render())
	return err
}

func renderPlain(w io.Writer, rows []Row) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-3s %-28s %-18s %5s %9s\n", "#", "Exclusion", "Sample", "Chars", "Bits/char")
	for _, r := range rows {
		fmt.Fprintf(&sb, "%-3d %-28s %-18s %5d %9.2f\n", r.Index, r.Tag, r.Sample, r.Distinct, r.Entropy)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

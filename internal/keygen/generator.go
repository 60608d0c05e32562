// Copyright (c) 2025 ToeiRei
// Keyforge - configurable key and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keygen implements the key-assembly pipeline: a filtered alphabet
// is expanded into a cyclic working buffer, a key is drawn from it without
// replacement using the operating system's entropy source, and the result
// is optionally wrapped with a separator and encoded. Each Generator owns
// exactly one lazily-computed, memoized key.
package keygen

import (
	"strings"
	"sync"

	"github.com/toeirei/keyforge/internal/charset"
	"github.com/toeirei/keyforge/internal/diag"
)

// DefaultKeyLength is the key length used when none is configured.
const DefaultKeyLength = 16

// Config carries the parameters of one generation run. The zero value
// generates a 16-character alphanumeric key (punctuation is excluded by
// default).
type Config struct {
	// Length is the exact key length. Zero selects DefaultKeyLength.
	Length int

	// Exclude names characters to remove from the alphabet: a catalog tag,
	// or a literal string of characters when the tag is unknown.
	Exclude string
	// ExcludeIndex selects a catalog entry by its 1-based ordinal instead
	// of a tag. Zero means unset.
	ExcludeIndex int
	// IncludeAll keeps the full combined alphabet, punctuation included.
	// Mutually exclusive with Exclude/ExcludeIndex.
	IncludeAll bool

	// Unique requires all characters of the key to be pairwise distinct.
	Unique bool
	// BypassUniqueLimit accepts a non-unique key when Unique is infeasible
	// for the filtered alphabet.
	BypassUniqueLimit bool

	// Encoded requests the identity byte encoding of the finished key.
	// Mutually exclusive with URLSafeEncoded.
	Encoded bool
	// URLSafeEncoded requests URL-safe base64 encoding.
	URLSafeEncoded bool

	// Sep is the separator glyph for wrapping. Must be a single character
	// outside word mode. Empty disables wrapping unless SepWidth or SepAt
	// is set.
	Sep string
	// SepWidth is the fixed chunk width for wrapping. Zero selects the
	// default width when wrapping is active.
	SepWidth int
	// SepAt wraps at explicit ascending character offsets instead of a
	// fixed width.
	SepAt []int

	// UseWords generates a passphrase of WordCount random words instead of
	// a character key.
	UseWords bool
	// WordCount is the number of words in word mode.
	WordCount int
}

// WordProvider supplies the finite word dataset consumed by word mode.
type WordProvider interface {
	// Words returns the candidate words.
	Words() []string
	// Total returns the dataset's total-count hint.
	Total() int
}

// Generator produces one key from one Config. The key is computed at most
// once per instance and memoized; Generator instances share no mutable
// state beyond the read-only catalog.
type Generator struct {
	cfg   Config
	sink  diag.Sink
	words WordProvider

	once sync.Once
	key  Key
	err  error
}

// Option customizes a Generator.
type Option func(*Generator)

// WithSink injects the diagnostics sink advisories are reported through.
func WithSink(s diag.Sink) Option {
	return func(g *Generator) {
		if s != nil {
			g.sink = s
		}
	}
}

// WithWordProvider injects the word dataset for word mode.
func WithWordProvider(p WordProvider) Option {
	return func(g *Generator) { g.words = p }
}

// New validates cfg and returns a Generator for it. All configuration
// errors surface here or on the first Key call as *ConfigError.
func New(cfg Config, opts ...Option) (*Generator, error) {
	g := &Generator{cfg: cfg, sink: diag.Discard}
	for _, opt := range opts {
		opt(g)
	}

	if (cfg.Exclude != "" || cfg.ExcludeIndex != 0) && cfg.IncludeAll {
		return nil, configErrorf("the exclude and include-all options are mutually exclusive")
	}
	if cfg.Encoded && cfg.URLSafeEncoded {
		return nil, configErrorf("the encoded and url-safe encoded options are mutually exclusive")
	}
	if cfg.SepWidth != 0 && len(cfg.SepAt) > 0 {
		return nil, configErrorf("the separator width and separator offsets are mutually exclusive")
	}

	sep, err := g.checkSep(cfg.Sep)
	if err != nil {
		return nil, err
	}
	g.cfg.Sep = sep

	if cfg.UseWords && cfg.WordCount <= 0 {
		return nil, configErrorf("word mode requires a positive word count")
	}

	return g, nil
}

// checkSep validates and filters the separator. Outside word mode it must
// be exactly one character; whitespace other than a single space is
// filtered out with an advisory.
func (g *Generator) checkSep(sep string) (string, error) {
	if sep == "" {
		return "", nil
	}
	if !g.cfg.UseWords && len(sep) != 1 {
		return "", configErrorf("the separator must be a single character, got %d", len(sep))
	}
	if !strings.Contains(sep, " ") && strings.ContainsAny(sep, charset.Whitespace) {
		g.sink.Warnf("the separator contains prohibited whitespace characters; they will be filtered out")
	}
	// A single literal space is the only whitespace a separator may keep.
	filtered, err := charset.Filter(sep, "", " ")
	if err != nil {
		return "", asConfigError(err)
	}
	return filtered, nil
}

// Key returns the generated key, computing it on first use. The result is
// immutable once produced.
func (g *Generator) Key() (Key, error) {
	g.once.Do(func() { g.key, g.err = g.generate() })
	return g.key, g.err
}

func (g *Generator) wrapRequested() bool {
	return g.cfg.Sep != "" || g.cfg.SepWidth != 0 || len(g.cfg.SepAt) > 0
}

func (g *Generator) encodeRequested() bool {
	return g.cfg.Encoded || g.cfg.URLSafeEncoded
}

// generate runs the full pipeline once.
func (g *Generator) generate() (Key, error) {
	var text string
	var err error
	if g.cfg.UseWords {
		text, err = g.generateWords()
	} else {
		text, err = g.generateChars()
	}
	if err != nil {
		return Key{}, err
	}

	if g.encodeRequested() {
		if g.wrapRequested() {
			g.sink.Infof("both wrapping and encoding requested; the separator is encoded along with the key")
		}
		enc := EncodingPlain
		if g.cfg.URLSafeEncoded {
			enc = EncodingURLSafe
		}
		data, err := Encode(text, enc)
		if err != nil {
			return Key{}, err
		}
		return Key{Text: text, Data: data, Encoding: enc}, nil
	}
	return Key{Text: text}, nil
}

// generateChars assembles a character key from the filtered alphabet.
func (g *Generator) generateChars() (string, error) {
	length := g.cfg.Length
	if length == 0 {
		length = DefaultKeyLength
	}

	asm := &Assembler{Sink: g.sink}
	if err := asm.checkLength(length, "key"); err != nil {
		return "", err
	}

	g.sink.Debugf("key generation started (length=%d)", length)

	buffer := cycleTo(charset.All, scaleBuffer(length))
	filtered, exclude, err := g.filterBuffer(buffer)
	if err != nil {
		return "", asConfigError(err)
	}
	if filtered == "" {
		return "", configErrorf("excluding the entire character set is prohibited")
	}

	policy := UniquePolicy{
		Enabled: g.cfg.Unique,
		Bypass:  g.cfg.BypassUniqueLimit,
		Exempt:  g.uniqueExempt(exclude, filtered),
	}

	raw, err := asm.Assemble(filtered, length, policy)
	if err != nil {
		return "", err
	}

	if g.wrapRequested() {
		w := &Wrapper{
			Sep:        g.cfg.Sep,
			Width:      g.cfg.SepWidth,
			Offsets:    g.cfg.SepAt,
			AllowPunct: g.cfg.IncludeAll,
			Sink:       g.sink,
		}
		return w.Wrap(raw)
	}
	return raw, nil
}

// filterBuffer resolves the exclusion option and filters the working buffer.
// It returns the filtered material and the exclusion tag that resolved (or
// "" when none did).
func (g *Generator) filterBuffer(buffer string) (filtered, resolvedTag string, err error) {
	switch {
	case g.cfg.IncludeAll:
		return buffer, "", nil

	case g.cfg.ExcludeIndex != 0:
		chars, ok := charset.ResolveIndex(g.cfg.ExcludeIndex)
		if !ok {
			return "", "", configErrorf("invalid exclusion index %d: requires a value between 1 and %d", g.cfg.ExcludeIndex, charset.Len())
		}
		filtered, err = charset.Filter(buffer, chars, "")
		return filtered, charset.TagAt(g.cfg.ExcludeIndex), err

	case g.cfg.Exclude != "":
		if charset.NamesWhitespace(g.cfg.Exclude) {
			g.sink.Warnf("whitespace is already excluded from the charset")
		}
		chars, ok := charset.Resolve(g.cfg.Exclude)
		if !ok {
			g.sink.Warnf("exclusion option %q is not in the catalog; excluding its characters literally", g.cfg.Exclude)
			filtered, err = charset.Filter(buffer, g.cfg.Exclude, "")
			return filtered, "", err
		}
		filtered, err = charset.Filter(buffer, chars, "")
		return filtered, g.cfg.Exclude, err

	default:
		// No exclusion option: punctuation is excluded by default.
		filtered, err = charset.Filter(buffer, charset.Punctuation, "")
		return filtered, "punct", err
	}
}

// uniqueExempt reports whether this run's exclusion option is one of the
// known unique-disabled catalog entries (alphabets of 2 and 10 distinct
// characters, historically too small for safe uniqueness).
func (g *Generator) uniqueExempt(resolvedTag, filtered string) bool {
	if _, ok := charset.UniqueDisabled[resolvedTag]; ok {
		return true
	}
	n := charset.Distinct(filtered)
	for _, size := range charset.UniqueDisabled {
		if n == size {
			return true
		}
	}
	return false
}

// generateWords assembles a passphrase from the word dataset.
func (g *Generator) generateWords() (string, error) {
	if g.words == nil {
		return "", configErrorf("word mode requires a word dataset")
	}
	if len(g.cfg.SepAt) > 0 {
		return "", configErrorf("explicit separator offsets are not supported in word mode")
	}

	asm := &Assembler{Sink: g.sink}
	if err := asm.checkLength(g.cfg.WordCount, "word count"); err != nil {
		return "", err
	}

	words, err := g.sampleWords()
	if err != nil {
		return "", err
	}

	joined := strings.Join(words, g.cfg.Sep)
	if g.cfg.SepWidth > 0 {
		// Re-chunk the joined passphrase at the requested width.
		w := &Wrapper{Sep: g.cfg.Sep, Width: g.cfg.SepWidth, AllowPunct: true, Sink: g.sink}
		return w.wrapWidth(joined)
	}
	return joined, nil
}

// sampleWords draws WordCount words from the dataset without replacement.
// With the uniqueness constraint, only words whose characters are pairwise
// distinct qualify.
func (g *Generator) sampleWords() ([]string, error) {
	pool, err := shuffleStrings(g.words.Words())
	if err != nil {
		return nil, err
	}

	picked := make([]string, 0, g.cfg.WordCount)
	for _, w := range pool {
		if len(picked) == g.cfg.WordCount {
			break
		}
		if g.cfg.Unique && !isUnique(w) {
			continue
		}
		picked = append(picked, w)
	}
	if len(picked) < g.cfg.WordCount {
		return nil, configErrorf("the word dataset has only %d qualifying words, requested %d", len(picked), g.cfg.WordCount)
	}
	if g.cfg.Unique {
		g.sink.Debugf("word uniqueness validated for %d words", len(picked))
	}
	return picked, nil
}

package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"sheetloc/internal/ports/output"
)

// ErrNoMessageFiles is returned when the locale directory holds no file of
// the requested format.
var ErrNoMessageFiles = errors.New("i18n: no message files found")

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	fallback        language.Tag
	log             *zap.Logger
}

// NewTranslator loads every "*.<format>" file of fsys (the generated locale
// directory) into a bundle. Lookups try the requested locale, then
// defaultLocale, then fallbackLocale.
func NewTranslator(fsys fs.FS, format, defaultLocale, fallbackLocale string, log *zap.Logger) (*Translator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: default locale %q: %w", defaultLocale, err)
	}
	fallbackTag, err := language.Parse(fallbackLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: fallback locale %q: %w", fallbackLocale, err)
	}

	// go-i18n falls back to the bundle language when the matched language
	// lacks a message, so the bundle is built on the fallback.
	bundle := i18n.NewBundle(fallbackTag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.Glob(fsys, "*."+format)
	if err != nil {
		return nil, fmt.Errorf("i18n: list message files: %w", err)
	}
	sort.Strings(files)

	loaded := 0
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			log.Warn("i18n: failed to load message file", zap.String("file", file), zap.Error(err))
			continue
		}
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("%w (format %s)", ErrNoMessageFiles, format)
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: defaultTag,
		fallback:        fallbackTag,
		log:             log,
	}, nil
}

// Languages lists the languages loaded into the bundle.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// T renders the message identified by key for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then to the fallback locale, then finally to the key itself. A locale
// missing from the bundle counts as not found.
func (t *Translator) T(locale, key string, data map[string]any) string {
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}

// Plural renders key with the plural form selected by count. Templates see
// the count as .Count unless data already sets it.
func (t *Translator) Plural(locale, key string, count int, data map[string]any) string {
	td := make(map[string]any, len(data)+1)
	td["Count"] = count
	for k, v := range data {
		td[k] = v
	}
	return t.localize(locale, &i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: td,
	})
}

func (t *Translator) localize(locale string, cfg *i18n.LocalizeConfig) string {
	if cfg.MessageID == "" {
		return ""
	}

	candidates := t.candidates(locale)
	for i, candidate := range candidates {
		last := i == len(candidates)-1
		// A single-tag localizer resolves to the bundle language when the
		// candidate is unknown; that result belongs to the fallback step.
		msg, tag, err := i18n.NewLocalizer(t.bundle, candidate).LocalizeWithTag(cfg)
		if err == nil && (last || tag != t.fallback || t.isFallback(candidate)) {
			return msg
		}
	}

	t.log.Debug("i18n: message not found",
		zap.String("key", cfg.MessageID),
		zap.Strings("locales", candidates),
	)
	return cfg.MessageID
}

func (t *Translator) isFallback(locale string) bool {
	tag, err := language.Parse(locale)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	fallbackBase, _ := t.fallback.Base()
	return base == fallbackBase
}

// candidates is the lookup chain: requested, default, fallback, without
// duplicates; the fallback is always last.
func (t *Translator) candidates(locale string) []string {
	chain := make([]string, 0, 3)
	seen := map[string]bool{t.fallback.String(): true}
	for _, l := range []string{locale, t.defaultLanguage.String()} {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		chain = append(chain, l)
	}
	return append(chain, t.fallback.String())
}

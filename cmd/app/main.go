// Command app is the application bootstrap: it registers the generated
// message files with the localizer and renders messages from them.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"sheetloc/internal/config"
	"sheetloc/internal/infrastructure/i18n"
	"sheetloc/internal/pkg/logger"
	"sheetloc/internal/ports/output"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	app := kingpin.New("app", "Render localized messages from the generated locale files.")
	configPath := app.Flag("config", "Configuration file.").Envar("SHEETLOC_CONFIG").String()
	dir := app.Flag("locales", "Directory of generated message files (default: output.dir).").String()
	locale := app.Flag("locale", "Requested locale (default: locale.default).").Short('l').String()
	count := app.Flag("count", "Plural count; selects the plural form of each message.").Int()
	vars := app.Flag("var", "Template variable NAME=VALUE; repeatable.").StringMap()
	keys := app.Arg("key", "Message IDs to render.").Default("greeting").Strings()
	if _, err := app.Parse(args); err != nil {
		return err
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if err := cfg.Apply(config.Overrides{OutputDir: *dir}); err != nil {
		return err
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	translator, err := i18n.NewTranslator(os.DirFS(cfg.Output.Dir), cfg.Output.Formats[0], cfg.Locale.Default, cfg.Locale.Fallback, logger.L())
	if err != nil {
		return err
	}
	logger.Info("locales loaded", zap.Stringers("languages", translator.Languages()))
	render(stdout, translator, *locale, *keys, *count, *vars)
	return nil
}

func render(w io.Writer, tr output.T, locale string, keys []string, count int, vars map[string]string) {
	data := make(map[string]any, len(vars))
	for k, v := range vars {
		data[k] = v
	}
	for _, key := range keys {
		var msg string
		if count > 0 {
			msg = tr.Plural(locale, key, count, data)
		} else {
			msg = tr.T(locale, key, data)
		}
		fmt.Fprintln(w, msg)
	}
}

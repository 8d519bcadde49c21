package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Drivers de source.
const (
	DriverCSV      = "csv"
	DriverPostgres = "postgres"
)

// Config est la configuration racine, partagée par le compilateur et l'app.
type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Output   OutputConfig   `mapstructure:"output"`
	Database DatabaseConfig `mapstructure:"database"`
	Locale   LocaleConfig   `mapstructure:"locale"`
	Log      LogConfig      `mapstructure:"log"`
}

// SourceConfig décrit la provenance de la table de traductions.
type SourceConfig struct {
	Driver       string `mapstructure:"driver"` // csv ou postgres
	Path         string `mapstructure:"path"`
	KeyColumn    string `mapstructure:"key_column"`
	KeyDelimiter string `mapstructure:"key_delimiter"`
}

// OutputConfig décrit les documents générés.
type OutputConfig struct {
	Dir     string   `mapstructure:"dir"`
	Formats []string `mapstructure:"formats"`
}

// DatabaseConfig n'est utilisé que par le driver postgres.
type DatabaseConfig struct {
	URL            string `mapstructure:"url"`
	MigrationsPath string `mapstructure:"migrations_path"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
}

// LocaleConfig configure le bundle de traduction de l'app.
type LocaleConfig struct {
	Default  string `mapstructure:"default"`
	Fallback string `mapstructure:"fallback"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json ou console
}

var supportedFormats = map[string]bool{"json": true, "toml": true, "yaml": true}

// Load charge la configuration: .env (optionnel), sheetloc.yaml (optionnel),
// puis les variables d'environnement (source.path → SOURCE_PATH).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	v := newViper()
	v.SetConfigName("sheetloc")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config: %w", err)
		}
	}
	return decode(v)
}

// LoadFile charge la configuration depuis un fichier explicite ; les
// variables d'environnement restent prioritaires.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.driver", DriverCSV)
	v.SetDefault("source.path", "translations.csv")
	v.SetDefault("source.key_column", "key")
	v.SetDefault("source.key_delimiter", ".")

	v.SetDefault("output.dir", "src/locales")
	v.SetDefault("output.formats", []string{"json"})

	v.SetDefault("database.url", "postgres://localhost:5432/sheetloc?sslmode=disable")
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("database.auto_migrate", false)

	v.SetDefault("locale.default", "ja")
	v.SetDefault("locale.fallback", "en")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Output.Formats = normalizeFormats(cfg.Output.Formats)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalizeFormats met les formats en minuscules, retire les doublons et
// découpe les valeurs du type "json,toml" venant d'une variable d'environnement.
func normalizeFormats(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		for _, f := range strings.Split(raw, ",") {
			f = strings.ToLower(strings.TrimSpace(f))
			if f == "" || seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// Validate applique toutes les règles sur la configuration chargée.
func (c *Config) Validate() error {
	switch c.Source.Driver {
	case DriverCSV:
		if strings.TrimSpace(c.Source.Path) == "" {
			return fmt.Errorf("config: source.path est requis pour le driver csv")
		}
	case DriverPostgres:
		parsed, err := url.Parse(c.Database.URL)
		if err != nil {
			return fmt.Errorf("config: database.url invalide (%q): %w", c.Database.URL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: database.url invalide (%q): scheme ou host manquant", c.Database.URL)
		}
	default:
		return fmt.Errorf("config: source.driver inconnu %q (csv ou postgres)", c.Source.Driver)
	}

	if c.Source.KeyColumn == "" {
		return fmt.Errorf("config: source.key_column ne peut pas être vide")
	}
	if c.Source.KeyDelimiter == "" {
		return fmt.Errorf("config: source.key_delimiter ne peut pas être vide")
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("config: output.dir ne peut pas être vide")
	}
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("config: output.formats ne peut pas être vide")
	}
	for _, f := range c.Output.Formats {
		if !supportedFormats[f] {
			return fmt.Errorf("config: format de sortie inconnu %q", f)
		}
	}
	if c.Locale.Default == "" || c.Locale.Fallback == "" {
		return fmt.Errorf("config: locale.default et locale.fallback sont requis")
	}
	return nil
}

// Overrides regroupe les options de la ligne de commande ; une valeur vide
// laisse la configuration chargée inchangée.
type Overrides struct {
	SourcePath string
	OutputDir  string
	KeyColumn  string
	Formats    []string
}

// Apply fusionne o dans c puis valide le résultat.
func (c *Config) Apply(o Overrides) error {
	if o.SourcePath != "" {
		c.Source.Path = o.SourcePath
	}
	if o.OutputDir != "" {
		c.Output.Dir = o.OutputDir
	}
	if o.KeyColumn != "" {
		c.Source.KeyColumn = o.KeyColumn
	}
	if formats := normalizeFormats(o.Formats); len(formats) > 0 {
		c.Output.Formats = formats
	}
	return c.Validate()
}

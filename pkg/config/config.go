package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Backends de almacenamiento admitidos por CATALOG_STORE.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreMongo    = "mongo"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Catalog CatalogConfig
	DB      DBConfig
	SQLite  SQLiteConfig
	Mongo   MongoConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	LogLevel       string
	Locale         string // idioma para formatear precios (BCP 47)
	CurrencySymbol string
}

// CatalogConfig comportamiento del catálogo.
type CatalogConfig struct {
	Store           string // memory, postgres, sqlite, mongo
	SeedDemo        bool   // carga los libros de ejemplo en el almacén en memoria
	DefaultPageSize int
	MaxPageSize     int // 0 = sin tope
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// SQLiteConfig archivo de la base SQLite (":memory:" para una base efímera).
type SQLiteConfig struct {
	Path string
}

// MongoConfig conexión al almacén de documentos.
type MongoConfig struct {
	URI      string
	Database string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas; "*" permite cualquier origen
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, CATALOG_STORE, DB_HOST, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "catalogo-libros"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			Locale:         getString(v, "APP_LOCALE", "pt-BR"),
			CurrencySymbol: getString(v, "APP_CURRENCY_SYMBOL", "R$"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 3001),
			CORSOrigins: getString(v, "CORS_ORIGINS", "*"),
		},
		Catalog: CatalogConfig{
			Store:           strings.ToLower(getString(v, "CATALOG_STORE", StoreMemory)),
			SeedDemo:        getBool(v, "CATALOG_SEED_DEMO", true),
			DefaultPageSize: getInt(v, "CATALOG_DEFAULT_PAGE_SIZE", 2),
			MaxPageSize:     getInt(v, "CATALOG_MAX_PAGE_SIZE", 100),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "catalogo"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		SQLite: SQLiteConfig{
			Path: getString(v, "SQLITE_PATH", "catalogo.db"),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI", "mongodb://localhost:27017"),
			Database: getString(v, "MONGO_DATABASE", "catalogo"),
		},
	}

	switch cfg.Catalog.Store {
	case StoreMemory, StorePostgres, StoreSQLite, StoreMongo:
	default:
		return nil, fmt.Errorf("CATALOG_STORE desconocido: %q", cfg.Catalog.Store)
	}
	if cfg.Catalog.DefaultPageSize < 1 {
		cfg.Catalog.DefaultPageSize = 2
	}
	if cfg.Catalog.MaxPageSize < 0 {
		cfg.Catalog.MaxPageSize = 0
	}
	return cfg, nil
}

// Origins devuelve los orígenes CORS como lista.
func (c HTTPConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		if s, ok := v.Get(key).(string); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(s))
			if err != nil {
				return def
			}
			return b
		}
		return v.GetBool(key)
	}
	return def
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	AI      AIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	StoreName string // nombre comercial de la tienda (tickets y prompts de IA)
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig configuración del almacén key-value local (SQLite embebido).
type StorageConfig struct {
	Path string // ruta al archivo .db; ":memory:" para pruebas
}

// AIConfig configuración del proveedor de IA (Gemini).
type AIConfig struct {
	GeminiAPIKey string
	GeminiModel  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_PATH, GEMINI_API_KEY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "antoniotech-pos"),
			StoreName: getString(v, "STORE_NAME", "Zorro Abarrotero Linux"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Path: getString(v, "STORAGE_PATH", "antoniotech.db"),
		},
		AI: AIConfig{
			GeminiAPIKey: getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:  getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
		},
	}

	return cfg, nil
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

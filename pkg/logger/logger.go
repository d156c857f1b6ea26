// Package logger define el logger estructurado de la terminal sobre zerolog.
// Los componentes (carrito, asistente IA, almacén) reciben subloggers
// etiquetados vía Component en lugar de usar el logger global.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env    string    // development -> consola legible; cualquier otro -> JSON por línea
	Level  string    // trace, debug, info, warn, error (vacío o desconocido -> info)
	Writer io.Writer // destino de salida; nil usa stdout
}

// Logger envoltura sobre zerolog para inyectarse en los casos de uso.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger. En development la salida es consola legible con hora
// corta; en cualquier otro ambiente, JSON por línea para recolectores.
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// También como logger global de zerolog, para librerías que lo usen.
	log.Logger = zl

	return &Logger{zl: zl}
}

// Component devuelve un sublogger etiquetado con el componente emisor,
// ej. Component("asistente-ia").
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Delegados al evento zerolog correspondiente.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger del servicio.
type Config struct {
	Service string // nombre del servicio, fijado como campo en cada línea
	Env     string // development -> consola legible; cualquier otro -> JSON
	Level   string // debug, info, warn, error
}

// Logger envoltorio de zerolog con el nombre del servicio ya fijado.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger del proceso escribiendo a stdout y redirige el logger
// global de zerolog para las librerías que lo usen.
func New(cfg Config) *Logger {
	l := build(os.Stdout, cfg)
	log.Logger = l.zl
	return l
}

func build(w io.Writer, cfg Config) *Logger {
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: w}
	}
	zl := zerolog.New(w).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", cfg.Service).
		Logger()
	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn, Error, Fatal delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config define entorno y nivel mínimo del log.
// En development la salida es consola coloreada; en cualquier otro entorno
// se emite JSON por línea, apto para agregadores.
type Config struct {
	Env   string
	Level string // trace, debug, info, warn, error
}

// Logger envuelve zerolog para que las capas de la aplicación reciban el
// logger por inyección en vez de usar el global.
type Logger struct {
	base zerolog.Logger
}

// New construye el logger según la configuración. Un nivel desconocido
// cae a info.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	base := zerolog.New(out).Level(levelFrom(cfg.Level)).With().Timestamp().Logger()

	// Algunas dependencias escriben en el global de zerolog; se apunta al
	// mismo destino para no perder esas líneas.
	log.Logger = base

	return &Logger{base: base}
}

func levelFrom(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	}
	return zerolog.InfoLevel
}

func (l *Logger) Debug() *zerolog.Event { return l.base.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.base.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.base.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.base.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.base.Fatal() }

// With abre un contexto para un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context {
	return l.base.With()
}

package logx

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var DefaultLoggerOpts = &LoggerOpts{}

type LoggerOpts struct {
	Production bool
	// Level is a zerolog level name; empty means debug in development and
	// info in production.
	Level string
}

func safe(opts ...LoggerOpts) *LoggerOpts {
	if len(opts) == 0 {
		return DefaultLoggerOpts
	}
	return &opts[0]
}

func Init(opts ...LoggerOpts) {
	o := safe(opts...)
	if o.Production {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		log.Logger = log.Logger.Level(parseLevel(o.Level, zerolog.InfoLevel))
	} else {
		log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger()
		log.Logger = log.Logger.Level(parseLevel(o.Level, zerolog.DebugLevel))
	}
}

func parseLevel(s string, def zerolog.Level) zerolog.Level {
	if strings.TrimSpace(s) == "" {
		return def
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return def
	}
	return lvl
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}

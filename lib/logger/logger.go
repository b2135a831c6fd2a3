package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var log = newLogger(os.Stderr)

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}

// SetOutput 替换日志的输出目标，保留当前的日志级别
func SetOutput(w io.Writer) {
	level := log.GetLevel()
	log = newLogger(w).Level(level)
}

// SetLevel 按名称设置日志级别，如 "debug"、"info"、"warn"
func SetLevel(name string) error {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return errors.Wrapf(err, "unknown log level %q", name)
	}
	log = log.Level(level)
	return nil
}

func Debug(v ...any) {
	log.Debug().Msg(fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	log.Debug().Msgf(format, v...)
}

func Info(v ...any) {
	log.Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	log.Info().Msgf(format, v...)
}

func Warn(v ...any) {
	log.Warn().Msg(fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	log.Warn().Msgf(format, v...)
}

func Error(v ...any) {
	log.Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	log.Error().Msgf(format, v...)
}

// Fatal 记录日志后退出进程
func Fatal(v ...any) {
	log.Fatal().Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...any) {
	log.Fatal().Msgf(format, v...)
}

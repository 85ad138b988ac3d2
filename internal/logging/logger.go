package logging

import (
	"io"
	"os"
	"time"

	"delivery-profile-assigner/internal/config"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

type LoggerService interface {
	Log(value string)
	LogError(value string, err error)
	LogWarning(value string)
	LogSuccess(value string)
	// LogDiagnostic writes error detail to the console only; the caller
	// that finally handles the error sends the notification.
	LogDiagnostic(value string, err error)
}

// Logger writes human readable lines to the console and forwards
// warnings, errors and successes to Telegram when a bot is configured.
type Logger struct {
	console  zerolog.Logger
	telegram *Creds
}

func NewLogger(cfg config.TelegramBotConfig) *Logger {
	return NewConsoleLogger(os.Stdout, NewTelegram(&Creds{Creds: cfg}))
}

// NewConsoleLogger writes to out. telegram may be nil.
func NewConsoleLogger(out io.Writer, telegram *Creds) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: !isTerminal(out)}
	return &Logger{
		console:  zerolog.New(writer).With().Timestamp().Logger(),
		telegram: telegram,
	}
}

// With returns a logger that tags every console line with key=value.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{
		console:  l.console.With().Str(key, value).Logger(),
		telegram: l.telegram,
	}
}

func (l *Logger) Log(value string) {
	l.console.Info().Msg(value)
}

func (l *Logger) LogError(value string, err error) {
	event := l.console.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(value)

	if err != nil {
		value = value + ": " + err.Error()
	}
	l.telegram.LogError(value)
}

func (l *Logger) LogDiagnostic(value string, err error) {
	event := l.console.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(value)
}

func (l *Logger) LogWarning(value string) {
	l.console.Warn().Msg(value)
	l.telegram.LogWarning(value)
}

func (l *Logger) LogSuccess(value string) {
	l.console.Info().Bool("success", true).Msg(value)
	l.telegram.LogSuccess(value)
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package logger

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

// fxLogger writes fx lifecycle events as structured zerolog events: debug on success, error
// when the event carries one.
type fxLogger struct {
	l zerolog.Logger
}

var _ fxevent.Logger = (*fxLogger)(nil)

func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.
			With().
			Str("evt.name", "fx.init").
			Logger(),
	}
}

func (l *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Supplied:
		l.result(e.Err).
			Str("module", e.ModuleName).
			Str("type", e.TypeName).
			Msg("fx: supplied")
	case *fxevent.Provided:
		l.result(e.Err).
			Str("module", e.ModuleName).
			Str("constructor", e.ConstructorName).
			Strs("types", e.OutputTypeNames).
			Msg("fx: provided")
	case *fxevent.Invoked:
		l.result(e.Err).
			Str("module", e.ModuleName).
			Str("function", e.FunctionName).
			Msg("fx: invoked")
	case *fxevent.OnStartExecuted:
		l.result(e.Err).
			Str("callee", e.FunctionName).
			Str("caller", e.CallerName).
			Dur("runtime", e.Runtime).
			Msg("fx: OnStart hook executed")
	case *fxevent.OnStopExecuted:
		l.result(e.Err).
			Str("callee", e.FunctionName).
			Str("caller", e.CallerName).
			Dur("runtime", e.Runtime).
			Msg("fx: OnStop hook executed")
	case *fxevent.RolledBack:
		l.result(e.Err).Msg("fx: rolled back")
	case *fxevent.Started:
		l.result(e.Err).Msg("fx: started")
	case *fxevent.Stopped:
		l.result(e.Err).Msg("fx: stopped")
	case *fxevent.LoggerInitialized:
		l.result(e.Err).
			Str("constructor", e.ConstructorName).
			Msg("fx: logger initialized")
	default:
		l.l.Trace().
			Str("event", fmt.Sprintf("%T", event)).
			Msg("fx: event")
	}
}

func (l *fxLogger) result(err error) *zerolog.Event {
	if err != nil {
		return l.l.Error().Err(err)
	}
	return l.l.Debug()
}

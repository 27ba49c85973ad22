package attrail

import "log/slog"

// Observer receives each recorded change immediately after it is appended
// to the ledger. Observers run synchronously on the writing goroutine, in
// registration order. A panicking observer propagates to the caller of Set.
type Observer func(Event)

// LogObserver adapts a structured logger into an Observer. Each change is
// emitted as one Info record carrying the instance token, sequence number,
// attribute name, and both values. Unset renders as "<unset>".
func LogObserver(logger *slog.Logger) Observer {
	return func(ev Event) {
		logger.Info("attribute changed",
			slog.String("token", ev.Token),
			slog.Int64("seq", ev.Seq),
			slog.String("attr", ev.Attr),
			slog.Any("old", display(ev.Old)),
			slog.Any("new", display(ev.New)),
		)
	}
}

func display(v any) any {
	if IsUnset(v) {
		return "<unset>"
	}
	return v
}

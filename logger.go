// Copyright 2024 The pathmap authors. All rights reserved.
// Use of this source code is governed by a Apache-2.0 license that can be found
// at https://github.com/pathmap-go/pathmap/blob/master/LICENSE.txt.

package pathmap

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pathmap-go/pathmap/internal/slogpretty"
)

// LoggerWithHandler returns middleware that logs request information using the
// provided slog.Handler. It logs the HTTP method, request path, mapped path,
// status code and latency.
func LoggerWithHandler(handler slog.Handler) MiddlewareFunc {
	log := slog.New(handler)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			latency := time.Since(start)

			log.LogAttrs(
				r.Context(),
				level(rec.status),
				r.URL.Path,
				slog.Int("status", rec.status),
				slog.String("method", r.Method),
				slog.String("mapped", MappedPath(r)),
				slog.Duration("latency", roundLatency(latency)),
			)
		})
	}
}

// Logger returns middleware that logs request information to os.Stdout and
// os.Stderr. It logs the HTTP method, request path, mapped path, status code
// and latency.
func Logger() MiddlewareFunc {
	return LoggerWithHandler(slogpretty.DefaultHandler)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func level(status int) slog.Level {
	switch {
	case status >= 200 && status < 300:
		return slog.LevelInfo
	case status >= 300 && status < 400:
		return slog.LevelDebug
	case status >= 400 && status < 500:
		return slog.LevelWarn
	case status >= 500:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func roundLatency(d time.Duration) time.Duration {
	switch {
	case d < 1*time.Microsecond:
		return d.Round(100 * time.Nanosecond)
	case d < 1*time.Millisecond:
		return d.Round(10 * time.Microsecond)
	case d < 10*time.Millisecond:
		return d.Round(100 * time.Microsecond)
	case d < 100*time.Millisecond:
		return d.Round(1 * time.Millisecond)
	case d < 1*time.Second:
		return d.Round(10 * time.Millisecond)
	case d < 10*time.Second:
		return d.Round(100 * time.Millisecond)
	default:
		return d.Round(1 * time.Second)
	}
}

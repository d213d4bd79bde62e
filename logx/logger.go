// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"

	"github.com/muesli/termenv"
)

// UseColor is whether to color the level of log messages.
// Colors are only emitted if the output supports them.
var UseColor = true

// levelColors are the colors of the log levels.
var levelColors = map[slog.Level]termenv.ANSIColor{
	slog.LevelDebug: termenv.ANSIBrightBlack,
	slog.LevelInfo:  termenv.ANSICyan,
	slog.LevelWarn:  termenv.ANSIYellow,
	slog.LevelError: termenv.ANSIRed,
}

// NewHandler returns a text [slog.Handler] writing to w that shows
// messages at or above [UserLevel], omits the time, and colors the
// level if [UseColor] is set and w is a color capable terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lev, ok := a.Value.Any().(slog.Level)
				if !ok || !UseColor {
					return a
				}
				c, ok := levelColors[lev]
				if !ok {
					return a
				}
				a.Value = slog.StringValue(out.String(lev.String()).Foreground(c).String())
			}
			return a
		},
	})
}

// SetDefaultLogger sets the default [slog] logger to one
// using [NewHandler] on w.
func SetDefaultLogger(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}

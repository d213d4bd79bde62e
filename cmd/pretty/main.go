// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pretty prints pretty breakpoints for a numeric range.
//
// Usage:
//
//	pretty breaks LO HI [-n N] [--coef 1,2,5] [--base 10] [--tol 1e-9]
//	pretty simple LO UP [-n N]
//	pretty extended LO HI [-n N] [--contain free|data|within]
//	pretty samples [FILE] [--auto]
//
// For example:
//
//	$ pretty simple -- -1 101
//	-20
//	0
//	20
//	...
//	120
//
// Defaults are read from ~/.config/pretty/config.toml if it exists.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).command().Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

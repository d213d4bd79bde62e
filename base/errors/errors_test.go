// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := errors.New("bad breaks")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "bad breaks")
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("config: %w", fs.ErrNotExist)
	assert.True(t, Is(err, fs.ErrNotExist))
	assert.False(t, Is(err, fs.ErrExist))
	assert.False(t, Is(nil, fs.ErrNotExist))
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// write writes the breaks to the output in the configured format.
func (a *app) write(b []float64) error {
	switch a.cfg.Format {
	case "json":
		return json.NewEncoder(a.out).Encode(b)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		if err := enc.Encode(b); err != nil {
			return err
		}
		return enc.Close()
	}
	var buf []byte
	for _, v := range b {
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		buf = append(buf, '\n')
	}
	_, err := a.out.Write(buf)
	return err
}

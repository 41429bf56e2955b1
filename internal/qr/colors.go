// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package qr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Default module colors, matching the FILL_COLOR/BACK_COLOR defaults.
var (
	DefaultFillColor = colornames.Red
	DefaultBackColor = colornames.White
)

// ParseColor converts a color specification into a color.RGBA. It accepts
// SVG 1.1 color names ("red", "white", "rebeccapurple") and hex values in
// #rrggbb or #rrggbbaa form. Names are case-insensitive.
func ParseColor(value string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return color.RGBA{}, fmt.Errorf("empty color value")
	}

	if strings.HasPrefix(v, "#") {
		return parseHexColor(v)
	}

	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color name %q", value)
}

// parseHexColor parses #rrggbb and #rrggbbaa values.
func parseHexColor(v string) (color.RGBA, error) {
	hex := v[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: want #rrggbb or #rrggbbaa", v)
	}

	n, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", v, err)
	}

	if len(hex) == 6 {
		return color.RGBA{
			R: uint8(n >> 16),
			G: uint8(n >> 8),
			B: uint8(n),
			A: 0xff,
		}, nil
	}
	return color.RGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

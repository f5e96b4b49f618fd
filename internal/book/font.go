// SPDX-License-Identifier: MPL-2.0

package book

import (
	"fmt"
	"os"
	"strings"

	"bindery/internal/capacity"

	"golang.org/x/image/font/gofont/gomono"
)

// LoadFontMetrics resolves the configured font to parsed metrics. A value with
// a font file extension or a path separator must name a readable TTF/OTF file;
// any other value (a family name the renderer resolves on its own) falls back
// to the bundled Go Mono face, which is metrically close to the common
// monospace families and keeps the capacity analysis self-contained.
func LoadFontMetrics(font string) (*capacity.FontMetrics, error) {
	if isFontPath(font) {
		data, err := os.ReadFile(font)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", capacity.ErrInvalidFont, err)
		}
		return capacity.ParseFont(data)
	}
	return capacity.ParseFont(gomono.TTF)
}

func isFontPath(font string) bool {
	lower := strings.ToLower(font)
	return strings.HasSuffix(lower, ".ttf") ||
		strings.HasSuffix(lower, ".otf") ||
		strings.ContainsAny(font, `/\`)
}

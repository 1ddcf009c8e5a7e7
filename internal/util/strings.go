// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides shared naming helpers.
package util

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FileStem returns the base name of path with everything from the last '.'
// removed. For example: "actions/createOrder.yml" returns "createOrder".
func FileStem(path string) string {
	name := filepath.Base(path)
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}

// SplitList splits comma separated values, trimming blanks and dropping empty
// entries. Values that already are separate elements are split as well, so
// []string{"a,b", "c"} returns ["a", "b", "c"].
func SplitList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// TitleCase converts a directory style name such as "order-history" or
// "order_history" into "Order History".
func TitleCase(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/staranto/scenarios/internal/log"
)

// Delta compares two JSON object documents and renders the changes in the
// ASCII diff format. The bool is false, with an empty string, when the
// documents are identical. Keys listed in ignore are dropped from the rendered
// left-hand document but still take part in the comparison.
func Delta(before, after []byte, color bool, ignore ...string) (string, bool, error) {
	log.Tracef("delta: len(before)=%d len(after)=%d", len(before), len(after))

	delta, err := gojsondiff.New().Compare(before, after)
	if err != nil {
		return "", false, fmt.Errorf("failed to compare states: %w", err)
	}

	if !delta.Modified() {
		return "", false, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(before, &jdoc); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal state: %w", err)
	}
	for _, key := range ignore {
		delete(jdoc, key)
	}

	f := formatter.NewAsciiFormatter(jdoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       color,
	})
	out, err := f.Format(delta)
	if err != nil {
		return "", false, err
	}

	return changedLines(out), true, nil
}

// changedLines keeps only the added and removed lines of an ASCII diff so a
// trace shows what moved rather than the whole document.
func changedLines(diff string) string {
	var b strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

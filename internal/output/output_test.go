// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(1024), want: "1024"},
		{name: "float64", value: 42.5, want: "42.5"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false is zero value", value: false, want: ""},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "stringer", value: 90 * time.Second, want: "1m30s"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]int{"x": 1}, want: `{"x":1}`},
		{name: "zero value with custom empty", value: 0, emptyVal: "N/A", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortRows(t *testing.T) {
	testData := []map[string]interface{}{
		{"key": "zebra.txt", "size": int64(3)},
		{"key": "Alpha.txt", "size": int64(1)},
		{"key": "beta.txt", "size": int64(2)},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{name: "ascending by key", spec: "key", wantOrder: []string{"Alpha.txt", "beta.txt", "zebra.txt"}},
		{name: "descending by key", spec: "-key", wantOrder: []string{"zebra.txt", "beta.txt", "Alpha.txt"}},
		{name: "case sensitive", spec: "!key", wantOrder: []string{"Alpha.txt", "beta.txt", "zebra.txt"}},
		{name: "descending by size", spec: "-size", wantOrder: []string{"zebra.txt", "beta.txt", "Alpha.txt"}},
		{name: "empty spec keeps order", spec: "", wantOrder: []string{"zebra.txt", "Alpha.txt", "beta.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortRows(data, tt.spec)
			for i, want := range tt.wantOrder {
				assert.Equal(t, want, data[i]["key"], "at index %d", i)
			}
		})
	}
}

func TestBox(t *testing.T) {
	out := Box("\nWelcome\n")
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
	assert.Len(t, strings.Split(out, "\n"), 3)
}

func TestTable(t *testing.T) {
	t.Run("renders headers and rows", func(t *testing.T) {
		var buf bytes.Buffer
		Table(&buf, []string{"key", "size"}, []map[string]interface{}{
			{"key": "a.txt", "size": "1 kB"},
			{"key": "b.txt"},
		}, false)

		out := buf.String()
		assert.Contains(t, out, "key")
		assert.Contains(t, out, "a.txt")
		assert.Contains(t, out, "1 kB")
		assert.Contains(t, out, "-")
	})

	t.Run("no rows writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		Table(&buf, []string{"key"}, nil, false)
		assert.Empty(t, buf.String())
	})
}

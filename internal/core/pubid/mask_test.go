package pubid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 15, 4, 5, 0, time.UTC)
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		now      time.Time
		counter  int64
		want     string
	}{
		{
			name:     "prefix year counter",
			template: "AUC-{YYYY}-{####}",
			now:      date(2024, 6, 1),
			counter:  7,
			want:     "AUC-2024-0007",
		},
		{
			name:     "short year month wide counter",
			template: "LOTE-{YY}{MM}-{#####}",
			now:      date(2024, 3, 9),
			counter:  1,
			want:     "LOTE-2403-00001",
		},
		{
			name:     "all date tokens same instant",
			template: "{YYYY}/{YY}/{MM}/{DD}",
			now:      date(2025, 1, 2),
			counter:  0,
			want:     "2025/25/01/02",
		},
		{
			name:     "literal only",
			template: "STATIC-CODE",
			now:      date(2024, 6, 1),
			counter:  99,
			want:     "STATIC-CODE",
		},
		{
			name:     "multiple counter widths share one value",
			template: "{##}-{#####}",
			now:      date(2024, 6, 1),
			counter:  42,
			want:     "42-00042",
		},
		{
			name:     "counter wider than padding",
			template: "V-{##}",
			now:      date(2024, 6, 1),
			counter:  12345,
			want:     "V-12345",
		},
		{
			name:     "single hash",
			template: "P{#}",
			now:      date(2024, 6, 1),
			counter:  3,
			want:     "P3",
		},
		{
			name:     "unrecognized braces pass through",
			template: "{XYZ}-{####}",
			now:      date(2024, 6, 1),
			counter:  5,
			want:     "{XYZ}-0005",
		},
		{
			name:     "lowercase date tokens are literals",
			template: "{yyyy}-{####}",
			now:      date(2024, 6, 1),
			counter:  5,
			want:     "{yyyy}-0005",
		},
		{
			name:     "unicode literals untouched",
			template: "LEILÃO №{###}",
			now:      date(2024, 6, 1),
			counter:  8,
			want:     "LEILÃO №008",
		},
		{
			name:     "whitespace preserved",
			template: "  A {####} B  ",
			now:      date(2024, 6, 1),
			counter:  1,
			want:     "  A 0001 B  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.template, tt.now, tt.counter)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandDates_LeavesCounterTokens(t *testing.T) {
	got := ExpandDates("AUC-{YYYY}-{####}", date(2024, 6, 1))
	assert.Equal(t, "AUC-2024-{####}", got)
}

func TestHasCounterToken(t *testing.T) {
	tests := []struct {
		template string
		want     bool
	}{
		{"AUC-{YYYY}-{####}", true},
		{"{#}", true},
		{"{#####}", true},
		{"STATIC-CODE", false},
		{"{YYYY}-{MM}", false},
		{"{}", false},
		{"#{}#", false},
		{"no braces ####", false},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, HasCounterToken(tt.template))
		})
	}
}

func TestIsValidMask(t *testing.T) {
	assert.False(t, IsValidMask(""))
	assert.False(t, IsValidMask("   "))
	assert.False(t, IsValidMask("\t\n"))
	assert.True(t, IsValidMask("ANYTHING"))
	assert.True(t, IsValidMask("X-{####}"))
}

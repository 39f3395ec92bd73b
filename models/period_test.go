package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    Period
		wantErr string
	}{
		{"2025-11", Period{2025, time.November}, ""},
		{" 2024-01 ", Period{2024, time.January}, ""},
		{"2025-13", Period{}, "month must be 01-12"},
		{"2025-00", Period{}, "month must be 01-12"},
		{"2025", Period{}, "YYYY-MM format"},
		{"2025-1", Period{}, "YYYY-MM format"},
		{"abcd-11", Period{}, "non-numeric year"},
		{"2025-xx", Period{}, "non-numeric month"},
		{"", Period{}, "YYYY-MM format"},
		{"2025-+1", Period{}, "non-numeric month"},
		{"+202-05", Period{}, "non-numeric year"},
		{"2025--1", Period{}, "non-numeric month"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePeriod(tt.in)
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrInvalidPeriod)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodRange(t *testing.T) {
	p := Period{2024, time.December}
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), p.End())
	assert.True(t, p.Contains(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", p.String())
}

func TestPeriodJSON(t *testing.T) {
	var v struct {
		MonthYear Period `json:"monthYear"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"monthYear":"2025-03"}`), &v))
	assert.Equal(t, Period{2025, time.March}, v.MonthYear)

	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"monthYear":"2025-03"}`, string(out))

	err = json.Unmarshal([]byte(`{"monthYear":"2025-13"}`), &v)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPeriodSQL(t *testing.T) {
	p := Period{2025, time.July}
	val, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-07", val)

	var scanned Period
	require.NoError(t, scanned.Scan([]byte("2025-07")))
	assert.Equal(t, p, scanned)

	assert.Error(t, scanned.Scan(42))
}

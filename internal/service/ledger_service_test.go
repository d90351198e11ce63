package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		raw       string
		wantYear  int
		wantMonth time.Month
	}{
		{name: "valid month", raw: "2025-12", wantYear: 2025, wantMonth: time.December},
		{name: "empty falls back to now", raw: "", wantYear: 2026, wantMonth: time.August},
		{name: "garbage falls back to now", raw: "not-a-month", wantYear: 2026, wantMonth: time.August},
		{name: "full date is rejected", raw: "2025-12-01", wantYear: 2026, wantMonth: time.August},
		{name: "month out of range", raw: "2025-13", wantYear: 2026, wantMonth: time.August},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := ParseMonth(tt.raw, now)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestFireProgress(t *testing.T) {
	tests := []struct {
		name     string
		netWorth int64
		target   int64
		want     int
	}{
		{name: "halfway", netWorth: 5000, target: 10000, want: 50},
		{name: "reached caps at 100", netWorth: 20000, target: 10000, want: 100},
		{name: "exactly at target", netWorth: 10000, target: 10000, want: 100},
		{name: "negative net worth", netWorth: -500, target: 10000, want: 0},
		{name: "zero net worth", netWorth: 0, target: 10000, want: 0},
		{name: "unset target", netWorth: 5000, target: 0, want: 0},
		{name: "negative target", netWorth: 5000, target: -1, want: 0},
		{name: "truncates fraction", netWorth: 999, target: 10000, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FireProgress(tt.netWorth, tt.target))
		})
	}
}

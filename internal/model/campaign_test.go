package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaignIsDue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("never scheduled is due immediately", func(t *testing.T) {
		c := Campaign{}
		assert.True(t, c.IsDue(now))
	})

	t.Run("future next scan is not due", func(t *testing.T) {
		next := now.Add(time.Minute)
		c := Campaign{NextScanAt: &next}
		assert.False(t, c.IsDue(now))
	})

	t.Run("exact next scan time is due", func(t *testing.T) {
		next := now
		c := Campaign{NextScanAt: &next}
		assert.True(t, c.IsDue(now))
	})
}

func TestCadenceDuration(t *testing.T) {
	cases := []struct {
		frequency int
		unit      string
		want      time.Duration
	}{
		{1, ScanUnitMinute, time.Minute},
		{30, ScanUnitMinute, 30 * time.Minute},
		{1, ScanUnitHour, time.Hour},
		{2, ScanUnitHour, 2 * time.Hour},
		{1, ScanUnitDay, 24 * time.Hour},
		{1, "weekly", time.Hour},
		{0, ScanUnitHour, time.Hour},
		{-3, ScanUnitDay, 24 * time.Hour},
	}
	for _, tc := range cases {
		c := Campaign{ScanFrequency: tc.frequency, ScanUnit: tc.unit}
		assert.Equal(t, tc.want, c.CadenceDuration(), "every %d %s", tc.frequency, tc.unit)
	}
}

func TestIsWebsiteSource(t *testing.T) {
	assert.True(t, IsWebsiteSource("https://news.example.com/brand"))
	assert.True(t, IsWebsiteSource("http://blog.example.com"))
	assert.False(t, IsWebsiteSource("123456789"))
	assert.False(t, IsWebsiteSource("https://www.facebook.com/groups/123"))
	assert.False(t, IsWebsiteSource("  987654321  "))
}

func TestSourceSplit(t *testing.T) {
	c := Campaign{Sources: []string{"123", "https://example.com", "https://facebook.com/groups/9"}}
	assert.Equal(t, []string{"123", "https://facebook.com/groups/9"}, c.FacebookSources())
	assert.Equal(t, []string{"https://example.com"}, c.WebsiteSources())
}

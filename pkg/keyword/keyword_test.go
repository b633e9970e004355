package keyword

import (
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     []string
	}{
		{
			name:     "single match",
			text:     "Looking for a new laptop under 20 million",
			keywords: []string{"laptop"},
			want:     []string{"laptop"},
		},
		{
			name:     "case insensitive",
			text:     "LAPTOP gaming gia re",
			keywords: []string{"laptop", "gaming"},
			want:     []string{"laptop", "gaming"},
		},
		{
			name:     "substring match",
			text:     "smartphones are everywhere",
			keywords: []string{"phone"},
			want:     []string{"phone"},
		},
		{
			name:     "no match",
			text:     "nothing relevant here",
			keywords: []string{"laptop", "tablet"},
			want:     nil,
		},
		{
			name:     "empty text",
			text:     "",
			keywords: []string{"laptop"},
			want:     nil,
		},
		{
			name:     "empty keywords",
			text:     "some text",
			keywords: nil,
			want:     nil,
		},
		{
			name:     "blank keyword skipped",
			text:     "some text",
			keywords: []string{"", "  ", "text"},
			want:     []string{"text"},
		},
		{
			name:     "duplicate keywords deduped",
			text:     "laptop laptop laptop",
			keywords: []string{"laptop", "Laptop", "LAPTOP"},
			want:     []string{"laptop"},
		},
		{
			name:     "order follows keywords not text",
			text:     "tablet before laptop",
			keywords: []string{"laptop", "tablet"},
			want:     []string{"laptop", "tablet"},
		},
		{
			name:     "keyword with surrounding spaces",
			text:     "gaming laptop for sale",
			keywords: []string{" gaming "},
			want:     []string{"gaming"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.text, tt.keywords)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesAny(t *testing.T) {
	if !MatchesAny("buy a laptop today", []string{"laptop"}) {
		t.Error("expected MatchesAny to return true")
	}
	if MatchesAny("buy a laptop today", []string{"tablet"}) {
		t.Error("expected MatchesAny to return false")
	}
}

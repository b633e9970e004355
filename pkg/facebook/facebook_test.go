package facebook

import (
	"testing"
	"time"
)

func TestDecodePosts(t *testing.T) {
	t.Run("decodes posts and applies since filter", func(t *testing.T) {
		items := []feedPost{
			{
				ID:           "g1_p1",
				Message:      "old post",
				PermalinkURL: "https://facebook.com/g1/p1",
				CreatedTime:  "2024-01-01T00:00:00+0000",
			},
			{
				ID:           "g1_p2",
				Message:      "new post",
				PermalinkURL: "https://facebook.com/g1/p2",
				CreatedTime:  "2024-06-01T00:00:00+0000",
			},
		}

		since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		posts, err := decodePosts("g1", items, since)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 1 {
			t.Fatalf("expected 1 post, got %d", len(posts))
		}
		if posts[0].ID != "g1_p2" {
			t.Errorf("expected g1_p2, got %s", posts[0].ID)
		}
		if posts[0].GroupID != "g1" {
			t.Errorf("expected group g1, got %s", posts[0].GroupID)
		}
	})

	t.Run("missing id is malformed", func(t *testing.T) {
		_, err := decodePosts("g1", []feedPost{{Message: "no id"}}, time.Time{})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bad created_time is malformed", func(t *testing.T) {
		_, err := decodePosts("g1", []feedPost{{ID: "p", CreatedTime: "not-a-time"}}, time.Time{})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("zero since keeps everything", func(t *testing.T) {
		items := []feedPost{
			{ID: "p1", CreatedTime: "2020-01-01T00:00:00+0000"},
			{ID: "p2"},
		}
		posts, err := decodePosts("g1", items, time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(posts) != 2 {
			t.Fatalf("expected 2 posts, got %d", len(posts))
		}
	})
}

func TestParseGraphTime(t *testing.T) {
	got, err := parseGraphTime("2024-01-02T15:04:05+0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

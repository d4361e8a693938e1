package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abelbrown/tubeview/internal/catalog"
)

func openIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func video(i int, title, channel string) catalog.Video {
	return catalog.Video{
		ID:          catalog.EntityID(catalog.KindVideo, i),
		Title:       title,
		ChannelName: channel,
		Views:       int64(1000 + i),
		Uploaded:    time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC),
		Duration:    60 + i,
		Verified:    i%2 == 0,
	}
}

func fixture() []catalog.Video {
	return []catalog.Video{
		video(0, "Ultimate Guide to Cooking Tips", "Cooking Masters"),
		video(1, "Let's Play: Gaming Setup", "Gaming Universe"),
		video(2, "100% Real Science Facts", "Science Explained"),
		video(3, "Daily Vlog: Travel Destinations", "Travel Vlogs Daily"),
		video(4, "snake_case Explained in 5 Minutes", "Tech Review Pro"),
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	idx := openIndex(t)

	var name string
	err := idx.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='videos'").Scan(&name)
	if err != nil {
		t.Fatalf("videos table not created: %v", err)
	}
}

func TestIndexesAreIsolated(t *testing.T) {
	a := openIndex(t)
	b := openIndex(t)
	ctx := context.Background()

	if _, err := a.Add(ctx, fixture()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if n, _ := b.Count(ctx); n != 0 {
		t.Errorf("second index sees %d videos", n)
	}
}

func TestAddSkipsDuplicates(t *testing.T) {
	idx := openIndex(t)
	ctx := context.Background()

	n, err := idx.Add(ctx, fixture())
	if err != nil || n != 5 {
		t.Fatalf("Add = %d, %v; want 5", n, err)
	}
	n, err = idx.Add(ctx, fixture()[:2])
	if err != nil || n != 0 {
		t.Errorf("re-Add = %d, %v; want 0", n, err)
	}
	if count, _ := idx.Count(ctx); count != 5 {
		t.Errorf("Count = %d, want 5", count)
	}
}

func TestAddRejectsForeignIDs(t *testing.T) {
	idx := openIndex(t)
	bad := video(0, "x", "y")
	bad.ID = "short-0"
	if _, err := idx.Add(context.Background(), []catalog.Video{bad}); !errors.Is(err, catalog.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestSearch(t *testing.T) {
	idx := openIndex(t)
	ctx := context.Background()
	if _, err := idx.Add(ctx, fixture()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query string
		limit int
		want  []string
	}{
		{"cooking", 20, []string{"video-0"}},
		{"GAMING", 20, []string{"video-1"}},
		{"daily", 20, []string{"video-3"}}, // title and channel both match; listed once
		{"explained", 20, []string{"video-2", "video-4"}},
		{"100%", 20, []string{"video-2"}}, // % is literal
		{"e_c", 20, []string{"video-4"}},  // _ is literal
		{"", 3, []string{"video-0", "video-1", "video-2"}},
		{"   ", 20, []string{"video-0", "video-1", "video-2", "video-3", "video-4"}},
		{"quantum", 20, nil},
		{"explained", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := idx.Search(ctx, tt.query, tt.limit)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Search(%q) = %d results, want %d", tt.query, len(got), len(tt.want))
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("result %d = %s, want %s", i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

func TestSearchRoundTripsFields(t *testing.T) {
	idx := openIndex(t)
	ctx := context.Background()
	want := fixture()
	if _, err := idx.Add(ctx, want); err != nil {
		t.Fatal(err)
	}

	got, err := idx.Search(ctx, "", 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if !got[i].Uploaded.Equal(want[i].Uploaded) {
			t.Errorf("video %d uploaded = %v, want %v", i, got[i].Uploaded, want[i].Uploaded)
		}
		g, w := got[i], want[i]
		g.Uploaded, w.Uploaded = time.Time{}, time.Time{}
		if g != w {
			t.Errorf("video %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestSearchRejectsNegativeLimit(t *testing.T) {
	idx := openIndex(t)
	if _, err := idx.Search(context.Background(), "x", -1); !errors.Is(err, catalog.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestIndexGeneratedCatalog(t *testing.T) {
	idx := openIndex(t)
	ctx := context.Background()
	gen := catalog.NewGenerator(catalog.Config{Seed: 3})
	videos, err := gen.Videos(100, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n, err := idx.Add(ctx, videos); err != nil || n != 100 {
		t.Fatalf("Add = %d, %v", n, err)
	}

	got, err := idx.Search(ctx, videos[42].ChannelName, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 || len(got) > 20 {
		t.Errorf("channel search returned %d results", len(got))
	}
}

func TestConcurrentSearch(t *testing.T) {
	idx := openIndex(t)
	ctx := context.Background()
	if _, err := idx.Add(ctx, fixture()); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := idx.Search(ctx, "e", 20); err != nil {
				t.Errorf("Search: %v", err)
			}
		}()
	}
	wg.Wait()
}

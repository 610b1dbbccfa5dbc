// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestControllerPagesThroughSource(t *testing.T) {
	c := NewController[int](NewSliceFetcher(numbers(20), 0), 8)
	ctx := context.Background()

	if c.State() != Idle || !c.HasMore() {
		t.Fatalf("new controller: state=%s hasMore=%v", c.State(), c.HasMore())
	}

	wantLens := []int{8, 16, 20}
	for i, want := range wantLens {
		if _, err := c.LoadMore(ctx); err != nil {
			t.Fatalf("load %d: %v", i+1, err)
		}
		if got := len(c.Visible()); got != want {
			t.Errorf("load %d: visible = %d, want %d", i+1, got, want)
		}
	}

	if c.HasMore() {
		t.Error("HasMore should be false after the source is drained")
	}
	if c.State() != Exhausted {
		t.Errorf("state = %s, want exhausted", c.State())
	}

	if _, err := c.LoadMore(ctx); !errors.Is(err, ErrExhausted) {
		t.Errorf("fourth load error = %v, want ErrExhausted", err)
	}
	visible := c.Visible()
	if len(visible) != 20 {
		t.Fatalf("visible after no-op load = %d, want 20", len(visible))
	}
	for i, v := range visible {
		if v != i {
			t.Fatalf("visible[%d] = %d, order not preserved", i, v)
		}
	}
}

func TestControllerExactMultiple(t *testing.T) {
	c := NewController[int](NewSliceFetcher(numbers(16), 0), 8)
	ctx := context.Background()

	c.LoadMore(ctx)
	if !c.HasMore() {
		t.Fatal("HasMore should be true after first of two pages")
	}
	c.LoadMore(ctx)
	if c.HasMore() {
		t.Error("HasMore should be false once all 16 items are visible")
	}
}

func TestControllerEmptySource(t *testing.T) {
	c := NewController[int](NewSliceFetcher[int](nil, 0), 8)
	items, err := c.LoadMore(context.Background())
	if err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if len(items) != 0 || c.HasMore() || c.State() != Exhausted {
		t.Errorf("empty source: items=%d hasMore=%v state=%s", len(items), c.HasMore(), c.State())
	}
}

func TestControllerDefaultPageSize(t *testing.T) {
	c := NewController[int](NewSliceFetcher(numbers(3), 0), 0)
	if c.PageSize() != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", c.PageSize(), DefaultPageSize)
	}
}

// blockingFetcher parks every fetch until release is closed.
type blockingFetcher struct {
	started chan struct{}
	release chan struct{}
	calls   int
	mu      sync.Mutex
}

func (f *blockingFetcher) Fetch(ctx context.Context, offset, limit int) (Page[int], error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	close(f.started)
	<-f.release
	return Window(numbers(20), offset, limit), nil
}

func TestControllerIgnoresTriggerWhileLoading(t *testing.T) {
	f := &blockingFetcher{started: make(chan struct{}), release: make(chan struct{})}
	c := NewController[int](f, 8)

	done := make(chan error, 1)
	go func() {
		_, err := c.LoadMore(context.Background())
		done <- err
	}()

	<-f.started
	if c.State() != Loading {
		t.Errorf("state during fetch = %s, want loading", c.State())
	}
	if _, err := c.LoadMore(context.Background()); !errors.Is(err, ErrBusy) {
		t.Errorf("concurrent LoadMore error = %v, want ErrBusy", err)
	}

	close(f.release)
	if err := <-done; err != nil {
		t.Fatalf("first LoadMore: %v", err)
	}
	if got := len(c.Visible()); got != 8 {
		t.Errorf("visible = %d, want 8 (one page only)", got)
	}
	if f.calls != 1 {
		t.Errorf("fetch calls = %d, want 1", f.calls)
	}
}

func TestControllerFetchErrorReturnsToIdle(t *testing.T) {
	fail := true
	f := FetcherFunc[int](func(ctx context.Context, offset, limit int) (Page[int], error) {
		if fail {
			return Page[int]{}, errors.New("boom")
		}
		return Window(numbers(5), offset, limit), nil
	})
	c := NewController[int](f, 8)

	if _, err := c.LoadMore(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	if c.State() != Idle || len(c.Visible()) != 0 {
		t.Fatalf("after error: state=%s visible=%d", c.State(), len(c.Visible()))
	}

	fail = false
	if _, err := c.LoadMore(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(c.Visible()) != 5 {
		t.Errorf("visible after retry = %d, want 5", len(c.Visible()))
	}
}

func TestSliceFetcherHonorsContext(t *testing.T) {
	f := NewSliceFetcher(numbers(10), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Fetch(ctx, 0, 8); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch error = %v, want context.Canceled", err)
	}
}

func TestSliceFetcherDelay(t *testing.T) {
	f := NewSliceFetcher(numbers(10), 20*time.Millisecond)
	start := time.Now()
	page, err := f.Fetch(context.Background(), 0, 4)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Error("Fetch returned before the configured delay")
	}
	if len(page.Items) != 4 || page.Total != 10 {
		t.Errorf("page = %d items / total %d", len(page.Items), page.Total)
	}
}

func TestWindow(t *testing.T) {
	src := numbers(10)
	tests := []struct {
		name          string
		offset, limit int
		want          int
	}{
		{"first page", 0, 4, 4},
		{"tail", 8, 4, 2},
		{"past end", 12, 4, 0},
		{"negative offset", -3, 4, 4},
		{"unbounded", 2, -1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Window(src, tt.offset, tt.limit)
			if len(got.Items) != tt.want {
				t.Errorf("len = %d, want %d", len(got.Items), tt.want)
			}
			if got.Total != 10 {
				t.Errorf("Total = %d, want 10", got.Total)
			}
		})
	}
}

func TestCursorRoundTrip(t *testing.T) {
	in := Cursor{Seed: 42, Offset: 16, PageSize: 8, Snapshot: Fingerprint([]string{"fire"}), Category: "symbols"}
	token, err := EncodeCursor(in)
	if err != nil {
		t.Fatalf("EncodeCursor: %v", err)
	}
	out, err := DecodeCursor(token)
	if err != nil {
		t.Fatalf("DecodeCursor: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestDecodeCursorRequiresPageSize(t *testing.T) {
	for _, c := range []Cursor{{Seed: 1}, {Seed: 1, PageSize: -2}} {
		token, err := EncodeCursor(c)
		if err != nil {
			t.Fatalf("EncodeCursor: %v", err)
		}
		if _, err := DecodeCursor(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("DecodeCursor(%+v) error = %v, want ErrInvalidToken", c, err)
		}
	}
}

func TestFingerprint(t *testing.T) {
	base := Fingerprint([]string{"grinning", "fire", "cat-face"})

	tests := []struct {
		name string
		ids  []string
		same bool
	}{
		{"reordered", []string{"cat-face", "grinning", "fire"}, true},
		{"entry removed", []string{"grinning", "fire"}, false},
		{"entry added", []string{"grinning", "fire", "cat-face", "rocket"}, false},
		{"entry replaced", []string{"grinning", "fire", "red-heart"}, false},
		// The separator keeps concatenations apart.
		{"ids merged", []string{"grinningfire", "cat-face"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fingerprint(tt.ids) == base; got != tt.same {
				t.Errorf("same fingerprint = %v, want %v", got, tt.same)
			}
		})
	}
}

func TestCursorCheck(t *testing.T) {
	c := Cursor{Seed: 7, PageSize: 4, Snapshot: Fingerprint([]string{"a", "b"})}
	if err := c.Check(Fingerprint([]string{"b", "a"})); err != nil {
		t.Errorf("Check on same set = %v", err)
	}
	if err := c.Check(Fingerprint([]string{"a"})); !errors.Is(err, ErrStaleToken) {
		t.Errorf("Check on shrunk set = %v, want ErrStaleToken", err)
	}
}

func TestLoadPage(t *testing.T) {
	f := NewSliceFetcher(numbers(10), 0)
	ctx := context.Background()

	tests := []struct {
		name         string
		offset, size int
		wantItems    int
		wantNext     int
		wantHasMore  bool
	}{
		{"first page", 0, 4, 4, 4, true},
		{"middle page", 4, 4, 4, 8, true},
		{"last partial page", 8, 4, 2, 10, false},
		{"exact end", 6, 4, 4, 10, false},
		{"past end", 12, 4, 0, 12, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			step, err := LoadPage[int](ctx, f, tt.offset, tt.size)
			if err != nil {
				t.Fatalf("LoadPage: %v", err)
			}
			if len(step.Items) != tt.wantItems || step.Next != tt.wantNext || step.HasMore != tt.wantHasMore {
				t.Errorf("step = %d items, next %d, hasMore %v; want %d, %d, %v",
					len(step.Items), step.Next, step.HasMore, tt.wantItems, tt.wantNext, tt.wantHasMore)
			}
			if step.Total != 10 {
				t.Errorf("Total = %d, want 10", step.Total)
			}
		})
	}
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "   ", "!!!", "bm90LWpzb24"} {
		if _, err := DecodeCursor(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("DecodeCursor(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/app/fanout"
)

func TestRun_Results(t *testing.T) {
	t.Parallel()

	errOdd := errors.New("odd")

	tests := []struct {
		name    string
		items   []int
		workers int
		want    []fanout.Result[int]
	}{
		{
			name:    "empty",
			items:   nil,
			workers: 2,
			want:    []fanout.Result[int]{},
		},
		{
			name:    "order kept with mixed outcomes",
			items:   []int{1, 2, 3, 4},
			workers: 2,
			want: []fanout.Result[int]{
				{Err: errOdd}, {Value: 20}, {Err: errOdd}, {Value: 40},
			},
		},
		{
			name:    "zero workers means one",
			items:   []int{2, 4},
			workers: 0,
			want:    []fanout.Result[int]{{Value: 20}, {Value: 40}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := fanout.Run(context.Background(), fanout.Options{Workers: tc.workers}, tc.items,
				func(_ context.Context, n int) (int, error) {
					if n%2 == 1 {
						return 0, errOdd
					}
					return n * 10, nil
				})

			if len(got) != len(tc.want) {
				t.Fatalf("len(results) = %d, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i].Value != tc.want[i].Value || !errors.Is(got[i].Err, tc.want[i].Err) {
					t.Errorf("results[%d] = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestRun_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 2
	var running, peak atomic.Int32

	fanout.Run(context.Background(), fanout.Options{Workers: workers}, make([]int, 8),
		func(_ context.Context, _ int) (struct{}, error) {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
			return struct{}{}, nil
		})

	if got := peak.Load(); got > workers {
		t.Errorf("peak concurrency = %d, want <= %d", got, workers)
	}
}

func TestRun_PerCallTimeout(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), fanout.Options{Workers: 2, Timeout: 20 * time.Millisecond},
		[]time.Duration{0, time.Second},
		func(ctx context.Context, d time.Duration) (string, error) {
			select {
			case <-time.After(d):
				return "done", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		})

	if results[0].Err != nil || results[0].Value != "done" {
		t.Errorf("fast call = %+v, want done", results[0])
	}
	if !errors.Is(results[1].Err, context.DeadlineExceeded) {
		t.Errorf("slow call err = %v, want DeadlineExceeded", results[1].Err)
	}
}

func TestRun_PanicBecomesError(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), fanout.Options{Workers: 1}, []string{"ok", "boom"},
		func(_ context.Context, s string) (string, error) {
			if s == "boom" {
				panic("checker exploded")
			}
			return s, nil
		})

	if results[0].Value != "ok" {
		t.Errorf("results[0] = %+v, want ok", results[0])
	}
	if !errors.Is(results[1].Err, fanout.ErrPanic) {
		t.Errorf("results[1].Err = %v, want ErrPanic", results[1].Err)
	}
}

func TestRun_CanceledWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	go func() {
		<-started
		cancel()
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()

	results := fanout.Run(ctx, fanout.Options{Workers: 1}, []int{1, 2},
		func(context.Context, int) (int, error) {
			if calls.Add(1) == 1 {
				close(started)
			}
			<-release
			return 1, nil
		})

	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
	var canceled, done int
	for _, r := range results {
		switch {
		case errors.Is(r.Err, context.Canceled):
			canceled++
		case r.Err == nil && r.Value == 1:
			done++
		}
	}
	if canceled != 1 || done != 1 {
		t.Errorf("results = %+v, want one done and one canceled", results)
	}
}

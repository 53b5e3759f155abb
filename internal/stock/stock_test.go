package stock_test

import (
	"testing"
	"time"

	"github.com/bookhaven/bookhaven/internal/stock"
)

func TestStatusThresholds(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{0, stock.StatusOut},
		{1, stock.StatusLow},
		{10, stock.StatusLow},
		{11, stock.StatusHigh},
		{49, stock.StatusHigh},
	}
	for _, c := range cases {
		if got := stock.StatusFor(c.level); got != c.want {
			t.Errorf("StatusFor(%d) = %q; want %q", c.level, got, c.want)
		}
	}
}

func TestLevelDeterministic(t *testing.T) {
	for _, id := range []int64{-7, 0, 1, 2, 42, 999999} {
		first := stock.Level(id)
		for i := 0; i < 5; i++ {
			if got := stock.Level(id); got != first {
				t.Fatalf("Level(%d) not stable: got %d then %d", id, first, got)
			}
		}
		if first < 0 || first >= 50 {
			t.Fatalf("Level(%d) = %d; want [0,50)", id, first)
		}
	}
}

func TestCheckConsistency(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, id := range []int64{-3, 0, 1, 2, 100} {
		info := stock.Check(id, now)
		if info.BookID != id {
			t.Errorf("BookID = %d; want %d", info.BookID, id)
		}
		if info.IsInStock != (info.StockLevel > 0) {
			t.Errorf("id %d: IsInStock=%v with level %d", id, info.IsInStock, info.StockLevel)
		}
		if info.Status != stock.StatusFor(info.StockLevel) {
			t.Errorf("id %d: status %q does not match level %d", id, info.Status, info.StockLevel)
		}
		if !info.LastChecked.Equal(now) {
			t.Errorf("id %d: LastChecked = %v; want %v", id, info.LastChecked, now)
		}
	}
}

func TestDistinctSeedsUsuallyDiffer(t *testing.T) {
	// Seeds 42 and 84 come from ids 1 and 2. Equal draws are possible in
	// principle, so check a spread of ids and require at least one difference.
	base := stock.Level(1)
	varied := false
	for id := int64(2); id <= 10; id++ {
		if stock.Level(id) != base {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("levels for ids 1..10 are all identical; generator looks unseeded")
	}
}

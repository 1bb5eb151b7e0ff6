package gallery

import (
	"context"
	"testing"
)

func TestUsernameAndHostFromAddress(t *testing.T) {
	ctx := context.Background()

	type testCase struct {
		address  string
		username string
		host     string
	}

	tests := []testCase{
		testCase{"alice@gallery.example.com", "alice", "gallery.example.com"},
		testCase{"bob_1@127.0.0.1:2406", "bob_1", "127.0.0.1:2406"},
		testCase{"carol.d@g.io", "carol.d", "g.io"},
	}
	for _, test := range tests {
		username, host, err := UsernameAndHostFromAddress(ctx, test.address)
		if err != nil {
			t.Fatalf("unexpected error: %+v", err)
		}
		if username != test.username {
			t.Errorf("expected username %s, got %s", test.username, username)
		}
		if host != test.host {
			t.Errorf("expected host %s, got %s", test.host, host)
		}
	}

	invalids := []string{
		"",
		"alice",
		"@gallery.example.com",
		"alice@",
		"al ice@gallery.example.com",
	}
	for _, address := range invalids {
		_, _, err := UsernameAndHostFromAddress(ctx, address)
		if err == nil {
			t.Errorf("expected error for address: %s", address)
		}
	}
}

func TestNewPageResource(t *testing.T) {
	ctx := context.Background()

	type testCase struct {
		total   int64
		start   int64
		count   int64
		hasMore bool
	}

	tests := []testCase{
		testCase{10, 1, 5, true},
		testCase{10, 6, 5, false},
		testCase{0, 1, 5, false},
		testCase{100, 50, 50, false},
		testCase{101, 50, 50, true},
	}
	for _, test := range tests {
		page := NewPageResource(ctx, test.total, test.start, test.count)
		if page.Total != test.total {
			t.Errorf("expected total %d, got %d", test.total, page.Total)
		}
		if page.Start != test.start {
			t.Errorf("expected start %d, got %d", test.start, page.Start)
		}
		if page.Count != test.count {
			t.Errorf("expected count %d, got %d", test.count, page.Count)
		}
		if page.HasMore != test.hasMore {
			t.Errorf("expected has_more %t for total=%d start=%d count=%d",
				test.hasMore, test.total, test.start, test.count)
		}
	}
}

package token

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tk := New("artwork")
	if !strings.HasPrefix(tk, "artwork_") {
		t.Errorf("token has wrong prefix: %s", tk)
	} else if len(tk) != len("artwork_")+tokenLength {
		t.Errorf("token has wrong length: %s", tk)
	}
}

func TestRandStr(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 128; i++ {
		s := RandStr()
		if len(s) != tokenLength {
			t.Fatalf("random string has wrong length: %s", s)
		}
		if strings.ContainsAny(s, "_") {
			t.Fatalf("random string contains padding: %s", s)
		}
		if seen[s] {
			t.Fatalf("random string repeated: %s", s)
		}
		seen[s] = true
	}
}

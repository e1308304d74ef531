//go:build go1.18

package cache

import (
	"strings"
	"testing"
)

// Fuzz basic Set/Get/FetchRemove semantics under arbitrary string inputs.
// Guards against panics and checks the core contract invariants hold.
func FuzzCache_SetGetRemove(f *testing.F) {
	f.Add("", "")
	f.Add("a", "1")
	f.Add("b", "2")
	f.Add("αβγ", "δ")
	f.Add("emoji🙂", "🙂🙂")
	f.Add("long", strings.Repeat("x", 1024))

	f.Fuzz(func(t *testing.T, k, v string) {
		const limit = 1 << 12
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c, err := New[string, string](Options[string, string]{Capacity: 16})
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { _ = c.Close() })

		c.Set(k, v)
		got, ok := c.Get(k)
		if !ok || got != v {
			t.Fatalf("after Set/Get: want %q, got %q ok=%v", v, got, ok)
		}

		// Overwrite must report inserted=false and replace the value.
		if inserted := c.Set(k, "other"); inserted {
			t.Fatalf("overwrite of an existing key reported inserted=true")
		}
		if got2, ok := c.Get(k); !ok || got2 != "other" {
			t.Fatalf("after overwrite: want %q, got %q ok=%v", "other", got2, ok)
		}

		if _, ok := c.FetchRemove(k); !ok {
			t.Fatalf("FetchRemove must return true")
		}
		if _, ok := c.Get(k); ok {
			t.Fatalf("key must be absent after FetchRemove")
		}

		if inserted := c.Set(k, v); !inserted {
			t.Fatalf("Set after FetchRemove must report inserted=true")
		}
	})
}

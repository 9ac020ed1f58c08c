package cedar

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/bruth/assert"
)

func Test_EraseAbsentKeyIsNoop(t *testing.T) {
	c := New()
	c.Update([]byte("present"), 1)
	removed, existed, err := c.Erase([]byte("absent"))
	assert.Nil(t, err)
	assert.True(t, !existed)
	assert.Equal(t, removed, int32(0))
	assert.Equal(t, c.NumKeys(), 1)
}

func Test_EraseRemovesKey(t *testing.T) {
	c := New()
	c.Update([]byte("key"), 42)
	removed, existed, err := c.Erase([]byte("key"))
	assert.Nil(t, err)
	assert.True(t, existed)
	assert.Equal(t, removed, int32(42))
	assert.Equal(t, c.NumKeys(), 0)

	_, ok := c.ExactMatchSearch([]byte("key"))
	assert.True(t, !ok)
}

func Test_EraseLeavesSiblingsIntact(t *testing.T) {
	c := New()
	c.Update([]byte("a"), 1)
	c.Update([]byte("ab"), 2)
	c.Update([]byte("ac"), 3)

	c.Erase([]byte("ab"))

	v, ok := c.ExactMatchSearch([]byte("a"))
	assert.True(t, ok)
	assert.Equal(t, v, int32(1))

	v, ok = c.ExactMatchSearch([]byte("ac"))
	assert.True(t, ok)
	assert.Equal(t, v, int32(3))

	_, ok = c.ExactMatchSearch([]byte("ab"))
	assert.True(t, !ok)
}

func Test_ErasePrunesEmptyAncestors(t *testing.T) {
	c := New()
	c.Update([]byte("onlychild"), 1)
	c.Erase([]byte("onlychild"))

	// Re-inserting a completely unrelated key must not trip over a
	// stale base left behind on a pruned ancestor (the bug this guards
	// against: a pruned state's base must be reset to noBase, or a later
	// addChild on that state would wrongly take the addSibling path).
	_, _, err := c.Update([]byte("zzz"), 2)
	assert.Nil(t, err)
	v, ok := c.ExactMatchSearch([]byte("zzz"))
	assert.True(t, ok)
	assert.Equal(t, v, int32(2))
}

// Test_EraseReinsertStress is scenario S4: insert a batch of keys, erase
// half of them, reinsert with new values, and check every key resolves to
// its latest value.
func Test_EraseReinsertStress(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := New()

	n := 1000
	keys := make([][]byte, n)
	for i := 0; i < n; i++ {
		keys[i] = []byte(fmt.Sprintf("k%d-%d", i, rng.Int()))
		_, _, err := c.Update(keys[i], int32(i))
		assert.Nil(t, err)
	}

	erased := map[int]bool{}
	for i := 0; i < n; i += 2 {
		_, existed, err := c.Erase(keys[i])
		assert.Nil(t, err)
		assert.True(t, existed)
		erased[i] = true
	}

	for i := range erased {
		_, _, err := c.Update(keys[i], int32(10000+i))
		assert.Nil(t, err)
	}

	for i, k := range keys {
		want := int32(i)
		if erased[i] {
			want = int32(10000 + i)
		}
		got, ok := c.ExactMatchSearch(k)
		if !ok || got != want {
			t.Fatalf("key %s: got (%d,%t) want (%d,true)", k, got, ok, want)
		}
	}
}

package cedar

import (
	"fmt"
	"testing"

	"github.com/bruth/assert"
	"github.com/kr/pretty"
)

func Test_UpdateInsertsNewKey(t *testing.T) {
	c := New()
	prev, existed, err := c.Update([]byte("bachelor"), 1)
	assert.Nil(t, err)
	assert.True(t, !existed)
	assert.Equal(t, prev, int32(0))
	assert.Equal(t, c.NumKeys(), 1)

	v, ok := c.ExactMatchSearch([]byte("bachelor"))
	assert.True(t, ok)
	assert.Equal(t, v, int32(1))
}

func Test_UpdateOverwritesExistingKey(t *testing.T) {
	c := New()
	c.Update([]byte("key"), 1)
	prev, existed, err := c.Update([]byte("key"), 2)
	assert.Nil(t, err)
	assert.True(t, existed)
	assert.Equal(t, prev, int32(1))
	assert.Equal(t, c.NumKeys(), 1)

	v, _ := c.ExactMatchSearch([]byte("key"))
	assert.Equal(t, v, int32(2))
}

func Test_UpdateRejectsOutOfRangeValue(t *testing.T) {
	c := New()
	_, _, err := c.Update([]byte("x"), -1)
	assert.Equal(t, err, ErrInvalidValue)

	_, _, err = c.Update([]byte("x"), maxValue+1)
	assert.Equal(t, err, ErrInvalidValue)
}

func Test_UpdateSharedPrefixes(t *testing.T) {
	c := New()
	keys := map[string]int32{
		"a":   0,
		"ab":  1,
		"abc": 2,
	}
	for k, v := range keys {
		_, _, err := c.Update([]byte(k), v)
		assert.Nil(t, err)
	}
	for k, v := range keys {
		got, ok := c.ExactMatchSearch([]byte(k))
		if !ok || got != v {
			t.Fatalf("%s: got (%d,%t) want (%d,true)\n%# v", k, got, ok, v, pretty.Formatter(c.Stats()))
		}
	}
}

// Test_UpdateForcesCollisionRelocation inserts keys deliberately chosen so
// that their first-byte labels collide under the same base, exercising
// resolve's relocation path (not just plain findBase placement).
func Test_UpdateForcesCollisionRelocation(t *testing.T) {
	c := New()
	for i := 0; i < 64; i++ {
		k := []byte{byte(i), byte(i * 7)}
		_, _, err := c.Update(k, int32(i))
		assert.Nil(t, err)
	}
	for i := 0; i < 64; i++ {
		k := []byte{byte(i), byte(i * 7)}
		v, ok := c.ExactMatchSearch(k)
		if !ok || v != int32(i) {
			t.Fatalf("key %v: got (%d,%t) want (%d,true)", k, v, ok, i)
		}
	}
}

func Test_UpdateManyKeysAllRetrievable(t *testing.T) {
	c := New()
	var keys [][]byte
	for i := 0; i < 500; i++ {
		k := []byte(fmt.Sprintf("key-%d", i))
		keys = append(keys, k)
		_, _, err := c.Update(k, int32(i))
		assert.Nil(t, err)
	}
	for i, k := range keys {
		v, ok := c.ExactMatchSearch(k)
		if !ok || v != int32(i) {
			t.Fatalf("key %s: got (%d,%t) want (%d,true)", k, v, ok, i)
		}
	}
	assert.Equal(t, c.NumKeys(), len(keys))
}

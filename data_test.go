package eventchan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDataStore_Put(t *testing.T) {
	store := newDataStore[int](3)
	assert.Equal(t, uint(3), store.uninitialized)
	assert.Equal(t, uint(0), store.numInitialized())

	store.put(0, 10)
	store.put(1, 11)
	assert.Equal(t, uint(1), store.uninitialized)
	assert.Equal(t, uint(2), store.numInitialized())

	store.put(2, 12)
	assert.Equal(t, uint(0), store.uninitialized)

	// overwrite does not change the accounting
	store.put(0, 13)
	assert.Equal(t, uint(0), store.uninitialized)
	assert.Equal(t, uint(3), store.numInitialized())
	assert.Equal(t, 13, store.get(0))
}

func TestDataStore_Grow(t *testing.T) {
	store := newDataStore[int](4)
	for i, v := range []int{10, 11, 12, 13} {
		store.put(uint(i), v)
	}

	// insert four slots between 1 and 2, relocating the suffix
	store.grow(2, 4)

	assert.Equal(t, []int{10, 11, 0, 0, 0, 0, 12, 13}, store.data)
	assert.Equal(t, uint(4), store.uninitialized)
	assert.Equal(t, uint(4), store.numInitialized())
}

func TestDataStore_Grow_AtZero(t *testing.T) {
	store := newDataStore[int](2)
	store.put(0, 10)
	store.put(1, 11)

	store.grow(0, 2)

	assert.Equal(t, []int{0, 0, 10, 11}, store.data)
	assert.Equal(t, uint(2), store.uninitialized)
}

func TestDataStore_Grow_PanicsOnSmallIncrement(t *testing.T) {
	store := newDataStore[int](4)
	assert.Panics(t, func() { store.grow(0, 3) })
}

func TestDataStore_Clean(t *testing.T) {
	store := newDataStore[*int](4)
	a, b := new(int), new(int)
	store.put(0, a)
	store.put(1, b)

	// next write at 2, uninitialized gap is [2, 4)
	store.clean(2)

	assert.Nil(t, store.data)
	assert.Equal(t, uint(0), store.uninitialized)
}

func TestDataStore_Clean_Empty(t *testing.T) {
	var store dataStore[int]
	store.clean(0)
	assert.Nil(t, store.data)
}

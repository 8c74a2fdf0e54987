package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("product:1", "value")
	got, found := c.GetValue("product:1")
	require.True(t, found)
	assert.Equal(t, "value", got)

	_, found = c.GetValue("product:2")
	assert.False(t, found)
}

func TestExpiredEntryMisses(t *testing.T) {
	c := New(time.Minute)

	c.Set("k", "v", -time.Second) // already expired
	_, found := c.GetValue("k")
	assert.False(t, found)
}

func TestDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)

	c.Set("products:list:p1", 1)
	c.Set("products:list:p2", 2)
	c.Set("product:1", 3)

	c.DeleteByPrefix("products:list:")

	_, found := c.GetValue("products:list:p1")
	assert.False(t, found)
	_, found = c.GetValue("product:1")
	assert.True(t, found)
	assert.Equal(t, 1, c.Size())
}

func TestClear(t *testing.T) {
	c := New(time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()
	assert.Equal(t, 0, c.Size())
}

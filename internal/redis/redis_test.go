package redis

import (
	"context"
	"testing"
	"time"

	"github.com/JonasLeetTheWay/fyyur/internal/config"
	"github.com/JonasLeetTheWay/fyyur/internal/directory"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDisabled(t *testing.T) {
	assert.Nil(t, NewClient(&config.Config{CacheEnabled: true}))
	assert.Nil(t, NewClient(&config.Config{RedisHost: "localhost", RedisPort: "6379", CacheEnabled: false}))
}

func TestNewClientEnabled(t *testing.T) {
	c := NewClient(&config.Config{RedisHost: "localhost", RedisPort: "6379", CacheEnabled: true, CacheTTL: time.Minute})
	require.NotNil(t, c)
	assert.Equal(t, time.Minute, c.ttl)
	assert.NoError(t, c.Close())
}

func TestNilClientIsDisabledCache(t *testing.T) {
	var c *Client
	ctx := context.Background()

	require.NoError(t, c.SetVenueListings(ctx, []directory.VenueListing{{ID: 1, City: "San Francisco", State: "CA"}}))

	listings, ok, err := c.GetVenueListings(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, listings)

	assert.NoError(t, c.Invalidate(ctx))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewClient(&config.Config{RedisHost: mr.Host(), RedisPort: mr.Port(), CacheEnabled: true, CacheTTL: time.Minute})
	require.NotNil(t, c)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestVenueListingsRoundTrip(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	_, ok, err := c.GetVenueListings(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	want := []directory.VenueListing{
		{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA", ShowTimes: []time.Time{start}},
		{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY", ShowTimes: []time.Time{}},
	}
	require.NoError(t, c.SetVenueListings(ctx, want))
	assert.Equal(t, time.Minute, mr.TTL(listingsKey))

	got, ok, err := c.GetVenueListings(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "Park Square Live Music & Coffee", got[0].Name)
	require.Len(t, got[0].ShowTimes, 1)
	assert.True(t, start.Equal(got[0].ShowTimes[0]))
	assert.Empty(t, got[1].ShowTimes)

	require.NoError(t, c.Invalidate(ctx))
	assert.False(t, mr.Exists(listingsKey))
	_, ok, err = c.GetVenueListings(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVenueListingsExpire(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.SetVenueListings(ctx, []directory.VenueListing{{ID: 1, Name: "The Musical Hop"}}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.GetVenueListings(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCorruptVenueListings(t *testing.T) {
	c, mr := newTestClient(t)

	require.NoError(t, mr.Set(listingsKey, "{broken"))

	listings, ok, err := c.GetVenueListings(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, listings)
}

func TestUnreachableRedis(t *testing.T) {
	c, mr := newTestClient(t)
	mr.Close()

	_, ok, err := c.GetVenueListings(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}

package network

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoxyHub/JavIsland/pkg/api"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestBroadcaster_RegisterSend(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("a")

	assert.True(t, b.HasSubscriber("a"))
	assert.Equal(t, 1, b.SubscriberCount())

	require.True(t, b.SendTo("a", api.ServerResponse{Tick: 7}))
	msg := <-ch
	assert.Equal(t, 7, msg.Tick)

	assert.False(t, b.SendTo("ghost", api.ServerResponse{}))
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("a")
	fresh := b.Register("a")

	_, ok := <-old
	assert.False(t, ok, "old channel is closed")

	b.Broadcast(api.ServerResponse{Tick: 1})
	msg := <-fresh
	assert.Equal(t, 1, msg.Tick)
	assert.Equal(t, 1, b.SubscriberCount())
}

func TestBroadcaster_FullChannelDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("slow")

	for i := 0; i < SubscriberBuffer; i++ {
		require.True(t, b.SendTo("slow", api.ServerResponse{Tick: i}))
	}
	assert.False(t, b.SendTo("slow", api.ServerResponse{Tick: -1}))
	assert.Len(t, ch, SubscriberBuffer)
}

func TestBroadcaster_Unregister(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("a")
	b.Unregister("a")

	_, ok := <-ch
	assert.False(t, ok)
	assert.False(t, b.HasSubscriber("a"))
	b.Unregister("a")
}

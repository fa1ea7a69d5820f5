package ctmsg

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrokerPublishesInRegistrationOrder(t *testing.T) {
	b := NewMessageBroker()

	var order []string
	b.RegisterHandler(func(Message) { order = append(order, "first") })
	b.RegisterHandler(func(Message) { order = append(order, "second") })
	b.RegisterHandler(nil)

	b.Publish(ServerMessage{MsgNumber: 1})

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, 2, b.Len())
}

func TestBrokerDeregister(t *testing.T) {
	b := NewMessageBroker()

	var a, c int
	deregA := b.RegisterHandler(func(Message) { a++ })
	b.RegisterHandler(func(Message) { c++ })

	b.Publish(ClientMessage{})
	deregA()
	deregA()
	b.Publish(ClientMessage{})

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, c)
	assert.Equal(t, 1, b.Len())

	b.DeregisterAll()
	b.Publish(ClientMessage{})
	assert.Equal(t, 2, c)
	assert.Zero(t, b.Len())
}

func TestBrokerRegisterFromHandler(t *testing.T) {
	b := NewMessageBroker()

	var late int
	b.RegisterHandler(func(Message) {
		b.RegisterHandler(func(Message) { late++ })
	})

	b.Publish(ServerMessage{})
	assert.Zero(t, late)

	b.Publish(ServerMessage{})
	assert.Equal(t, 1, late)
}

func TestBrokerConcurrentPublish(t *testing.T) {
	b := NewMessageBroker()
	rec := NewMessageRecorder()
	b.RegisterHandler(rec.HandleMessage)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				b.Publish(ServerMessage{MsgNumber: uint64(j)})
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 50; j++ {
			b.RegisterHandler(func(Message) {})()
		}
	}()
	wg.Wait()

	require.Equal(t, 400, rec.Len())
}

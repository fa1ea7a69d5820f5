package ctmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageRecorder(t *testing.T) {
	rec := NewMessageRecorder()
	rec.HandleMessage(ServerMessage{Text: "DBCC execution completed."})
	rec.HandleMessage(ClientMessage{Text: "connection timed out"})

	assert.Equal(t, 2, rec.Len())
	assert.Equal(t, []string{"DBCC execution completed.\n", "connection timed out\n"}, rec.Text())

	msgs := rec.Messages()
	msgs[0] = nil
	assert.NotNil(t, rec.Messages()[0])

	rec.Reset()
	assert.Zero(t, rec.Len())
	assert.Empty(t, rec.Text())
}

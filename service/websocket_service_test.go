package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tieubaoca/study-buddy-be/repository"
	"github.com/tieubaoca/study-buddy-be/types"
)

func dialTestChat(t *testing.T, ai AIService) *websocket.Conn {
	t.Helper()

	study := NewStudyService(repository.NewInMemoryMaterialRepo(), &stubExtractor{text: "content"}, ai)
	ws := NewWebSocketService(study)

	server := httptest.NewServer(http.HandlerFunc(ws.HandleChat))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketPingPong(t *testing.T) {
	conn := dialTestChat(t, nil)

	require.NoError(t, conn.WriteJSON(types.WebsocketRequest{Type: types.TypeWebsocketPing}))

	var res types.WebsocketResponse
	require.NoError(t, conn.ReadJSON(&res))
	assert.Equal(t, types.TypeWebsocketPong, res.Type)
}

func TestWebSocketChat(t *testing.T) {
	conn := dialTestChat(t, &stubAI{response: "an answer"})

	require.NoError(t, conn.WriteJSON(types.WebsocketRequest{
		Type:    types.TypeWebsocketChat,
		Payload: types.WebsocketChatPayload{Message: "What is X?"},
	}))

	var res types.WebsocketResponse
	require.NoError(t, conn.ReadJSON(&res))
	assert.Equal(t, types.TypeWebsocketChat, res.Type)

	payload, ok := res.Payload.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "an answer", payload["response"])
}

func TestWebSocketChatErrorsStayInBand(t *testing.T) {
	// nil AI service: the chat fails but the connection survives
	conn := dialTestChat(t, nil)

	require.NoError(t, conn.WriteJSON(types.WebsocketRequest{
		Type:    types.TypeWebsocketChat,
		Payload: types.WebsocketChatPayload{Message: "hello"},
	}))

	var res types.WebsocketResponse
	require.NoError(t, conn.ReadJSON(&res))
	assert.Equal(t, types.TypeWebsocketError, res.Type)

	// still usable afterwards
	require.NoError(t, conn.WriteJSON(types.WebsocketRequest{Type: types.TypeWebsocketPing}))
	require.NoError(t, conn.ReadJSON(&res))
	assert.Equal(t, types.TypeWebsocketPong, res.Type)
}

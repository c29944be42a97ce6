package stream

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pebbles-game/internal/api/response"
	"github.com/mcoot/pebbles-game/internal/model"
	"github.com/mcoot/pebbles-game/internal/testutil"
)

func newState(t *testing.T) *model.GameState {
	t.Helper()
	state, err := model.NewGameState(model.GameConfig{
		Difficulty:        model.DifficultyEasy,
		PebblesCount:      15,
		MaxPebblesPerTurn: 3,
	}, model.PlayerHuman, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return state
}

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(testutil.NopLogger())
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, nil)
	require.True(t, hub.Register(client))
	assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	assert.NotEmpty(t, client.ID())

	hub.Unregister(client)
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, ok := <-client.send
	assert.False(t, ok, "send channel should be closed on unregister")
}

func TestHub_RegisterAfterCloseFails(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	hub.Close()
	hub.Close()

	assert.False(t, hub.Register(NewClient(hub, nil)))
}

func TestHub_PublishReachesClients(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	first := NewClient(hub, nil)
	second := NewClient(hub, nil)
	require.True(t, hub.Register(first))
	require.True(t, hub.Register(second))

	hub.Publish(model.CounterTurn(2), newState(t))

	for _, c := range []*Client{first, second} {
		select {
		case msg := <-c.send:
			var resp response.ActionResponse
			require.NoError(t, json.Unmarshal(msg, &resp))
			assert.Equal(t, "counter_turn", resp.Event.Type)
			assert.Equal(t, uint32(2), resp.Event.Pebbles)
			assert.Equal(t, uint32(15), resp.State.PebblesRemaining)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for message")
		}
	}
}

func TestServeWS_StreamsEvents(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	state := newState(t)
	state.SetWinner(model.PlayerHuman)
	hub.Publish(model.Won(model.PlayerHuman), state)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var resp response.ActionResponse
	require.NoError(t, json.Unmarshal(msg, &resp))
	assert.Equal(t, "won", resp.Event.Type)
	assert.Equal(t, "human", resp.Event.Player)
	assert.True(t, resp.State.IsOver)
}

func TestServeWS_DisconnectUnregisters(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	_ = conn.Close()

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServeWS_HubCloseDisconnectsClients(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	hub.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

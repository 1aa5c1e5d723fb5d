package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	model "bid-sniper/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	router := gin.New()
	router.GET("/events/ws", hub.ServeWS)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/events/ws"
}

func dialFeed(t *testing.T, wsURL string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	// Give the hub a beat to process the registration before emitting.
	time.Sleep(100 * time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) model.SniperEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var ev model.SniperEvent
	require.NoError(t, json.Unmarshal(msg, &ev))
	return ev
}

func TestHub_BroadcastsEventsToSubscriber(t *testing.T) {
	hub, wsURL := startHub(t)
	conn := dialFeed(t, wsURL)

	sent := model.NewEvent("ev-1", model.EventBidPlaced)
	sent.AuctionID = 7
	sent.ExternalRef = "lot7"
	sent.Username = "alice"
	sent.Amount = "5.00"
	hub.Emit(sent)

	got := readEvent(t, conn)
	require.Equal(t, model.EventBidPlaced, got.Event)
	require.Equal(t, 7, got.AuctionID)
	require.Equal(t, "lot7", got.ExternalRef)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "5.00", got.Amount)
	require.Equal(t, "ev-1", got.EventID)
}

func TestHub_EverySubscriberReceivesEachEvent(t *testing.T) {
	hub, wsURL := startHub(t)
	first := dialFeed(t, wsURL)
	second := dialFeed(t, wsURL)

	hub.Emit(model.NewEvent("ev-1", model.EventBidScheduled))

	require.Equal(t, model.EventBidScheduled, readEvent(t, first).Event)
	require.Equal(t, model.EventBidScheduled, readEvent(t, second).Event)
}

// A subscriber going away must not break the feed for the rest.
func TestHub_SurvivesSubscriberDisconnect(t *testing.T) {
	hub, wsURL := startHub(t)
	leaver := dialFeed(t, wsURL)
	stayer := dialFeed(t, wsURL)

	require.NoError(t, leaver.Close())
	time.Sleep(100 * time.Millisecond)

	hub.Emit(model.NewEvent("ev-1", model.EventBidsCancelled))
	require.Equal(t, model.EventBidsCancelled, readEvent(t, stayer).Event)
}

func TestHub_StopClosesSubscribers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/events/ws", hub.ServeWS)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/events/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	time.Sleep(100 * time.Millisecond)

	cancel()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err, "the server side should close the connection on shutdown")
}

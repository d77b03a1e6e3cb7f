package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// startTestHub swaps in a fresh hub for the test.
func startTestHub(t *testing.T) *Hub {
	t.Helper()
	prev := GlobalHub
	t.Cleanup(func() { GlobalHub = prev })

	GlobalHub = NewHub()
	go GlobalHub.Run()
	return GlobalHub
}

func TestWebSocketBroadcast(t *testing.T) {
	hub := startTestHub(t)

	srv := httptest.NewServer(http.HandlerFunc(handleWebSocket))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Wait for registration before broadcasting.
	deadline := time.Now().Add(time.Second)
	for {
		hub.mu.RLock()
		n := len(hub.clients)
		hub.mu.RUnlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.Broadcast(EventMessage{
		Type:    "guidance_complete",
		Feeling: "anxious",
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg EventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "guidance_complete" || msg.Feeling != "anxious" {
		t.Errorf("message = %+v", msg)
	}
	if msg.Timestamp == "" {
		t.Error("broadcast should stamp a timestamp")
	}
}

func TestWebSocketOriginCheck(t *testing.T) {
	startTestHub(t)

	prevCfg := ServerConfig
	t.Cleanup(func() { ServerConfig = prevCfg })
	ServerConfig.AllowedOrigins = []string{"https://app.example.com"}

	srv := httptest.NewServer(http.HandlerFunc(handleWebSocket))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	t.Run("allowed origin connects", func(t *testing.T) {
		header := http.Header{"Origin": []string{"https://app.example.com"}}
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
		if err != nil {
			t.Fatalf("dial with allowed origin: %v", err)
		}
		conn.Close()
	})

	t.Run("other origin rejected", func(t *testing.T) {
		header := http.Header{"Origin": []string{"https://evil.example.com"}}
		if conn, _, err := websocket.DefaultDialer.Dial(wsURL, header); err == nil {
			conn.Close()
			t.Error("dial with disallowed origin should fail")
		}
	})
}

func TestBroadcastEventNilHub(t *testing.T) {
	prev := GlobalHub
	t.Cleanup(func() { GlobalHub = prev })
	GlobalHub = nil

	// Must not panic when the hub is not running.
	broadcastEvent("guidance_started", "", "anxious", "")
}

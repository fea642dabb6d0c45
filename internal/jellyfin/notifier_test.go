package jellyfin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestSocketURL(t *testing.T) {
	tests := []struct {
		server, wantScheme, wantPath string
	}{
		{"https://media.example.com", "wss", "/socket"},
		{"http://10.0.0.2:8096", "ws", "/socket"},
		{"https://example.com/jellyfin/", "wss", "/jellyfin/socket"},
	}
	for _, tt := range tests {
		got, err := socketURL(tt.server, "tok")
		if err != nil {
			t.Fatalf("socketURL(%q) error: %v", tt.server, err)
		}
		u, _ := url.Parse(got)
		if u.Scheme != tt.wantScheme || u.Path != tt.wantPath {
			t.Errorf("socketURL(%q) = %s", tt.server, got)
		}
		if u.Query().Get("api_key") != "tok" || u.Query().Get("deviceId") != deviceID {
			t.Errorf("socketURL(%q) query = %s", tt.server, u.RawQuery)
		}
	}

	if _, err := socketURL("ftp://x", "tok"); err == nil {
		t.Error("expected an error for a non-http scheme")
	}
}

func TestKeepAliveInterval(t *testing.T) {
	if got := keepAliveInterval(json.RawMessage("60")); got != 30*time.Second {
		t.Errorf("keepAliveInterval(60) = %v", got)
	}
	if got := keepAliveInterval(nil); got != defaultKeepAlive {
		t.Errorf("keepAliveInterval(nil) = %v", got)
	}
	if got := keepAliveInterval(json.RawMessage(`"x"`)); got != defaultKeepAlive {
		t.Errorf("keepAliveInterval(bad) = %v", got)
	}
}

func TestNotifierReportsLibraryChanges(t *testing.T) {
	upgrader := websocket.Upgrader{}
	keepAlive := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		conn.WriteMessage(websocket.TextMessage, []byte(`{"MessageType":"ForceKeepAlive","Data":60}`))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		keepAlive <- string(msg)
		conn.WriteMessage(websocket.TextMessage, []byte(`not json`))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"MessageType":"LibraryChanged","Data":{"ItemsAdded":["1"]}}`))

		// Hold the connection until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	n := NewNotifier("ws" + strings.TrimPrefix(srv.URL, "http") + "/socket")
	changed := make(chan struct{}, 1)
	n.OnLibraryChanged = func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go n.Run(ctx)

	select {
	case msg := <-keepAlive:
		if !strings.Contains(msg, `"KeepAlive"`) {
			t.Errorf("keep-alive message = %s", msg)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no keep-alive received")
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("library change not reported")
	}
}

package jellyfin

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	msgLibraryChanged = "LibraryChanged"
	msgForceKeepAlive = "ForceKeepAlive"
	msgKeepAlive      = "KeepAlive"

	defaultKeepAlive = 30 * time.Second
	retryDelay       = 5 * time.Second
)

type socketMessage struct {
	MessageType string          `json:"MessageType"`
	Data        json.RawMessage `json:"Data,omitempty"`
}

// Notifier listens on the server's notification socket and reports library
// changes. It reconnects until its context is cancelled.
type Notifier struct {
	mu    sync.Mutex
	conn  *websocket.Conn
	wsURL string

	RetryDelay time.Duration

	// OnLibraryChanged runs on the notifier's goroutine.
	OnLibraryChanged func()
}

// NewNotifier returns a notifier for the server socket at wsURL.
func NewNotifier(wsURL string) *Notifier {
	return &Notifier{wsURL: wsURL, RetryDelay: retryDelay}
}

// Notifier returns a notifier for this client's server and token.
func (c *Client) Notifier() (*Notifier, error) {
	u, err := socketURL(c.serverURL, c.token)
	if err != nil {
		return nil, err
	}
	return NewNotifier(u), nil
}

// socketURL maps the HTTP server URL to its websocket endpoint.
func socketURL(serverURL, token string) (string, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("invalid server url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("invalid server url scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/socket"
	q := url.Values{}
	q.Set("api_key", token)
	q.Set("deviceId", deviceID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Run connects and listens until ctx is done.
func (n *Notifier) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		n.close()
	}()

	for ctx.Err() == nil {
		if err := n.connect(ctx); err != nil {
			log.Printf("notifier: connect failed: %v; retrying...", err)
		} else if err := n.listen(ctx); err != nil && ctx.Err() == nil {
			log.Printf("notifier: connection lost: %v; reconnecting...", err)
		}
		select {
		case <-ctx.Done():
		case <-time.After(n.RetryDelay):
		}
	}
}

func (n *Notifier) connect(ctx context.Context) error {
	d := websocket.Dialer{
		HandshakeTimeout: 5 * time.Second,
	}
	conn, _, err := d.DialContext(ctx, n.wsURL, nil)
	if err != nil {
		return err
	}

	n.mu.Lock()
	if n.conn != nil {
		n.conn.Close()
	}
	n.conn = conn
	n.mu.Unlock()
	return nil
}

// listen reads messages until the connection fails.
func (n *Notifier) listen(ctx context.Context) error {
	n.mu.Lock()
	conn := n.conn
	n.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("no websocket connection")
	}

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	keepAliveStarted := false

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		var msg socketMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			log.Printf("notifier: bad message: %v", err)
			continue
		}

		switch msg.MessageType {
		case msgForceKeepAlive:
			if !keepAliveStarted {
				keepAliveStarted = true
				go n.keepAlive(connCtx, keepAliveInterval(msg.Data))
			}
		case msgLibraryChanged:
			if n.OnLibraryChanged != nil {
				n.OnLibraryChanged()
			}
		}
	}
}

// keepAliveInterval returns half the timeout the server announced.
func keepAliveInterval(data json.RawMessage) time.Duration {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil || seconds <= 0 {
		return defaultKeepAlive
	}
	return time.Duration(seconds * float64(time.Second) / 2)
}

func (n *Notifier) keepAlive(ctx context.Context, every time.Duration) {
	if err := n.send(socketMessage{MessageType: msgKeepAlive}); err != nil {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := n.send(socketMessage{MessageType: msgKeepAlive}); err != nil {
				log.Printf("notifier: keep-alive failed: %v", err)
				return
			}
		}
	}
}

func (n *Notifier) send(v any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.conn == nil {
		return fmt.Errorf("no websocket connection")
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return n.conn.WriteMessage(websocket.TextMessage, payload)
}

func (n *Notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.conn != nil {
		n.conn.Close()
		n.conn = nil
	}
}

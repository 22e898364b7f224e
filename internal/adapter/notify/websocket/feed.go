package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"plantverse/internal/app/ports"

	"github.com/gorilla/websocket"
)

const (
	broadcastBuffer = 256
	writeTimeout    = 10 * time.Second
	enqueueTimeout  = time.Second
)

// Feed fans care events out to every connected websocket client. It
// implements ports.CareNotifier and http.Handler: mount it on a mux and
// clients subscribe with a plain websocket dial.
type Feed struct {
	mu         sync.RWMutex
	clients    map[*websocket.Conn]bool
	upgrader   websocket.Upgrader
	broadcast  chan ports.CareEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	wg         sync.WaitGroup
}

func NewFeed() *Feed {
	f := &Feed{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan ports.CareEvent, broadcastBuffer),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	f.wg.Add(1)
	go f.run()
	return f
}

// Notify enqueues an event for broadcast. Delivery is best effort: a
// full queue is reported, not blocked on.
func (f *Feed) Notify(ctx context.Context, event ports.CareEvent) error {
	select {
	case f.broadcast <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(enqueueTimeout):
		return fmt.Errorf("care feed queue full")
	}
}

func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	select {
	case f.register <- conn:
	case <-f.done:
		conn.Close()
		return
	}

	// Drain the read side so close frames and pings are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				select {
				case f.unregister <- conn:
				case <-f.done:
				}
				return
			}
		}
	}()
}

func (f *Feed) run() {
	defer f.wg.Done()
	for {
		select {
		case <-f.done:
			return

		case conn := <-f.register:
			f.mu.Lock()
			f.clients[conn] = true
			f.mu.Unlock()

		case conn := <-f.unregister:
			f.mu.Lock()
			if _, ok := f.clients[conn]; ok {
				delete(f.clients, conn)
				conn.Close()
			}
			f.mu.Unlock()

		case event := <-f.broadcast:
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			f.mu.RLock()
			conns := make([]*websocket.Conn, 0, len(f.clients))
			for conn := range f.clients {
				conns = append(conns, conn)
			}
			f.mu.RUnlock()

			var failed []*websocket.Conn
			for _, conn := range conns {
				conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					failed = append(failed, conn)
					conn.Close()
				}
			}
			if len(failed) > 0 {
				f.mu.Lock()
				for _, conn := range failed {
					delete(f.clients, conn)
				}
				f.mu.Unlock()
			}
		}
	}
}

// Close disconnects all clients and stops the broadcaster.
func (f *Feed) Close() error {
	close(f.done)
	f.mu.Lock()
	for conn := range f.clients {
		conn.Close()
		delete(f.clients, conn)
	}
	f.mu.Unlock()
	f.wg.Wait()
	return nil
}

// Package liveserver streams search.Snapshot values to connected
// WebSocket clients, for a browser-based spectator of a long-running
// search. It is grounded in this codebase's lineage of upgrading an
// http.Request with gorilla/websocket and fanning messages out to a
// registry of connections, trimmed to this domain's one direction:
// broadcast-only, no inbound client commands.
//
// The server is entirely passive: Publish never blocks on a slow or
// absent client, and nothing here ever reaches back into the search.
package liveserver

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"bfsynth/internal/search"
)

// Server broadcasts search.Snapshot values to every client connected to
// its /ws endpoint.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	http     *http.Server

	mu      sync.Mutex
	clients map[*websocket.Conn]chan search.Snapshot
}

// NewServer constructs a Server bound to addr. Serve must be called to
// actually start accepting connections.
func NewServer(addr string) *Server {
	s := &Server{
		addr:     addr,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		clients:  make(map[*websocket.Conn]chan search.Snapshot),
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.http = &http.Server{Addr: addr, Handler: mux}
	return s
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	ch := make(chan search.Snapshot, 8)
	s.mu.Lock()
	s.clients[conn] = ch
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for snap := range ch {
		if err := conn.WriteJSON(snap); err != nil {
			return
		}
	}
}

// Publish broadcasts snap to every currently connected client. A client
// whose send buffer is full simply misses this snapshot; Publish never
// blocks the caller (the search loop).
func (s *Server) Publish(snap search.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.clients {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Serve runs the HTTP/WebSocket server until ctx is canceled, joining the
// listener goroutine with context-driven shutdown via errgroup.
func (s *Server) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return s.http.Shutdown(context.Background())
	})

	log.Printf("liveserver: watching at ws://%s/ws", s.addr)
	return g.Wait()
}

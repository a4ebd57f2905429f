// Package bridge serves the walk-around to a browser over a WebSocket. The
// browser draws the scene and forwards its key events; the server owns the
// simulation. Every connection gets its own session.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pixelportfolio/pkg/engine/clock"
	"pixelportfolio/pkg/engine/input"
	"pixelportfolio/pkg/game/config"
	"pixelportfolio/pkg/game/content"
	"pixelportfolio/pkg/game/gameplay"
	"pixelportfolio/pkg/game/renderer"
	"pixelportfolio/pkg/game/state"
)

// Message types.
const (
	TypeScene   = "scene"
	TypeFrame   = "frame"
	TypeKeyDown = "keydown"
	TypeKeyUp   = "keyup"
	TypeBlur    = "blur"
)

const (
	writeWait       = 5 * time.Second
	shutdownTimeout = 5 * time.Second
	inboxSize       = 64
)

// ClientMessage is a key event sent by the browser.
type ClientMessage struct {
	Type string `json:"type"`
	Code string `json:"code,omitempty"`
}

// ServerMessage is either the scene, sent once on connect, or a frame.
type ServerMessage struct {
	Type    string              `json:"type"`
	Session string              `json:"session,omitempty"`
	Scene   *renderer.SceneView `json:"scene,omitempty"`
	Frame   *renderer.Frame     `json:"frame,omitempty"`
}

// Server upgrades connections on /ws and runs one session per connection.
type Server struct {
	cfg   *config.Config
	store *content.Store
	log   *zap.Logger

	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[uuid.UUID]*state.Game
}

// New creates a bridge serving sessions built from cfg and store.
func New(cfg *config.Config, store *content.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:   cfg,
		store: store,
		log:   log.Named("bridge"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[uuid.UUID]*state.Game),
	}
}

// Handler returns the HTTP routes: /ws for sessions and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int{"sessions": s.Sessions()}); err != nil {
			s.log.Debug("healthz write failed", zap.Error(err))
		}
	})
	return mux
}

// Sessions returns the number of connected visitors.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ListenAndServe serves on cfg.Server.Addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("bridge server failed: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", zap.Error(err), zap.String("remote", r.RemoteAddr))
		return
	}
	defer conn.Close()

	if err := s.serve(r.Context(), conn); err != nil {
		s.log.Warn("session ended with error", zap.Error(err), zap.String("remote", r.RemoteAddr))
	}
}

// serve runs one session. A reader goroutine decodes key events into a
// channel; the session goroutine is the only one touching the game.
func (s *Server) serve(ctx context.Context, conn *websocket.Conn) error {
	g, err := gameplay.BuildGame(s.cfg, s.store, config.DefaultPreferences(), s.log)
	if err != nil {
		return err
	}
	s.track(g)
	defer s.untrack(g)
	g.Log.Info("visitor connected", zap.String("remote", conn.RemoteAddr().String()))

	view := renderer.SceneOf(g.Scene)
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(ServerMessage{Type: TypeScene, Session: g.ID.String(), Scene: &view}); err != nil {
		return fmt.Errorf("failed to send scene: %w", err)
	}

	inbox := make(chan ClientMessage, inboxSize)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return readLoop(ctx, conn, inbox)
	})
	eg.Go(func() error {
		// Closing the connection unblocks the reader.
		defer conn.Close()
		return s.run(ctx, conn, g, inbox)
	})
	err = eg.Wait()
	g.Log.Info("visitor disconnected", zap.Uint64("ticks", g.Ticks))
	return err
}

// readLoop forwards client messages until the connection closes. Malformed
// messages are skipped.
func readLoop(ctx context.Context, conn *websocket.Conn, inbox chan<- ClientMessage) error {
	defer close(inbox)
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			switch {
			case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
				continue
			case websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway):
				return fmt.Errorf("failed to read message: %w", err)
			}
			return nil
		}
		select {
		case inbox <- msg:
		case <-ctx.Done():
			return nil
		}
	}
}

// run is the session loop: apply queued events, tick at the configured
// rate with the real elapsed time, and push a frame after every tick.
func (s *Server) run(ctx context.Context, conn *websocket.Conn, g *state.Game, inbox <-chan ClientMessage) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.Server.TickRate))
	defer ticker.Stop()
	clk := clock.New()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-inbox:
			if !ok {
				return nil
			}
			Apply(g, msg)
		case now := <-ticker.C:
			gameplay.UpdateLoading(g, now)
			gameplay.Tick(g, clk.Delta())

			frame := renderer.FrameOf(g, now)
			conn.SetWriteDeadline(now.Add(writeWait))
			if err := conn.WriteJSON(ServerMessage{Type: TypeFrame, Frame: &frame}); err != nil {
				return fmt.Errorf("failed to send frame: %w", err)
			}
			if g.Quit {
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
					time.Now().Add(writeWait))
				return nil
			}
		}
	}
}

// Apply feeds one browser message into a session.
func Apply(g *state.Game, msg ClientMessage) {
	switch msg.Type {
	case TypeKeyDown:
		gameplay.HandleKey(g, input.DeviceBrowser, msg.Code, input.PhasePress)
	case TypeKeyUp:
		gameplay.HandleKey(g, input.DeviceBrowser, msg.Code, input.PhaseRelease)
	case TypeBlur:
		// The page lost focus; its keyup events will never arrive.
		g.Input.ReleaseAll()
	default:
		g.Log.Debug("ignoring message", zap.String("type", msg.Type))
	}
}

func (s *Server) track(g *state.Game) {
	s.mu.Lock()
	s.sessions[g.ID] = g
	n := len(s.sessions)
	s.mu.Unlock()
	s.log.Debug("session opened", zap.Stringer("session", g.ID), zap.Int("sessions", n))
}

func (s *Server) untrack(g *state.Game) {
	s.mu.Lock()
	delete(s.sessions, g.ID)
	n := len(s.sessions)
	s.mu.Unlock()
	s.log.Debug("session closed", zap.Stringer("session", g.ID), zap.Int("sessions", n))
}

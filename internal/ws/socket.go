package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/kiliankoe/scoredash/internal/game"
	"github.com/rs/zerolog/log"
)

type ConnCtx struct {
	Code  string
	Token string
	Role  string // "host" | "viewer"
}

type Server struct {
	RM *game.RoomManager
	io *socketio.Server
}

func New(rm *game.RoomManager) *Server {
	return &Server{RM: rm}
}

// Display returns an adapter that broadcasts a session's notifications to
// its Socket.IO room.
func (srv *Server) Display(code string) game.Display {
	return roomDisplay{code: code, pub: srv}
}

func (srv *Server) publish(code, event string, data any) {
	if srv.io == nil {
		return
	}
	srv.io.BroadcastToRoom("/", code, event, data)
}

// Mount attaches Socket.IO server with handlers to the given Gin engine.
func (srv *Server) Mount(r *gin.Engine) *socketio.Server {
	io := socketio.NewServer(nil)
	srv.io = io

	io.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext(&ConnCtx{})
		log.Info().Str("sid", s.ID()).Msg("socket connected")
		return nil
	})

	// sim:create
	io.OnEvent("/", "sim:create", func(s socketio.Conn) map[string]any {
		code, hostToken, _ := srv.RM.CreateSession()
		s.SetContext(&ConnCtx{Code: code, Token: hostToken, Role: "host"})
		s.Join(code)
		log.Info().Str("sid", s.ID()).Str("code", code).Msg("sim:create")
		srv.emitState(s, code)
		return map[string]any{"sessionCode": code, "hostToken": hostToken}
	})

	// sim:watch (viewers, or a host resuming with its token)
	io.OnEvent("/", "sim:watch", func(s socketio.Conn, payload struct {
		SessionCode string `json:"sessionCode"`
		HostToken   string `json:"hostToken"`
	}) map[string]any {
		sess, err := srv.RM.Get(payload.SessionCode)
		if err != nil {
			return srv.err(s, "session_not_found", "Session not found")
		}
		ctx := &ConnCtx{Code: payload.SessionCode, Role: "viewer"}
		if payload.HostToken != "" {
			if payload.HostToken != sess.HostToken {
				return srv.err(s, "unauthorized", "Invalid host token")
			}
			ctx.Token = payload.HostToken
			ctx.Role = "host"
		}
		s.SetContext(ctx)
		s.Join(payload.SessionCode)
		log.Info().Str("sid", s.ID()).Str("code", payload.SessionCode).Str("role", ctx.Role).Msg("sim:watch")
		srv.emitState(s, payload.SessionCode)
		return map[string]any{"ok": true}
	})

	// sim:start (host)
	io.OnEvent("/", "sim:start", func(s socketio.Conn) map[string]any {
		ctx := s.Context().(*ConnCtx)
		sess, err := srv.RM.Get(ctx.Code)
		if err != nil {
			return srv.err(s, "session_not_found", "Session not found")
		}
		started, err := sess.Start(ctx.Token)
		if err != nil {
			return srv.err(s, "unauthorized", err.Error())
		}
		log.Info().Str("code", ctx.Code).Bool("started", started).Msg("sim:start")
		return map[string]any{"ok": true, "started": started}
	})

	// sim:reset (host)
	io.OnEvent("/", "sim:reset", func(s socketio.Conn) map[string]any {
		ctx := s.Context().(*ConnCtx)
		sess, err := srv.RM.Get(ctx.Code)
		if err != nil {
			return srv.err(s, "session_not_found", "Session not found")
		}
		if err := sess.Reset(ctx.Token); err != nil {
			return srv.err(s, "unauthorized", err.Error())
		}
		log.Info().Str("code", ctx.Code).Msg("sim:reset")
		return map[string]any{"ok": true}
	})

	io.OnError("/", func(s socketio.Conn, e error) {
		log.Error().Err(e).Msg("socket error")
	})
	io.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Info().Str("sid", s.ID()).Str("reason", reason).Msg("socket disconnected")
	})

	go func() {
		if err := io.Serve(); err != nil {
			log.Error().Err(err).Msg("socket.io serve")
		}
	}()

	r.GET("/socket.io/*any", gin.WrapH(io))
	r.POST("/socket.io/*any", gin.WrapH(io))

	// Basic CORS preflight for Socket.IO POST
	r.OPTIONS("/socket.io/*any", func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusNoContent)
	})

	return io
}

func (srv *Server) emitState(s socketio.Conn, code string) {
	sess, err := srv.RM.Get(code)
	if err != nil {
		return
	}
	s.Emit(EventState, map[string]any{
		"sessionCode": code,
		"snapshot":    sess.Engine.Snapshot(),
		"you":         map[string]any{"role": s.Context().(*ConnCtx).Role},
	})
}

func (srv *Server) err(s socketio.Conn, code, message string) map[string]any {
	s.Emit("error", map[string]any{"code": code, "message": message})
	return map[string]any{"error": message}
}

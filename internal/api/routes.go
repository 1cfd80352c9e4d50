// Package api wires the HTTP endpoints for session control and snapshots.
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiliankoe/scoredash/internal/config"
	"github.com/kiliankoe/scoredash/internal/game"
	"github.com/rs/zerolog/log"
)

// RequestLogger logs every request except Socket.IO polling noise.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/socket.io") {
			return
		}
		log.Info().Str("path", path).Int("status", c.Writer.Status()).Dur("dur", time.Since(start)).Msg("http")
	}
}

func Register(r *gin.Engine, rm *game.RoomManager, cfg config.Config) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "time": time.Now().UTC()})
	})

	r.GET("/api/session/active", func(c *gin.Context) {
		if code, sess := rm.Active(); sess != nil {
			c.JSON(http.StatusOK, gin.H{"sessionCode": code})
			return
		}
		c.Status(http.StatusNotFound)
	})

	r.GET("/api/sessions/:code", func(c *gin.Context) {
		sess, err := rm.Get(c.Param("code"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session_not_found"})
			return
		}
		c.JSON(http.StatusOK, sess.Engine.Snapshot())
	})

	if !cfg.GMEnabled() {
		return
	}
	gm := r.Group("/api", gin.BasicAuth(gin.Accounts{cfg.GMUser: cfg.GMPass}))

	gm.POST("/gm/create", func(c *gin.Context) {
		code, hostToken, err := rm.CreateSession()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessionCode": code, "hostToken": hostToken})
	})

	// Basic auth already identifies the GM, so start/reset act as the host.
	gm.POST("/sessions/:code/start", func(c *gin.Context) {
		sess, ok := session(c, rm)
		if !ok {
			return
		}
		started, _ := sess.Start(sess.HostToken)
		c.JSON(http.StatusOK, gin.H{"started": started, "state": sess.Engine.State()})
	})

	gm.POST("/sessions/:code/reset", func(c *gin.Context) {
		sess, ok := session(c, rm)
		if !ok {
			return
		}
		_ = sess.Reset(sess.HostToken)
		c.JSON(http.StatusOK, gin.H{"state": sess.Engine.State()})
	})
}

func session(c *gin.Context, rm *game.RoomManager) (*game.SessionCtx, bool) {
	sess, err := rm.Get(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session_not_found"})
		return nil, false
	}
	return sess, true
}

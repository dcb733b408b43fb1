package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/DoyleJ11/lol-cooldowns/internal/aggregator"
	"github.com/DoyleJ11/lol-cooldowns/internal/types"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"
)

const (
	writeTimeout    = 3 * time.Second
	defaultInterval = 5 * time.Second
)

type Collector interface {
	Collect(ctx context.Context) (aggregator.Result, error)
}

type Options struct {
	Interval       time.Duration
	OriginPatterns []string
}

// Handler streams the cooldown payload: once on connect, then every
// interval. Every push recomputes from scratch.
func Handler(c Collector, opts Options, logger *zap.Logger) http.HandlerFunc {
	logger = logger.Named("ws")
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	acceptOpts := &websocket.AcceptOptions{OriginPatterns: opts.OriginPatterns}
	for _, p := range opts.OriginPatterns {
		if p == "*" {
			acceptOpts = &websocket.AcceptOptions{InsecureSkipVerify: true}
			break
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, acceptOpts)
		if err != nil {
			logger.Debug("accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		// The overlay never sends; CloseRead handles its close frames and
		// cancels ctx when it goes away.
		ctx := conn.CloseRead(r.Context())

		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()

		for version := 0; ; version++ {
			if err := push(ctx, conn, c, version); err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				default:
					if ctx.Err() == nil {
						logger.Debug("push failed", zap.Error(err))
					}
				}
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}
}

func push(ctx context.Context, conn *websocket.Conn, c Collector, version int) error {
	msg := types.ServerMessage{Type: types.MsgCooldowns, Version: version}
	res, err := c.Collect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		msg.Type = types.MsgError
		msg.Error = types.LiveDataError
	} else {
		msg.Payload = &res
		msg.Lineup = res.Lineup
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return wsjson.Write(writeCtx, conn, msg)
}

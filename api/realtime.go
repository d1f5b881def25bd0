package api

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/acadmate/acadmate-api/realtime"
	"github.com/acadmate/acadmate-api/schema"
)

// clientFrame is a command frame sent by a connected client.
type clientFrame struct {
	Type      string `json:"type"`
	RequestID uint   `json:"request_id"`
	Content   string `json:"content"`
}

// stream is the websocket endpoint. Every connection receives the global
// feed; joining a room additionally delivers that request's chat. Events are
// best effort: a reconnecting client re-fetches the open list and the message
// history instead of relying on replay.
func (s *Server) stream(c *gin.Context) {
	account, ok := currentUser(c)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	opts := &websocket.AcceptOptions{}
	if origins := viper.GetStringSlice("server.cors.origins"); len(origins) > 0 {
		opts.OriginPatterns = origins
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	sub := s.hub.Subscribe(64)
	defer s.hub.Unsubscribe(sub)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-sub:
				if !ok {
					_ = conn.Close(websocket.StatusNormalClosure, "closed")
					return
				}

				writeCtx, cancelWrite := context.WithTimeout(ctx, 5*time.Second)
				err := wsjson.Write(writeCtx, conn, evt)
				cancelWrite()
				if err != nil {
					cancel()
					return
				}
			}
		}
	}()

	for {
		var frame clientFrame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			return
		}

		switch frame.Type {
		case "join_room":
			s.hub.Join(sub, frame.RequestID)
		case "send_message":
			s.deliverMessage(account, frame)
		default:
			// unknown frames are ignored
		}
	}
}

// deliverMessage appends a chat message and fans it out to the room. The
// durable append comes first; if it fails, nothing is broadcast, so no
// phantom message can exist. A dropped broadcast is non-fatal since the
// history endpoint remains the source of truth.
func (s *Server) deliverMessage(account *schema.User, frame clientFrame) {
	msg, err := s.store.CreateMessage(frame.RequestID, account.ID, frame.Content)
	if err != nil {
		log.WithError(err).WithField("request_id", frame.RequestID).Error("failed to store chat message")
		return
	}

	s.hub.BroadcastRoom(frame.RequestID, realtime.NewEvent("new_message", msg))
}

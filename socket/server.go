package socket

import (
	socketio "github.com/googollee/go-socket.io"
	"go.uber.org/zap"

	"github.com/BasedOctavian/LayoverApp-sub001/models"
)

// NewServer initializes the Socket.IO server. Clients join a room keyed by
// their user id to receive realtime notification hints.
func NewServer(logger *zap.SugaredLogger) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		logger.Debugw("socket connected", "socketId", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, userID string) {
		if userID == "" {
			logger.Warnw("join request without userId", "socketId", c.ID())
			return
		}
		c.Join(userRoom(userID))
		logger.Debugw("socket joined user room", "socketId", c.ID(), "userId", userID)
	})

	server.OnError("/", func(c socketio.Conn, err error) {
		logger.Warnw("socket error", "error", err)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		logger.Debugw("socket disconnected", "socketId", c.ID(), "reason", reason)
	})

	return server
}

// RoomNotifier broadcasts in-app notifications to the recipient's room.
type RoomNotifier struct {
	Server *socketio.Server
}

// Notify emits a notification event to every socket in the user's room.
// Fire-and-forget: offline users rely on the durable in-app list.
func (n *RoomNotifier) Notify(userID string, notification models.Notification) {
	n.Server.BroadcastToRoom("/", userRoom(userID), "notification", notification)
}

func userRoom(userID string) string {
	return "user:" + userID
}

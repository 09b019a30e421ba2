package controller

import (
	"gig-marketplace-api/internal/notify"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo"
)

type wsRoutesHandler struct {
	hub      *notify.Hub
	upgrader websocket.Upgrader
}

func newWsRoutesHandler(handler *echo.Echo, hub *notify.Hub) *wsRoutesHandler {
	h := &wsRoutesHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			// the auth collaborator already gates the request
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	handler.GET("/ws", h.Connect)

	return h
}

// Connect joins the caller to their own notification key, the analog of a
// per-user room. The connection stays registered until the peer goes away.
func (h *wsRoutesHandler) Connect(c echo.Context) error {
	caller, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errorResponse{"Authentication required"})
	}

	conn, err := h.upgrader.Upgrade(c.Response().Writer, c.Request(), nil)
	if err != nil {
		return err
	}

	h.hub.Register(caller.Id, conn)
	defer h.hub.Unregister(caller.Id, conn)
	defer conn.Close()

	// inbound frames are ignored; the read loop only detects disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

package service

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tieubaoca/study-buddy-be/types"
)

// WebSocketService runs tutor chat over a websocket. Each "chat" message
// goes through the same pipeline as POST /api/chat; failures are reported
// in-band as "error" messages instead of closing the connection.
type WebSocketService struct {
	study    *StudyService
	upgrader websocket.Upgrader
}

func NewWebSocketService(study *StudyService) *WebSocketService {
	return &WebSocketService{
		study: study,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "Error processing message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketChat:
			payloadBytes, err := json.Marshal(req.Payload)
			if err != nil {
				s.writeError(conn, "Error processing message")
				continue
			}
			var payload types.WebsocketChatPayload
			if err := json.Unmarshal(payloadBytes, &payload); err != nil {
				s.writeError(conn, "Error processing message")
				continue
			}

			res, err := s.study.Chat(r.Context(), payload.Message, payload.MaterialID)
			if err != nil {
				s.writeError(conn, types.AsAPIError(err).Message)
				continue
			}

			if err := conn.WriteJSON(types.WebsocketResponse{
				Type:    types.TypeWebsocketChat,
				Payload: types.WebsocketChatResponse{Response: res.Response},
			}); err != nil {
				log.Println("Write error:", err)
			}
		case types.TypeWebsocketPing:
			if err := conn.WriteJSON(types.WebsocketResponse{
				Type: types.TypeWebsocketPong,
			}); err != nil {
				log.Println("Write error:", err)
			}
		default:
			s.writeError(conn, "Invalid message type")
		}
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, detail string) {
	if err := conn.WriteJSON(types.WebsocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.WebsocketErrorResponse{Detail: detail},
	}); err != nil {
		log.Println("Write error:", err)
	}
}

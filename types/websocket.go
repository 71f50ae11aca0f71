package types

const (
	TypeWebsocketPing  = "ping"
	TypeWebsocketPong  = "pong"
	TypeWebsocketChat  = "chat"
	TypeWebsocketError = "error"
)

type WebsocketRequest struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type WebsocketResponse struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// WebsocketChatPayload mirrors the HTTP chat request: a question plus an
// optional material to ground the answer in.
type WebsocketChatPayload struct {
	Message    string `json:"message"`
	MaterialID string `json:"material_id"`
}

type WebsocketChatResponse struct {
	Response string `json:"response"`
}

type WebsocketErrorResponse struct {
	Detail string `json:"detail"`
}

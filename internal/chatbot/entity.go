package chatbot

type ChatResponse struct {
	Response string `json:"response"`
}

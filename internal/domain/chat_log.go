package domain

// ChatLog is a saved question/answer pair from the travel assistant.
// It is independent of trips; nothing cascades between the two.
type ChatLog struct {
	ID       int64  `json:"log_id"`
	Query    string `json:"query_name"`
	Response string `json:"query_response"`
}

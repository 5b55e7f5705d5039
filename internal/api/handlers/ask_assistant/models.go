package ask_assistant

// AskRequest HTTP request model
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse HTTP response model
type AskResponse struct {
	Answer string `json:"answer"`
}

package settlement

// DraftResponse carries the generated settlement message.
type DraftResponse struct {
	Message string `json:"message"`
}

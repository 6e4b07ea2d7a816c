package request

// PlayRequest is the request body for playing a round
type PlayRequest struct {
	Move string `json:"move"`
}

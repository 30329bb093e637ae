package room

// PayloadIn is a message from a connected client
type PayloadIn struct {
	// Context is an opaque client-provided value echoed back in responses
	Context        string                 `json:"context"`
	Action         string                 `json:"action"`
	AdditionalData map[string]interface{} `json:"additionalData"`
}

// Response is a message sent to a connected client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value,omitempty"`
	Context string      `json:"context,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// OK returns an acknowledgement response
func OK(ctx string) *Response {
	return &Response{
		Key:     "ok",
		Context: ctx,
	}
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

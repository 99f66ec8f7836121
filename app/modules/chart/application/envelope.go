package chartservice

// Envelope is the uniform response shape returned by every chart tool.
// A call either fully succeeds (image written, URL valid) or fully
// fails; there is no partial result. The transport layer serializes the
// envelope verbatim, so callers check Success rather than relying on
// protocol-level fault signaling.
type Envelope struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"image_url,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// OK builds a success envelope.
func OK(imageURL, message string) Envelope {
	return Envelope{Success: true, ImageURL: imageURL, Message: message}
}

// Fail builds a failure envelope from any error.
func Fail(err error) Envelope {
	return Envelope{Success: false, Error: err.Error()}
}

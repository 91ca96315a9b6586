package transcription

// Request holds one uploaded audio file to transcribe.
type Request struct {
	// Audio is the raw uploaded file.
	Audio []byte
	// Filename is the client-supplied name. Optional.
	Filename string
	// ContentType is the declared content type of the upload. Optional.
	ContentType string
	// Language is the expected language of the audio (e.g. "ko").
	Language string
}

// Result holds the transcript of one request.
type Result struct {
	// Text is the normalized transcript. Never nil; empty when the upstream
	// returned nothing usable.
	Text string `json:"text"`
	// Language is the language reported by the upstream, if any.
	Language string `json:"-"`
	// Duration is the audio duration in seconds reported by the upstream, if any.
	Duration float64 `json:"-"`
}

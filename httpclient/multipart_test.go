package httpclient

import (
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
)

type decodedPart struct {
	fileName    string
	contentType string
	data        string
}

func decodeMultipart(t *testing.T, r io.Reader, contentType string) map[string]decodedPart {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("ParseMediaType error: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Fatalf("media type = %q, want multipart/form-data", mediaType)
	}
	parts := map[string]decodedPart{}
	mr := multipart.NewReader(r, params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("NextPart error: %v", err)
		}
		data, _ := io.ReadAll(part)
		parts[part.FormName()] = decodedPart{
			fileName:    part.FileName(),
			contentType: part.Header.Get("Content-Type"),
			data:        string(data),
		}
	}
	return parts
}

func TestMultipartBody_Encode(t *testing.T) {
	mp := (&MultipartBody{
		Files: []FileField{{FieldName: "file", FileName: "clip.wav", ContentType: "audio/wav", Data: []byte("RIFF")}},
	}).Field("model", "whisper-1").Field("language", "ko")

	reader, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	parts := decodeMultipart(t, reader, contentType)

	file := parts["file"]
	if file.fileName != "clip.wav" || file.contentType != "audio/wav" || file.data != "RIFF" {
		t.Errorf("unexpected file part %+v", file)
	}
	if parts["model"].data != "whisper-1" || parts["language"].data != "ko" {
		t.Errorf("unexpected fields %+v", parts)
	}
	if mp.Size() != 4 {
		t.Errorf("Size() = %d, want 4", mp.Size())
	}
}

func TestMultipartBody_DefaultContentType(t *testing.T) {
	mp := &MultipartBody{Files: []FileField{{FieldName: "file", FileName: `we"ird.bin`, Data: []byte{0x00}}}}
	reader, contentType, err := mp.encode()
	if err != nil {
		t.Fatalf("encode() error: %v", err)
	}
	file := decodeMultipart(t, reader, contentType)["file"]
	if file.contentType != "application/octet-stream" {
		t.Errorf("content type = %q, want application/octet-stream", file.contentType)
	}
	if file.fileName != `we"ird.bin` {
		t.Errorf("file name = %q", file.fileName)
	}
}

func TestClient_Do_Multipart(t *testing.T) {
	var parts map[string]decodedPart
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts = decodeMultipart(t, r.Body, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, _ := New(Config{})
	body := (&MultipartBody{
		Files: []FileField{{FieldName: "file", FileName: "a.mp3", Data: []byte("ID3")}},
	}).Field("temperature", "0")
	if _, err := c.Do(context.Background(), Request{Method: http.MethodPost, Path: srv.URL, Body: body}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parts["file"].data != "ID3" || parts["temperature"].data != "0" {
		t.Errorf("unexpected parts %+v", parts)
	}
}

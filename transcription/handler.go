package transcription

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/sttproxy/errors"
	"github.com/kbukum/sttproxy/logger"
	"github.com/kbukum/sttproxy/server"
	"github.com/kbukum/sttproxy/validation"
)

// TranscribePath is the route served by Handler.
const TranscribePath = "/api/v1/stt/transcribe"

const (
	formFile     = "file"
	formLanguage = "language"
)

// Handler exposes a Provider over HTTP.
type Handler struct {
	provider        Provider
	defaultLanguage string
	log             *logger.Logger
}

// NewHandler creates a Handler. defaultLanguage is used when the request
// names no language.
func NewHandler(p Provider, defaultLanguage string) *Handler {
	return &Handler{
		provider:        p,
		defaultLanguage: defaultLanguage,
		log:             logger.Get("transcription"),
	}
}

// RegisterRoutes mounts the transcription route on r.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST(TranscribePath, h.Transcribe)
}

type transcribeForm struct {
	Language string `form:"language" validate:"required,min=2,max=16,printascii"`
}

// Transcribe handles a multipart upload with a "file" part and an optional
// "language" field and answers {"text": "..."}.
func (h *Handler) Transcribe(c *gin.Context) {
	fh, err := c.FormFile(formFile)
	if err != nil {
		server.RespondWithError(c, uploadError(err))
		return
	}

	form := transcribeForm{Language: h.language(c)}
	if err := validation.Validate(form); err != nil {
		server.RespondWithError(c, err)
		return
	}

	audio, err := readUpload(fh)
	if err != nil {
		server.RespondWithError(c, uploadError(err))
		return
	}

	h.log.WithContext(c.Request.Context()).Debug("transcription request received", logger.Fields(
		logger.FieldLanguage, form.Language,
		logger.FieldBytes, len(audio),
		"filename", fh.Filename,
	))

	result, err := h.provider.Transcribe(c.Request.Context(), Request{
		Audio:       audio,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Language:    form.Language,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, gin.H{"text": result.Text})
}

// language picks the form field, then the query parameter, then the default.
func (h *Handler) language(c *gin.Context) string {
	if lang := c.PostForm(formLanguage); lang != "" {
		return lang
	}
	if lang := c.Query(formLanguage); lang != "" {
		return lang
	}
	return h.defaultLanguage
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// uploadError maps a multipart parsing failure to an AppError.
func uploadError(err error) *apperrors.AppError {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return apperrors.PayloadTooLarge(tooLarge.Limit).WithCause(err)
	case errors.Is(err, http.ErrMissingFile):
		return apperrors.MissingField(formFile)
	case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
		return apperrors.InvalidInput(formFile, "expected a multipart/form-data upload").WithCause(err)
	default:
		return apperrors.InvalidInput(formFile, "could not read the uploaded file").WithCause(err)
	}
}

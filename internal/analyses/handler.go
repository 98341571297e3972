package analyses

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/extract"
	"resume-insight/internal/shared/server/respond"
	"resume-insight/internal/shared/telemetry"
)

const uploadField = "resume"

// Analyzer is the slice of Service the handler depends on.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText string) (*AnalysisResult, error)
}

// ExtractFunc decodes an uploaded document into plain text.
type ExtractFunc func(data []byte, mediaType string) (string, error)

// Handler wires the analysis endpoints.
type Handler struct {
	Analyzer Analyzer
	Extract  ExtractFunc
}

// NewHandler constructs a Handler with the real text extractor.
func NewHandler(analyzer Analyzer) *Handler {
	return &Handler{Analyzer: analyzer, Extract: extract.ExtractText}
}

// RegisterRoutes attaches the analysis routes to the router group. The
// upload limit middleware runs before the file handler so oversized bodies
// never reach extraction.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, uploadLimit gin.HandlerFunc) {
	rg.POST("/analyze-text", h.analyzeText)
	rg.POST("/analyze-file", uploadLimit, h.analyzeFile)
}

type analyzeTextRequest struct {
	ResumeText string `json:"resumeText"`
}

func (h *Handler) analyzeText(c *gin.Context) {
	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ResumeText) == "" {
		respond.Error(c, http.StatusBadRequest, "Resume text is required")
		return
	}

	result, err := h.Analyzer.Analyze(c.Request.Context(), req.ResumeText)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to analyze resume from text.")
		return
	}

	respond.OK(c, gin.H{"analysis": result})
}

func (h *Handler) analyzeFile(c *gin.Context) {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			respond.Error(c, http.StatusBadRequest, "File too large. Maximum size is 10 MB.")
			return
		}
		respond.Error(c, http.StatusBadRequest, "No file uploaded.")
		return
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		telemetry.Error("analyze.file.read_failed", map[string]any{
			"err":        err.Error(),
			"file_name":  fileHeader.Filename,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "An internal server error occurred.")
		return
	}

	mediaType := fileHeader.Header.Get("Content-Type")
	text, err := h.Extract(data, mediaType)
	switch {
	case errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "Unsupported file type. Please upload a PDF or DOCX file.")
		return
	case errors.Is(err, extract.ErrEmptyData):
		respond.Error(c, http.StatusInternalServerError, "Failed to extract text from the file.")
		return
	case err != nil:
		telemetry.Error("analyze.file.extract_failed", map[string]any{
			"err":        err.Error(),
			"media_type": mediaType,
			"file_name":  fileHeader.Filename,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "An internal server error occurred.")
		return
	}
	if strings.TrimSpace(text) == "" {
		respond.Error(c, http.StatusInternalServerError, "Failed to extract text from the file.")
		return
	}

	result, err := h.Analyzer.Analyze(c.Request.Context(), text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to analyze resume from file.")
		return
	}

	respond.OK(c, gin.H{"analysis": result})
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

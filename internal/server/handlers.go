package server

import (
	"encoding/base64"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sanaai/job-assistant/internal/parsing"
	"github.com/sanaai/job-assistant/internal/rendering"
	"github.com/sanaai/job-assistant/internal/types"
)

// validate checks request body struct tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseJDRequest represents the request body for /parse-jd
type ParseJDRequest struct {
	JobDescription string `json:"job_description" validate:"required,min=50"`
}

// RewriteRequest represents the request body for /rewrite-resume
type RewriteRequest struct {
	Resume         string `json:"resume" validate:"required,min=100"`
	JobDescription string `json:"job_description" validate:"required,min=50"`
}

// LatexToPDFRequest represents the request body for /latex-to-pdf
type LatexToPDFRequest struct {
	LatexContent string `json:"latex_content" validate:"required"`
}

// LatexToPDFResponse carries the compiled PDF as base64.
type LatexToPDFResponse struct {
	PDF string `json:"pdf_base64"`
}

// ParseJDResponse wraps the structured job description.
type ParseJDResponse struct {
	Parsed *types.ParsedJD `json:"parsed"`
}

// handleParseJD parses a raw job description into structured fields.
func (s *Server) handleParseJD(w http.ResponseWriter, r *http.Request) {
	var req ParseJDRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	parsed, err := parsing.ParseJD(r.Context(), s.client, req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to parse job description: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ParseJDResponse{Parsed: parsed})
}

// handleRewriteResume runs the full rewrite pipeline. Validation failures are
// reported in the response body, not as HTTP errors: the caller decides what
// to do with a rewrite that failed the hallucination check.
func (s *Server) handleRewriteResume(w http.ResponseWriter, r *http.Request) {
	var req RewriteRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	result, err := s.rewriter.Rewrite(r.Context(), req.Resume, req.JobDescription)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Rewrite failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleLatexToPDF compiles LaTeX source to a PDF.
func (s *Server) handleLatexToPDF(w http.ResponseWriter, r *http.Request) {
	var req LatexToPDFRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	pdf, err := rendering.CompilePDF(r.Context(), req.LatexContent)
	if err != nil {
		var compileErr *rendering.CompilationError
		if errors.As(err, &compileErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, compileErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Compilation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, LatexToPDFResponse{
		PDF: base64.StdEncoding.EncodeToString(pdf),
	})
}

// decodeRequest decodes and validates a JSON request body, writing an error
// response and returning false on failure.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeJSON(r, dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

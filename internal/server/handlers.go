package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/ats"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/templates"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxRequestBody bounds resume payload size.
const maxRequestBody = 2 << 20 // 2 MiB

// downloadRequest is the body of the download routes.
type downloadRequest struct {
	TemplateID string          `json:"templateId"`
	Data       json.RawMessage `json:"data"`
}

// decodeDownloadRequest reads, validates, and decodes a download
// request body. The returned resume is fully typed.
func (s *Server) decodeDownloadRequest(w http.ResponseWriter, r *http.Request) (string, *types.ResumeData, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody+1))
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{"error": "failed to read request body"})
		return "", nil, false
	}
	if len(body) > maxRequestBody {
		s.jsonResponse(w, http.StatusRequestEntityTooLarge, map[string]any{"error": "request body too large"})
		return "", nil, false
	}

	var req downloadRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return "", nil, false
	}
	if req.TemplateID == "" {
		req.TemplateID = "professional"
	}
	if len(req.Data) == 0 {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{"error": "missing resume data"})
		return "", nil, false
	}

	if err := schemas.ValidateResume(req.Data); err != nil {
		s.errorResponse(w, err)
		return "", nil, false
	}

	var data types.ResumeData
	if err := json.Unmarshal(req.Data, &data); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{"error": "invalid resume data"})
		return "", nil, false
	}

	return req.TemplateID, &data, true
}

// handleDownload generates a PDF and streams it as an attachment.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	templateID, data, ok := s.decodeDownloadRequest(w, r)
	if !ok {
		return
	}

	s.generateAndServe(w, r, templateID, data, "resume.pdf")
}

// handleOptimizeAndDownload runs the AI optimization pass first. A
// failed or absent optimizer degrades to un-optimized generation; the
// document is still produced.
func (s *Server) handleOptimizeAndDownload(w http.ResponseWriter, r *http.Request) {
	templateID, data, ok := s.decodeDownloadRequest(w, r)
	if !ok {
		return
	}

	if s.optimizer != nil {
		optimized, err := s.optimizer.Optimize(r.Context(), data)
		if err != nil {
			log.Printf("[SERVER] optimization failed, serving un-optimized document: %v", err)
		}
		if optimized != nil {
			data = optimized
		}
	} else {
		log.Printf("[SERVER] no optimizer configured, serving un-optimized document")
	}

	s.generateAndServe(w, r, templateID, data, "optimized_resume.pdf")
}

func (s *Server) generateAndServe(w http.ResponseWriter, r *http.Request, templateID string, data *types.ResumeData, filename string) {
	doc, err := s.generator.Generate(r.Context(), templateID, data)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(doc.PDF)))
	w.Header().Set("X-Render-Source", string(doc.Source))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.PDF); err != nil {
		log.Printf("[SERVER] error writing PDF response: %v", err)
	}
}

// atsScoreRequest is the body of the ATS scoring route.
type atsScoreRequest struct {
	ResumeData     json.RawMessage `json:"resumeData"`
	JobDescription string          `json:"jobDescription"`
}

// handleATSScore rates the resume for ATS friendliness, optionally
// against a job description.
func (s *Server) handleATSScore(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody+1))
	if err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{"error": "failed to read request body"})
		return
	}
	if len(body) > maxRequestBody {
		s.jsonResponse(w, http.StatusRequestEntityTooLarge, map[string]any{"error": "request body too large"})
		return
	}

	var req atsScoreRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}
	if len(req.ResumeData) == 0 {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{"error": "missing resume data"})
		return
	}

	if err := schemas.ValidateResume(req.ResumeData); err != nil {
		s.errorResponse(w, err)
		return
	}

	var data types.ResumeData
	if err := json.Unmarshal(req.ResumeData, &data); err != nil {
		s.jsonResponse(w, http.StatusBadRequest, map[string]any{"error": "invalid resume data"})
		return
	}

	s.jsonResponse(w, http.StatusOK, ats.Score(&data, req.JobDescription))
}

// handleListTemplates returns the full template catalog.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": templates.List()})
}

// handleGetTemplate returns one template's metadata.
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := templates.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, tmpl)
}

// handleTemplateContent returns a template's raw LaTeX source.
func (s *Server) handleTemplateContent(w http.ResponseWriter, r *http.Request) {
	content, err := templates.Content(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-latex")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(content)); err != nil {
		log.Printf("[SERVER] error writing template content: %v", err)
	}
}

// handleTemplatesByCategory returns the templates in one category. An
// unknown category is an empty list, not an error.
func (s *Server) handleTemplatesByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	list := templates.ListByCategory(category)
	if list == nil {
		list = []templates.Template{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"category":  category,
		"templates": list,
	})
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/sections"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
	"go.uber.org/zap"
)

// maxActionBytes bounds a dispatched action body. Photos travel as data URIs.
const maxActionBytes = 8 << 20

// liveReload reloads the preview whenever the document changes.
const liveReload = `<script>
new EventSource("/events").addEventListener("change", function () { window.location.reload(); });
</script>`

// DispatchResponse reports the outcome of POST /actions.
type DispatchResponse struct {
	Type    string `json:"type"`
	Applied bool   `json:"applied"`
	Version uint64 `json:"version,omitempty"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handlePreview serves the current document rendered as a standalone page that reloads
// itself on every change. ?template= previews another template without changing styles.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc := s.store.State()
	if name := r.URL.Query().Get("template"); name != "" {
		doc.Styles.Template = types.TemplateName(name)
	}

	html, err := rendering.RenderHTML(doc, rendering.HTMLOptions{
		Standalone: true,
		PrintMode:  r.URL.Query().Get("print") == "1",
	})
	if err != nil {
		s.logger.Warn("preview render failed", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	if i := strings.LastIndex(html, "</body>"); i >= 0 {
		html = html[:i] + liveReload + html[i:]
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, html)
}

// handleState returns the current document as JSON.
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.State())
}

// handleSections returns the enabled sections in render order.
func (s *Server) handleSections(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, sections.Ordered(s.store.State().Sections))
}

// handleDispatch decodes a {type, payload} action and applies it. Unknown action types
// are accepted and change nothing.
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxActionBytes+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body: "+err.Error())
		return
	}
	if len(body) > maxActionBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "action too large")
		return
	}

	action, err := store.DecodeAction(body)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	change, applied, err := s.store.Apply(r.Context(), action)
	resp := DispatchResponse{Type: string(action.Type()), Applied: applied, Version: change.Version}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "change applied but not saved: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleExport runs the export pipeline and returns the PDF as an attachment. A second
// export while one is running is rejected with 409.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "export is not configured")
		return
	}

	artifact, err := s.exporter.Export(r.Context(), s.store.State())
	if err != nil {
		notice := export.NoticeFor(err)
		status := HTTPStatus(err)
		if !errors.Is(err, export.ErrInProgress) {
			s.logger.Warn("export request failed", zap.Error(err))
		}
		s.jsonResponse(w, status, map[string]string{
			"error":       err.Error(),
			"title":       notice.Title,
			"description": notice.Description,
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.PDF)
}

// handleEvents streams a "change" event after every applied action.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	events, unsubscribe := s.hub.subscribe()
	defer unsubscribe()

	if err := sse.WriteEvent("ready", map[string]string{"status": "ok"}); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := sse.WriteEvent("change", ev); err != nil {
				s.logger.Debug("event stream closed", zap.Error(err))
				return
			}
		}
	}
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("error encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

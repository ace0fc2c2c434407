package dashboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/afferafatima/Firewall-Simulator/api"
	"github.com/afferafatima/Firewall-Simulator/internal/blocklist"
	"github.com/afferafatima/Firewall-Simulator/internal/stats"
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	snap := s.log.Snapshot()
	data := map[string]any{
		"Page":      "overview",
		"Stats":     s.log.Stats(),
		"TopSites":  stats.TopHosts(s.topSites, snap),
		"Histogram": stats.TimeHistogram(s.interval, snap),
	}
	renderPage(w, "overview", data)
}

func (s *Server) handleAttempts(w http.ResponseWriter, r *http.Request) {
	records := s.log.Query(api.QueryFilter{Limit: 100})

	// Reverse to show newest first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	data := map[string]any{
		"Page":    "attempts",
		"Records": records,
		"Total":   s.log.Stats().TotalAttempts,
	}
	renderPage(w, "attempts", data)
}

func (s *Server) handleAttemptStream(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	ch, cancel := s.log.Subscribe(r.Context())
	defer cancel()

	for {
		select {
		case record, ok := <-ch:
			if !ok {
				return
			}
			html := renderAttemptRow(record)
			fmt.Fprintf(w, "event: attempt\ndata: %s\n\n", html)
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

func (s *Server) handleBlocklistPage(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Page":     "blocklist",
		"Patterns": s.blocklist.List(),
		"Error":    r.URL.Query().Get("error"),
	}
	renderPage(w, "blocklist", data)
}

func (s *Server) handleBlocklistAddForm(w http.ResponseWriter, r *http.Request) {
	if err := s.blocklist.Add(r.FormValue("pattern")); err != nil {
		http.Redirect(w, r, "/blocklist?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/blocklist", http.StatusSeeOther)
}

func (s *Server) handleBlocklistRemoveForm(w http.ResponseWriter, r *http.Request) {
	if err := s.blocklist.Remove(r.FormValue("pattern")); err != nil {
		http.Redirect(w, r, "/blocklist?error="+url.QueryEscape(err.Error()), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/blocklist", http.StatusSeeOther)
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.log.Stats())
}

func (s *Server) handleAPITop(w http.ResponseWriter, r *http.Request) {
	n := s.topSites
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			http.Error(w, "invalid n", http.StatusBadRequest)
			return
		}
		n = v
	}
	top := stats.TopHosts(n, s.log.Snapshot())
	if top == nil {
		top = []api.SiteCount{}
	}
	writeJSON(w, top)
}

func (s *Server) handleAPIHistogram(w http.ResponseWriter, r *http.Request) {
	interval := s.interval
	if raw := r.URL.Query().Get("interval"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			http.Error(w, "invalid interval", http.StatusBadRequest)
			return
		}
		interval = d
	}
	buckets := stats.TimeHistogram(interval, s.log.Snapshot())
	if buckets == nil {
		buckets = []api.HistogramBucket{}
	}
	writeJSON(w, buckets)
}

func (s *Server) handleAPIBlocklist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.blocklist.List())
}

func (s *Server) handleAPIBlocklistAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Pattern string `json:"pattern"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.blocklist.Add(req.Pattern); err != nil {
		writeBlocklistError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, s.blocklist.List())
}

func (s *Server) handleAPIBlocklistRemove(w http.ResponseWriter, r *http.Request) {
	pattern := r.PathValue("pattern")
	if err := s.blocklist.Remove(pattern); err != nil {
		writeBlocklistError(w, err)
		return
	}
	writeJSON(w, s.blocklist.List())
}

func (s *Server) handleAPICheck(w http.ResponseWriter, r *http.Request) {
	var req api.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	decision, err := s.guard.Evaluate(r.Context(), req.URL, req.Kind, req.MainFrame)
	if err != nil {
		http.Error(w, "evaluation error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, api.CheckResponse{
		Verdict: decision.Verdict,
		Notice:  decision.Notice,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// writeBlocklistError maps the store's recoverable errors onto HTTP
// statuses the UI can distinguish.
func writeBlocklistError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, blocklist.ErrInvalidFormat):
		status = http.StatusBadRequest
	case errors.Is(err, blocklist.ErrAlreadyBlocked):
		status = http.StatusConflict
	case errors.Is(err, blocklist.ErrNotFound):
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func renderAttemptRow(record *api.AttemptRecord) string {
	return fmt.Sprintf(
		`<tr class="border-b border-gray-700 hover:bg-gray-800"><td class="px-4 py-2 text-gray-400 text-xs">%s</td><td class="px-4 py-2">%s</td><td class="px-4 py-2 font-mono text-sm">%s</td><td class="px-4 py-2 text-gray-400 text-xs">%s</td></tr>`,
		record.Timestamp.Format(time.RFC3339),
		escapeHTML(record.Host),
		escapeHTML(truncate(record.RawURL, 80)),
		escapeHTML(record.Pattern),
	)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

func escapeHTML(s string) string {
	return template.HTMLEscapeString(s)
}

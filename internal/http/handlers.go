package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
	"github.com/tienvillalobos/maxxavelada-backend/internal/stats"
)

// matchListResponse is the envelope returned by GET /api/matches.
type matchListResponse struct {
	Matches []*match.Match `json:"matches"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// CreateMatchHandler accepts a match submission, validates it and appends it
// to the history. The stored record is echoed back on success.
func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission match.Submission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			log.Warn("Failed to decode match submission", "error", err)
			respondError(w, http.StatusBadRequest, "request body must be valid JSON")
			return
		}

		record, err := submission.Validate()
		if err != nil {
			s.Metrics.IncValidationFailures()
			log.Warn("Rejected match submission", "reason", err)
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := s.Store.Create(record)
		if err != nil {
			http.Error(w, "Failed to save match", http.StatusInternalServerError)
			log.Error("Failed to save match", "error", err)
			return
		}
		s.Metrics.IncMatchesCreated()

		if err := s.Notifier.SendMatchRecorded(created, s.Cfg.Slack.DryRun); err != nil {
			log.Error("Failed to announce match", "error", err, "id", created.ID)
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// ListMatchesHandler returns one page of the match history, newest first.
func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := queryInt(r, "page", 1)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		perPage, err := queryInt(r, "per_page", match.DefaultPerPage)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		page = match.ClampPage(page)
		perPage = match.ClampPerPage(perPage)

		matches, total, err := s.Store.List(page, perPage)
		if err != nil {
			http.Error(w, "Failed to get matches", http.StatusInternalServerError)
			log.Error("Failed to get matches from store", "error", err)
			return
		}
		if matches == nil {
			// JSON clients expect an array, not null.
			matches = []*match.Match{}
		}

		respondJSON(w, http.StatusOK, matchListResponse{
			Matches: matches,
			Total:   total,
			Page:    page,
			PerPage: perPage,
		})
	}
}

// LeaderboardHandler serves the ranked player statistics.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", stats.DefaultLeaderboardLimit)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		minGames, err := queryInt(r, "min_games", stats.DefaultMinGames)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		entries, err := s.Stats.Leaderboard(limit, minGames)
		if err != nil {
			http.Error(w, "Failed to compute leaderboard", http.StatusInternalServerError)
			log.Error("Failed to compute leaderboard", "error", err)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// PlayerStatsHandler serves the statistics of a single player. Unknown players
// yield zeroed stats rather than a 404.
func (s *Server) PlayerStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// chi hands back the raw path segment when the URL was escaped.
		name := chi.URLParam(r, "name")
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		name = strings.TrimSpace(name)
		if name == "" {
			respondError(w, http.StatusBadRequest, "name is required")
			return
		}

		stat, err := s.Stats.PlayerStats(name)
		if err != nil {
			http.Error(w, "Failed to compute player stats", http.StatusInternalServerError)
			log.Error("Failed to compute player stats", "error", err, "player", name)
			return
		}

		respondJSON(w, http.StatusOK, stat)
	}
}

// SummaryHandler serves the aggregate counters for the whole history.
func (s *Server) SummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := s.Stats.Summary()
		if err != nil {
			http.Error(w, "Failed to compute summary", http.StatusInternalServerError)
			log.Error("Failed to compute summary", "error", err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// respondError writes the {"error": reason} envelope used by the JSON API.
func respondError(w http.ResponseWriter, status int, reason string) {
	respondJSON(w, status, map[string]string{"error": reason})
}

// queryInt parses an optional integer query parameter, falling back when it
// is absent. Out-of-range values are the caller's problem; non-numeric values
// are a parse error.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return value, nil
}

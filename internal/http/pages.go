package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tienvillalobos/maxxavelada-backend/internal/match"
	"github.com/tienvillalobos/maxxavelada-backend/internal/stats"
)

// pageLeaderboardLimit is the default row count for the HTML leaderboard,
// larger than the API default because the page is meant for browsing.
const pageLeaderboardLimit = 20

func (s *Server) HomePageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render.HTML(w, http.StatusOK, "home", nil)
	}
}

// MatchesPageHandler renders the paginated match history table.
func (s *Server) MatchesPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := queryInt(r, "page", 1)
		if err != nil {
			s.renderError(w, http.StatusBadRequest, err.Error(), "/matches")
			return
		}
		page = match.ClampPage(page)

		matches, total, err := s.Store.List(page, match.DefaultPerPage)
		if err != nil {
			log.Error("Failed to get matches from store", "error", err)
			s.renderError(w, http.StatusInternalServerError, "Could not load the match history.", "/")
			return
		}

		pages := (total + match.DefaultPerPage - 1) / match.DefaultPerPage
		if pages < 1 {
			pages = 1
		}

		s.render.HTML(w, http.StatusOK, "matches", map[string]any{
			"matches":   matches,
			"page":      page,
			"pages":     pages,
			"has_prev":  page > 1,
			"has_next":  page < pages,
			"prev_page": page - 1,
			"next_page": page + 1,
		})
	}
}

// LeaderboardPageHandler renders the ranked player table.
func (s *Server) LeaderboardPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", pageLeaderboardLimit)
		if err != nil {
			s.renderError(w, http.StatusBadRequest, err.Error(), "/leaderboard")
			return
		}

		rows, err := s.Stats.Leaderboard(limit, stats.DefaultMinGames)
		if err != nil {
			log.Error("Failed to compute leaderboard", "error", err)
			s.renderError(w, http.StatusInternalServerError, "Could not compute the leaderboard.", "/")
			return
		}

		s.render.HTML(w, http.StatusOK, "leaderboard", map[string]any{
			"rows": rows,
		})
	}
}

func (s *Server) NewMatchPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render.HTML(w, http.StatusOK, "match_form", nil)
	}
}

// CreateMatchFormHandler handles the match-creation form. It runs the same
// validation as the JSON API; a valid submission redirects to the match list,
// an invalid one re-renders with the rejection reason.
func (s *Server) CreateMatchFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			s.renderError(w, http.StatusBadRequest, "Could not read the submitted form.", "/matches/new")
			return
		}

		scoreP1, err := formScore(r, "score_p1")
		if err != nil {
			s.Metrics.IncValidationFailures()
			s.renderError(w, http.StatusBadRequest, err.Error(), "/matches/new")
			return
		}
		scoreP2, err := formScore(r, "score_p2")
		if err != nil {
			s.Metrics.IncValidationFailures()
			s.renderError(w, http.StatusBadRequest, err.Error(), "/matches/new")
			return
		}

		submission := match.Submission{
			Player1Name: r.PostFormValue("player1_name"),
			Player2Name: r.PostFormValue("player2_name"),
			Winner:      r.PostFormValue("winner"),
			ScoreP1:     scoreP1,
			ScoreP2:     scoreP2,
			Stage:       r.PostFormValue("stage"),
			CharacterP1: r.PostFormValue("character_p1"),
			CharacterP2: r.PostFormValue("character_p2"),
			Mode:        r.PostFormValue("mode"),
		}

		record, err := submission.Validate()
		if err != nil {
			s.Metrics.IncValidationFailures()
			log.Warn("Rejected match form submission", "reason", err)
			s.renderError(w, http.StatusBadRequest, err.Error(), "/matches/new")
			return
		}

		created, err := s.Store.Create(record)
		if err != nil {
			log.Error("Failed to save match", "error", err)
			s.renderError(w, http.StatusInternalServerError, "Could not save the match.", "/matches/new")
			return
		}
		s.Metrics.IncMatchesCreated()

		if err := s.Notifier.SendMatchRecorded(created, s.Cfg.Slack.DryRun); err != nil {
			log.Error("Failed to announce match", "error", err, "id", created.ID)
		}

		http.Redirect(w, r, "/matches", http.StatusSeeOther)
	}
}

// renderError shows the HTML error page with a way back.
func (s *Server) renderError(w http.ResponseWriter, status int, message, backURL string) {
	s.render.HTML(w, status, "error", map[string]any{
		"message":  message,
		"back_url": backURL,
	})
}

// formScore parses an optional numeric form field, treating blank as absent.
func formScore(r *http.Request, field string) (*int, error) {
	raw := strings.TrimSpace(r.PostFormValue(field))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", field)
	}
	return &value, nil
}

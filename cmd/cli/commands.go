package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	page    int
	perPage int

	limit    int
	minGames int

	player1Name string
	player2Name string
	winner      string
	scoreP1     int
	scoreP2     int
	stage       string
	characterP1 string
	characterP2 string
	mode        string
)

func init() {
	matchesCmd.Flags().IntVar(&page, "page", 1, "Page of match history to fetch")
	matchesCmd.Flags().IntVar(&perPage, "per-page", 20, "Matches per page")

	leaderboardCmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of leaderboard rows")
	leaderboardCmd.Flags().IntVar(&minGames, "min-games", 1, "Minimum games played to be ranked")

	recordCmd.Flags().StringVar(&player1Name, "p1", "", "Name of player 1")
	recordCmd.Flags().StringVar(&player2Name, "p2", "", "Name of player 2")
	recordCmd.Flags().StringVar(&winner, "winner", "", "Which side won: p1 or p2")
	recordCmd.Flags().IntVar(&scoreP1, "score-p1", 0, "Games won by player 1")
	recordCmd.Flags().IntVar(&scoreP2, "score-p2", 0, "Games won by player 2")
	recordCmd.Flags().StringVar(&stage, "stage", "", "Stage the match was played on")
	recordCmd.Flags().StringVar(&characterP1, "character-p1", "", "Character picked by player 1")
	recordCmd.Flags().StringVar(&characterP2, "character-p2", "", "Character picked by player 2")
	recordCmd.Flags().StringVar(&mode, "mode", "", "Match mode, e.g. local or online")
	recordCmd.MarkFlagRequired("p1")
	recordCmd.MarkFlagRequired("p2")
	recordCmd.MarkFlagRequired("winner")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(playerStatsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the recorded matches, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(fmt.Sprintf("/api/matches?page=%d&per_page=%d", page, perPage))
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the player leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest(fmt.Sprintf("/api/leaderboard?limit=%d&min_games=%d", limit, minGames))
	},
}

var playerStatsCmd = &cobra.Command{
	Use:   "player-stats [name]",
	Short: "Show the aggregated stats for a single player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/players/" + url.PathEscape(args[0]) + "/stats")
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the global match summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/stats/summary")
	},
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a new match result",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]any{
			"player1_name": player1Name,
			"player2_name": player2Name,
			"winner":       winner,
			"score_p1":     scoreP1,
			"score_p2":     scoreP2,
		}
		if stage != "" {
			payload["stage"] = stage
		}
		if characterP1 != "" {
			payload["character_p1"] = characterP1
		}
		if characterP2 != "" {
			payload["character_p2"] = characterP2
		}
		if mode != "" {
			payload["mode"] = mode
		}
		return performPostRequest("/api/matches", payload)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}

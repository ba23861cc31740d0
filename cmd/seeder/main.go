package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/tienvillalobos/maxxavelada-backend/internal/database"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "maxxa_velada.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

var (
	players = []string{"TIEN", "KEX", "MAU", "VELA", "CHUCHO", "RATA", "PANCHO", "GUERO"}

	characters = []string{"FOX", "FALCO", "MARTH", "ROY", "KIRBY", "PIKACHU", "GANONDORF", "JIGGLYPUFF"}

	stages = []string{"Battlefield", "Final Destination", "Yoshi's Story", "Fountain of Dreams", "Dream Land", "Pokemon Stadium"}

	modes = []string{"local", "online"}
)

// maybe returns a random pick from choices most of the time and nil for
// the rest, so seeded rows exercise the optional columns both ways.
func maybe(choices []string, chance float64) any {
	if rand.Float64() > chance {
		return nil
	}
	return choices[rand.Intn(len(choices))]
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], "./migrations")
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer teardown()

	log.Info("Successfully connected to the database.")

	const batchSize = 100 // Insert 100 matches at a time
	const numMatches = 1000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*10) // 10 columns per match

	for i := 0; i < numMatches; i++ {
		p1 := rand.Intn(len(players))
		p2 := rand.Intn(len(players) - 1)
		if p2 >= p1 {
			p2++
		}

		// Best-of-five sets: the winner always takes three games.
		winner := "p1"
		scoreP1, scoreP2 := 3, rand.Intn(3)
		if rand.Intn(2) == 1 {
			winner = "p2"
			scoreP1, scoreP2 = scoreP2, scoreP1
		}

		matchTime := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			players[p1],
			players[p2],
			winner,
			scoreP1,
			scoreP2,
			maybe(stages, 0.7),
			maybe(characters, 0.8),
			maybe(characters, 0.8),
			maybe(modes, 0.6),
			matchTime.Unix(),
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(`
				INSERT INTO matches (player1_name, player2_name, winner, score_p1, score_p2,
					stage, character_p1, character_p2, mode, created_at)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*10)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy matches.", "duration", duration)
}

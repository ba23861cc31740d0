package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_AppliesMigrations(t *testing.T) {

	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	if teardown != nil {
		defer teardown()
	} else {
		defer db.Close()
	}

	// Check if the 'matches' table was created
	var matchesTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='matches'").Scan(&matchesTableName)
	require.NoError(t, err, "Querying for matches table should not produce an error")
	assert.Equal(t, "matches", matchesTableName, "The 'matches' table should be created")

	// Check that goose recorded the applied migrations
	var versionTableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&versionTableName)
	require.NoError(t, err, "Querying for goose version table should not produce an error")
	assert.Equal(t, "goose_db_version", versionTableName, "The migration bookkeeping table should be created")
}

func TestInitDB_EnforcesWinnerConstraint(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec(`INSERT INTO matches (player1_name, player2_name, winner, score_p1, score_p2, created_at) VALUES ('MAXXA', 'VELADA', 'p3', 0, 0, 0)`)
	assert.Error(t, err, "A winner outside p1/p2 should violate the check constraint")
}

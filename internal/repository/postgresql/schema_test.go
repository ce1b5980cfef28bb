package postgresql_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

// The single-statement deletes in this package (users, matches, rides) lean
// on the schema to clean up dependent rows. These assertions keep the
// migration honest about the ON DELETE rules those deletes rely on.
func TestSchemaDeleteRules(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	schema := regexp.MustCompile(`\s+`).ReplaceAllString(string(raw), " ")

	cascades := []string{
		"user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE, title",            // packages.user_id
		"user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE, start_location",   // rides.user_id
		"package_id TEXT NOT NULL REFERENCES packages(id) ON DELETE CASCADE",             // matches.package_id
		"ride_id TEXT NOT NULL REFERENCES rides(id) ON DELETE CASCADE",                   // matches.ride_id
		"user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE, match_id",         // payments.user_id
		"match_id TEXT NOT NULL REFERENCES matches(id) ON DELETE CASCADE",                // payments.match_id
		"sender_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE",                 // messages.sender_id
		"recipient_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE",              // messages.recipient_id
		"match_id TEXT REFERENCES matches(id) ON DELETE SET NULL",                        // messages.match_id
		"user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE, type",             // notifications.user_id
	}
	for _, clause := range cascades {
		require.Contains(t, schema, clause)
	}
}

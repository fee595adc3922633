package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {

	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	if teardown != nil {
		defer teardown()
	} else {
		defer db.Close()
	}

	tables := []string{
		"members",
		"member_groups",
		"matchrecord",
		"schedules",
		"schedule_attendees",
		"attendance_log",
		"posts",
		"comments",
		"ex_match_master",
		"ex_match_detail",
		"metrics",
	}

	for _, table := range tables {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoErrorf(t, err, "Querying for %s table should not produce an error", table)
		assert.Equalf(t, table, name, "The '%s' table should be created", table)
	}
}

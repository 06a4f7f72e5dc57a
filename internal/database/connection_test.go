package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dbi := DBI{User: "app", Password: "pw", Endpoint: "db.local", Port: 3306, Database: "portfolio"}
	assert.Equal(t, "app:pw@tcp(db.local:3306)/portfolio?parseTime=true&charset=utf8mb4", dbi.DSN())
}

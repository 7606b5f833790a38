package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBConfig_DSN(t *testing.T) {
	cfg := DBConfig{
		Host:     "db",
		User:     "lt",
		Password: "secret",
		Name:     "attendance",
		Port:     "5432",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db user=lt password=secret dbname=attendance port=5432 sslmode=disable",
		cfg.DSN(),
	)
}

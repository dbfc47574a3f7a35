package database

import (
	"doctors-portal-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMongoConnectionString(t *testing.T) {
	assert.Equal(t, "mongodb://localhost:27017", buildMongoConnectionString(config.MongoDB{
		Host: "localhost",
		Port: "27017",
	}))

	assert.Equal(t, "mongodb://root:p%40ss%3Aword@db:27017", buildMongoConnectionString(config.MongoDB{
		Host:     "db",
		Port:     "27017",
		Username: "root",
		Password: "p@ss:word",
	}))
}

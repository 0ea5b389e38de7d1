package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug":   logger.DebugLevel,
		"info":    logger.InfoLevel,
		"warn":    logger.WarnLevel,
		"error":   logger.ErrorLevel,
		"unknown": logger.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, LoggerConfig{Level: in}.LogLevel(), in)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5433, User: "hub", Password: "pw", Database: "activityhub", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5433 user=hub password=pw dbname=activityhub sslmode=disable", p.DSN())
}

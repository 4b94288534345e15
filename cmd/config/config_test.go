package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/student-marketplace/cmd/config"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.example.supabase.co")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("MESSAGE_IDEMPOTENCY_WINDOW", "30s")
	t.Setenv("REDIS_PORT", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, "db.example.supabase.co", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, 30*time.Second, cfg.Message.IdempotencyWindow)
	assert.Equal(t, 6379, cfg.Redis.Port, "invalid numbers fall back to the default")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
}

func TestConfig_GetDSN(t *testing.T) {
	tests := []struct {
		name string
		db   config.DatabaseConfig
		want string
	}{
		{
			name: "postgres",
			db: config.DatabaseConfig{
				Driver: "postgres", Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "market", SSLMode: "disable",
			},
			want: "host=localhost port=5432 user=u password=p dbname=market sslmode=disable",
		},
		{
			name: "mysql",
			db: config.DatabaseConfig{
				Driver: "mysql", Host: "localhost", Port: 3306, User: "u", Password: "p", Name: "market",
			},
			want: "u:p@tcp(localhost:3306)/market?parseTime=true",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Database: tt.db}
			assert.Equal(t, tt.want, cfg.GetDSN())
		})
	}
}

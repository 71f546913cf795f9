package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("ATLAS_URI", "mongodb://localhost:27017")
	t.Setenv("DB_NAME", "creds_db")
	t.Setenv("PG_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := Load()

	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Store.Mongo.URI)
	assert.Equal(t, "creds_db", cfg.Store.Name)
	assert.Equal(t, "creds_db", cfg.Store.Postgres.Name)
	assert.Equal(t, 20, cfg.Store.Postgres.MaxOpenConns)
	assert.Equal(t, 10, cfg.Store.Mongo.ConnectTimeoutSec)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		store   StoreConfig
		wantErr string
	}{
		{
			name:    "missing database name",
			store:   StoreConfig{Driver: DriverMongo, Mongo: MongoConfig{URI: "mongodb://x"}},
			wantErr: "DB_NAME is required",
		},
		{
			name:    "missing mongo uri",
			store:   StoreConfig{Driver: DriverMongo, Name: "creds_db"},
			wantErr: "ATLAS_URI is required for the mongo store",
		},
		{
			name:    "missing postgres host",
			store:   StoreConfig{Driver: DriverPostgres, Name: "creds_db"},
			wantErr: "PG_HOST and PG_USER are required for the postgres store",
		},
		{
			name:    "unknown driver",
			store:   StoreConfig{Driver: "redis", Name: "creds_db"},
			wantErr: `unknown STORE_DRIVER "redis"`,
		},
		{
			name:  "postgres ok",
			store: StoreConfig{Driver: DriverPostgres, Name: "creds_db", Postgres: DatabaseConfig{Host: "db", User: "app"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&AppConfig{Store: tt.store}).Validate()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

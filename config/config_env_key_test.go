package config

import (
	"testing"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mysql": map[string]any{
			"maxOpenConns": 20,
			"master": map[string]any{
				"userName": "root",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"auth": map[string]any{
			"accessTokenTTL": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MYSQL_MAXOPENCONNS", want: "mysql.maxOpenConns"},
		{envKey: "MYSQL_MASTER_USERNAME", want: "mysql.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestMySQLConfig_DSN(t *testing.T) {
	conn := ConnectionConfig{Host: "db", Port: "3306", UserName: "shop", Password: "p@ss/word"}

	tests := []struct {
		name        string
		cfg         MySQLConfig
		wantCharset string
		wantLoc     string
	}{
		{name: "defaults", cfg: MySQLConfig{Database: "shopping_site"}, wantCharset: "utf8mb4", wantLoc: "Local"},
		{name: "explicit utc", cfg: MySQLConfig{Database: "shopping_site", Charset: "utf8", Loc: "UTC"}, wantCharset: "utf8", wantLoc: "UTC"},
		{name: "zone with slash", cfg: MySQLConfig{Database: "shopping_site", Loc: "Asia/Taipei"}, wantCharset: "utf8mb4", wantLoc: "Asia/Taipei"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn, err := tt.cfg.DSN(conn)
			require.NoError(t, err)

			parsed, err := mysqldriver.ParseDSN(dsn)
			require.NoError(t, err)
			assert.Equal(t, "shop", parsed.User)
			assert.Equal(t, "p@ss/word", parsed.Passwd)
			assert.Equal(t, "tcp", parsed.Net)
			assert.Equal(t, "db:3306", parsed.Addr)
			assert.Equal(t, "shopping_site", parsed.DBName)
			assert.True(t, parsed.ParseTime)
			assert.True(t, parsed.ClientFoundRows)
			assert.Equal(t, tt.wantLoc, parsed.Loc.String())
			assert.Contains(t, dsn, "charset="+tt.wantCharset)
		})
	}
}

func TestMySQLConfig_DSN_UnknownLocation(t *testing.T) {
	cfg := MySQLConfig{Database: "shopping_site", Loc: "Mars/Olympus"}

	_, err := cfg.DSN(ConnectionConfig{Host: "db", Port: "3306"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mysql.loc")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SecretKey.Access = "access-secret"

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, "access-secret", cfg.SecretKey.Reset)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{BcryptCost: 12, AccessTokenTTL: time.Hour}}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.SecretKey.Reset = "reset-secret"

	applyDefaults(cfg)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "reset-secret", cfg.SecretKey.Reset)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("MYSQL_REPLICAS_0_HOST", "replica-0")
	t.Setenv("MYSQL_REPLICAS_0_PORT", "3307")
	t.Setenv("MYSQL_REPLICAS_0_USERNAME", "reader")
	t.Setenv("MYSQL_REPLICAS_0_PASSWORD", "pw")
	t.Setenv("MYSQL_REPLICAS_1_HOST", "replica-1")
	// Missing port ends the scan.

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, ConnectionConfig{Host: "replica-0", Port: "3307", UserName: "reader", Password: "pw"}, replicas[0])
}

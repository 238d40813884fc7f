package db

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"growth_backend/internal/feature/analysis/domain/entity"
)

// TestBuildDSN_Fields は個別項目からPostgreSQLのDSN文字列が正しく生成されることを検証します。
func TestBuildDSN_Fields(t *testing.T) {
	t.Parallel()

	cfg := Config{
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Host:     "localhost",
		Port:     "5432",
		SSLMode:  "disable",
	}

	expected := "host=localhost user=testuser password=testpass dbname=testdb port=5432 sslmode=disable"
	assert.Equal(t, expected, BuildDSN(cfg))
}

// TestBuildDSN_URLTakesPrecedence はURLと個別項目が両方設定されている場合にURLが優先されることを検証します。
func TestBuildDSN_URLTakesPrecedence(t *testing.T) {
	t.Parallel()

	cfg := Config{
		URL:  "postgres://u:p@db:5432/growth?sslmode=require",
		Host: "localhost",
		Port: "5432",
	}

	assert.Equal(t, cfg.URL, BuildDSN(cfg))
}

// TestConnectWithRetry_SuccessOnFirstTry は初回接続成功時にリトライせずDBを返すことを検証します。
func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 1, attempts)
}

// TestConnectWithRetry_RetriesOnFailure は接続失敗時にリトライして最終的に成功することを検証します。
func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// retryInterval を書き換えるため並列実行しない
	orig := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = orig })

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attempts)
}

// TestConnectWithRetry_TimeoutAfterRetries はタイムアウト後にエラーが返されることを検証します。
func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	t.Parallel()

	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return nil, errors.New("connection refused")
	}

	_, err := ConnectWithRetry("test-dsn", 100*time.Millisecond, opener)

	assert.Error(t, err)
	assert.GreaterOrEqual(t, attempts, 1)
}

// TestLoadConfigFromEnv は環境変数からデータベース設定が正しく読み込まれることを検証します。
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_USER", "envuser")
	t.Setenv("DB_PASSWORD", "envpass")
	t.Setenv("DB_NAME", "envdb")
	t.Setenv("DB_HOST", "envhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("RUN_MIGRATIONS", "true")

	cfg := LoadConfigFromEnv()

	assert.Equal(t, "postgres", cfg.Driver)
	assert.Equal(t, "envuser", cfg.User)
	assert.Equal(t, "envpass", cfg.Password)
	assert.Equal(t, "envdb", cfg.Name)
	assert.Equal(t, "envhost", cfg.Host)
	assert.Equal(t, "5433", cfg.Port)
	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, defaultSQLitePath, cfg.SQLitePath)
	assert.True(t, cfg.RunMigrations)
}

// TestOpenDB_Disabled はDriver未設定時に (nil, nil) を返すことを検証します。
func TestOpenDB_Disabled(t *testing.T) {
	t.Parallel()

	db, err := OpenDB(Config{})
	require.NoError(t, err)
	assert.Nil(t, db)
}

// TestOpenDB_UnsupportedDriver は未対応のドライバー指定でエラーを返すことを検証します。
func TestOpenDB_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := OpenDB(Config{Driver: "mysql"})
	assert.Error(t, err)
}

// TestOpenDB_SQLite はSQLiteで接続しマイグレーションが実行されることを検証します。
func TestOpenDB_SQLite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "growth.db")
	db, err := OpenDB(Config{Driver: DriverSQLite, SQLitePath: path})
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.True(t, db.Migrator().HasTable(&entity.AnalysisRecord{}))
}

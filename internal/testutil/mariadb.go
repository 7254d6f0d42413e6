// Helpers for tests that need a real MariaDB instead of in-memory sqlite.
// Expects a reachable Docker daemon; callers should skip when
// DockerAvailable reports false.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	defaultImage = "mariadb:11"
	rootPassword = "integration-root"
	appUser      = "sfm"
	appPassword  = "sfm-secret"
)

// MariaDB is a running throwaway database container.
type MariaDB struct {
	Container testcontainers.Container
	Host      string
	Port      string
	Database  string
	User      string
	Password  string
}

// DSN returns a go-sql-driver/mysql connection string for the container.
func (m *MariaDB) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.Database)
}

// Terminate stops and removes the container.
func (m *MariaDB) Terminate(t *testing.T) {
	if m.Container == nil {
		return
	}
	if err := m.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate MariaDB: %v", err)
	}
}

// DockerAvailable reports whether a Docker daemon is reachable, so tests
// can skip instead of fail on machines without one.
func DockerAvailable() bool {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false
	}
	defer cli.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err = cli.Ping(ctx)
	return err == nil
}

// StartMariaDB starts a MariaDB container with a uniquely named database
// and an application user granted on it.
func StartMariaDB(ctx context.Context) (*MariaDB, error) {
	image := os.Getenv("TEST_DB_IMAGE")
	if image == "" {
		image = defaultImage
	}

	// Unique database name so parallel packages never collide
	dbName := "sfm_test_" + strings.ReplaceAll(uuid.NewString()[:13], "-", "")

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": rootPassword,
				"MARIADB_DATABASE":      dbName,
				"MARIADB_USER":          appUser,
				"MARIADB_PASSWORD":      appPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start MariaDB: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve container host: %w", err)
	}
	mappedPort, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to resolve mapped port: %w", err)
	}

	db := &MariaDB{
		Container: container,
		Host:      host,
		Port:      mappedPort.Port(),
		Database:  dbName,
		User:      appUser,
		Password:  appPassword,
	}

	// The entrypoint grants the app user, but readiness of the listener
	// does not guarantee the grant ran; poll until a login succeeds.
	if err := waitForLogin(db.DSN(), 30*time.Second); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return db, nil
}

// CountRows opens a direct SQL connection and counts the rows of a table,
// bypassing the ORM for independent verification.
func CountRows(dsn, table string) (int64, error) {
	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	var count int64
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func waitForLogin(dsn string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for time.Now().Before(deadline) {
		conn, err := sql.Open("mysql", dsn)
		if err == nil {
			err = conn.Ping()
			conn.Close()
			if err == nil {
				return nil
			}
		}
		lastErr = err
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("database never became ready: %w", lastErr)
}

func logMessage(t *testing.T, format string, args ...interface{}) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}

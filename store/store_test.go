package store

import (
	"context"
	"database/sql"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	mysqlmodule "github.com/testcontainers/testcontainers-go/modules/mysql"

	"bookface/database"
	"bookface/models"
)

var (
	testDB    *sql.DB
	testStore *Store
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := mysqlmodule.Run(ctx,
		"mysql:8.0",
		mysqlmodule.WithDatabase("bookface"),
		mysqlmodule.WithUsername("bookface"),
		mysqlmodule.WithPassword("bookface"),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := container.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	dsn, err := container.ConnectionString(ctx, "parseTime=true")
	if err != nil {
		log.Fatalf("failed to get connection string: %v", err)
	}

	testDB, err = sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	if err := testDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if err := database.CreateTablesOn(testDB); err != nil {
		log.Fatalf("failed to create tables: %v", err)
	}

	testStore = New(testDB)

	code := m.Run()

	testDB.Close()
	os.Exit(code)
}

func cleanTables(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		for _, table := range []string{"users", "friends", "friend_requests", "posts", "post_likes", "post_comments", "messages"} {
			_, err := testDB.Exec("TRUNCATE TABLE " + table)
			require.NoError(t, err)
		}
	})
}

func mustRegister(t *testing.T, firstName, lastName, email string) *models.User {
	t.Helper()
	reg, err := models.NewRegistration(firstName, lastName, email, "secret1", "secret1")
	require.NoError(t, err)
	user, err := testStore.Register(context.Background(), reg)
	require.NoError(t, err)
	return user
}

//go:build integration

// Package testutil starts the containers used by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

const mongoImage = "mongo:7.0"

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// SetupMongoDB starts a dedicated MongoDB container. Packages that only
// need a database should prefer the shared one from SetupTestMainWithMongoDB.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	c, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := c.ConnectionString(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	return &MongoDBContainer{Container: c, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	return terminate(ctx, m.Container)
}

var sharedMongo shared[*MongoDBContainer]

// SetupTestMainWithMongoDB runs m against one MongoDB container shared by
// the whole package:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := sharedMongo.get(func() (*MongoDBContainer, error) { return SetupMongoDB(ctx) }); err != nil {
		panic(err)
	}

	code := m.Run()

	if c, ok := sharedMongo.take(); ok {
		if err := c.Cleanup(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: shared MongoDB container not cleaned up: %v\n", err)
		}
	}
	return code
}

// GetSharedContainerURI returns the URI of the package's shared container.
func GetSharedContainerURI() string {
	c, ok := sharedMongo.peek()
	if !ok {
		panic("shared MongoDB container not started; use SetupTestMainWithMongoDB in TestMain")
	}
	return c.URI
}

var dbNameReplacer = strings.NewReplacer(
	"/", "_", `\`, "_", ".", "_", " ", "_", `"`, "", "$", "", "*", "", "<", "", ">", "", ":", "", "|", "", "?", "",
)

// SanitizeDBName turns a test name into a unique MongoDB database name.
func SanitizeDBName(testName string) string {
	name := dbNameReplacer.Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}

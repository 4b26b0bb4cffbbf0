//go:build integration

package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// MinIOAccessKey is the root user of test MinIO containers.
	MinIOAccessKey = "minioadmin"
	// MinIOSecretKey is the root password of test MinIO containers.
	MinIOSecretKey = "minioadmin"
)

// MinIOContainer wraps a MinIO testcontainer.
type MinIOContainer struct {
	Container testcontainers.Container
	Endpoint  string
}

// SetupMinIO starts a single-node MinIO server and waits for its liveness probe.
func SetupMinIO(ctx context.Context) (*MinIOContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "minio/minio:RELEASE.2024-01-16T16-07-38Z",
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ROOT_USER":     MinIOAccessKey,
			"MINIO_ROOT_PASSWORD": MinIOSecretKey,
		},
		Cmd:        []string{"server", "/data"},
		WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start MinIO container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "9000/tcp", "")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get MinIO endpoint: %w", err)
	}

	return &MinIOContainer{Container: container, Endpoint: endpoint}, nil
}

// Cleanup terminates the MinIO container.
func (m *MinIOContainer) Cleanup(ctx context.Context) error {
	return terminate(ctx, m.Container)
}

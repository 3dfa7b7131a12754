// Package testinfra starts throwaway database containers for integration
// tests.
package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	MemgraphImage = "memgraph/memgraph:2.22.0"
	boltPort      = "7687/tcp"
)

// MemgraphContainer is a running Memgraph instance with its mapped Bolt
// endpoint resolved.
type MemgraphContainer struct {
	testcontainers.Container
	Host string
	Port int
}

// StartMemgraph starts a Memgraph container and waits until its Bolt port
// accepts connections. The caller owns the container and must Terminate it.
func StartMemgraph(ctx context.Context) (*MemgraphContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        MemgraphImage,
		ExposedPorts: []string{boltPort},
		WaitingFor: wait.ForListeningPort(boltPort).
			WithStartupTimeout(60 * time.Second),
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start memgraph: %w", err)
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get container host: %w", err)
	}

	mapped, err := ctr.MappedPort(ctx, boltPort)
	if err != nil {
		ctr.Terminate(ctx) //nolint:errcheck
		return nil, fmt.Errorf("get mapped bolt port: %w", err)
	}

	return &MemgraphContainer{Container: ctr, Host: host, Port: mapped.Int()}, nil
}

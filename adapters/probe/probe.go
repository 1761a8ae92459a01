// Package probe implements interfaces.HealthProber for HTTP(S) and gRPC health endpoints.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"mycoordinator/helpers"
	"mycoordinator/interfaces"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// New creates a prober. Targets starting with grpc:// are checked with the standard gRPC health service
// (grpc://host:port or grpc://host:port/service-name), anything else with an HTTP GET expecting 2xx.
// Panics on nil client.
//
// Called from cmd/main; used by the startup sequencer and the health sweep.
func New(client *http.Client) interfaces.HealthProber {
	return &prober{client: helpers.NilPanic(client, "probe.probe.go: http client is required")}
}

type prober struct {
	client *http.Client
}

func (p *prober) Probe(ctx context.Context, target string) error {
	if strings.HasPrefix(target, "grpc://") {
		return p.probeGRPC(ctx, target)
	}
	return p.probeHTTP(ctx, target)
}

func (p *prober) probeHTTP(ctx context.Context, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("health endpoint %s returned %d", target, resp.StatusCode)
	}
	return nil
}

func (p *prober) probeGRPC(ctx context.Context, target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("invalid grpc health target %q: %w", target, err)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid grpc health target %q: missing host", target)
	}
	conn, err := grpc.NewClient(u.Host, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{
		Service: strings.TrimPrefix(u.Path, "/"),
	})
	if err != nil {
		return err
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("grpc health %s reported %s", target, resp.GetStatus())
	}
	return nil
}

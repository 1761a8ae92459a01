// Package supervisor holds the ServiceStarter implementations: an HTTP client for an external process
// supervisor, and Noop for fleets whose services start themselves and only wait for clearance.
package supervisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mycoordinator/domain"
	"mycoordinator/helpers"
	"mycoordinator/interfaces"
)

const requestTimeout = 5 * time.Second

// SupervisorHTTP creates an interfaces.ServiceStarter that asks the supervisor to start a service with
// POST baseURL/v1/services/{name}/start. Panics on empty baseURL or nil client.
//
// Parameters: baseURL: supervisor base URL (e.g. http://supervisor:9000), no trailing slash; client: HTTP client (main uses 10s timeout).
//
// Called from cmd/main when SUPERVISOR_URL is set.
func SupervisorHTTP(baseURL string, client *http.Client) interfaces.ServiceStarter {
	return &supervisorHTTP{
		baseURL: helpers.StrPanic(baseURL, "supervisor.supervisor.go: baseURL is required"),
		client:  helpers.NilPanic(client, "supervisor.supervisor.go: http client is required"),
	}
}

type supervisorHTTP struct {
	baseURL string
	client  *http.Client
}

// startRequest is the JSON body of the start call: the instances the supervisor is expected to bring up.
type startRequest struct {
	Service   string          `json:"service"`
	Instances []instanceEntry `json:"instances"`
}

type instanceEntry struct {
	ID   string `json:"id"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Start posts the start request with a 5s timeout (or ctx's deadline if shorter).
//
// Returns: nil on any 2xx; error on other status, network error or timeout.
//
// Called from service.startupSequencer once clearance is granted.
func (s *supervisorHTTP) Start(ctx context.Context, name string, instances []domain.ServiceInstance) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	body := startRequest{Service: name, Instances: make([]instanceEntry, 0, len(instances))}
	for _, inst := range instances {
		body.Instances = append(body.Instances, instanceEntry{ID: inst.ID, Host: inst.Host, Port: inst.Port})
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	reqURL := s.baseURL + "/v1/services/" + url.PathEscape(name) + "/start"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("supervisor start %s returned %d", name, resp.StatusCode)
	}
	return nil
}

// Noop returns a starter that accepts every request; services are only gated and polled.
func Noop() interfaces.ServiceStarter {
	return noop{}
}

type noop struct{}

func (noop) Start(context.Context, string, []domain.ServiceInstance) error { return nil }

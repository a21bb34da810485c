// Package executor launches external projection plugins and exposes them
// to the host through the go-plugin RPC protocol.
package executor

import (
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	cpplugin "github.com/jmylchreest/colorplane/pkg/plugin"
)

// ProjectionExecutor manages the lifecycle of one external projection
// plugin process. The process is started lazily on first use and reused
// across invocations until Close is called.
type ProjectionExecutor struct {
	path      string
	verbose   bool
	client    *plugin.Client
	rpcClient *cpplugin.ProjectionPluginRPCClient
}

// New creates an executor for the plugin binary at path.
func New(path string, verbose bool) *ProjectionExecutor {
	return &ProjectionExecutor{
		path:    path,
		verbose: verbose,
	}
}

// Project invokes the plugin's projection over the given vectors and
// returns one hex colour string per pair. It implements
// projection.Projector.
func (e *ProjectionExecutor) Project(ctx context.Context, x, y []float64, opts map[string]any) ([]string, error) {
	client, err := e.getRPCClient()
	if err != nil {
		return nil, err
	}

	return client.Project(ctx, cpplugin.ProjectRequest{
		X:       x,
		Y:       y,
		Options: opts,
	})
}

// GetMetadata returns the plugin's metadata.
func (e *ProjectionExecutor) GetMetadata() (cpplugin.PluginInfo, error) {
	client, err := e.getRPCClient()
	if err != nil {
		return cpplugin.PluginInfo{}, err
	}

	return client.GetMetadata()
}

// Close terminates the plugin process.
func (e *ProjectionExecutor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.rpcClient = nil
	}
}

func (e *ProjectionExecutor) getRPCClient() (*cpplugin.ProjectionPluginRPCClient, error) {
	if e.rpcClient != nil {
		return e.rpcClient, nil
	}

	// Configure logger based on verbose flag.
	var logger hclog.Logger
	if e.verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	} else {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "plugin",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	// Initialize go-plugin client.
	e.client = plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: cpplugin.Handshake,
		Plugins: map[string]plugin.Plugin{
			cpplugin.ProjectionPluginName: &cpplugin.ProjectionPluginRPC{},
		},
		Cmd:              exec.Command(e.path),
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           logger,
	})

	// Connect via RPC.
	rpcClient, err := e.client.Client()
	if err != nil {
		e.client.Kill()
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	// Request the plugin.
	raw, err := rpcClient.Dispense(cpplugin.ProjectionPluginName)
	if err != nil {
		e.client.Kill()
		return nil, fmt.Errorf("failed to dispense plugin: %w", err)
	}

	client, ok := raw.(*cpplugin.ProjectionPluginRPCClient)
	if !ok {
		e.client.Kill()
		return nil, fmt.Errorf("plugin at %s does not implement the projection protocol", e.path)
	}
	e.rpcClient = client

	return client, nil
}

// Package plugin provides the public API for colorplane projection plugins.
package plugin

import (
	"context"
	"encoding/json"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// ProjectionPluginRPC implements the go-plugin Plugin interface for
// projection plugins.
type ProjectionPluginRPC struct {
	plugin.Plugin
	Impl ProjectionPlugin
}

// Server returns an RPC server for this plugin.
func (p *ProjectionPluginRPC) Server(*plugin.MuxBroker) (interface{}, error) {
	return &ProjectionPluginRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *ProjectionPluginRPC) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &ProjectionPluginRPCClient{client: c}, nil
}

// ProjectionPluginRPCServer is the RPC server implementation for
// projection plugins.
type ProjectionPluginRPCServer struct {
	Impl ProjectionPlugin
}

// Project implements the RPC method for colour projection. The request and
// response travel as JSON so arbitrary option values survive the trip.
func (s *ProjectionPluginRPCServer) Project(reqBytes []byte, resp *[]byte) error {
	var req ProjectRequest
	if err := json.Unmarshal(reqBytes, &req); err != nil {
		return err
	}

	colours, err := s.Impl.Project(context.Background(), req)
	if err != nil {
		return err
	}

	data, err := json.Marshal(colours)
	if err != nil {
		return err
	}

	*resp = data
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *ProjectionPluginRPCServer) GetMetadata(_ interface{}, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// ProjectionPluginRPCClient is the RPC client implementation for
// projection plugins.
type ProjectionPluginRPCClient struct {
	client *rpc.Client
}

// Project calls the remote Project method.
func (c *ProjectionPluginRPCClient) Project(ctx context.Context, req ProjectRequest) ([]string, error) {
	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	var respBytes []byte
	if err := c.client.Call("Plugin.Project", reqBytes, &respBytes); err != nil {
		return nil, err
	}

	var colours []string
	if err := json.Unmarshal(respBytes, &colours); err != nil {
		return nil, err
	}

	return colours, nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *ProjectionPluginRPCClient) GetMetadata() (PluginInfo, error) {
	var info PluginInfo
	err := c.client.Call("Plugin.GetMetadata", new(interface{}), &info)
	return info, err
}

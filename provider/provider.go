// Package provider is a minimal Starknet JSON-RPC client covering the read
// methods the query commands need.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/NethermindEth/juno/core/felt"

	"github.com/starkctl/starkctl/networks"
)

// RPCVar overrides every per-network node variable when set.
const RPCVar = "STARKNET_RPC"

// Client talks JSON-RPC 2.0 to a single Starknet node.
type Client struct {
	endpoint string
	hc       *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: 30 * time.Second},
	}
}

// ForNetwork picks a node for the network: STARKNET_RPC first, then the
// network's own node variable, then the first default node.
func ForNetwork(network networks.Network) (*Client, error) {
	if url := os.Getenv(RPCVar); url != "" {
		return NewClient(url), nil
	}
	if url := os.Getenv(network.GetNodeVariableName()); url != "" {
		return NewClient(url), nil
	}
	for _, url := range network.GetDefaultNodes() {
		return NewClient(url), nil
	}
	return nil, fmt.Errorf(
		"no node configured for network %s: set %s or %s",
		network.GetName(), RPCVar, network.GetNodeVariableName(),
	)
}

func (c *Client) Endpoint() string { return c.endpoint }

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params any, result any) error {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s on %s: %w", method, c.endpoint, err)
	}
	defer resp.Body.Close()

	var reply rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return fmt.Errorf("decoding %s reply: %w", method, err)
	}
	if reply.Error != nil {
		return reply.Error
	}
	return json.Unmarshal(reply.Result, result)
}

// FunctionCall names a view function invocation for starknet_call.
type FunctionCall struct {
	ContractAddress    *felt.Felt   `json:"contract_address"`
	EntryPointSelector *felt.Felt   `json:"entry_point_selector"`
	Calldata           []*felt.Felt `json:"calldata"`
}

// ChainID returns the short-string encoded chain identifier of the node.
func (c *Client) ChainID(ctx context.Context) (*felt.Felt, error) {
	var result felt.Felt
	if err := c.call(ctx, "starknet_chainId", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BlockNumber returns the latest accepted block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var result uint64
	if err := c.call(ctx, "starknet_blockNumber", nil, &result); err != nil {
		return 0, err
	}
	return result, nil
}

// Nonce returns the next nonce of a contract at the latest block.
func (c *Client) Nonce(ctx context.Context, contract *felt.Felt) (*felt.Felt, error) {
	var result felt.Felt
	if err := c.call(ctx, "starknet_getNonce", []any{"latest", contract}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ClassHashAt returns the class hash of the contract deployed at address.
func (c *Client) ClassHashAt(ctx context.Context, contract *felt.Felt) (*felt.Felt, error) {
	var result felt.Felt
	if err := c.call(ctx, "starknet_getClassHashAt", []any{"latest", contract}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// StorageAt reads one storage slot of a contract at the latest block.
func (c *Client) StorageAt(ctx context.Context, contract, key *felt.Felt) (*felt.Felt, error) {
	var result felt.Felt
	if err := c.call(ctx, "starknet_getStorageAt", []any{contract, key, "latest"}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Call executes a view function at the latest block.
func (c *Client) Call(ctx context.Context, fc FunctionCall) ([]*felt.Felt, error) {
	if fc.Calldata == nil {
		fc.Calldata = []*felt.Felt{}
	}
	var result []*felt.Felt
	if err := c.call(ctx, "starknet_call", []any{fc, "latest"}, &result); err != nil {
		return nil, err
	}
	return result, nil
}

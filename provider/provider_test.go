package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NethermindEth/juno/core/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starkctl/starkctl/common"
	"github.com/starkctl/starkctl/networks"
)

// fakeNode answers each JSON-RPC method with a canned result and records the
// requests it saw.
func fakeNode(t *testing.T, results map[string]any) (*httptest.Server, *[]rpcRequest) {
	t.Helper()
	var seen []rpcRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)

		result, ok := results[req.Method]
		if !ok {
			json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0", "id": req.ID,
				"error": map[string]any{"code": -32601, "message": "Method not found"},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0", "id": req.ID, "result": result,
		})
	}))
	t.Cleanup(server.Close)
	return server, &seen
}

func TestChainID(t *testing.T) {
	server, _ := fakeNode(t, map[string]any{
		"starknet_chainId": "0x534e5f5345504f4c4941",
	})
	client := NewClient(server.URL)

	chainID, err := client.ChainID(context.Background())
	require.NoError(t, err)
	text, err := common.FeltToShortString(chainID)
	require.NoError(t, err)
	assert.Equal(t, "SN_SEPOLIA", text)
}

func TestBlockNumber(t *testing.T) {
	server, _ := fakeNode(t, map[string]any{"starknet_blockNumber": 123456})
	client := NewClient(server.URL)

	number, err := client.BlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), number)
}

func TestCallPassesFunctionCall(t *testing.T) {
	server, seen := fakeNode(t, map[string]any{
		"starknet_call": []string{"0x1", "0x2"},
	})
	client := NewClient(server.URL)

	contract := new(felt.Felt).SetUint64(0xaa)
	result, err := client.Call(context.Background(), FunctionCall{
		ContractAddress:    contract,
		EntryPointSelector: common.Selector("balanceOf"),
		Calldata:           []*felt.Felt{new(felt.Felt).SetUint64(0xbb)},
	})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].Equal(new(felt.Felt).SetUint64(1)))

	require.Len(t, *seen, 1)
	params, err := json.Marshal((*seen)[0].Params)
	require.NoError(t, err)
	assert.Contains(t, string(params), "\"contract_address\"")
	assert.Contains(t, string(params), "\"latest\"")
}

func TestRPCErrorSurfaces(t *testing.T) {
	server, _ := fakeNode(t, nil)
	client := NewClient(server.URL)

	_, err := client.ChainID(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Method not found")
}

func TestForNetworkPrecedence(t *testing.T) {
	t.Setenv(RPCVar, "http://override:9999")
	t.Setenv(networks.Katana.GetNodeVariableName(), "http://katana-var:5050")

	client, err := ForNetwork(networks.Katana)
	require.NoError(t, err)
	assert.Equal(t, "http://override:9999", client.Endpoint())

	t.Setenv(RPCVar, "")
	// An empty override falls through to the per-network variable.
	client, err = ForNetwork(networks.Katana)
	require.NoError(t, err)
	assert.Equal(t, "http://katana-var:5050", client.Endpoint())

	t.Setenv(networks.Katana.GetNodeVariableName(), "")
	client, err = ForNetwork(networks.Katana)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5050", client.Endpoint())
}

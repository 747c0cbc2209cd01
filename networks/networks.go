package networks

import (
	"fmt"
	"strings"
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

// CurrentNetwork returns the network selected by SetNetwork. Before any
// SetNetwork call (and for unknown names) it is Sepolia.
func CurrentNetwork() Network {
	mu.Lock()
	defer mu.Unlock()

	if cachedNetwork == nil {
		cachedNetwork = Sepolia
	}
	return cachedNetwork
}

// SetNetwork selects the process-wide network. Called once by the root
// command after validating the --network flag.
func SetNetwork(networkStr string) {
	mu.Lock()
	defer mu.Unlock()

	var err error
	cachedNetwork, err = GetNetwork(networkStr)
	if err != nil {
		cachedNetwork = Sepolia
	}
}

// GetNetwork looks a network up by its name or any of its alternative names.
func GetNetwork(name string) (Network, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range SupportedNetworks {
		if n.GetName() == name {
			return n, nil
		}
		for _, alt := range n.GetAlternativeNames() {
			if alt == name {
				return n, nil
			}
		}
	}
	return nil, fmt.Errorf("unknown network: %s", name)
}

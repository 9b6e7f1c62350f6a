package ledger

import (
	"fmt"
	"time"
)

// Config holds configuration for the Sui fullnode client.
type Config struct {
	// Network selects a public fullnode (devnet, testnet, mainnet, localnet).
	Network string `mapstructure:"network" default:"devnet"`
	// RPCURL overrides the fullnode URL derived from Network.
	RPCURL string `mapstructure:"rpc_url" default:""`
	// PackageID is the on-chain package whose events are indexed.
	PackageID string `mapstructure:"package_id" default:""`
	// Module is the Move module emitting the events.
	Module string `mapstructure:"module" default:"hotel_booking"`
	// TimeoutSeconds bounds every RPC call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
}

// URL resolves the fullnode endpoint.
func (c Config) URL() (string, error) {
	if c.RPCURL != "" {
		return c.RPCURL, nil
	}
	switch c.Network {
	case "mainnet", "testnet", "devnet":
		return fmt.Sprintf("https://fullnode.%s.sui.io:443", c.Network), nil
	case "localnet":
		return "http://127.0.0.1:9000", nil
	default:
		return "", fmt.Errorf("unknown sui network %q", c.Network)
	}
}

// Timeout returns the per-call timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

package resolver

import (
	"slices"

	"github.com/BartSoj/apicheck/contract"
)

// HostIndex maps a network host to the contracts advertising it among their
// declared servers. Build it once at startup; it is read-only afterward and
// safely shared across goroutines.
type HostIndex struct {
	byHost map[string][]*contract.Contract
}

// BuildHostIndex indexes the given contracts by server host, preserving
// contract load order within each host bucket. A contract whose server URLs
// all fail to parse contributes no hosts and is simply unreachable through
// the index; this is not an error.
func BuildHostIndex(contracts []*contract.Contract) *HostIndex {
	ix := &HostIndex{byHost: make(map[string][]*contract.Contract)}
	for _, c := range contracts {
		for _, host := range c.Hosts() {
			ix.byHost[host] = append(ix.byHost[host], c)
		}
	}
	return ix
}

// Lookup returns the contracts serving the given host in load order, or nil
// when no contract advertises it.
func (ix *HostIndex) Lookup(host string) []*contract.Contract {
	if ix == nil {
		return nil
	}
	return ix.byHost[host]
}

// Hosts returns every indexed host, sorted for deterministic listing.
func (ix *HostIndex) Hosts() []string {
	if ix == nil {
		return nil
	}
	hosts := make([]string, 0, len(ix.byHost))
	for host := range ix.byHost {
		hosts = append(hosts, host)
	}
	slices.Sort(hosts)
	return hosts
}

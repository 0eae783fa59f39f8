package domain

import "strings"

// ClusterNode is one entry of the node directory response, kept verbatim as
// the RPC returned it. Gossip carries "host:port" and may be empty when the
// node advertises no reachable address.
type ClusterNode struct {
	Pubkey  string `json:"pubkey"`
	Gossip  string `json:"gossip"`
	Version string `json:"version"`
}

// HasGossip reports whether the node advertises a gossip address at all.
func (n ClusterNode) HasGossip() bool {
	return n.Gossip != ""
}

// GossipHost returns the part of the gossip address before the first ':'.
// Addresses without a port separator come back unchanged.
func (n ClusterNode) GossipHost() string {
	host, _, _ := strings.Cut(n.Gossip, ":")
	return host
}

// SampledNode is a cluster node selected into the working set, keyed by its
// gossip host. The working set holds at most one node per distinct host.
type SampledNode struct {
	Host string
	Node ClusterNode
}

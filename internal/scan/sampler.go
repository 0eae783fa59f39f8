package scan

import (
	"math/rand"
	"time"

	"gossipscan/internal/domain"
)

// Sampler draws the working set for one run from the full cluster directory.
type Sampler struct {
	sampleSize int
	rng        *rand.Rand
}

// NewSampler returns a sampler bounded to sampleSize nodes per run. A nil rng
// gets a time seeded source.
func NewSampler(sampleSize int, rng *rand.Rand) *Sampler {
	if sampleSize < 0 {
		sampleSize = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{sampleSize: sampleSize, rng: rng}
}

// Sample filters out nodes without a gossip address, draws at most the
// configured bound uniformly without replacement, and collapses the selection
// to one node per gossip host. When selected nodes share a host the last one
// wins while the host keeps its first seen position.
func (s *Sampler) Sample(nodes []domain.ClusterNode) []domain.SampledNode {
	valid := make([]domain.ClusterNode, 0, len(nodes))
	for _, node := range nodes {
		if node.HasGossip() {
			valid = append(valid, node)
		}
	}

	selected := valid
	if len(valid) > s.sampleSize {
		shuffled := make([]domain.ClusterNode, len(valid))
		copy(shuffled, valid)
		s.rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		selected = shuffled[:s.sampleSize]
	}

	byHost := make(map[string]int, len(selected))
	sampled := make([]domain.SampledNode, 0, len(selected))
	for _, node := range selected {
		host := node.GossipHost()
		if at, seen := byHost[host]; seen {
			sampled[at].Node = node
			continue
		}
		byHost[host] = len(sampled)
		sampled = append(sampled, domain.SampledNode{Host: host, Node: node})
	}

	return sampled
}

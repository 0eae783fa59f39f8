// Package scan holds the scan pipeline: sampling the cluster directory,
// classifying nodes against the sanctioned country set and handing the
// results to the report writer.
package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"gossipscan/internal/domain"
	"gossipscan/internal/report"
)

// Directory provides the current cluster node set.
type Directory interface {
	FetchClusterNodes(ctx context.Context) ([]domain.ClusterNode, error)
}

// GeoResolver maps gossip hosts to country classifications. Hosts missing
// from the returned map had no resolvable result.
type GeoResolver interface {
	Resolve(ctx context.Context, hosts []string) map[string]domain.GeoLocation
}

// Runner executes one full scan: fetch, sample, resolve, classify, persist.
// The stages run strictly in sequence. A directory failure degrades the run
// to an empty node set instead of aborting; report errors abort.
type Runner struct {
	directory  Directory
	resolver   GeoResolver
	sampler    *Sampler
	classifier *Classifier
	reports    *report.Writer
}

func NewRunner(directory Directory, resolver GeoResolver, sampler *Sampler, classifier *Classifier, reports *report.Writer) *Runner {
	return &Runner{
		directory:  directory,
		resolver:   resolver,
		sampler:    sampler,
		classifier: classifier,
		reports:    reports,
	}
}

func (r *Runner) Run(ctx context.Context) error {
	scanID := uuid.New().String()[:8]
	log.Info("Fetching nodes from the gossip network", "scan", scanID)

	nodes, err := r.directory.FetchClusterNodes(ctx)
	if err != nil {
		log.Error("Error fetching cluster nodes", "scan", scanID, "error", err)
		nodes = nil
	}
	log.Info("Cluster directory received", "scan", scanID, "nodes", humanize.Comma(int64(len(nodes))))

	sampled := r.sampler.Sample(nodes)
	log.Info("Sampled working set", "scan", scanID, "nodes", len(sampled))

	hosts := make([]string, len(sampled))
	for i, node := range sampled {
		hosts[i] = node.Host
	}

	locations := r.resolver.Resolve(ctx, hosts)
	log.Debug("Geolocation resolved", "scan", scanID, "resolved", len(locations), "requested", len(hosts))

	records, tally, sanctioned := r.classifier.Classify(sampled, locations)

	if err := r.reports.AppendScanLog(records); err != nil {
		return fmt.Errorf("appending scan log: %w", err)
	}

	summary := report.Summary{
		GeneratedAt:  time.Now(),
		TotalSampled: len(records),
		Sanctioned:   sanctioned,
		Tally:        tally,
	}
	if err := r.reports.WriteSummary(summary); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	log.Info("Scan complete", "scan", scanID, "rows", len(records), "sanctioned", sanctioned)
	return nil
}

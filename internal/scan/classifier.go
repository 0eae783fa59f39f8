package scan

import (
	"time"

	"gossipscan/internal/domain"
)

// Classifier joins sampled nodes with their resolved locations and flags
// nodes hosted in sanctioned jurisdictions.
type Classifier struct {
	sanctioned map[string]struct{}
}

func NewClassifier(countryCodes []string) *Classifier {
	sanctioned := make(map[string]struct{}, len(countryCodes))
	for _, code := range countryCodes {
		sanctioned[code] = struct{}{}
	}
	return &Classifier{sanctioned: sanctioned}
}

// Sanctioned reports whether code is in the sanctioned set. Membership is an
// exact match, so the unknown sentinels never qualify.
func (c *Classifier) Sanctioned(code string) bool {
	_, ok := c.sanctioned[code]
	return ok
}

// Classify builds one scan record per sampled node. Nodes the resolver had
// nothing for default to the unknown location. Timestamps are captured per
// row at classification time. Returns the records alongside the per country
// tally and the sanctioned node count.
func (c *Classifier) Classify(sampled []domain.SampledNode, locations map[string]domain.GeoLocation) ([]domain.ScanRecord, *domain.CountryTally, int) {
	records := make([]domain.ScanRecord, 0, len(sampled))
	tally := domain.NewCountryTally()
	sanctionedTotal := 0

	for _, node := range sampled {
		location, ok := locations[node.Host]
		if !ok {
			location = domain.UnknownLocation
		}

		sanctioned := c.Sanctioned(location.CountryCode)
		if sanctioned {
			sanctionedTotal++
		}
		tally.Add(location.CountryCode)

		records = append(records, domain.ScanRecord{
			Timestamp:   time.Now(),
			Pubkey:      node.Node.Pubkey,
			GossipIP:    node.Host,
			Version:     node.Node.Version,
			CountryCode: location.CountryCode,
			CountryName: location.CountryName,
			Sanctioned:  sanctioned,
		})
	}

	return records, tally, sanctionedTotal
}

package geo

import (
	"context"
	"net"
	"os"
	"strings"

	"github.com/oschwald/geoip2-golang"

	"gossipscan/internal/domain"
)

// GeoLite resolves hosts against a local MaxMind country database instead of
// the network. Hosts that do not parse as IP addresses or have no record are
// left out of the result, the same absent host path a failed batch chunk
// takes.
type GeoLite struct {
	db *geoip2.Reader
}

// OpenGeoLite loads a GeoLite2 country database from disk.
func OpenGeoLite(path string) (*GeoLite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	db, err := geoip2.FromBytes(data)
	if err != nil {
		return nil, err
	}
	return &GeoLite{db: db}, nil
}

func (g *GeoLite) Resolve(_ context.Context, hosts []string) map[string]domain.GeoLocation {
	results := make(map[string]domain.GeoLocation, len(hosts))

	for _, host := range hosts {
		ip := net.ParseIP(host)
		if ip == nil {
			continue
		}

		record, err := g.db.Country(ip)
		if err != nil {
			continue
		}

		code := record.Country.IsoCode
		name := record.Country.Names["en"]
		if code == "" && name == "" {
			continue
		}

		results[host] = domain.GeoLocation{
			CountryCode: orUnknown(strings.ToUpper(code)),
			CountryName: orUnknown(name),
		}
	}

	return results
}

func (g *GeoLite) Close() error {
	return g.db.Close()
}

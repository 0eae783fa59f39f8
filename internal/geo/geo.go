// Package geo resolves gossip hosts to country classifications. The default
// resolver is an ip-api style batch endpoint; a local GeoLite database can
// take its place when configured. Both report results as a host keyed map,
// leaving out hosts they could not resolve at all.
package geo

// UnknownCountry fills country fields a resolver reply left empty. Hosts that
// are missing from a resolver result entirely are a different case and are
// defaulted by the caller.
const UnknownCountry = "Unknown"

func orUnknown(value string) string {
	if value == "" {
		return UnknownCountry
	}
	return value
}

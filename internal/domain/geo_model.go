package domain

// GeoLocation is the country classification resolved for a single host.
type GeoLocation struct {
	CountryCode string
	CountryName string
}

// UnknownLocation is the placeholder classification for hosts the resolver
// returned nothing for, e.g. because their whole batch chunk failed. It is
// distinct from a reply that resolved but carried no country fields (those
// come back as "Unknown"/"Unknown" from the resolver itself).
var UnknownLocation = GeoLocation{CountryCode: "XX", CountryName: "Unknown"}

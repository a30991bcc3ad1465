package model

// RequestMeta carries the client and geo attributes the hosting edge
// attaches to an inbound request. Availability of edge metadata is not
// guaranteed; every field defaults to the empty string.
//
// The JSON field order is part of the fingerprint input and must stay
// stable across releases, otherwise fingerprints change mid-day.
type RequestMeta struct {
	IP             string `json:"ip"`
	UserAgent      string `json:"userAgent"`
	City           string `json:"city"`
	Continent      string `json:"continent"`
	Country        string `json:"country"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	Timezone       string `json:"timezone"`
	Region         string `json:"region"`
	ASOrganization string `json:"asOrg"`
}

package domain

// RoutingKind discriminates the two routing target variants.
type RoutingKind int

const (
	// RouteByDistrict targets one or more sub-national districts
	// resolved from the submission's postal code.
	RouteByDistrict RoutingKind = iota
	// RouteByCountry targets the country-level representative set.
	RouteByCountry
)

// RoutingTarget is the resolved destination for a submission before the
// recipient address lookup.
type RoutingTarget struct {
	Kind      RoutingKind
	Districts []string
	Country   string
}

// ByDistrict builds a district routing target.
func ByDistrict(districts []string) RoutingTarget {
	return RoutingTarget{Kind: RouteByDistrict, Districts: districts}
}

// ByCountry builds a country routing target.
func ByCountry(country string) RoutingTarget {
	return RoutingTarget{Kind: RouteByCountry, Country: country}
}

package regions

// Simple package containing the region routing table.
// Create the types for clarity.
type (
	Platform string
	Routing  string
)

// Routing values accepted by the regional Riot endpoints.
const (
	Americas Routing = "americas"
	Europe   Routing = "europe"
	Asia     Routing = "asia"
	Sea      Routing = "sea"
)

// Platform code to regional routing value.
var routingByPlatform = map[Platform]Routing{
	"na1":  Americas,
	"br1":  Americas,
	"la1":  Americas,
	"la2":  Americas,
	"euw1": Europe,
	"eun1": Europe,
	"tr1":  Europe,
	"ru":   Europe,
	"kr":   Asia,
	"jp1":  Asia,
	"oc1":  Sea,
	"ph2":  Sea,
	"sg2":  Sea,
	"th2":  Sea,
	"tw2":  Sea,
	"vn2":  Sea,
}

// RoutingFor maps a platform code to its routing value, defaulting to
// americas for unknown platforms.
func RoutingFor(platform Platform) Routing {
	if routing, ok := routingByPlatform[platform]; ok {
		return routing
	}
	return Americas
}

// IsKnown reports whether the platform code is in the routing table.
func IsKnown(platform Platform) bool {
	_, ok := routingByPlatform[platform]
	return ok
}

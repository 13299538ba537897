package logistics

import "fmt"

// Method is one way of moving a shipment along a route.
type Method struct {
	Name           string
	CostMultiplier float64
	TimeMultiplier float64
	Reliability    float64 // [0, 1], chance a leg runs on schedule
	HandlingFee    float64 // flat per-shipment fee
}

// Standard shipping methods. Not every route offers every method.
var (
	MethodAir   = Method{Name: "air", CostMultiplier: 4.5, TimeMultiplier: 0.15, Reliability: 0.95, HandlingFee: 1200}
	MethodSea   = Method{Name: "sea", CostMultiplier: 1.0, TimeMultiplier: 1.0, Reliability: 0.82, HandlingFee: 450}
	MethodRail  = Method{Name: "rail", CostMultiplier: 1.6, TimeMultiplier: 0.55, Reliability: 0.88, HandlingFee: 600}
	MethodTruck = Method{Name: "truck", CostMultiplier: 2.2, TimeMultiplier: 0.4, Reliability: 0.9, HandlingFee: 500}
)

// Route is a static catalog entry for one origin/destination region pair.
type Route struct {
	From string
	To   string

	BaseRate       float64 // per chargeable kg, sea baseline
	BaseLeadDays   float64 // sea baseline transit time
	DistanceFactor float64 // relative to the shortest catalog route

	InfrastructureQuality float64 // [0, 1]
	Congestion            float64 // [0, 1]
	CustomsEfficiency     float64 // [0, 1]
	ClearanceBaseDays     float64

	Methods []Method
}

// Method returns the route's method by name.
func (r *Route) Method(name string) (Method, error) {
	for _, m := range r.Methods {
		if m.Name == name {
			return m, nil
		}
	}
	return Method{}, fmt.Errorf("method %q on route %s->%s: %w", name, r.From, r.To, ErrMethodNotAvailable)
}

// Catalog is the static route table.
type Catalog struct {
	routes map[string]*Route
}

func routeKey(from, to string) string {
	return from + "->" + to
}

// NewCatalog builds a catalog from route entries.
func NewCatalog(routes []Route) *Catalog {
	c := &Catalog{routes: make(map[string]*Route, len(routes))}
	for i := range routes {
		r := routes[i]
		c.routes[routeKey(r.From, r.To)] = &r
	}
	return c
}

// Find looks up the route between two regions.
func (c *Catalog) Find(from, to string) (*Route, error) {
	r, ok := c.routes[routeKey(from, to)]
	if !ok {
		return nil, fmt.Errorf("route %s->%s: %w", from, to, ErrRouteNotFound)
	}
	return r, nil
}

// DefaultCatalog is the shipping network used by the simulation: factories in
// Asia ship materials and finished units toward the demand regions.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Route{
		{
			From: "east-asia", To: "north-america",
			BaseRate: 0.9, BaseLeadDays: 22, DistanceFactor: 1.0,
			InfrastructureQuality: 0.85, Congestion: 0.45, CustomsEfficiency: 0.8,
			ClearanceBaseDays: 2,
			Methods:           []Method{MethodSea, MethodAir},
		},
		{
			From: "east-asia", To: "europe",
			BaseRate: 1.0, BaseLeadDays: 30, DistanceFactor: 1.2,
			InfrastructureQuality: 0.8, Congestion: 0.35, CustomsEfficiency: 0.85,
			ClearanceBaseDays: 1.5,
			Methods:           []Method{MethodSea, MethodAir, MethodRail},
		},
		{
			From: "south-asia", To: "east-asia",
			BaseRate: 0.6, BaseLeadDays: 9, DistanceFactor: 0.5,
			InfrastructureQuality: 0.65, Congestion: 0.55, CustomsEfficiency: 0.7,
			ClearanceBaseDays: 3,
			Methods:           []Method{MethodSea, MethodAir, MethodTruck},
		},
		{
			From: "east-asia", To: "south-america",
			BaseRate: 1.3, BaseLeadDays: 35, DistanceFactor: 1.5,
			InfrastructureQuality: 0.6, Congestion: 0.5, CustomsEfficiency: 0.6,
			ClearanceBaseDays: 4,
			Methods:           []Method{MethodSea, MethodAir},
		},
		{
			From: "europe", To: "north-america",
			BaseRate: 1.1, BaseLeadDays: 14, DistanceFactor: 0.8,
			InfrastructureQuality: 0.9, Congestion: 0.3, CustomsEfficiency: 0.9,
			ClearanceBaseDays: 1,
			Methods:           []Method{MethodSea, MethodAir},
		},
	})
}

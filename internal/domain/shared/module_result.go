package shared

// ModuleResult is the uniform output contract of every module resolver.
// A resolver always produces one, success or failure; errors never cross the
// resolver boundary as panics.
type ModuleResult struct {
	Module   ModuleName
	Success  bool
	Costs    float64
	Revenue  float64
	Changes  map[string]float64
	Messages []string
}

// ModuleName identifies one of the five decision domains.
type ModuleName string

const (
	ModuleFactory   ModuleName = "factory"
	ModuleHR        ModuleName = "hr"
	ModuleRnD       ModuleName = "rnd"
	ModuleMarketing ModuleName = "marketing"
	ModuleFinance   ModuleName = "finance"
)

// ModuleOrder is the fixed per-team resolution order. Later modules read
// figures earlier ones wrote (Finance sees the round's final cash position
// before market revenue lands), so the order is load-bearing.
var ModuleOrder = []ModuleName{
	ModuleFactory,
	ModuleHR,
	ModuleRnD,
	ModuleMarketing,
	ModuleFinance,
}

// NewModuleResult creates an empty successful result for a module.
func NewModuleResult(module ModuleName) *ModuleResult {
	return &ModuleResult{
		Module:  module,
		Success: true,
		Changes: make(map[string]float64),
	}
}

// FailedModuleResult creates a failed result carrying a human-readable reason.
func FailedModuleResult(module ModuleName, reason string) *ModuleResult {
	return &ModuleResult{
		Module:   module,
		Success:  false,
		Changes:  make(map[string]float64),
		Messages: []string{reason},
	}
}

// AddMessage appends a player-facing message to the result.
func (r *ModuleResult) AddMessage(msg string) {
	r.Messages = append(r.Messages, msg)
}

// Record notes a named numeric change applied by the resolver.
func (r *ModuleResult) Record(key string, delta float64) {
	r.Changes[key] += delta
}

// Net returns the result's net effect on cash.
func (r *ModuleResult) Net() float64 {
	return r.Revenue - r.Costs
}

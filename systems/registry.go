package systems

// SystemInfo describes a simulation process for logging and perf tracking.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this process does
	Category    string // Grouping (e.g., "weathering", "transport")
}

// SystemRegistry holds metadata about all processes.
// This centralizes naming so log output and the perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known processes.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known processes to the registry.
// Update this when adding new processes.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: "biofouling", Name: "Biofouling", Description: "Accumulates biofilm, raising effective density", Category: "weathering"})
	r.Register(SystemInfo{ID: "degradation", Name: "Degradation", Description: "Breaks particles down, shrinking effective diameter", Category: "weathering"})
	r.Register(SystemInfo{ID: "buoyancy", Name: "Buoyancy", Description: "Computes Stokes terminal velocity", Category: "transport"})
	r.Register(SystemInfo{ID: "coastline", Name: "Coastline", Description: "Resolves stranding on coastline contact", Category: "transport"})
	r.Register(SystemInfo{ID: "resuspension", Name: "Resuspension", Description: "Lifts settled particles off the seafloor", Category: "transport"})
	r.Register(SystemInfo{ID: "advection", Name: "Advection", Description: "External engine consuming velocities and statuses", Category: "external"})
	r.Register(SystemInfo{ID: "telemetry", Name: "Telemetry", Description: "Collects ensemble statistics", Category: "internal"})
}

// Register adds a process to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns process info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a process ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered processes.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// ByCategory returns processes filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// IDs returns all process IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}

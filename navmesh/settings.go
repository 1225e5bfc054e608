package navmesh

// Settings tunes the navmesh build: how much clearance to carve out around
// obstacles, and which walkable faces link to which.
type Settings struct {
	// MaxStepHeight bounds how large a vertical gap between two walkable
	// faces a StepUp link may bridge.
	MaxStepHeight float32
	// MaxSlopeCosine is the threshold a face's normal.Y must exceed for the
	// face to be considered walkable.
	MaxSlopeCosine float32
	// AgentRadius is the clearance to inflate every brush by before the
	// union, realized along each vertex's octant.
	AgentRadius float32
}

// DefaultSettings returns the settings used across the example scenes:
// 0.5 step height, 0.707 slope cosine (45 degrees), 0.2 agent radius.
func DefaultSettings() Settings {
	return Settings{
		MaxStepHeight:  0.5,
		MaxSlopeCosine: 0.707,
		AgentRadius:    0.2,
	}
}

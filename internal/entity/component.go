package entity

// Component types mirror the course content catalogue.
const (
	ComponentTypeVideo       = "video"
	ComponentTypeAudio       = "audio"
	ComponentTypeText        = "text"
	ComponentTypeInteractive = "interactive"
)

// ComponentDescriptor is static metadata for one coaching exercise. Identity
// is the (ModuleID, ID) pair; descriptors are built once at startup and never
// mutated.
type ComponentDescriptor struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"` // video, audio, text, interactive
	ModuleID    string `json:"module_id"`
}

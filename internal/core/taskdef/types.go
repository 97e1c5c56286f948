package taskdef

// =============================================================================
// Task Shape Types
// =============================================================================

// TaskShape is the externally supplied, ECS-style container configuration
// tree for one application. The engine consumes it, validates its structure
// and substitutes resolved names into it; it never owns or persists it.
type TaskShape struct {
	Services []Service `json:"services"`
}

// Service groups the task definitions for one deployable service.
type Service struct {
	Name            string           `json:"name"`
	TaskDefinitions []TaskDefinition `json:"taskDefinitions"`
}

// TaskDefinition describes one ECS task definition.
type TaskDefinition struct {
	Name       string      `json:"name"`
	Containers []Container `json:"containerDefinitions"`
}

// Container describes one container inside a task definition.
type Container struct {
	Name         string        `json:"name"`
	Image        string        `json:"image"`
	Essential    bool          `json:"essential"`
	PortMappings []PortMapping `json:"portMappings,omitempty"`
	Environment  []EnvVar      `json:"environment,omitempty"`
	Secrets      []string      `json:"secrets,omitempty"`
}

// PortMapping describes one exposed container port.
type PortMapping struct {
	ContainerPort int    `json:"containerPort"`
	Protocol      string `json:"protocol"`
}

// EnvVar is one environment variable entry. Values may contain ${NAME}
// placeholders resolved by Substitute.
type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

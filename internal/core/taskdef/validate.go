package taskdef

import "fmt"

// =============================================================================
// Structural Validation
// =============================================================================

const maxPort = 65535

// ValidateShape checks the task shape's structural invariants, failing on
// the first violation with a ShapeError naming the offending field:
//
//   - at least one service; service names unique and non-empty
//   - at least one task definition per service, each with a non-empty name
//   - container names unique within one task definition and non-empty
//   - containerPort in (0, 65535]; protocol tcp or udp
//   - secrets list optional; absent or empty is valid
func ValidateShape(shape *TaskShape) error {
	if shape == nil || len(shape.Services) == 0 {
		return NewShapeError("services", "At least one Service configuration is required", ErrNoServices)
	}

	seenServices := make(map[string]bool, len(shape.Services))
	for i, svc := range shape.Services {
		field := fmt.Sprintf("services[%d]", i)

		if svc.Name == "" {
			return NewShapeError(field+".name", "service name must not be empty", ErrEmptyName)
		}
		if seenServices[svc.Name] {
			return NewShapeError(field+".name",
				fmt.Sprintf("duplicate service name %q", svc.Name), ErrDuplicateName)
		}
		seenServices[svc.Name] = true

		if err := validateService(field, svc); err != nil {
			return err
		}
	}
	return nil
}

func validateService(field string, svc Service) error {
	if len(svc.TaskDefinitions) == 0 {
		return NewShapeError(field+".taskDefinitions",
			fmt.Sprintf("service %q requires at least one task definition", svc.Name), ErrNoServices)
	}

	for i, td := range svc.TaskDefinitions {
		tdField := fmt.Sprintf("%s.taskDefinitions[%d]", field, i)
		if td.Name == "" {
			return NewShapeError(tdField+".name",
				fmt.Sprintf("task definition name must not be empty in service %q", svc.Name), ErrEmptyName)
		}
		if err := validateContainers(tdField, td); err != nil {
			return err
		}
	}
	return nil
}

func validateContainers(field string, td TaskDefinition) error {
	seen := make(map[string]bool, len(td.Containers))
	for i, c := range td.Containers {
		cField := fmt.Sprintf("%s.containerDefinitions[%d]", field, i)

		if c.Name == "" {
			return NewShapeError(cField+".name",
				fmt.Sprintf("container name must not be empty in task definition %q", td.Name), ErrEmptyName)
		}
		if seen[c.Name] {
			return NewShapeError(cField+".name",
				fmt.Sprintf("duplicate container name %q in task definition %q", c.Name, td.Name), ErrDuplicateName)
		}
		seen[c.Name] = true

		for j, pm := range c.PortMappings {
			pmField := fmt.Sprintf("%s.portMappings[%d]", cField, j)
			if pm.ContainerPort <= 0 || pm.ContainerPort > maxPort {
				return NewShapeError(pmField+".containerPort",
					fmt.Sprintf("container port %d must be between 1 and %d", pm.ContainerPort, maxPort),
					ErrPortOutOfRange)
			}
			if pm.Protocol != "tcp" && pm.Protocol != "udp" {
				return NewShapeError(pmField+".protocol",
					fmt.Sprintf("protocol %q must be tcp or udp", pm.Protocol), ErrBadProtocol)
			}
		}
	}
	return nil
}

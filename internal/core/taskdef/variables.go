package taskdef

import (
	"regexp"

	"github.com/thirdopinion/appinfra/internal/core/naming"
)

// =============================================================================
// Variable Substitution
// =============================================================================

// placeholderRegex matches ${VAR} and ${VAR:-default} patterns.
// Groups:
//   - Group 1: variable name (required)
//   - Group 2: default value (optional, after :-)
var placeholderRegex = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// SubstituteValue replaces ${VAR} and ${VAR:-default} placeholders with
// values from the variables map.
//
// Behavior:
//   - ${VAR} - replaced with variables["VAR"] if present, otherwise kept as-is
//   - ${VAR:-default} - replaced with variables["VAR"] if present, otherwise "default"
//   - unmatched text is left unchanged
func SubstituteValue(value string, variables map[string]string) string {
	if variables == nil {
		variables = make(map[string]string)
	}

	return placeholderRegex.ReplaceAllStringFunc(value, func(match string) string {
		submatch := placeholderRegex.FindStringSubmatch(match)
		if len(submatch) < 2 {
			return match
		}
		if val, ok := variables[submatch[1]]; ok {
			return val
		}
		if len(submatch) >= 3 && submatch[2] != "" {
			return submatch[2]
		}
		return match
	})
}

// SubstituteShape returns a deep copy of the shape with placeholders inside
// every environment-variable value replaced. The input shape is never
// mutated.
func SubstituteShape(shape *TaskShape, variables map[string]string) *TaskShape {
	if shape == nil {
		return nil
	}

	out := &TaskShape{Services: make([]Service, len(shape.Services))}
	for i, svc := range shape.Services {
		outSvc := Service{
			Name:            svc.Name,
			TaskDefinitions: make([]TaskDefinition, len(svc.TaskDefinitions)),
		}
		for j, td := range svc.TaskDefinitions {
			outTD := TaskDefinition{
				Name:       td.Name,
				Containers: make([]Container, len(td.Containers)),
			}
			for k, c := range td.Containers {
				outC := c
				outC.PortMappings = append([]PortMapping(nil), c.PortMappings...)
				outC.Secrets = append([]string(nil), c.Secrets...)
				outC.Environment = make([]EnvVar, len(c.Environment))
				for m, env := range c.Environment {
					outC.Environment[m] = EnvVar{
						Name:  env.Name,
						Value: SubstituteValue(env.Value, variables),
					}
				}
				outTD.Containers[k] = outC
			}
			outSvc.TaskDefinitions[j] = outTD
		}
		out.Services[i] = outSvc
	}
	return out
}

// NameVariables builds the substitution map for a resource namer: the
// canonical names consumers reference from task configuration values.
func NameVariables(namer *naming.ResourceNamer, purpose string) (map[string]string, error) {
	cluster, err := namer.Cluster(purpose)
	if err != nil {
		return nil, err
	}
	service, err := namer.Service(purpose)
	if err != nil {
		return nil, err
	}
	taskFamily, err := namer.TaskDefinition(purpose)
	if err != nil {
		return nil, err
	}
	logGroup, err := namer.LogGroup("ecs", purpose)
	if err != nil {
		return nil, err
	}
	bucket, err := namer.Bucket("app")
	if err != nil {
		return nil, err
	}
	secret, err := namer.Secret(purpose)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"CLUSTER_NAME": cluster,
		"SERVICE_NAME": service,
		"TASK_FAMILY":  taskFamily,
		"LOG_GROUP":    logGroup,
		"BUCKET_NAME":  bucket,
		"SECRET_NAME":  secret,
	}, nil
}

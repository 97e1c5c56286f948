package taskdef

import (
	"context"
	"sort"
	"strings"

	"github.com/compose-spec/compose-go/v2/loader"
	"github.com/compose-spec/compose-go/v2/types"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Compose Adapter
// =============================================================================

// FromComposeYAML derives a TaskShape from a docker-compose document so
// locally-authored compose files flow through the same validation and
// naming pipeline as native task configurations. Each compose service
// becomes one service with a single task definition holding a single
// essential container.
//
// The result is validated before being returned.
func FromComposeYAML(yamlContent string) (*TaskShape, error) {
	if strings.TrimSpace(yamlContent) == "" {
		return nil, ErrEmptyInput
	}

	project, err := loadComposeProject(yamlContent)
	if err != nil {
		return nil, err
	}

	shape := &TaskShape{Services: make([]Service, 0, len(project.Services))}
	for _, svc := range project.Services {
		shape.Services = append(shape.Services, convertComposeService(svc))
	}
	// compose-go hands services back in map order; sort for determinism.
	sort.Slice(shape.Services, func(i, j int) bool {
		return shape.Services[i].Name < shape.Services[j].Name
	})

	if err := ValidateShape(shape); err != nil {
		return nil, err
	}
	return shape, nil
}

// loadComposeProject loads a compose document with compose-go.
func loadComposeProject(yamlContent string) (*types.Project, error) {
	var dict map[string]interface{}
	if err := yaml.Unmarshal([]byte(yamlContent), &dict); err != nil || dict == nil {
		return nil, NewShapeError("", "invalid compose YAML syntax", ErrInvalidJSON)
	}

	project, err := loader.LoadWithContext(context.Background(), types.ConfigDetails{
		ConfigFiles: []types.ConfigFile{
			{Content: []byte(yamlContent), Config: dict},
		},
	}, func(opts *loader.Options) {
		opts.SetProjectName("appinfra-temp", false)
		opts.SkipValidation = false
		opts.SkipInterpolation = true // placeholders are ours to resolve
		opts.SkipNormalization = true
		opts.SkipExtends = true
	})
	if err != nil {
		return nil, NewShapeError("", err.Error(), ErrInvalidJSON)
	}
	return project, nil
}

func convertComposeService(svc types.ServiceConfig) Service {
	container := Container{
		Name:      svc.Name,
		Image:     svc.Image,
		Essential: true,
	}

	for _, p := range svc.Ports {
		protocol := p.Protocol
		if protocol == "" {
			protocol = "tcp"
		}
		container.PortMappings = append(container.PortMappings, PortMapping{
			ContainerPort: int(p.Target),
			Protocol:      protocol,
		})
	}

	keys := make([]string, 0, len(svc.Environment))
	for k := range svc.Environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := svc.Environment[k]; v != nil {
			container.Environment = append(container.Environment, EnvVar{Name: k, Value: *v})
		}
	}

	return Service{
		Name: svc.Name,
		TaskDefinitions: []TaskDefinition{
			{Name: svc.Name, Containers: []Container{container}},
		},
	}
}

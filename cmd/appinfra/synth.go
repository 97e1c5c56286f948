package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thirdopinion/appinfra/internal/core/deployctx"
	"github.com/thirdopinion/appinfra/internal/core/naming"
	"github.com/thirdopinion/appinfra/internal/core/registry"
	"github.com/thirdopinion/appinfra/internal/core/resolve"
	"github.com/thirdopinion/appinfra/internal/core/taskdef"
)

// =============================================================================
// Synthesis Preview
// =============================================================================

// SynthRequest carries the identity triple and optional input files for one
// synthesis run.
type SynthRequest struct {
	Environment   string
	Application   string
	Region        string
	Purpose       string
	TaskdefPath   string
	ComposePath   string
	OverridesPath string
}

// Preview is the JSON synthesis preview handed to provisioning tooling.
type Preview struct {
	Environment  string   `json:"environment"`
	Application  string   `json:"application"`
	Region       string   `json:"region"`
	AccountType  string   `json:"accountType"`
	Siblings     []string `json:"siblingEnvironments"`
	DeploymentID string   `json:"deploymentId"`
	DeployedAt   string   `json:"deployedAt"`
	DeployedBy   string   `json:"deployedBy"`

	Names   map[string]string `json:"names"`
	Exports map[string]string `json:"exports"`
	Tags    map[string]string `json:"tags"`

	Sizing     resolve.ResourceSizing    `json:"sizing"`
	Security   resolve.SecurityPosture   `json:"security"`
	Monitoring resolve.MonitoringProfile `json:"monitoring"`

	TaskShape *taskdef.TaskShape `json:"taskShape,omitempty"`
}

// Synthesize runs the full resolution pipeline: bootstrap registries, build
// and validate the deployment context, generate names, tags and effective
// configuration, and (when a task configuration is supplied) validate it and
// substitute resolved names into it.
func Synthesize(cfg *Config, logger *slog.Logger, req SynthRequest) (*Preview, error) {
	reg := registry.NewRegistries()
	if err := registry.BootstrapDefaults(reg); err != nil {
		return nil, fmt.Errorf("registry bootstrap: %w", err)
	}
	reg.Freeze()

	conv := naming.NewConvention(reg, cfg.Naming.DNSPrefix)

	envDesc, err := reg.Environments.Lookup(req.Environment)
	if err != nil {
		return nil, err
	}

	ctx, err := deployctx.New(conv, deployctx.Params{
		Environment: deployctx.EnvironmentConfig{Name: req.Environment, Tags: envDesc.Tags},
		Application: deployctx.ApplicationConfig{Name: req.Application, Version: cfg.Deploy.Version},
		Region:      req.Region,
		DeployedBy:  cfg.Deploy.DeployedBy,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.ValidateNamingContext(); err != nil {
		return nil, err
	}

	namer, err := ctx.Namer()
	if err != nil {
		return nil, err
	}

	logger.Info("deployment context validated",
		"environment", req.Environment,
		"application", req.Application,
		"region", req.Region,
		"deployment_id", ctx.DeploymentID(),
	)

	overrides, err := loadOverrides(req.OverridesPath, req.Application)
	if err != nil {
		return nil, err
	}

	preview := &Preview{
		Environment:  req.Environment,
		Application:  req.Application,
		Region:       req.Region,
		AccountType:  string(envDesc.AccountType),
		DeploymentID: ctx.DeploymentID(),
		DeployedAt:   ctx.DeployedAt().Format("2006-01-02"),
		DeployedBy:   ctx.DeployedBy(),
	}

	if preview.Siblings, err = reg.Environments.SiblingEnvironments(req.Environment); err != nil {
		return nil, err
	}
	if preview.Tags, err = ctx.CommonTags(); err != nil {
		return nil, err
	}
	if preview.Names, err = collectNames(namer, req.Purpose); err != nil {
		return nil, err
	}
	if preview.Exports, err = collectExports(namer); err != nil {
		return nil, err
	}

	if preview.Sizing, err = resolve.Sizing(reg.Environments, req.Environment, overrides.Sizing); err != nil {
		return nil, err
	}
	if preview.Security, err = resolve.Security(reg.Environments, req.Environment, overrides.Security); err != nil {
		return nil, err
	}
	if preview.Monitoring, err = resolve.Monitoring(reg.Environments, req.Environment, overrides.Monitoring); err != nil {
		return nil, err
	}

	shape, err := loadTaskShape(req)
	if err != nil {
		return nil, err
	}
	if shape != nil {
		vars, err := taskdef.NameVariables(namer, req.Purpose)
		if err != nil {
			return nil, err
		}
		preview.TaskShape = taskdef.SubstituteShape(shape, vars)
	}

	return preview, nil
}

// collectNames generates the canonical name for every resource kind.
func collectNames(namer *naming.ResourceNamer, purpose string) (map[string]string, error) {
	calls := []struct {
		kind string
		call func() (string, error)
	}{
		{"cluster", func() (string, error) { return namer.Cluster(purpose) }},
		{"taskDefinition", func() (string, error) { return namer.TaskDefinition(purpose) }},
		{"service", func() (string, error) { return namer.Service(purpose) }},
		{"alb", func() (string, error) { return namer.ApplicationLoadBalancer(purpose) }},
		{"vpc", func() (string, error) { return namer.Vpc("") }},
		{"rds", func() (string, error) { return namer.RdsInstance(purpose) }},
		{"cache", func() (string, error) { return namer.Cache(purpose) }},
		{"bucket", func() (string, error) { return namer.Bucket("app") }},
		{"logGroup", func() (string, error) { return namer.LogGroup("ecs", purpose) }},
		{"taskRole", func() (string, error) { return namer.IamRole("task") }},
		{"executionRole", func() (string, error) { return namer.IamRole("execution") }},
		{"webSecurityGroup", func() (string, error) { return namer.SecurityGroupFor("web", purpose) }},
		{"dbSecurityGroup", func() (string, error) { return namer.SecurityGroupFor("db", purpose) }},
		{"alertsTopic", func() (string, error) { return namer.SnsTopic("alerts") }},
		{"jobsQueue", func() (string, error) { return namer.SqsQueue("jobs") }},
		{"dbSecret", func() (string, error) { return namer.Secret("db") }},
		{"configParameter", func() (string, error) { return namer.Parameter("config") }},
	}

	names := make(map[string]string, len(calls))
	for _, c := range calls {
		name, err := c.call()
		if err != nil {
			return nil, fmt.Errorf("naming %s: %w", c.kind, err)
		}
		names[c.kind] = name
	}
	return names, nil
}

// collectExports generates the cross-stack export identifiers.
func collectExports(namer *naming.ResourceNamer) (map[string]string, error) {
	exports := make(map[string]string)
	for _, role := range []string{"vpc", "cluster", "alb"} {
		name, err := namer.Export(role)
		if err != nil {
			return nil, err
		}
		exports[role] = name
	}
	return exports, nil
}

// loadOverrides reads the per-environment override tables. Without an
// explicit file, the known applications get their standard tables.
func loadOverrides(path, application string) (resolve.OverrideSet, error) {
	if path == "" {
		if application == registry.AppTrialFinderV2 {
			return resolve.DefaultTrialFinderOverrides(), nil
		}
		return resolve.OverrideSet{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return resolve.OverrideSet{}, fmt.Errorf("reading overrides: %w", err)
	}
	var set resolve.OverrideSet
	if err := yaml.Unmarshal(raw, &set); err != nil {
		return resolve.OverrideSet{}, fmt.Errorf("parsing overrides: %w", err)
	}
	return set, nil
}

// loadTaskShape reads and validates the optional task configuration, from
// JSON or derived from a compose file.
func loadTaskShape(req SynthRequest) (*taskdef.TaskShape, error) {
	switch {
	case req.TaskdefPath != "":
		raw, err := os.ReadFile(req.TaskdefPath)
		if err != nil {
			return nil, fmt.Errorf("reading task configuration: %w", err)
		}
		return taskdef.ParseTaskShape(raw)
	case req.ComposePath != "":
		raw, err := os.ReadFile(req.ComposePath)
		if err != nil {
			return nil, fmt.Errorf("reading compose file: %w", err)
		}
		return taskdef.FromComposeYAML(string(raw))
	default:
		return nil, nil
	}
}

// WritePreview renders the preview as indented JSON.
func WritePreview(w io.Writer, preview *Preview) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(preview)
}

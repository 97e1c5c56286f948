package resolve

import (
	"github.com/thirdopinion/appinfra/internal/core/registry"
)

// =============================================================================
// Resource Sizing
// =============================================================================

// ResourceSizing is the effective sizing profile for one environment.
type ResourceSizing struct {
	CPU                 int    `json:"cpu"`                 // task CPU units
	MemoryMiB           int    `json:"memoryMiB"`           // task memory
	DesiredCount        int    `json:"desiredCount"`        // steady-state task count
	MaxCount            int    `json:"maxCount"`            // autoscaling ceiling
	BackupRetentionDays int    `json:"backupRetentionDays"` // database backup retention
	InstanceClass       string `json:"instanceClass"`       // database instance class
}

// SizingOverride is an application-supplied per-environment override.
// Nil fields keep the tier default.
type SizingOverride struct {
	CPU                 *int    `yaml:"cpu"`
	MemoryMiB           *int    `yaml:"memory_mib"`
	DesiredCount        *int    `yaml:"desired_count"`
	MaxCount            *int    `yaml:"max_count"`
	BackupRetentionDays *int    `yaml:"backup_retention_days"`
	InstanceClass       *string `yaml:"instance_class"`
}

// Base tier profiles by account type.
var (
	nonProductionSizing = ResourceSizing{
		CPU:                 256,
		MemoryMiB:           512,
		DesiredCount:        1,
		MaxCount:            2,
		BackupRetentionDays: 1,
		InstanceClass:       "db.t3.micro",
	}

	productionSizing = ResourceSizing{
		CPU:                 1024,
		MemoryMiB:           2048,
		DesiredCount:        2,
		MaxCount:            6,
		BackupRetentionDays: 30,
		InstanceClass:       "db.r6g.large",
	}
)

// sizingTier selects the base profile for an account type. Unrecognized
// account types get the non-production tier, the conservative default.
func sizingTier(at registry.AccountType) ResourceSizing {
	if at == registry.AccountTypeProduction {
		return productionSizing
	}
	return nonProductionSizing
}

// Sizing resolves the effective resource sizing for an environment.
// overrides is keyed by literal environment name ("Staging", not the account
// type), so one environment in an account class can diverge from its
// siblings. An unknown environment is the only hard failure.
func Sizing(envs *registry.EnvironmentRegistry, envKey string, overrides map[string]SizingOverride) (ResourceSizing, error) {
	at, err := envs.AccountTypeOf(envKey)
	if err != nil {
		return ResourceSizing{}, err
	}

	sizing := sizingTier(at)

	if ov, ok := overrides[envKey]; ok {
		if ov.CPU != nil {
			sizing.CPU = *ov.CPU
		}
		if ov.MemoryMiB != nil {
			sizing.MemoryMiB = *ov.MemoryMiB
		}
		if ov.DesiredCount != nil {
			sizing.DesiredCount = *ov.DesiredCount
		}
		if ov.MaxCount != nil {
			sizing.MaxCount = *ov.MaxCount
		}
		if ov.BackupRetentionDays != nil {
			sizing.BackupRetentionDays = *ov.BackupRetentionDays
		}
		if ov.InstanceClass != nil {
			sizing.InstanceClass = *ov.InstanceClass
		}
	}

	return sizing, nil
}

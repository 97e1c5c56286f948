package resolve

import (
	"github.com/thirdopinion/appinfra/internal/core/registry"
)

// =============================================================================
// Security Posture
// =============================================================================

// FallbackCIDRBlock is the documented allow-list entry used when no tier
// list applies. It is deliberately a private-range block: the degraded state
// must never be "allow everything" or an empty nil list.
const FallbackCIDRBlock = "10.0.0.0/16"

// nonProductionCIDRs is the broad allow-list shared by non-production
// environments inside the private network.
var nonProductionCIDRs = []string{"10.0.0.0/8", "172.16.0.0/12"}

// SecurityPosture is the effective security profile for one environment.
type SecurityPosture struct {
	WAFEnabled         bool     `json:"wafEnabled"`
	AllowedCIDRs       []string `json:"allowedCidrs"` // never nil; empty means "no bypass" (production)
	LogRetentionDays   int      `json:"logRetentionDays"`
	DeletionProtection bool     `json:"deletionProtection"`
}

// SecurityOverride is an application-supplied per-environment override.
// Nil fields keep the tier default; a non-nil empty AllowedCIDRs slice
// explicitly clears the allow-list.
type SecurityOverride struct {
	WAFEnabled         *bool    `yaml:"waf_enabled"`
	AllowedCIDRs       []string `yaml:"allowed_cidrs"`
	LogRetentionDays   *int     `yaml:"log_retention_days"`
	DeletionProtection *bool    `yaml:"deletion_protection"`
}

// securityTier selects the base profile for an account type.
func securityTier(at registry.AccountType) SecurityPosture {
	if at == registry.AccountTypeProduction {
		return SecurityPosture{
			WAFEnabled:         true,
			AllowedCIDRs:       []string{},
			LogRetentionDays:   365,
			DeletionProtection: true,
		}
	}
	return SecurityPosture{
		WAFEnabled:         false,
		AllowedCIDRs:       append([]string(nil), nonProductionCIDRs...),
		LogRetentionDays:   30,
		DeletionProtection: false,
	}
}

// Security resolves the effective security posture for an environment.
// An unknown environment is the only hard failure; every field otherwise
// falls back to its tier default.
func Security(envs *registry.EnvironmentRegistry, envKey string, overrides map[string]SecurityOverride) (SecurityPosture, error) {
	at, err := envs.AccountTypeOf(envKey)
	if err != nil {
		return SecurityPosture{}, err
	}

	posture := securityTier(at)

	if ov, ok := overrides[envKey]; ok {
		if ov.WAFEnabled != nil {
			posture.WAFEnabled = *ov.WAFEnabled
		}
		if ov.AllowedCIDRs != nil {
			posture.AllowedCIDRs = append([]string(nil), ov.AllowedCIDRs...)
		}
		if ov.LogRetentionDays != nil {
			posture.LogRetentionDays = *ov.LogRetentionDays
		}
		if ov.DeletionProtection != nil {
			posture.DeletionProtection = *ov.DeletionProtection
		}
	}

	if posture.AllowedCIDRs == nil {
		posture.AllowedCIDRs = []string{FallbackCIDRBlock}
	}

	return posture, nil
}

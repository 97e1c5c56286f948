package resolve

import (
	"github.com/thirdopinion/appinfra/internal/core/registry"
)

// =============================================================================
// Monitoring Profile
// =============================================================================

// AlarmLevel grades how aggressively an environment pages.
type AlarmLevel string

const (
	AlarmLevelNone     AlarmLevel = "none"
	AlarmLevelWarning  AlarmLevel = "warning"
	AlarmLevelCritical AlarmLevel = "critical"
)

// MonitoringProfile is the effective monitoring configuration for one
// environment.
type MonitoringProfile struct {
	EnableEnhancedMonitoring bool       `json:"enableEnhancedMonitoring"`
	DetailedMetrics          bool       `json:"detailedMetrics"`
	AlarmLevel               AlarmLevel `json:"alarmLevel"`
	DashboardEnabled         bool       `json:"dashboardEnabled"`
}

// MonitoringOverride is an application-supplied per-environment override.
// Nil fields keep the tier default.
type MonitoringOverride struct {
	EnableEnhancedMonitoring *bool       `yaml:"enhanced_monitoring"`
	DetailedMetrics          *bool       `yaml:"detailed_metrics"`
	AlarmLevel               *AlarmLevel `yaml:"alarm_level"`
	DashboardEnabled         *bool       `yaml:"dashboard_enabled"`
}

// monitoringTier selects the base profile for an account type.
func monitoringTier(at registry.AccountType) MonitoringProfile {
	if at == registry.AccountTypeProduction {
		return MonitoringProfile{
			EnableEnhancedMonitoring: true,
			DetailedMetrics:          true,
			AlarmLevel:               AlarmLevelCritical,
			DashboardEnabled:         true,
		}
	}
	return MonitoringProfile{
		EnableEnhancedMonitoring: false,
		DetailedMetrics:          false,
		AlarmLevel:               AlarmLevelWarning,
		DashboardEnabled:         false,
	}
}

// Monitoring resolves the effective monitoring profile for an environment.
// Overrides are keyed by literal environment name, so e.g. "Staging" can run
// production-class monitoring while other environments in the same account
// keep the tier default. An unknown environment is the only hard failure.
func Monitoring(envs *registry.EnvironmentRegistry, envKey string, overrides map[string]MonitoringOverride) (MonitoringProfile, error) {
	at, err := envs.AccountTypeOf(envKey)
	if err != nil {
		return MonitoringProfile{}, err
	}

	profile := monitoringTier(at)

	if ov, ok := overrides[envKey]; ok {
		if ov.EnableEnhancedMonitoring != nil {
			profile.EnableEnhancedMonitoring = *ov.EnableEnhancedMonitoring
		}
		if ov.DetailedMetrics != nil {
			profile.DetailedMetrics = *ov.DetailedMetrics
		}
		if ov.AlarmLevel != nil {
			profile.AlarmLevel = *ov.AlarmLevel
		}
		if ov.DashboardEnabled != nil {
			profile.DashboardEnabled = *ov.DashboardEnabled
		}
	}

	return profile, nil
}

package resolve

// =============================================================================
// Application Override Set
// =============================================================================

// OverrideSet bundles an application's per-environment override tables for
// all three resolvers. Each table is keyed by literal environment name.
// The zero value means "tier defaults everywhere".
type OverrideSet struct {
	Sizing     map[string]SizingOverride     `yaml:"sizing"`
	Security   map[string]SecurityOverride   `yaml:"security"`
	Monitoring map[string]MonitoringOverride `yaml:"monitoring"`
}

func intPtr(v int) *int                      { return &v }
func boolPtr(v bool) *bool                   { return &v }
func stringPtr(v string) *string             { return &v }
func alarmLevelPtr(v AlarmLevel) *AlarmLevel { return &v }

// DefaultTrialFinderOverrides is the standard override set for the
// TrialFinderV2 application: Staging runs with short backup retention and a
// warning-only alarm level even though it lives in the production account.
func DefaultTrialFinderOverrides() OverrideSet {
	return OverrideSet{
		Sizing: map[string]SizingOverride{
			"Staging": {
				BackupRetentionDays: intPtr(7),
				DesiredCount:        intPtr(1),
				InstanceClass:       stringPtr("db.t3.medium"),
			},
		},
		Security: map[string]SecurityOverride{
			"Staging": {
				DeletionProtection: boolPtr(false),
			},
		},
		Monitoring: map[string]MonitoringOverride{
			"Staging": {
				AlarmLevel:       alarmLevelPtr(AlarmLevelWarning),
				DashboardEnabled: boolPtr(false),
			},
		},
	}
}

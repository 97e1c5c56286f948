package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Naming: NamingConfig{DNSPrefix: "thirdopinion.io"},
		Deploy: DeployConfig{Version: "1.4.2"},
		Log:    LogConfig{Level: "error", Format: "text"},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// =============================================================================
// Synthesize Tests
// =============================================================================

func TestSynthesize_Development(t *testing.T) {
	preview, err := Synthesize(testConfig(), discardLogger(), SynthRequest{
		Environment: "Development",
		Application: "TrialFinderV2",
		Region:      "us-east-1",
		Purpose:     "main",
	})
	require.NoError(t, err)

	assert.Equal(t, "NonProduction", preview.AccountType)
	assert.ElementsMatch(t, []string{"Development", "QA", "Integration"}, preview.Siblings)
	assert.Regexp(t, regexp.MustCompile(`^[a-f0-9]{8}$`), preview.DeploymentID)
	assert.Equal(t, "CDK", preview.DeployedBy)

	assert.Equal(t, "dev-tfv2-ecs-ue1-main", preview.Names["cluster"])
	assert.Equal(t, "thirdopinion.io-dev-tfv2-app-ue1", preview.Names["bucket"])
	assert.Equal(t, "dev-vpc-id", preview.Exports["vpc"])

	assert.Equal(t, "Development", preview.Tags["Environment"])
	assert.Equal(t, "1.4.2", preview.Tags["Version"])

	assert.Equal(t, 1, preview.Sizing.BackupRetentionDays)
	assert.False(t, preview.Monitoring.EnableEnhancedMonitoring)
	assert.False(t, preview.Security.WAFEnabled)
}

func TestSynthesize_StagingUsesDefaultOverrides(t *testing.T) {
	preview, err := Synthesize(testConfig(), discardLogger(), SynthRequest{
		Environment: "Staging",
		Application: "TrialFinderV2",
		Region:      "us-west-2",
		Purpose:     "main",
	})
	require.NoError(t, err)

	assert.Equal(t, "Production", preview.AccountType)
	assert.Equal(t, 7, preview.Sizing.BackupRetentionDays)
	assert.True(t, preview.Monitoring.EnableEnhancedMonitoring)
	assert.True(t, preview.Security.WAFEnabled)
}

func TestSynthesize_UnknownEnvironment(t *testing.T) {
	_, err := Synthesize(testConfig(), discardLogger(), SynthRequest{
		Environment: "Sandbox",
		Application: "TrialFinderV2",
		Region:      "us-east-1",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sandbox")
}

func TestSynthesize_WithTaskdef(t *testing.T) {
	taskdefJSON := `{
		"services": [
			{
				"name": "web",
				"taskDefinitions": [
					{
						"name": "web-task",
						"containerDefinitions": [
							{
								"name": "app",
								"image": "trialfinder:1.4.2",
								"essential": true,
								"portMappings": [{"containerPort": 8080, "protocol": "tcp"}],
								"environment": [{"name": "CLUSTER", "value": "${CLUSTER_NAME}"}]
							}
						]
					}
				]
			}
		]
	}`
	path := filepath.Join(t.TempDir(), "taskdef.json")
	require.NoError(t, os.WriteFile(path, []byte(taskdefJSON), 0644))

	preview, err := Synthesize(testConfig(), discardLogger(), SynthRequest{
		Environment: "Development",
		Application: "TrialFinderV2",
		Region:      "us-east-1",
		Purpose:     "main",
		TaskdefPath: path,
	})
	require.NoError(t, err)

	require.NotNil(t, preview.TaskShape)
	env := preview.TaskShape.Services[0].TaskDefinitions[0].Containers[0].Environment
	assert.Equal(t, "dev-tfv2-ecs-ue1-main", env[0].Value)
}

func TestSynthesize_InvalidTaskdef(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskdef.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"services": []}`), 0644))

	_, err := Synthesize(testConfig(), discardLogger(), SynthRequest{
		Environment: "Development",
		Application: "TrialFinderV2",
		Region:      "us-east-1",
		TaskdefPath: path,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "At least one Service configuration is required")
}

func TestSynthesize_OverridesFromFile(t *testing.T) {
	overridesYAML := `
sizing:
  Development:
    backup_retention_days: 5
`
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overridesYAML), 0644))

	preview, err := Synthesize(testConfig(), discardLogger(), SynthRequest{
		Environment:   "Development",
		Application:   "TrialFinderV2",
		Region:        "us-east-1",
		OverridesPath: path,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, preview.Sizing.BackupRetentionDays)
}

// =============================================================================
// Preview Output Tests
// =============================================================================

func TestWritePreview_ValidJSON(t *testing.T) {
	preview, err := Synthesize(testConfig(), discardLogger(), SynthRequest{
		Environment: "QA",
		Application: "TrialFinderV2",
		Region:      "us-east-1",
		Purpose:     "main",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, preview))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "QA", decoded["environment"])

	names, ok := decoded["names"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "thirdopinion.io-qa-tfv2-app-ue1", names["bucket"])
}

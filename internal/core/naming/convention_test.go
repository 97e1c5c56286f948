package naming

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirdopinion/appinfra/internal/core/registry"
)

func newConvention(t *testing.T) *Convention {
	t.Helper()
	reg := registry.NewRegistries()
	require.NoError(t, registry.BootstrapDefaults(reg))
	reg.Freeze()
	return NewConvention(reg, "thirdopinion.io")
}

func devTriple() Triple {
	return Triple{
		Environment: registry.EnvDevelopment,
		Application: registry.AppTrialFinderV2,
		Region:      "us-east-1",
	}
}

// =============================================================================
// ResourceName Tests
// =============================================================================

func TestResourceName_Development(t *testing.T) {
	conv := newConvention(t)

	name, err := conv.ResourceName(devTriple(), "ecs", "main")
	require.NoError(t, err)
	assert.Equal(t, "dev-tfv2-ecs-ue1-main", name)
}

func TestResourceName_Production(t *testing.T) {
	conv := newConvention(t)

	triple := Triple{
		Environment: registry.EnvProduction,
		Application: registry.AppTrialFinderV2,
		Region:      "us-west-2",
	}
	name, err := conv.ResourceName(triple, "ecs", "main")
	require.NoError(t, err)
	assert.Equal(t, "prod-tfv2-ecs-uw2-main", name)
}

func TestResourceName_Deterministic(t *testing.T) {
	conv := newConvention(t)

	first, err := conv.ResourceName(devTriple(), "rds", "api")
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := conv.ResourceName(devTriple(), "rds", "api")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestResourceName_UnknownEnvironment(t *testing.T) {
	conv := newConvention(t)

	triple := devTriple()
	triple.Environment = "Sandbox"
	_, err := conv.ResourceName(triple, "ecs", "main")

	require.Error(t, err)
	assert.ErrorIs(t, err, registry.ErrUnknownKey)
	assert.Contains(t, err.Error(), "Sandbox")
}

func TestResourceName_UnknownRegion(t *testing.T) {
	conv := newConvention(t)

	triple := devTriple()
	triple.Region = "ap-northeast-3"
	_, err := conv.ResourceName(triple, "ecs", "main")
	assert.ErrorIs(t, err, registry.ErrUnknownKey)
}

func TestResourceName_BadToken(t *testing.T) {
	conv := newConvention(t)

	_, err := conv.ResourceName(devTriple(), "ECS", "main")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = conv.ResourceName(devTriple(), "ecs", "Main Purpose")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResourceName_EmptyToken(t *testing.T) {
	conv := newConvention(t)

	_, err := conv.ResourceName(devTriple(), "", "main")
	assert.ErrorIs(t, err, ErrMissingField)
}

// =============================================================================
// BucketName Tests
// =============================================================================

func TestBucketName_QA(t *testing.T) {
	conv := newConvention(t)

	triple := Triple{
		Environment: registry.EnvQA,
		Application: registry.AppTrialFinderV2,
		Region:      "us-east-1",
	}
	name, err := conv.BucketName(triple, "app")
	require.NoError(t, err)
	assert.Equal(t, "thirdopinion.io-qa-tfv2-app-ue1", name)
}

func TestBucketName_Charset(t *testing.T) {
	conv := newConvention(t)

	name, err := conv.BucketName(devTriple(), "logs")
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(name), name)
	assert.LessOrEqual(t, len(name), 63)
}

func TestBucketName_TooLong(t *testing.T) {
	conv := newConvention(t)

	_, err := conv.BucketName(devTriple(), strings.Repeat("x", 64))
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestBucketName_MissingDNSPrefix(t *testing.T) {
	reg := registry.NewRegistries()
	require.NoError(t, registry.BootstrapDefaults(reg))
	reg.Freeze()
	conv := NewConvention(reg, "")

	_, err := conv.BucketName(devTriple(), "app")
	assert.ErrorIs(t, err, ErrMissingField)
}

// =============================================================================
// SecurityGroupName / LogGroupName / VpcName Tests
// =============================================================================

func TestSecurityGroupName(t *testing.T) {
	conv := newConvention(t)

	name, err := conv.SecurityGroupName(devTriple(), "web", "main")
	require.NoError(t, err)
	assert.Equal(t, "dev-tfv2-sg-web-main-ue1", name)
}

func TestLogGroupName(t *testing.T) {
	conv := newConvention(t)

	name, err := conv.LogGroupName(devTriple(), "ecs", "main")
	require.NoError(t, err)
	assert.Equal(t, "/aws/ecs/dev-tfv2-main", name)
}

func TestVpcName_DefaultPurpose(t *testing.T) {
	conv := newConvention(t)

	name, err := conv.VpcName(devTriple(), "")
	require.NoError(t, err)
	assert.Equal(t, "dev-tfv2-vpc-ue1-main", name)
}

func TestVpcName_ExplicitPurpose(t *testing.T) {
	conv := newConvention(t)

	name, err := conv.VpcName(devTriple(), "edge")
	require.NoError(t, err)
	assert.Equal(t, "dev-tfv2-vpc-ue1-edge", name)
}

// =============================================================================
// ExportName Tests
// =============================================================================

func TestExportName(t *testing.T) {
	conv := newConvention(t)

	name, err := conv.ExportName(registry.EnvDevelopment, "vpc")
	require.NoError(t, err)
	assert.Equal(t, "dev-vpc-id", name)
}

func TestExportName_UnknownEnvironment(t *testing.T) {
	conv := newConvention(t)

	_, err := conv.ExportName("Sandbox", "vpc")
	assert.ErrorIs(t, err, registry.ErrUnknownKey)
}

// =============================================================================
// Validate Tests
// =============================================================================

func TestValidate_OK(t *testing.T) {
	conv := newConvention(t)
	assert.NoError(t, conv.Validate(devTriple()))
}

func TestValidate_EnvironmentFirst(t *testing.T) {
	conv := newConvention(t)

	// Both environment and application are bad; the environment layer must
	// report first.
	triple := Triple{Environment: "Nope", Application: "AlsoNope", Region: "nowhere"}
	err := conv.Validate(triple)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, LayerEnvironment, vErr.Layer)
	assert.ErrorIs(t, err, registry.ErrUnknownKey)
}

func TestValidate_ApplicationLayer(t *testing.T) {
	conv := newConvention(t)

	triple := devTriple()
	triple.Application = "Mystery"
	err := conv.Validate(triple)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, LayerApplication, vErr.Layer)
	assert.Contains(t, err.Error(), "Mystery")
}

func TestValidate_RegionLayer(t *testing.T) {
	conv := newConvention(t)

	triple := devTriple()
	triple.Region = "mars-north-1"
	err := conv.Validate(triple)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, LayerRegion, vErr.Layer)
}

func TestValidate_MissingRegionIsMissingField(t *testing.T) {
	conv := newConvention(t)

	triple := devTriple()
	triple.Region = ""
	err := conv.Validate(triple)

	// An absent field is a distinct failure from a failed lookup.
	assert.ErrorIs(t, err, ErrMissingField)
	assert.NotErrorIs(t, err, registry.ErrUnknownKey)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, LayerRegion, vErr.Layer)
}

func TestValidate_MissingEnvironment(t *testing.T) {
	conv := newConvention(t)

	triple := devTriple()
	triple.Environment = ""
	err := conv.Validate(triple)

	assert.ErrorIs(t, err, ErrMissingField)
	var mErr *MissingFieldError
	require.True(t, errors.As(err, &mErr))
	assert.Equal(t, "environment", mErr.Field)
}

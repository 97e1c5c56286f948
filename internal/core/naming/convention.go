package naming

import (
	"fmt"
	"regexp"

	"github.com/thirdopinion/appinfra/internal/core/registry"
)

// =============================================================================
// Identity Triple
// =============================================================================

// Triple is the minimal input to every name-generation call.
type Triple struct {
	Environment string // registry key, e.g. "Development"
	Application string // registry key, e.g. "TrialFinderV2"
	Region      string // AWS region, e.g. "us-east-1"
}

// =============================================================================
// Constraints
// =============================================================================

// Provider length limits enforced on generated names.
const (
	maxBucketNameLength = 63
	maxExportNameLength = 255
)

// tokenPattern is the charset for caller-supplied name components
// (resource types, purposes, roles): lowercase alphanumeric with interior
// hyphens.
var tokenPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// =============================================================================
// Convention
// =============================================================================

// Convention generates canonical resource names from an identity triple.
// It holds only read-only collaborators and is safe for concurrent use.
type Convention struct {
	reg       *registry.Registries
	dnsPrefix string // globally unique prefix for bucket names
}

// NewConvention creates a naming convention over frozen registries.
// dnsPrefix is the globally unique DNS prefix used in bucket names
// (e.g. "thirdopinion.io").
func NewConvention(reg *registry.Registries, dnsPrefix string) *Convention {
	return &Convention{reg: reg, dnsPrefix: dnsPrefix}
}

// resolve looks up all three identity components, failing on the first
// component that is absent from its registry.
func (c *Convention) resolve(triple Triple) (envPrefix, appCode, regionCode string, err error) {
	env, err := c.reg.Environments.Lookup(triple.Environment)
	if err != nil {
		return "", "", "", err
	}
	app, err := c.reg.Applications.Lookup(triple.Application)
	if err != nil {
		return "", "", "", err
	}
	region, err := c.reg.Regions.Lookup(triple.Region)
	if err != nil {
		return "", "", "", err
	}
	return env.Prefix, app.Code, region.Code, nil
}

func checkToken(field, token string) error {
	if token == "" {
		return &MissingFieldError{Field: field}
	}
	if !tokenPattern.MatchString(token) {
		return fmt.Errorf("%w: %s %q must be lowercase alphanumeric with hyphens",
			ErrInvalidToken, field, token)
	}
	return nil
}

// ResourceName generates the canonical name for a resource kind.
// Pattern: {envPrefix}-{appCode}-{resourceType}-{regionCode}-{purpose}
//
// Example:
//
//	ResourceName(triple, "ecs", "main") // "dev-tfv2-ecs-ue1-main"
func (c *Convention) ResourceName(triple Triple, resourceType, purpose string) (string, error) {
	if err := checkToken("resource type", resourceType); err != nil {
		return "", err
	}
	if err := checkToken("purpose", purpose); err != nil {
		return "", err
	}
	envPrefix, appCode, regionCode, err := c.resolve(triple)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s-%s-%s", envPrefix, appCode, resourceType, regionCode, purpose), nil
}

// BucketName generates a globally unique S3 bucket name.
// Pattern: {dnsPrefix}-{envPrefix}-{appCode}-{purpose}-{regionCode}
//
// Example:
//
//	BucketName(triple, "app") // "thirdopinion.io-qa-tfv2-app-ue1"
func (c *Convention) BucketName(triple Triple, purpose string) (string, error) {
	if c.dnsPrefix == "" {
		return "", &MissingFieldError{Field: "dns prefix"}
	}
	if err := checkToken("purpose", purpose); err != nil {
		return "", err
	}
	envPrefix, appCode, regionCode, err := c.resolve(triple)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%s-%s-%s-%s", c.dnsPrefix, envPrefix, appCode, purpose, regionCode)
	if len(name) > maxBucketNameLength {
		return "", fmt.Errorf("%w: bucket name %q is %d chars (max %d)",
			ErrNameTooLong, name, len(name), maxBucketNameLength)
	}
	return name, nil
}

// SecurityGroupName generates a security group name for a network role.
// Pattern: {envPrefix}-{appCode}-sg-{role}-{purpose}-{regionCode}
func (c *Convention) SecurityGroupName(triple Triple, role, purpose string) (string, error) {
	if err := checkToken("role", role); err != nil {
		return "", err
	}
	if err := checkToken("purpose", purpose); err != nil {
		return "", err
	}
	envPrefix, appCode, regionCode, err := c.resolve(triple)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-sg-%s-%s-%s", envPrefix, appCode, role, purpose, regionCode), nil
}

// LogGroupName generates a CloudWatch log group name.
// Pattern: /aws/{service}/{envPrefix}-{appCode}-{purpose}
func (c *Convention) LogGroupName(triple Triple, service, purpose string) (string, error) {
	if err := checkToken("service", service); err != nil {
		return "", err
	}
	if err := checkToken("purpose", purpose); err != nil {
		return "", err
	}
	envPrefix, appCode, _, err := c.resolve(triple)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/aws/%s/%s-%s-%s", service, envPrefix, appCode, purpose), nil
}

// VpcName generates the VPC name. An empty purpose defaults to "main".
// Pattern: {envPrefix}-{appCode}-vpc-{regionCode}-{purpose}
func (c *Convention) VpcName(triple Triple, purpose string) (string, error) {
	if purpose == "" {
		purpose = "main"
	}
	if err := checkToken("purpose", purpose); err != nil {
		return "", err
	}
	envPrefix, appCode, regionCode, err := c.resolve(triple)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-vpc-%s-%s", envPrefix, appCode, regionCode, purpose), nil
}

// ExportName generates a cross-stack export identifier.
// Pattern: {envPrefix}-{role}-id (alphanumeric and hyphen only)
func (c *Convention) ExportName(environment, role string) (string, error) {
	if err := checkToken("role", role); err != nil {
		return "", err
	}
	env, err := c.reg.Environments.Lookup(environment)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%s-id", env.Prefix, role)
	if len(name) > maxExportNameLength {
		return "", fmt.Errorf("%w: export name %q is %d chars (max %d)",
			ErrNameTooLong, name, len(name), maxExportNameLength)
	}
	return name, nil
}

// Validate checks the identity triple in a fixed order: environment first,
// then application, then region. The first failing layer is wrapped into a
// ValidationError that names the layer and preserves the root cause.
//
// An empty field fails with a MissingFieldError before any registry lookup;
// a non-empty field absent from its registry fails with the registry's
// UnknownKeyError.
func (c *Convention) Validate(triple Triple) error {
	if triple.Environment == "" {
		return &ValidationError{Layer: LayerEnvironment, Cause: &MissingFieldError{Field: "environment"}}
	}
	if _, err := c.reg.Environments.Lookup(triple.Environment); err != nil {
		return &ValidationError{Layer: LayerEnvironment, Cause: err}
	}

	if triple.Application == "" {
		return &ValidationError{Layer: LayerApplication, Cause: &MissingFieldError{Field: "application"}}
	}
	if _, err := c.reg.Applications.Lookup(triple.Application); err != nil {
		return &ValidationError{Layer: LayerApplication, Cause: err}
	}

	if triple.Region == "" {
		return &ValidationError{Layer: LayerRegion, Cause: &MissingFieldError{Field: "region"}}
	}
	if _, err := c.reg.Regions.Lookup(triple.Region); err != nil {
		return &ValidationError{Layer: LayerRegion, Cause: err}
	}

	return nil
}

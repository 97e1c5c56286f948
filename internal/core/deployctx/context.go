package deployctx

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/thirdopinion/appinfra/internal/core/naming"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrNilConvention is returned when a context is constructed without a
	// naming convention.
	ErrNilConvention = errors.New("deployment context requires a naming convention")

	// ErrNilTagMap is returned by CommonTags when the environment tag map is
	// absent. A nil tag container is a construction defect, not an absence
	// of tags.
	ErrNilTagMap = errors.New("environment tag map is nil")
)

// NamingContextError wraps any identity validation failure so callers can
// catch one error type regardless of which layer failed.
type NamingContextError struct {
	Cause error
}

func (e *NamingContextError) Error() string {
	return fmt.Sprintf("naming context validation failed: %v", e.Cause)
}

func (e *NamingContextError) Unwrap() error {
	return e.Cause
}

// =============================================================================
// Config Types
// =============================================================================

// EnvironmentConfig carries the environment identity and its custom tags.
type EnvironmentConfig struct {
	Name string            // environment registry key, e.g. "Development"
	Tags map[string]string // environment-supplied tags; must be non-nil
}

// ApplicationConfig carries the application identity and version.
type ApplicationConfig struct {
	Name    string // application registry key, e.g. "TrialFinderV2"
	Version string // released application version, e.g. "1.4.2"
}

// Params are the construction inputs for a deployment context.
type Params struct {
	Environment EnvironmentConfig
	Application ApplicationConfig
	Region      string // AWS region, e.g. "us-east-1"
	DeployedBy  string // actor; defaults to "CDK" when empty
}

// DefaultDeployedBy is the actor recorded when none is supplied.
const DefaultDeployedBy = "CDK"

// System tag keys attached to every provisioned resource. On collision with
// an environment tag, the system value always wins.
const (
	TagEnvironment  = "Environment"
	TagApplication  = "Application"
	TagVersion      = "Version"
	TagDeploymentID = "DeploymentId"
	TagDeployedBy   = "DeployedBy"
	TagDeployedAt   = "DeployedAt"
)

// =============================================================================
// Deployment Context
// =============================================================================

// DeploymentContext binds one environment, application and region together
// with deployment metadata. Identity fields are fixed at construction.
type DeploymentContext struct {
	env EnvironmentConfig
	app ApplicationConfig

	region       string
	deploymentID string
	deployedAt   time.Time
	deployedBy   string

	conv *naming.Convention

	namerOnce sync.Once
	namer     *naming.ResourceNamer
	namerErr  error
}

// New creates a deployment context. The deployment id is derived once, here,
// as the first 8 hex characters of a fresh random 128-bit identifier; the
// deployment timestamp is UTC now, captured once.
func New(conv *naming.Convention, p Params) (*DeploymentContext, error) {
	if conv == nil {
		return nil, ErrNilConvention
	}

	deployedBy := p.DeployedBy
	if deployedBy == "" {
		deployedBy = DefaultDeployedBy
	}

	return &DeploymentContext{
		env:          p.Environment,
		app:          p.Application,
		region:       p.Region,
		deploymentID: newDeploymentID(),
		deployedAt:   time.Now().UTC(),
		deployedBy:   deployedBy,
		conv:         conv,
	}, nil
}

// newDeploymentID returns the first 8 hex characters of a random UUID.
// Result always matches ^[a-f0-9]{8}$.
func newDeploymentID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])[:8]
}

// Triple returns the identity triple the context is bound to.
func (c *DeploymentContext) Triple() naming.Triple {
	return naming.Triple{
		Environment: c.env.Name,
		Application: c.app.Name,
		Region:      c.region,
	}
}

// Environment returns the environment config.
func (c *DeploymentContext) Environment() EnvironmentConfig { return c.env }

// Application returns the application config.
func (c *DeploymentContext) Application() ApplicationConfig { return c.app }

// Region returns the bound AWS region.
func (c *DeploymentContext) Region() string { return c.region }

// DeploymentID returns the per-deploy identifier fixed at construction.
func (c *DeploymentContext) DeploymentID() string { return c.deploymentID }

// DeployedAt returns the UTC construction timestamp.
func (c *DeploymentContext) DeployedAt() time.Time { return c.deployedAt }

// DeployedBy returns the recorded actor.
func (c *DeploymentContext) DeployedBy() string { return c.deployedBy }

// CommonTags builds the tag map attached to every provisioned resource: the
// environment's custom tags merged with the six system tags. System values
// win on key collision so infrastructure identity tags cannot be spoofed by
// an environment-level override.
func (c *DeploymentContext) CommonTags() (map[string]string, error) {
	if c.env.Tags == nil {
		return nil, fmt.Errorf("%w: environment %q", ErrNilTagMap, c.env.Name)
	}

	tags := make(map[string]string, len(c.env.Tags)+6)
	for k, v := range c.env.Tags {
		tags[k] = v
	}

	// System tags last: they overwrite any colliding environment tag.
	tags[TagEnvironment] = c.env.Name
	tags[TagApplication] = c.app.Name
	tags[TagVersion] = c.app.Version
	tags[TagDeploymentID] = c.deploymentID
	tags[TagDeployedBy] = c.deployedBy
	tags[TagDeployedAt] = c.deployedAt.Format("2006-01-02")

	return tags, nil
}

// Namer returns the context's resource namer, constructing it exactly once.
// Concurrent first callers all observe the same instance (or the same
// construction error).
func (c *DeploymentContext) Namer() (*naming.ResourceNamer, error) {
	c.namerOnce.Do(func() {
		c.namer, c.namerErr = naming.NewResourceNamer(c.conv, c.Triple())
	})
	return c.namer, c.namerErr
}

// ValidateNamingContext validates the identity triple, wrapping any failure
// into a NamingContextError that preserves the original cause.
func (c *DeploymentContext) ValidateNamingContext() error {
	if err := c.conv.Validate(c.Triple()); err != nil {
		return &NamingContextError{Cause: err}
	}
	return nil
}

// =============================================================================
// Test Seams
// =============================================================================

// SetDeploymentID overrides the generated deployment id. Intended for tests
// that need reproducible ids; production code never calls it.
func (c *DeploymentContext) SetDeploymentID(id string) {
	c.deploymentID = id
}

// SetDeployedAt overrides the construction timestamp. Intended for tests.
func (c *DeploymentContext) SetDeployedAt(at time.Time) {
	c.deployedAt = at.UTC()
}

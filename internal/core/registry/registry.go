package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// =============================================================================
// Account Classification
// =============================================================================

// AccountType classifies an environment into the cloud account that hosts it.
// Environments sharing an AccountType share one account and therefore one set
// of account-scoped resources.
type AccountType string

const (
	AccountTypeProduction    AccountType = "Production"
	AccountTypeNonProduction AccountType = "NonProduction"
)

// =============================================================================
// Descriptors
// =============================================================================

// EnvironmentDescriptor describes one deployment environment.
type EnvironmentDescriptor struct {
	Key         string            // registry key, e.g. "Development"
	Prefix      string            // short name prefix, e.g. "dev"; lowercase, stable
	AccountType AccountType       // which account class hosts this environment
	Tags        map[string]string // free-form environment tags
}

// ApplicationDescriptor describes one deployable application.
type ApplicationDescriptor struct {
	Key  string // registry key, e.g. "TrialFinderV2"
	Code string // short code used in generated names, e.g. "tfv2"
}

// RegionDescriptor maps an AWS region to its short code.
type RegionDescriptor struct {
	Region string // AWS region string, e.g. "us-east-2"
	Code   string // short code used in generated names, e.g. "ue2"
}

// PurposeDescriptor describes a well-known purpose token.
type PurposeDescriptor struct {
	Key         string // registry key, e.g. "Main"
	Code        string // suffix token used in generated names, e.g. "main"
	Description string
}

// =============================================================================
// Environment Registry
// =============================================================================

// EnvironmentRegistry is the append-only table of deployment environments.
type EnvironmentRegistry struct {
	mu     sync.RWMutex
	frozen bool
	byKey  map[string]EnvironmentDescriptor
}

// NewEnvironmentRegistry creates an empty environment registry.
func NewEnvironmentRegistry() *EnvironmentRegistry {
	return &EnvironmentRegistry{byKey: make(map[string]EnvironmentDescriptor)}
}

// Register inserts a new environment. The prefix must be non-empty and
// lowercase; the key must not already be present.
func (r *EnvironmentRegistry) Register(desc EnvironmentDescriptor) error {
	if desc.Key == "" {
		return fmt.Errorf("%w: environment key is empty", ErrInvalidDescriptor)
	}
	if desc.Prefix == "" || desc.Prefix != strings.ToLower(desc.Prefix) {
		return fmt.Errorf("%w: environment %q prefix %q must be non-empty lowercase",
			ErrInvalidDescriptor, desc.Key, desc.Prefix)
	}
	if desc.AccountType != AccountTypeProduction && desc.AccountType != AccountTypeNonProduction {
		return fmt.Errorf("%w: environment %q has account type %q",
			ErrInvalidDescriptor, desc.Key, desc.AccountType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: cannot register environment %q", ErrFrozen, desc.Key)
	}
	if _, exists := r.byKey[desc.Key]; exists {
		return &DuplicateKeyError{Registry: "environment", Key: desc.Key}
	}
	if desc.Tags == nil {
		desc.Tags = make(map[string]string)
	}
	r.byKey[desc.Key] = desc
	return nil
}

// Lookup resolves an environment by key.
func (r *EnvironmentRegistry) Lookup(key string) (EnvironmentDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.byKey[key]
	if !ok {
		return EnvironmentDescriptor{}, &UnknownKeyError{Registry: "environment", Key: key}
	}
	return desc, nil
}

// AccountTypeOf derives the account classification of a registered environment.
func (r *EnvironmentRegistry) AccountTypeOf(key string) (AccountType, error) {
	desc, err := r.Lookup(key)
	if err != nil {
		return "", err
	}
	return desc.AccountType, nil
}

// SiblingEnvironments returns all registered environment keys (including the
// given one) that share the environment's account type, sorted for
// deterministic output.
func (r *EnvironmentRegistry) SiblingEnvironments(key string) ([]string, error) {
	desc, err := r.Lookup(key)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	var siblings []string
	for k, d := range r.byKey {
		if d.AccountType == desc.AccountType {
			siblings = append(siblings, k)
		}
	}
	sort.Strings(siblings)
	return siblings, nil
}

// Keys returns all registered environment keys, sorted.
func (r *EnvironmentRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *EnvironmentRegistry) freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// =============================================================================
// Application Registry
// =============================================================================

// ApplicationRegistry is the append-only table of applications.
type ApplicationRegistry struct {
	mu     sync.RWMutex
	frozen bool
	byKey  map[string]ApplicationDescriptor
	byCode map[string]string // code -> key, collision guard for generated names
}

// NewApplicationRegistry creates an empty application registry.
func NewApplicationRegistry() *ApplicationRegistry {
	return &ApplicationRegistry{
		byKey:  make(map[string]ApplicationDescriptor),
		byCode: make(map[string]string),
	}
}

// Register inserts a new application. Both the key and the short code must be
// unique: two applications sharing a code would collide in generated names.
func (r *ApplicationRegistry) Register(desc ApplicationDescriptor) error {
	if desc.Key == "" {
		return fmt.Errorf("%w: application key is empty", ErrInvalidDescriptor)
	}
	if desc.Code == "" || desc.Code != strings.ToLower(desc.Code) {
		return fmt.Errorf("%w: application %q code %q must be non-empty lowercase",
			ErrInvalidDescriptor, desc.Key, desc.Code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: cannot register application %q", ErrFrozen, desc.Key)
	}
	if _, exists := r.byKey[desc.Key]; exists {
		return &DuplicateKeyError{Registry: "application", Key: desc.Key}
	}
	if other, exists := r.byCode[desc.Code]; exists {
		return fmt.Errorf("%w: application code %q already used by %q",
			ErrDuplicateKey, desc.Code, other)
	}
	r.byKey[desc.Key] = desc
	r.byCode[desc.Code] = desc.Key
	return nil
}

// Lookup resolves an application by key.
func (r *ApplicationRegistry) Lookup(key string) (ApplicationDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.byKey[key]
	if !ok {
		return ApplicationDescriptor{}, &UnknownKeyError{Registry: "application", Key: key}
	}
	return desc, nil
}

func (r *ApplicationRegistry) freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// =============================================================================
// Region Registry
// =============================================================================

// RegionRegistry is the append-only, bijective table of region short codes.
type RegionRegistry struct {
	mu       sync.RWMutex
	frozen   bool
	byRegion map[string]RegionDescriptor
	byCode   map[string]string // code -> region, enforces bijection
}

// NewRegionRegistry creates an empty region registry.
func NewRegionRegistry() *RegionRegistry {
	return &RegionRegistry{
		byRegion: make(map[string]RegionDescriptor),
		byCode:   make(map[string]string),
	}
}

// Register inserts a new region mapping. Both directions must be unique so
// the mapping stays bijective.
func (r *RegionRegistry) Register(desc RegionDescriptor) error {
	if desc.Region == "" {
		return fmt.Errorf("%w: region is empty", ErrInvalidDescriptor)
	}
	if desc.Code == "" || desc.Code != strings.ToLower(desc.Code) {
		return fmt.Errorf("%w: region %q code %q must be non-empty lowercase",
			ErrInvalidDescriptor, desc.Region, desc.Code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: cannot register region %q", ErrFrozen, desc.Region)
	}
	if _, exists := r.byRegion[desc.Region]; exists {
		return &DuplicateKeyError{Registry: "region", Key: desc.Region}
	}
	if other, exists := r.byCode[desc.Code]; exists {
		return fmt.Errorf("%w: region code %q already used by %q",
			ErrDuplicateKey, desc.Code, other)
	}
	r.byRegion[desc.Region] = desc
	r.byCode[desc.Code] = desc.Region
	return nil
}

// Lookup resolves a region by its AWS region string.
func (r *RegionRegistry) Lookup(region string) (RegionDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.byRegion[region]
	if !ok {
		return RegionDescriptor{}, &UnknownKeyError{Registry: "region", Key: region}
	}
	return desc, nil
}

func (r *RegionRegistry) freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// =============================================================================
// Purpose Registry
// =============================================================================

// PurposeRegistry is the append-only table of well-known purpose tokens.
type PurposeRegistry struct {
	mu     sync.RWMutex
	frozen bool
	byKey  map[string]PurposeDescriptor
}

// NewPurposeRegistry creates an empty purpose registry.
func NewPurposeRegistry() *PurposeRegistry {
	return &PurposeRegistry{byKey: make(map[string]PurposeDescriptor)}
}

// Register inserts a new purpose token.
func (r *PurposeRegistry) Register(desc PurposeDescriptor) error {
	if desc.Key == "" {
		return fmt.Errorf("%w: purpose key is empty", ErrInvalidDescriptor)
	}
	if desc.Code == "" || desc.Code != strings.ToLower(desc.Code) {
		return fmt.Errorf("%w: purpose %q code %q must be non-empty lowercase",
			ErrInvalidDescriptor, desc.Key, desc.Code)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return fmt.Errorf("%w: cannot register purpose %q", ErrFrozen, desc.Key)
	}
	if _, exists := r.byKey[desc.Key]; exists {
		return &DuplicateKeyError{Registry: "purpose", Key: desc.Key}
	}
	r.byKey[desc.Key] = desc
	return nil
}

// Lookup resolves a purpose token by key.
func (r *PurposeRegistry) Lookup(key string) (PurposeDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.byKey[key]
	if !ok {
		return PurposeDescriptor{}, &UnknownKeyError{Registry: "purpose", Key: key}
	}
	return desc, nil
}

func (r *PurposeRegistry) freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// =============================================================================
// Registry Bundle
// =============================================================================

// Registries bundles the four lookup tables passed to consumers.
type Registries struct {
	Environments *EnvironmentRegistry
	Applications *ApplicationRegistry
	Regions      *RegionRegistry
	Purposes     *PurposeRegistry
}

// NewRegistries creates an empty registry bundle.
func NewRegistries() *Registries {
	return &Registries{
		Environments: NewEnvironmentRegistry(),
		Applications: NewApplicationRegistry(),
		Regions:      NewRegionRegistry(),
		Purposes:     NewPurposeRegistry(),
	}
}

// Freeze marks every registry read-only. Registration after Freeze fails
// with ErrFrozen; lookups are unaffected.
func (r *Registries) Freeze() {
	r.Environments.freeze()
	r.Applications.freeze()
	r.Regions.freeze()
	r.Purposes.freeze()
}

package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBootstrapped(t *testing.T) *Registries {
	t.Helper()
	reg := NewRegistries()
	require.NoError(t, BootstrapDefaults(reg))
	return reg
}

// =============================================================================
// Environment Registry Tests
// =============================================================================

func TestEnvironmentRegister_Duplicate(t *testing.T) {
	reg := newBootstrapped(t)

	err := reg.Environments.Register(EnvironmentDescriptor{
		Key: EnvDevelopment, Prefix: "dev", AccountType: AccountTypeNonProduction,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Contains(t, err.Error(), "already registered")

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, EnvDevelopment, dup.Key)
}

func TestEnvironmentRegister_UppercasePrefix(t *testing.T) {
	reg := NewRegistries()
	err := reg.Environments.Register(EnvironmentDescriptor{
		Key: "Sandbox", Prefix: "SBX", AccountType: AccountTypeNonProduction,
	})
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestEnvironmentRegister_EmptyPrefix(t *testing.T) {
	reg := NewRegistries()
	err := reg.Environments.Register(EnvironmentDescriptor{
		Key: "Sandbox", AccountType: AccountTypeNonProduction,
	})
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestEnvironmentRegister_AfterFreeze(t *testing.T) {
	reg := newBootstrapped(t)
	reg.Freeze()

	err := reg.Environments.Register(EnvironmentDescriptor{
		Key: "Sandbox", Prefix: "sbx", AccountType: AccountTypeNonProduction,
	})
	assert.ErrorIs(t, err, ErrFrozen)
}

func TestEnvironmentLookup_Unknown(t *testing.T) {
	reg := newBootstrapped(t)

	_, err := reg.Environments.Lookup("NoSuchEnv")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKey))
	assert.Contains(t, err.Error(), "NoSuchEnv")
}

func TestEnvironmentPrefix_StableAndLowercase(t *testing.T) {
	reg := newBootstrapped(t)

	for _, key := range reg.Environments.Keys() {
		first, err := reg.Environments.Lookup(key)
		require.NoError(t, err)
		second, err := reg.Environments.Lookup(key)
		require.NoError(t, err)

		assert.NotEmpty(t, first.Prefix)
		assert.Equal(t, strings.ToLower(first.Prefix), first.Prefix)
		assert.Equal(t, first.Prefix, second.Prefix)
	}
}

func TestAccountTypeOf(t *testing.T) {
	reg := newBootstrapped(t)

	at, err := reg.Environments.AccountTypeOf(EnvDevelopment)
	require.NoError(t, err)
	assert.Equal(t, AccountTypeNonProduction, at)

	at, err = reg.Environments.AccountTypeOf(EnvProduction)
	require.NoError(t, err)
	assert.Equal(t, AccountTypeProduction, at)
}

func TestAccountTypeOf_Unknown(t *testing.T) {
	reg := newBootstrapped(t)
	_, err := reg.Environments.AccountTypeOf("Nope")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestSiblingEnvironments_NonProduction(t *testing.T) {
	reg := newBootstrapped(t)

	siblings, err := reg.Environments.SiblingEnvironments(EnvDevelopment)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{EnvDevelopment, EnvQA, EnvIntegration}, siblings)
	assert.NotContains(t, siblings, EnvStaging)
	assert.NotContains(t, siblings, EnvProduction)
}

func TestSiblingEnvironments_Production(t *testing.T) {
	reg := newBootstrapped(t)

	siblings, err := reg.Environments.SiblingEnvironments(EnvProduction)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{EnvStaging, EnvProduction}, siblings)
	assert.NotContains(t, siblings, EnvDevelopment)
}

func TestSiblingEnvironments_Sorted(t *testing.T) {
	reg := newBootstrapped(t)

	first, err := reg.Environments.SiblingEnvironments(EnvQA)
	require.NoError(t, err)
	second, err := reg.Environments.SiblingEnvironments(EnvQA)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, sortIsStable(first))
}

func sortIsStable(keys []string) bool {
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			return false
		}
	}
	return true
}

// =============================================================================
// Application Registry Tests
// =============================================================================

func TestApplicationRegister_DuplicateKey(t *testing.T) {
	reg := newBootstrapped(t)

	err := reg.Applications.Register(ApplicationDescriptor{Key: AppTrialFinderV2, Code: "other"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "already registered")
}

func TestApplicationRegister_DuplicateCode(t *testing.T) {
	reg := newBootstrapped(t)

	err := reg.Applications.Register(ApplicationDescriptor{Key: "TrialFinderV3", Code: "tfv2"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "tfv2")
}

func TestApplicationLookup(t *testing.T) {
	reg := newBootstrapped(t)

	app, err := reg.Applications.Lookup(AppTrialFinderV2)
	require.NoError(t, err)
	assert.Equal(t, "tfv2", app.Code)
}

func TestApplicationLookup_Unknown(t *testing.T) {
	reg := newBootstrapped(t)
	_, err := reg.Applications.Lookup("Mystery")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "Mystery")
}

// =============================================================================
// Region Registry Tests
// =============================================================================

func TestRegionLookup(t *testing.T) {
	reg := newBootstrapped(t)

	region, err := reg.Regions.Lookup("us-east-2")
	require.NoError(t, err)
	assert.Equal(t, "ue2", region.Code)
}

func TestRegionLookup_Unknown(t *testing.T) {
	reg := newBootstrapped(t)
	_, err := reg.Regions.Lookup("mars-north-1")
	assert.ErrorIs(t, err, ErrUnknownKey)
	assert.Contains(t, err.Error(), "mars-north-1")
}

func TestRegionRegister_DuplicateRegion(t *testing.T) {
	reg := newBootstrapped(t)
	err := reg.Regions.Register(RegionDescriptor{Region: "us-east-1", Code: "zz1"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestRegionRegister_DuplicateCode(t *testing.T) {
	reg := newBootstrapped(t)
	err := reg.Regions.Register(RegionDescriptor{Region: "ap-south-1", Code: "ue1"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "ue1")
}

// =============================================================================
// Purpose Registry Tests
// =============================================================================

func TestPurposeLookup(t *testing.T) {
	reg := newBootstrapped(t)

	purpose, err := reg.Purposes.Lookup("Main")
	require.NoError(t, err)
	assert.Equal(t, "main", purpose.Code)
}

func TestPurposeRegister_AfterFreeze(t *testing.T) {
	reg := newBootstrapped(t)
	reg.Freeze()

	err := reg.Purposes.Register(PurposeDescriptor{Key: "Batch", Code: "batch"})
	assert.ErrorIs(t, err, ErrFrozen)
}

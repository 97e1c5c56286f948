package registry

// =============================================================================
// Default Tables
// =============================================================================

// Well-known environment keys.
const (
	EnvDevelopment = "Development"
	EnvQA          = "QA"
	EnvIntegration = "Integration"
	EnvStaging     = "Staging"
	EnvProduction  = "Production"
)

// Well-known application keys.
const (
	AppTrialFinderV2 = "TrialFinderV2"
)

// defaultEnvironments is the standard environment table. Development, QA and
// Integration share the non-production account; Staging and Production share
// the production account.
var defaultEnvironments = []EnvironmentDescriptor{
	{Key: EnvDevelopment, Prefix: "dev", AccountType: AccountTypeNonProduction},
	{Key: EnvQA, Prefix: "qa", AccountType: AccountTypeNonProduction},
	{Key: EnvIntegration, Prefix: "int", AccountType: AccountTypeNonProduction},
	{Key: EnvStaging, Prefix: "staging", AccountType: AccountTypeProduction},
	{Key: EnvProduction, Prefix: "prod", AccountType: AccountTypeProduction},
}

var defaultApplications = []ApplicationDescriptor{
	{Key: AppTrialFinderV2, Code: "tfv2"},
}

var defaultRegions = []RegionDescriptor{
	{Region: "us-east-1", Code: "ue1"},
	{Region: "us-east-2", Code: "ue2"},
	{Region: "us-west-1", Code: "uw1"},
	{Region: "us-west-2", Code: "uw2"},
	{Region: "eu-west-1", Code: "ew1"},
}

var defaultPurposes = []PurposeDescriptor{
	{Key: "Main", Code: "main", Description: "primary resource for the triple"},
	{Key: "Web", Code: "web", Description: "public web tier"},
	{Key: "API", Code: "api", Description: "service API tier"},
	{Key: "App", Code: "app", Description: "application data"},
	{Key: "Logs", Code: "logs", Description: "log archival"},
}

// =============================================================================
// Bootstrap
// =============================================================================

// BootstrapDefaults registers the standard environment, application, region
// and purpose tables into an empty registry bundle. It is the single
// registration step: callers are expected to Freeze the bundle afterwards.
func BootstrapDefaults(reg *Registries) error {
	for _, env := range defaultEnvironments {
		if err := reg.Environments.Register(env); err != nil {
			return err
		}
	}
	for _, app := range defaultApplications {
		if err := reg.Applications.Register(app); err != nil {
			return err
		}
	}
	for _, region := range defaultRegions {
		if err := reg.Regions.Register(region); err != nil {
			return err
		}
	}
	for _, purpose := range defaultPurposes {
		if err := reg.Purposes.Register(purpose); err != nil {
			return err
		}
	}
	return nil
}

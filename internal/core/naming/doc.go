// Package naming provides the canonical resource naming convention.
//
// All functions are pure: given the same identity triple (environment,
// application, region) and the same registries, every call produces the
// same string. Nothing in this package reads a clock, counts calls, or
// caches results.
//
// # Name patterns
//
//   - Resource:       {envPrefix}-{appCode}-{resourceType}-{regionCode}-{purpose}
//   - Bucket:         {dnsPrefix}-{envPrefix}-{appCode}-{purpose}-{regionCode}
//   - Security group: {envPrefix}-{appCode}-sg-{role}-{purpose}-{regionCode}
//   - Log group:      /aws/{service}/{envPrefix}-{appCode}-{purpose}
//   - VPC:            {envPrefix}-{appCode}-vpc-{regionCode}-{purpose}
//   - Export:         {envPrefix}-{role}-id
//
// # Usage
//
//	conv := naming.NewConvention(reg, "thirdopinion.io")
//	name, err := conv.ResourceName(triple, "ecs", "main")
//	// "dev-tfv2-ecs-ue1-main"
package naming

// Package resolve computes effective, environment-specific configuration
// values through layered resolution:
//
//  1. classify the environment into an account type via the registry
//  2. select the base tier profile for that account type
//  3. apply the application's explicit per-environment override, field by
//     field, when one exists for the literal environment name
//  4. return a fresh value object
//
// Resolvers never cache: two calls with identical inputs produce value-equal
// but independent results. The only hard failure is an unrecognized
// environment name; every other field degrades to its tier default.
package resolve

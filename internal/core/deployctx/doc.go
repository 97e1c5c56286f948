// Package deployctx provides the deployment context: the composition root
// that binds one environment, one application, and one region together with
// per-deploy metadata (deployment id, timestamp, actor).
//
// A context is created once per deploy invocation. Its identity fields are
// fixed at construction; the resource namer is memoized so every stack
// reading from one shared context observes the same instance.
//
// # Usage
//
//	ctx, err := deployctx.New(conv, deployctx.Params{
//	    Environment: deployctx.EnvironmentConfig{Name: "Development", Tags: envTags},
//	    Application: deployctx.ApplicationConfig{Name: "TrialFinderV2", Version: "1.4.2"},
//	    Region:      "us-east-1",
//	})
//	tags, err := ctx.CommonTags()
//	namer, err := ctx.Namer()
package deployctx

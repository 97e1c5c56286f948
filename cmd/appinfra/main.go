package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/thirdopinion/appinfra/internal/shell/awsenv"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess         = 0
	ExitConfigError     = 1
	ExitValidationError = 2
	ExitPreflightError  = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "Path to config file")
	envName := flag.String("env", "", "Environment key (e.g. Development)")
	appName := flag.String("app", "TrialFinderV2", "Application key")
	region := flag.String("region", "us-east-1", "AWS region")
	purpose := flag.String("purpose", "main", "Purpose token for generated names")
	taskdefPath := flag.String("taskdef", "", "Path to a JSON task configuration to validate and substitute")
	composePath := flag.String("compose", "", "Path to a docker-compose file to derive the task shape from")
	overridesPath := flag.String("overrides", "", "Path to a YAML per-environment override table")
	preflight := flag.Bool("preflight", false, "Verify the target region is enabled on the AWS account")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("appinfra %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	logger := SetupLogger(cfg)

	if *envName == "" {
		fmt.Fprintln(os.Stderr, "configuration error: -env is required")
		return ExitConfigError
	}

	req := SynthRequest{
		Environment:   *envName,
		Application:   *appName,
		Region:        *region,
		Purpose:       *purpose,
		TaskdefPath:   *taskdefPath,
		ComposePath:   *composePath,
		OverridesPath: *overridesPath,
	}

	preview, err := Synthesize(cfg, logger, req)
	if err != nil {
		logger.Error("synthesis failed", "error", err)
		return ExitValidationError
	}

	if *preflight {
		client := awsenv.NewClient(*region, cfg.AWS.AccessKeyID, cfg.AWS.SecretAccessKey)
		pf := awsenv.New(client, logger)
		if err := pf.CheckRegion(context.Background(), *region); err != nil {
			if errors.Is(err, awsenv.ErrRegionNotEnabled) {
				logger.Error("region not enabled for account", "region", *region)
			} else {
				logger.Error("preflight failed", "error", err)
			}
			return ExitPreflightError
		}
		logger.Info("preflight passed", "region", *region)
	}

	if err := WritePreview(os.Stdout, preview); err != nil {
		logger.Error("failed to write preview", "error", err)
		return ExitConfigError
	}

	return ExitSuccess
}

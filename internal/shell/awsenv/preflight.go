// Package awsenv is the imperative-shell check that runs before synthesis
// output is trusted: it verifies the target AWS region is actually enabled
// on the account the deployment will land in. The naming/config core stays
// offline; this check is optional and explicitly requested by the caller.
package awsenv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrRegionNotEnabled is returned when the target region is not enabled
	// for the account.
	ErrRegionNotEnabled = errors.New("region is not enabled for this account")

	// ErrPreflightFailed wraps transport or credential failures.
	ErrPreflightFailed = errors.New("aws preflight failed")
)

// =============================================================================
// Preflight
// =============================================================================

// RegionsAPI is the slice of the EC2 API the preflight needs.
type RegionsAPI interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// Preflight verifies account-level preconditions against AWS.
type Preflight struct {
	client RegionsAPI
	logger *slog.Logger
}

// New creates a preflight over an EC2 client.
func New(client RegionsAPI, logger *slog.Logger) *Preflight {
	return &Preflight{
		client: client,
		logger: logger.With("component", "awsenv"),
	}
}

// NewClient builds an EC2 client with static credentials, matching how
// deploy credentials are passed in from CI.
func NewClient(region, accessKeyID, secretAccessKey string) *ec2.Client {
	return ec2.New(ec2.Options{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
	})
}

// CheckRegion verifies that the target region is enabled on the account.
// Opt-in regions that were never enabled are reported as not enabled, not
// as unknown.
func (p *Preflight) CheckRegion(ctx context.Context, region string) error {
	out, err := p.client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{
		AllRegions: aws.Bool(true),
		Filters: []ec2types.Filter{
			{Name: aws.String("region-name"), Values: []string{region}},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: describe regions: %w", ErrPreflightFailed, err)
	}

	for _, r := range out.Regions {
		if aws.ToString(r.RegionName) != region {
			continue
		}
		status := aws.ToString(r.OptInStatus)
		if status == "not-opted-in" {
			return fmt.Errorf("%w: %s (opt-in status %q)", ErrRegionNotEnabled, region, status)
		}
		p.logger.Debug("region preflight passed", "region", region, "opt_in_status", status)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrRegionNotEnabled, region)
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"

	"github.com/suse/saas-tools/pkg/aws"
	"github.com/suse/saas-tools/pkg/notification"
)

var log = logging.Logger("cmd")

// loadConfig builds the service configuration from the command line, using
// the shared AWS config of the selected profile.
func loadConfig(cCtx *cli.Context) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if profile := cCtx.String(ProfileFlag.Name); profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	awsConfig, err := config.LoadDefaultConfig(cCtx.Context, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading aws config: %w", err)
	}
	return aws.Config{
		Config:         awsConfig,
		RoleConfigPath: cCtx.String(RoleConfigFlag.Name),
		AttemptTimeout: cCtx.Duration("attempt-timeout"),
		ResolveBudget:  cCtx.Duration("budget"),
	}, nil
}

func readMessage(path string) (notification.Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return notification.Content{}, fmt.Errorf("reading message file: %w", err)
	}
	var content notification.Content
	if err := json.Unmarshal(data, &content); err != nil {
		return notification.Content{}, fmt.Errorf("decoding message file %s: %w", path, err)
	}
	return content, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package cmd

import (
	"github.com/urfave/cli/v2"

	appconfig "github.com/suse/saas-tools/pkg/config"
	"github.com/suse/saas-tools/pkg/role"
)

func RequiredStringFlag(strFlag *cli.StringFlag) *cli.StringFlag {
	copy := *strFlag
	copy.Required = true
	return &copy
}

var ProfileFlag = &cli.StringFlag{
	Name:    "profile",
	Aliases: []string{"p"},
	Usage:   "AWS shared config profile to use",
	EnvVars: []string{"AWS_PROFILE"},
}

var RoleConfigFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Role configuration file, local path or s3://bucket/key",
	EnvVars: []string{appconfig.RoleConfigEnvVar},
	Value:   appconfig.DefaultRoleConfigPath,
}

var TokenFlag = &cli.StringFlag{
	Name:     "token",
	Aliases:  []string{"t"},
	Usage:    "URL encoded marketplace registration token",
	Required: true,
}

var CustomerFlag = &cli.StringFlag{
	Name:     "customer",
	Usage:    "Marketplace customer identifier",
	Required: true,
}

var ProductFlag = &cli.StringFlag{
	Name:     "product",
	Usage:    "Marketplace product code",
	Required: true,
}

var DomainFlag = &cli.StringFlag{
	Name:     "domain",
	Usage:    "DataZone domain identifier",
	Required: true,
}

var SubscriptionFlag = &cli.StringFlag{
	Name:     "subscription",
	Usage:    "DataZone subscription identifier",
	Required: true,
}

var MessageFileFlag = &cli.StringFlag{
	Name:     "file",
	Aliases:  []string{"f"},
	Usage:    "JSON file holding the notification message",
	Required: true,
}

var QueueFlag = &cli.StringFlag{
	Name:    "queue",
	Aliases: []string{"q"},
	Usage:   "Name or URL of the event queue",
	EnvVars: []string{"SAAS_EVENT_QUEUE"},
}

var TopicFlag = &cli.StringFlag{
	Name:    "topic",
	Usage:   "ARN of the notification topic",
	EnvVars: []string{"SAAS_NOTIFICATION_TOPIC"},
}

var ResolverFlags = []cli.Flag{
	ProfileFlag,
	RoleConfigFlag,
	&cli.DurationFlag{
		Name:    "attempt-timeout",
		Usage:   "Timeout of a single region attempt",
		EnvVars: []string{"ATTEMPT_TIMEOUT"},
		Value:   role.DefaultAttemptTimeout,
	},
	&cli.DurationFlag{
		Name:    "budget",
		Usage:   "Timeout of a whole region fallback",
		EnvVars: []string{"RESOLVE_BUDGET"},
		Value:   role.DefaultBudget,
	},
}

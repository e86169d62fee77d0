package role

import (
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Role holds the parameters of an assume-role exchange in one region.
type Role struct {
	ARN     string `mapstructure:"arn" json:"arn" yaml:"arn" validate:"required,startswith=arn:"`
	Session string `mapstructure:"session" json:"session" yaml:"session" validate:"required"`
}

// Config maps region names to the role assumed in that region.
type Config map[string]Role

// Regions returns the configured regions in ascending lexicographic order.
// Every resolver walks regions in this order.
func (c Config) Regions() []string {
	regions := make([]string, 0, len(c))
	for region := range c {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// Credentials are temporary security credentials returned by STS.
type Credentials struct {
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	SessionToken    string `json:"sessionToken"`
	// Expiration is RFC 3339 formatted, or empty when STS did not report one.
	Expiration string `json:"expiration"`
}

// Provider returns a static credentials provider for use in client options.
func (c Credentials) Provider() aws.CredentialsProvider {
	return credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, c.SessionToken)
}

// Assumed is the outcome of a successful role assumption.
type Assumed struct {
	Region      string
	Credentials Credentials
}

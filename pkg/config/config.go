package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/viper"

	"github.com/suse/saas-tools/pkg/role"
)

// DefaultRoleConfigPath is read when neither a path nor RoleConfigEnvVar is
// given.
const DefaultRoleConfigPath = "/etc/assume_role.yml"

// RoleConfigEnvVar names the environment variable holding the role
// configuration path.
const RoleConfigEnvVar = "ASSUME_ROLE_CONFIG"

// File is the layout of the role configuration file:
//
//	role:
//	  eu-central-1:
//	    arn: arn:aws:iam::123456789012:role/marketplace
//	    session: saas-tools
type File struct {
	Role role.Config `toml:"role" json:"role" yaml:"role" mapstructure:"role"`
}

// S3Client is the part of the S3 API used to fetch remote configuration.
//
//go:generate go run go.uber.org/mock/mockgen@v0.5.0 -destination=../../internal/mocks/s3_client.go -package=mocks . S3Client
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type loader struct {
	s3 S3Client
}

type Option func(*loader)

// WithS3Client enables s3://bucket/key configuration paths.
func WithS3Client(c S3Client) Option {
	return func(l *loader) {
		l.s3 = c
	}
}

// RoleConfigPath returns the configuration path from the environment,
// falling back to DefaultRoleConfigPath.
func RoleConfigPath() string {
	if path := os.Getenv(RoleConfigEnvVar); path != "" {
		return path
	}
	return DefaultRoleConfigPath
}

// LoadRoles reads and validates the role configuration at path, which is
// either a local file or an s3://bucket/key URL. An empty path selects
// RoleConfigPath. A file without a role section yields an empty Config.
func LoadRoles(ctx context.Context, path string, opts ...Option) (role.Config, error) {
	l := &loader{}
	for _, opt := range opts {
		opt(l)
	}
	if path == "" {
		path = RoleConfigPath()
	}

	var (
		cfg *File
		err error
	)
	if strings.HasPrefix(path, "s3://") {
		cfg, err = l.loadS3(ctx, path)
	} else {
		cfg, err = load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load role configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("role configuration validation failed: %w", err)
	}
	return cfg.Role, nil
}

// load reads the configuration from a local file.
func load(path string) (*File, error) {
	if stat, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file path does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file at path %s: %w", path, err)
	} else if stat.IsDir() {
		return nil, fmt.Errorf("config file path points to a directory: %s", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return decode(v)
}

func (l *loader) loadS3(ctx context.Context, path string) (*File, error) {
	if l.s3 == nil {
		return nil, fmt.Errorf("no s3 client to fetch %s", path)
	}
	u, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parsing config url: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return nil, fmt.Errorf("config url must be s3://bucket/key: %s", path)
	}

	out, err := l.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.Host),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", path, err)
	}
	defer out.Body.Close()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigType(configType(key))
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*File, error) {
	cfg := new(File)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	if cfg.Role == nil {
		cfg.Role = role.Config{}
	}
	return cfg, nil
}

func configType(key string) string {
	switch ext := strings.TrimPrefix(filepath.Ext(key), "."); ext {
	case "json", "toml":
		return ext
	default:
		return "yaml"
	}
}

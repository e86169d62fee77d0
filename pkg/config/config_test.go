package config

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"
	"go.uber.org/mock/gomock"

	"github.com/suse/saas-tools/internal/mocks"
	"github.com/suse/saas-tools/pkg/role"
)

const validYAML = `
role:
  us-east-1:
    arn: arn:aws:iam::123456789012:role/us
    session: saas-tools
  eu-central-1:
    arn: arn:aws:iam::123456789012:role/eu
    session: saas-tools
`

var validRoles = role.Config{
	"us-east-1":    {ARN: "arn:aws:iam::123456789012:role/us", Session: "saas-tools"},
	"eu-central-1": {ARN: "arn:aws:iam::123456789012:role/eu", Session: "saas-tools"},
}

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRoles(t *testing.T) {
	ctx := context.Background()

	t.Run("yaml file", func(t *testing.T) {
		roles, err := LoadRoles(ctx, writeConfig(t, "assume_role.yml", validYAML))
		require.NoError(t, err)
		assert.Equal(t, validRoles, roles)
		assert.Equal(t, []string{"eu-central-1", "us-east-1"}, roles.Regions())
	})

	t.Run("json file", func(t *testing.T) {
		path := writeConfig(t, "assume_role.json", `{"role": {"us-east-1": {"arn": "arn:aws:iam::1:role/r", "session": "s"}}}`)
		roles, err := LoadRoles(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, role.Config{"us-east-1": {ARN: "arn:aws:iam::1:role/r", Session: "s"}}, roles)
	})

	t.Run("file without extension is yaml", func(t *testing.T) {
		roles, err := LoadRoles(ctx, writeConfig(t, "assume_role", validYAML))
		require.NoError(t, err)
		assert.Equal(t, validRoles, roles)
	})

	t.Run("path from environment", func(t *testing.T) {
		t.Setenv(RoleConfigEnvVar, writeConfig(t, "env.yml", validYAML))
		roles, err := LoadRoles(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, validRoles, roles)
	})

	t.Run("missing role section is empty", func(t *testing.T) {
		roles, err := LoadRoles(ctx, writeConfig(t, "empty.yml", "other: true\n"))
		require.NoError(t, err)
		assert.NotNil(t, roles)
		assert.Empty(t, roles)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRoles(ctx, filepath.Join(t.TempDir(), "nope.yml"))
		require.ErrorContains(t, err, "does not exist")
	})

	t.Run("directory", func(t *testing.T) {
		_, err := LoadRoles(ctx, t.TempDir())
		require.ErrorContains(t, err, "points to a directory")
	})

	t.Run("invalid entries are all reported", func(t *testing.T) {
		path := writeConfig(t, "invalid.yml", `
role:
  us-east-1:
    arn: not-an-arn
  eu-central-1:
    session: saas-tools
`)
		_, err := LoadRoles(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `role.us-east-1.arn must start with "arn:"`)
		assert.Contains(t, err.Error(), "role.us-east-1.session is required")
		assert.Contains(t, err.Error(), "role.eu-central-1.arn is required")
	})
}

func TestRoleConfigPath(t *testing.T) {
	t.Setenv(RoleConfigEnvVar, "")
	assert.Equal(t, DefaultRoleConfigPath, RoleConfigPath())

	t.Setenv(RoleConfigEnvVar, "s3://bucket/roles.yml")
	assert.Equal(t, "s3://bucket/roles.yml", RoleConfigPath())
}

func TestLoadRolesFromS3(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches the object", func(t *testing.T) {
		client := mocks.NewMockS3Client(gomock.NewController(t))
		client.EXPECT().
			GetObject(gomock.Any(), gomock.Cond(func(in *s3.GetObjectInput) bool {
				return aws.ToString(in.Bucket) == "config-bucket" && aws.ToString(in.Key) == "lambda/assume_role.yml"
			})).
			Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte(validYAML)))}, nil)

		roles, err := LoadRoles(ctx, "s3://config-bucket/lambda/assume_role.yml", WithS3Client(client))
		require.NoError(t, err)
		assert.Equal(t, validRoles, roles)
	})

	t.Run("fetch failure", func(t *testing.T) {
		client := mocks.NewMockS3Client(gomock.NewController(t))
		client.EXPECT().GetObject(gomock.Any(), gomock.Any()).Return(nil, errors.New("access denied"))

		_, err := LoadRoles(ctx, "s3://config-bucket/assume_role.yml", WithS3Client(client))
		require.ErrorContains(t, err, "access denied")
	})

	t.Run("without client", func(t *testing.T) {
		_, err := LoadRoles(ctx, "s3://config-bucket/assume_role.yml")
		require.ErrorContains(t, err, "no s3 client")
	})

	t.Run("without key", func(t *testing.T) {
		client := mocks.NewMockS3Client(gomock.NewController(t))
		_, err := LoadRoles(ctx, "s3://config-bucket", WithS3Client(client))
		require.ErrorContains(t, err, "s3://bucket/key")
	})
}

func TestLoadRolesFromMinio(t *testing.T) {
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	endpoint := createS3(t)
	client := s3.New(s3.Options{
		Credentials:  credentials.NewStaticCredentialsProvider("minioadmin", "minioadmin", ""),
		UsePathStyle: true,
		Region:       "us-east-1",
		BaseEndpoint: aws.String(endpoint.String()),
	})

	_, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String("saas-config")})
	require.NoError(t, err)
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String("saas-config"),
		Key:    aws.String("assume_role.yml"),
		Body:   bytes.NewReader([]byte(validYAML)),
	})
	require.NoError(t, err)

	roles, err := LoadRoles(ctx, "s3://saas-config/assume_role.yml", WithS3Client(client))
	require.NoError(t, err)
	assert.Equal(t, validRoles, roles)
}

func createS3(t *testing.T) *url.URL {
	ctx := context.Background()
	container, err := tcminio.Run(ctx, "minio/minio:latest")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	endpoint, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	u, err := url.Parse("http://" + endpoint)
	require.NoError(t, err)
	return u
}

package storage

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3ProviderRequiresRegion(t *testing.T) {
	_, err := NewS3Provider(context.Background(), S3ClientConfig{Endpoint: "http://localhost:9000"})
	assert.ErrorContains(t, err, "region")
}

func TestNewS3ProviderCustomEndpoint(t *testing.T) {
	store, err := NewS3Provider(context.Background(), S3ClientConfig{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "admin",
		SecretAccessKey: "password",
	})
	require.NoError(t, err)

	opts := store.client.Options()
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)

	creds, err := opts.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", creds.AccessKeyID)
}

func TestNewS3ProviderAWSEndpoint(t *testing.T) {
	store, err := NewS3Provider(context.Background(), S3ClientConfig{
		Region:          "us-west-2",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)

	opts := store.client.Options()
	assert.Nil(t, opts.BaseEndpoint)
	assert.False(t, opts.UsePathStyle)
	assert.Equal(t, "us-west-2", opts.Region)
}

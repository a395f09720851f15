// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package awsx

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	var o options
	WithProfile("prod")(&o)
	WithRegion("eu-west-1")(&o)
	WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })(&o)

	assert.Equal(t, "prod", o.profile)
	assert.Equal(t, "eu-west-1", o.region)
	require.NotNil(t, o.retryer)
	assert.NotNil(t, o.retryer())
}

func TestLoadConfig_Region(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	cfg, err := LoadConfig(context.Background(), WithRegion("us-east-1"), WithRegion("us-west-2"))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

func TestWithEndpoint(t *testing.T) {
	tests := []struct {
		name      string
		endpoint  string
		pathStyle bool
	}{
		{name: "empty", endpoint: "", pathStyle: false},
		{name: "minio", endpoint: "http://localhost:9000", pathStyle: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o s3v2.Options
			WithEndpoint(tt.endpoint)(&o)
			assert.Equal(t, tt.pathStyle, o.UsePathStyle)
			if tt.endpoint == "" {
				assert.Nil(t, o.BaseEndpoint)
			} else {
				require.NotNil(t, o.BaseEndpoint)
				assert.Equal(t, tt.endpoint, *o.BaseEndpoint)
			}
		})
	}
}

func TestNewS3(t *testing.T) {
	cfg := awsv2.Config{Region: "us-east-1"}
	client := NewS3(cfg, WithEndpoint("http://localhost:9000"))
	assert.NotNil(t, client)
	assert.Equal(t, "us-east-1", client.Options().Region)
	assert.True(t, client.Options().UsePathStyle)
}

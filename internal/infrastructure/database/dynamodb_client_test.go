package database

import (
	"context"
	"testing"

	"estudio_admin/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestEndpointOption(t *testing.T) {
	var o dynamodb.Options
	EndpointOption("")(&o)
	if o.BaseEndpoint != nil {
		t.Fatalf("expected default endpoint, got %q", *o.BaseEndpoint)
	}

	EndpointOption("http://localhost:8000")(&o)
	if o.BaseEndpoint == nil || *o.BaseEndpoint != "http://localhost:8000" {
		t.Fatalf("expected local endpoint override")
	}
}

func TestNewAWSConfigUsesStaticCredentials(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), config.DynamoDBConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("unexpected region %q", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("retrieve credentials: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "secret" {
		t.Fatalf("unexpected credentials %+v", creds)
	}
}

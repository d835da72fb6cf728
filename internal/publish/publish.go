// Package publish uploads generated documents to S3-compatible object
// storage.
package publish

import (
	"bytes"
	"context"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/toyz/routedoc/internal/errors"
	"github.com/toyz/routedoc/pkg/openapi"
)

// Scheme is the only destination scheme understood by ParseDestination
const Scheme = "s3"

// ObjectPutter is the part of *s3.Client used to upload documents
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Destination is a bucket and a key prefix
type Destination struct {
	Bucket string
	Prefix string
}

// ParseDestination reads an "s3://bucket/prefix" URL. The prefix may be empty.
func ParseDestination(raw string) (Destination, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Destination{}, errors.Wrap(errors.ConfigurationErrorCode, "invalid publish destination", err).
			WithContext("destination", raw)
	}
	if u.Scheme != Scheme || u.Host == "" {
		return Destination{}, errors.Newf(errors.ConfigurationErrorCode, "invalid publish destination: %s", raw).
			WithContext("destination", raw).
			WithSuggestion("Use s3://bucket or s3://bucket/prefix")
	}
	return Destination{
		Bucket: u.Host,
		Prefix: strings.Trim(u.Path, "/"),
	}, nil
}

// Key is the object key of a file name below the prefix
func (d Destination) Key(name string) string {
	if d.Prefix == "" {
		return name
	}
	return path.Join(d.Prefix, name)
}

func (d Destination) String() string {
	if d.Prefix == "" {
		return Scheme + "://" + d.Bucket
	}
	return Scheme + "://" + d.Bucket + "/" + d.Prefix
}

// Publisher uploads both renditions of a document
type Publisher struct {
	client      ObjectPutter
	destination Destination
}

// NewPublisher creates a publisher writing below destination
func NewPublisher(client ObjectPutter, destination Destination) *Publisher {
	return &Publisher{client: client, destination: destination}
}

// Publish uploads openapi.json and openapi.yaml and returns their keys
func (p *Publisher) Publish(ctx context.Context, doc *openapi.Document) ([]string, error) {
	if doc == nil {
		return nil, errors.New(errors.PublishErrorCode, "publish requires an OpenAPI document")
	}

	jsonData, err := doc.JSON()
	if err != nil {
		return nil, errors.WrapGenerateError(openapi.JSONFileName, err)
	}
	yamlData, err := doc.YAML()
	if err != nil {
		return nil, errors.WrapGenerateError(openapi.YAMLFileName, err)
	}

	objects := []struct {
		name        string
		contentType string
		body        []byte
	}{
		{openapi.JSONFileName, "application/json", jsonData},
		{openapi.YAMLFileName, "application/yaml", yamlData},
	}

	keys := make([]string, 0, len(objects))
	for _, object := range objects {
		key := p.destination.Key(object.name)
		_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.destination.Bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(object.body),
			ContentType: aws.String(object.contentType),
		})
		if err != nil {
			return keys, errors.WrapPublishError(p.destination.String(), key, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// NewS3Client builds a client from the standard AWS_* environment
// variables. AWS_ENDPOINT_URL switches to path-style requests against an
// S3-compatible endpoint.
func NewS3Client(region string) *s3.Client {
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}

	options := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if endpoint := os.Getenv("AWS_ENDPOINT_URL"); endpoint != "" {
		options.BaseEndpoint = aws.String(endpoint)
		options.UsePathStyle = true
	}
	return s3.New(options)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "EnvironmentVariables",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New(errors.PublishErrorCode, "AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return creds, nil
}

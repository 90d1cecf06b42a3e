// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/staranto/scenarios/internal/log"
	"github.com/staranto/scenarios/internal/retry"
)

// S3API is the part of *s3.Client used by Buckets.
type S3API interface {
	CreateBucket(ctx context.Context, params *s3v2.CreateBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.CreateBucketOutput, error)
	HeadBucket(ctx context.Context, params *s3v2.HeadBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadBucketOutput, error)
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3v2.ListObjectsV2Input, optFns ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error)
	DeleteObjects(ctx context.Context, params *s3v2.DeleteObjectsInput, optFns ...func(*s3v2.Options)) (*s3v2.DeleteObjectsOutput, error)
	DeleteBucket(ctx context.Context, params *s3v2.DeleteBucketInput, optFns ...func(*s3v2.Options)) (*s3v2.DeleteBucketOutput, error)
}

// Object is one listed S3 object.
type Object struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// Buckets runs the bucket lifecycle shown by the S3 demo: create, wait until
// visible, upload, list, delete objects, delete the bucket.
type Buckets struct {
	client S3API
	region string
	retry  retry.Config
}

// NewBuckets wraps client. region decides the create location constraint and
// rc controls how long Create waits for a new bucket to become visible.
func NewBuckets(client S3API, region string, rc retry.Config) *Buckets {
	return &Buckets{client: client, region: region, retry: rc}
}

// Create makes bucket and waits until it can be seen. A bucket the caller
// already owns counts as created.
func (b *Buckets) Create(ctx context.Context, bucket string) error {
	input := &s3v2.CreateBucketInput{Bucket: awsv2.String(bucket)}
	if b.region != "" && b.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(b.region),
		}
	}

	if _, err := b.client.CreateBucket(ctx, input); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if !errors.As(err, &owned) && errorCode(err) != "BucketAlreadyOwnedByYou" {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		log.Debugf("bucket %s already owned", bucket)
	}

	return b.WaitExists(ctx, bucket)
}

// WaitExists polls HeadBucket until it succeeds or the retry budget runs out.
func (b *Buckets) WaitExists(ctx context.Context, bucket string) error {
	err := retry.Run(ctx, b.retry, func(ctx context.Context) error {
		_, err := b.client.HeadBucket(ctx, &s3v2.HeadBucketInput{Bucket: awsv2.String(bucket)})
		return err
	})
	if err != nil {
		return fmt.Errorf("bucket %s never became visible: %w", bucket, err)
	}
	log.Infof("bucket %s is visible", bucket)
	return nil
}

// Exists reports whether bucket can be seen by the caller.
func (b *Buckets) Exists(ctx context.Context, bucket string) (bool, error) {
	_, err := b.client.HeadBucket(ctx, &s3v2.HeadBucketInput{Bucket: awsv2.String(bucket)})
	if err == nil {
		return true, nil
	}
	if IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// Put uploads body under key. An empty class leaves the bucket default.
func (b *Buckets) Put(ctx context.Context, bucket, key string, body []byte, class types.StorageClass) error {
	input := &s3v2.PutObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
		Body:   bytes.NewReader(body),
	}
	if class != "" {
		input.StorageClass = class
	}

	if _, err := b.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	log.Debugf("uploaded s3://%s/%s (%d bytes)", bucket, key, len(body))
	return nil
}

// List returns every object in bucket, following continuation tokens.
func (b *Buckets) List(ctx context.Context, bucket string) ([]Object, error) {
	var objects []Object

	pager := s3v2.NewListObjectsV2Paginator(b.client, &s3v2.ListObjectsV2Input{
		Bucket: awsv2.String(bucket),
	})
	for pager.HasMorePages() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", bucket, err)
		}
		for _, o := range page.Contents {
			objects = append(objects, Object{
				Key:          awsv2.ToString(o.Key),
				Size:         awsv2.ToInt64(o.Size),
				LastModified: awsv2.ToTime(o.LastModified),
			})
		}
	}

	log.Debugf("listed %d objects in %s", len(objects), bucket)
	return objects, nil
}

// MaxDeleteKeys is the most keys S3 accepts in one DeleteObjects request.
const MaxDeleteKeys = 1000

// Delete removes keys from bucket in batches of MaxDeleteKeys. Request and
// per-key failures from every batch are joined into the returned error.
func (b *Buckets) Delete(ctx context.Context, bucket string, keys []string) error {
	var errs []error
	for start := 0; start < len(keys); start += MaxDeleteKeys {
		end := min(start+MaxDeleteKeys, len(keys))
		errs = append(errs, b.deleteBatch(ctx, bucket, keys[start:end])...)
	}
	return errors.Join(errs...)
}

func (b *Buckets) deleteBatch(ctx context.Context, bucket string, keys []string) []error {
	ids := make([]types.ObjectIdentifier, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, types.ObjectIdentifier{Key: awsv2.String(k)})
	}

	out, err := b.client.DeleteObjects(ctx, &s3v2.DeleteObjectsInput{
		Bucket: awsv2.String(bucket),
		Delete: &types.Delete{Objects: ids, Quiet: awsv2.Bool(true)},
	})
	if err != nil {
		return []error{fmt.Errorf("failed to delete objects %s..%s: %w", keys[0], keys[len(keys)-1], err)}
	}
	log.Debugf("deleted %d objects from %s", len(keys)-len(out.Errors), bucket)

	var errs []error
	for _, e := range out.Errors {
		errs = append(errs, fmt.Errorf("%s: %s", awsv2.ToString(e.Key), awsv2.ToString(e.Message)))
	}
	return errs
}

// Empty deletes every object in bucket.
func (b *Buckets) Empty(ctx context.Context, bucket string) error {
	objects, err := b.List(ctx, bucket)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(objects))
	for _, o := range objects {
		keys = append(keys, o.Key)
	}
	return b.Delete(ctx, bucket, keys)
}

// Remove deletes bucket, which must be empty. A bucket that is already gone
// is not an error.
func (b *Buckets) Remove(ctx context.Context, bucket string) error {
	_, err := b.client.DeleteBucket(ctx, &s3v2.DeleteBucketInput{Bucket: awsv2.String(bucket)})
	if err != nil && !IsNotFound(err) {
		return fmt.Errorf("failed to delete bucket %s: %w", bucket, err)
	}
	log.Infof("bucket %s removed", bucket)
	return nil
}

// IsNotFound reports whether err is S3 saying the bucket or object does not
// exist.
func IsNotFound(err error) bool {
	var (
		noBucket *types.NoSuchBucket
		notFound *types.NotFound
	)
	if errors.As(err, &noBucket) || errors.As(err, &notFound) {
		return true
	}
	switch errorCode(err) {
	case "NoSuchBucket", "NotFound", "NoSuchKey":
		return true
	}
	return false
}

func errorCode(err error) string {
	var ae smithy.APIError
	if errors.As(err, &ae) {
		return ae.ErrorCode()
	}
	return ""
}

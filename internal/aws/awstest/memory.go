// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package awstest provides an in-memory S3 for tests.
package awstest

import (
	"context"
	"io"
	"sort"
	"sync"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// MemoryS3 implements the S3 calls used by the aws package against maps.
// HeadMisses makes the first n HeadBucket calls for a new bucket fail with
// NotFound, the way a freshly created bucket can lag in real S3. PageSize
// caps ListObjectsV2 pages when positive.
type MemoryS3 struct {
	mu      sync.Mutex
	buckets map[string]map[string][]byte
	classes map[string]types.StorageClass
	heads   map[string]int
	now     func() time.Time

	HeadMisses int
	PageSize   int
	Calls      []string
}

// NewMemoryS3 returns an empty store.
func NewMemoryS3() *MemoryS3 {
	return &MemoryS3{
		buckets: map[string]map[string][]byte{},
		classes: map[string]types.StorageClass{},
		heads:   map[string]int{},
		now:     func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	}
}

// Objects returns the keys stored in bucket, sorted.
func (m *MemoryS3) Objects(bucket string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortedKeys(m.buckets[bucket])
}

// StorageClass returns the class bucket/key was uploaded with.
func (m *MemoryS3) StorageClass(bucket, key string) types.StorageClass {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.classes[bucket+"/"+key]
}

// HasBucket reports whether bucket exists.
func (m *MemoryS3) HasBucket(bucket string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.buckets[bucket]
	return ok
}

func (m *MemoryS3) record(call string) {
	m.Calls = append(m.Calls, call)
}

// maxDeleteKeys mirrors the S3 limit on keys per DeleteObjects request.
const maxDeleteKeys = 1000

func apiError(code string) error {
	return &smithy.GenericAPIError{Code: code, Message: code}
}

func (m *MemoryS3) CreateBucket(_ context.Context, in *s3v2.CreateBucketInput, _ ...func(*s3v2.Options)) (*s3v2.CreateBucketOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CreateBucket")

	name := awsv2.ToString(in.Bucket)
	if _, ok := m.buckets[name]; ok {
		return nil, &types.BucketAlreadyOwnedByYou{Message: awsv2.String(name)}
	}
	m.buckets[name] = map[string][]byte{}
	return &s3v2.CreateBucketOutput{}, nil
}

func (m *MemoryS3) HeadBucket(_ context.Context, in *s3v2.HeadBucketInput, _ ...func(*s3v2.Options)) (*s3v2.HeadBucketOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("HeadBucket")

	name := awsv2.ToString(in.Bucket)
	if _, ok := m.buckets[name]; !ok {
		return nil, &types.NotFound{}
	}
	if m.heads[name] < m.HeadMisses {
		m.heads[name]++
		return nil, &types.NotFound{}
	}
	return &s3v2.HeadBucketOutput{}, nil
}

func (m *MemoryS3) PutObject(_ context.Context, in *s3v2.PutObjectInput, _ ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("PutObject")

	objects, ok := m.buckets[awsv2.ToString(in.Bucket)]
	if !ok {
		return nil, apiError("NoSuchBucket")
	}
	var body []byte
	if in.Body != nil {
		b, err := io.ReadAll(in.Body)
		if err != nil {
			return nil, err
		}
		body = b
	}
	objects[awsv2.ToString(in.Key)] = body
	m.classes[awsv2.ToString(in.Bucket)+"/"+awsv2.ToString(in.Key)] = in.StorageClass
	return &s3v2.PutObjectOutput{}, nil
}

func (m *MemoryS3) ListObjectsV2(_ context.Context, in *s3v2.ListObjectsV2Input, _ ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListObjectsV2")

	objects, ok := m.buckets[awsv2.ToString(in.Bucket)]
	if !ok {
		return nil, &types.NoSuchBucket{}
	}

	keys := sortedKeys(objects)
	start := 0
	if token := awsv2.ToString(in.ContinuationToken); token != "" {
		start = sort.SearchStrings(keys, token)
	}
	end := len(keys)
	if m.PageSize > 0 && start+m.PageSize < end {
		end = start + m.PageSize
	}

	out := &s3v2.ListObjectsV2Output{IsTruncated: awsv2.Bool(end < len(keys))}
	for _, k := range keys[start:end] {
		out.Contents = append(out.Contents, types.Object{
			Key:          awsv2.String(k),
			Size:         awsv2.Int64(int64(len(objects[k]))),
			LastModified: awsv2.Time(m.now()),
		})
	}
	if end < len(keys) {
		out.NextContinuationToken = awsv2.String(keys[end])
	}
	out.KeyCount = awsv2.Int32(int32(len(out.Contents))) //nolint:gosec
	return out, nil
}

func (m *MemoryS3) DeleteObjects(_ context.Context, in *s3v2.DeleteObjectsInput, _ ...func(*s3v2.Options)) (*s3v2.DeleteObjectsOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteObjects")

	objects, ok := m.buckets[awsv2.ToString(in.Bucket)]
	if !ok {
		return nil, &types.NoSuchBucket{}
	}
	if len(in.Delete.Objects) > maxDeleteKeys {
		return nil, apiError("MalformedXML")
	}
	out := &s3v2.DeleteObjectsOutput{}
	for _, id := range in.Delete.Objects {
		key := awsv2.ToString(id.Key)
		if _, ok := objects[key]; !ok {
			out.Errors = append(out.Errors, types.Error{
				Key:     id.Key,
				Code:    awsv2.String("NoSuchKey"),
				Message: awsv2.String("The specified key does not exist."),
			})
			continue
		}
		delete(objects, key)
		out.Deleted = append(out.Deleted, types.DeletedObject{Key: id.Key})
	}
	return out, nil
}

func (m *MemoryS3) DeleteBucket(_ context.Context, in *s3v2.DeleteBucketInput, _ ...func(*s3v2.Options)) (*s3v2.DeleteBucketOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("DeleteBucket")

	name := awsv2.ToString(in.Bucket)
	objects, ok := m.buckets[name]
	if !ok {
		return nil, apiError("NoSuchBucket")
	}
	if len(objects) > 0 {
		return nil, apiError("BucketNotEmpty")
	}
	delete(m.buckets, name)
	delete(m.heads, name)
	return &s3v2.DeleteBucketOutput{}, nil
}

func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

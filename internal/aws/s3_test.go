// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/scenarios/internal/aws/awstest"
	"github.com/staranto/scenarios/internal/retry"
)

var quick = retry.Config{Interval: time.Millisecond, MaxRetries: 3}

func TestBuckets_Lifecycle(t *testing.T) {
	ctx := context.Background()
	mem := awstest.NewMemoryS3()
	b := NewBuckets(mem, "eu-west-1", quick)

	require.NoError(t, b.Create(ctx, "demo"))
	assert.True(t, mem.HasBucket("demo"))

	require.NoError(t, b.Put(ctx, "demo", "b.txt", []byte("bravo"), ""))
	require.NoError(t, b.Put(ctx, "demo", "a.txt", []byte("a"), types.StorageClassStandardIa))
	assert.Equal(t, types.StorageClassStandardIa, mem.StorageClass("demo", "a.txt"))
	assert.Empty(t, mem.StorageClass("demo", "b.txt"))

	objects, err := b.List(ctx, "demo")
	require.NoError(t, err)
	require.Len(t, objects, 2)
	assert.Equal(t, "a.txt", objects[0].Key)
	assert.Equal(t, int64(1), objects[0].Size)
	assert.Equal(t, int64(5), objects[1].Size)
	assert.False(t, objects[0].LastModified.IsZero())

	require.NoError(t, b.Delete(ctx, "demo", []string{"a.txt"}))
	assert.Equal(t, []string{"b.txt"}, mem.Objects("demo"))

	require.NoError(t, b.Empty(ctx, "demo"))
	require.NoError(t, b.Remove(ctx, "demo"))
	assert.False(t, mem.HasBucket("demo"))
}

func TestBuckets_CreateWaitsForVisibility(t *testing.T) {
	ctx := context.Background()

	t.Run("visible within budget", func(t *testing.T) {
		mem := awstest.NewMemoryS3()
		mem.HeadMisses = 2
		require.NoError(t, NewBuckets(mem, "us-east-1", quick).Create(ctx, "slow"))
		assert.Equal(t, []string{"CreateBucket", "HeadBucket", "HeadBucket", "HeadBucket"}, mem.Calls)
	})

	t.Run("never visible", func(t *testing.T) {
		mem := awstest.NewMemoryS3()
		mem.HeadMisses = 10
		err := NewBuckets(mem, "us-east-1", quick).Create(ctx, "lost")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "never became visible")
		assert.True(t, IsNotFound(err))
	})
}

func TestBuckets_CreateAlreadyOwned(t *testing.T) {
	ctx := context.Background()
	mem := awstest.NewMemoryS3()
	b := NewBuckets(mem, "", quick)

	require.NoError(t, b.Create(ctx, "mine"))
	require.NoError(t, b.Create(ctx, "mine"))
}

func TestBuckets_ListPaginates(t *testing.T) {
	ctx := context.Background()
	mem := awstest.NewMemoryS3()
	mem.PageSize = 2
	b := NewBuckets(mem, "", quick)

	require.NoError(t, b.Create(ctx, "paged"))
	for i := 0; i < 5; i++ {
		require.NoError(t, b.Put(ctx, "paged", fmt.Sprintf("obj-%d", i), nil, ""))
	}

	objects, err := b.List(ctx, "paged")
	require.NoError(t, err)
	assert.Len(t, objects, 5)
	assert.Equal(t, "obj-4", objects[4].Key)
}

func TestBuckets_DeleteBatches(t *testing.T) {
	ctx := context.Background()
	mem := awstest.NewMemoryS3()
	b := NewBuckets(mem, "", quick)

	require.NoError(t, b.Create(ctx, "big"))
	for i := 0; i < 2500; i++ {
		require.NoError(t, b.Put(ctx, "big", fmt.Sprintf("obj-%04d", i), nil, ""))
	}

	deletes := func() int {
		n := 0
		for _, c := range mem.Calls {
			if c == "DeleteObjects" {
				n++
			}
		}
		return n
	}

	require.NoError(t, b.Empty(ctx, "big"))
	assert.Empty(t, mem.Objects("big"))
	assert.Equal(t, 3, deletes())

	require.NoError(t, b.Remove(ctx, "big"))
	assert.False(t, mem.HasBucket("big"))

	require.NoError(t, b.Delete(ctx, "big", nil))
	assert.Equal(t, 3, deletes(), "no keys, no request")
}

func TestMemoryS3_RejectsOversizedDelete(t *testing.T) {
	ctx := context.Background()
	mem := awstest.NewMemoryS3()
	require.NoError(t, NewBuckets(mem, "", quick).Create(ctx, "big"))

	ids := make([]types.ObjectIdentifier, MaxDeleteKeys+1)
	for i := range ids {
		ids[i] = types.ObjectIdentifier{Key: awsv2.String(fmt.Sprintf("k%d", i))}
	}
	_, err := mem.DeleteObjects(ctx, &s3v2.DeleteObjectsInput{
		Bucket: awsv2.String("big"),
		Delete: &types.Delete{Objects: ids},
	})
	assert.Equal(t, "MalformedXML", errorCode(err))
}

func TestBuckets_Errors(t *testing.T) {
	ctx := context.Background()
	mem := awstest.NewMemoryS3()
	b := NewBuckets(mem, "", quick)
	require.NoError(t, b.Create(ctx, "full"))
	require.NoError(t, b.Put(ctx, "full", "keep.txt", []byte("x"), ""))

	t.Run("put to missing bucket", func(t *testing.T) {
		err := b.Put(ctx, "missing", "k", nil, types.StorageClassStandard)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("delete unknown key", func(t *testing.T) {
		err := b.Delete(ctx, "full", []string{"nope.txt"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope.txt")
	})

	t.Run("delete nothing", func(t *testing.T) {
		assert.NoError(t, b.Delete(ctx, "full", nil))
	})

	t.Run("remove non-empty bucket", func(t *testing.T) {
		err := b.Remove(ctx, "full")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BucketNotEmpty")
	})

	t.Run("remove missing bucket", func(t *testing.T) {
		assert.NoError(t, b.Remove(ctx, "missing"))
	})
}

func TestBuckets_Exists(t *testing.T) {
	ctx := context.Background()
	mem := awstest.NewMemoryS3()
	b := NewBuckets(mem, "", quick)
	require.NoError(t, b.Create(ctx, "here"))

	ok, err := b.Exists(ctx, "here")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Exists(ctx, "gone")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "typed no such bucket", err: &types.NoSuchBucket{}, want: true},
		{name: "typed not found", err: fmt.Errorf("wrapped: %w", &types.NotFound{}), want: true},
		{name: "generic code", err: &smithy.GenericAPIError{Code: "NoSuchKey"}, want: true},
		{name: "other api error", err: &smithy.GenericAPIError{Code: "AccessDenied"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scenarios

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/staranto/scenarios/internal/aws"
	"github.com/staranto/scenarios/internal/config"
	"github.com/staranto/scenarios/internal/log"
	"github.com/staranto/scenarios/internal/output"
	"github.com/staranto/scenarios/internal/prompt"
	"github.com/staranto/scenarios/internal/retry"
	"github.com/staranto/scenarios/internal/scenario"
	"github.com/staranto/scenarios/internal/state"
)

const s3BasicsDescription = "Creates an S3 bucket, uploads, lists and deletes objects, then cleans up."

const s3Intro = `Amazon S3 stores objects in buckets. In this scenario you will:

  1. create a bucket
  2. upload one or more objects to it
  3. list what is in the bucket
  4. delete some or all of the objects
  5. delete the bucket`

func init() {
	Register(Entry{Name: "s3-basics", Description: s3BasicsDescription, Build: NewS3Basics})
}

// storageClasses are offered when uploading. The first is the default.
var storageClasses = []prompt.Choice{
	{Name: "Standard", Value: string(types.StorageClassStandard)},
	{Name: "Standard-IA", Value: string(types.StorageClassStandardIa)},
	{Name: "One Zone-IA", Value: string(types.StorageClassOnezoneIa)},
	{Name: "Intelligent-Tiering", Value: string(types.StorageClassIntelligentTiering)},
}

// storageChoices narrows storageClasses to the names listed under
// storage_classes in the config file. Unset or unmatched keeps them all.
func storageChoices() []prompt.Choice {
	names, _ := config.GetStringSlice("storage_classes")
	var out []prompt.Choice
	for _, c := range storageClasses {
		if slices.Contains(names, c.Name) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return storageClasses
	}
	return out
}

// NewS3Basics builds the S3 bucket walkthrough. The S3 client is created by
// the first action so the scenario can be listed and documented without AWS
// credentials.
func NewS3Basics(d Deps) *scenario.Scenario {
	var buckets *aws.Buckets

	connect := func(ctx context.Context, s state.State) error {
		client, region := d.S3, d.Region
		if client == nil {
			var opts []aws.Option
			if d.Region != "" {
				opts = append(opts, aws.WithRegion(d.Region))
			}
			if d.Profile != "" {
				opts = append(opts, aws.WithProfile(d.Profile))
			}
			cfg, err := aws.LoadAWSConfig(ctx, opts...)
			if err != nil {
				return errors.Wrap(err, "failed to load AWS config")
			}
			region = cfg.Region
			client = aws.NewS3(cfg, aws.WithS3Endpoint(d.Endpoint))
		}

		rc := d.Retry
		if rc == (retry.Config{}) {
			rc = retry.FromConfig(retry.Config{Interval: time.Second, MaxRetries: 10, Multiplier: 1.5})
		}
		buckets = aws.NewBuckets(client, region, rc)
		s["region"] = region
		log.Debugf("s3-basics connected: region=%s", region)
		return nil
	}

	createBucket := func(ctx context.Context, s state.State) error {
		if err := buckets.Create(ctx, s.String("bucket")); err != nil {
			return err
		}
		s["bucketCreated"] = true
		return nil
	}

	uploadObject := func(ctx context.Context, s state.State) error {
		uploaded := stringsOf(s["uploaded"])
		key := fmt.Sprintf("object-%d.txt", len(uploaded)+1)
		body := fmt.Sprintf("%s was uploaded by the %s scenario at %s.\n",
			key, s.String("name"), time.Now().UTC().Format(time.RFC3339))

		class := types.StorageClass(s.String("storageClass"))
		if err := buckets.Put(ctx, s.String("bucket"), key, []byte(body), class); err != nil {
			return err
		}
		s["uploaded"] = append(uploaded, key)
		return nil
	}

	listObjects := func(ctx context.Context, s state.State) error {
		objects, err := buckets.List(ctx, s.String("bucket"))
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(objects))
		rows := make([]map[string]interface{}, 0, len(objects))
		for _, o := range objects {
			keys = append(keys, o.Key)
			rows = append(rows, map[string]interface{}{
				"key":      o.Key,
				"size":     humanize.Bytes(uint64(max(o.Size, 0))), //nolint:gosec
				"modified": humanize.Time(o.LastModified),
			})
		}
		output.SortRows(rows, "key")
		output.Table(d.out(), []string{"key", "size", "modified"}, rows, false)

		s["objects"] = keys
		return nil
	}

	deleteObjects := func(ctx context.Context, s state.State) error {
		keys := stringsOf(s["objects"])
		if !s.Bool("deleteAll") {
			keys = stringsOf(s["toDelete"])
		}
		if err := buckets.Delete(ctx, s.String("bucket"), keys); err != nil {
			return err
		}
		s["deleted"] = keys
		return nil
	}

	deleteBucket := func(ctx context.Context, s state.State) error {
		bucket := s.String("bucket")
		if err := buckets.Empty(ctx, bucket); err != nil {
			return err
		}
		if err := buckets.Remove(ctx, bucket); err != nil {
			return err
		}
		s["bucketDeleted"] = true
		return nil
	}

	uploadLoop := scenario.WhileConfig{
		Output: scenario.NewOutputStep("uploaded", scenario.Derived(func(s state.State) string {
			uploaded := stringsOf(s["uploaded"])
			return fmt.Sprintf("Uploaded %s to %s.", uploaded[len(uploaded)-1], s.String("bucket"))
		}), d.say(scenario.Fast())...),
		Input: scenario.NewInputStep("uploadAnother", scenario.Literal("Upload another object?"),
			d.ask(scenario.WithType(scenario.TypeConfirm))...),
		InputEquals: true,
	}

	deletingAll := func(s state.State) bool { return s.Bool("deleteAll") }
	classes := storageChoices()

	steps := []scenario.Step{
		scenario.NewOutputStep("header", scenario.Literal("Amazon S3 basics"), d.say(scenario.Header())...),
		scenario.NewOutputStep("intro", scenario.Literal(s3Intro), d.say(scenario.Preformatted())...),
		scenario.NewActionStep("connect", connect),
		scenario.NewInputStep("bucket", scenario.Literal("Name for the new bucket:"),
			d.ask(scenario.WithDefault(fmt.Sprintf("scenarios-demo-%d", time.Now().Unix())))...),
		scenario.NewActionStep("createBucket", createBucket),
		scenario.NewOutputStep("created", scenario.Derived(func(s state.State) string {
			return fmt.Sprintf("Bucket %s is ready in %s.", s.String("bucket"), s.String("region"))
		}), d.say()...),
		scenario.NewInputStep("storageClass", scenario.Literal("Storage class for uploads:"),
			d.ask(scenario.WithType(scenario.TypeSelect), scenario.WithChoices(classes...),
				scenario.WithDefault(classes[0].Name))...),
		scenario.NewActionStep("uploadObject", uploadObject, scenario.While(uploadLoop)),
		scenario.NewActionStep("listObjects", listObjects),
		scenario.NewInputStep("deleteAll", scenario.Literal("Delete all objects?"),
			d.ask(scenario.WithType(scenario.TypeConfirm))...),
		scenario.NewInputStep("toDelete", scenario.Literal("Objects to delete:"),
			d.ask(scenario.WithType(scenario.TypeMultiSelect),
				scenario.WithChoicesFrom(func(s state.State) []prompt.Choice {
					return prompt.Choices(stringsOf(s["objects"])...)
				}),
				scenario.SkipWhen(deletingAll))...),
		scenario.NewActionStep("deleteObjects", deleteObjects),
		scenario.NewOutputStep("deletedCount", scenario.Derived(func(s state.State) string {
			return fmt.Sprintf("Deleted %d object(s).", s.Lookup("deleted.#").Int())
		}), d.say(scenario.Fast())...),
		scenario.NewInputStep("cleanup", scenario.Derived(func(s state.State) string {
			return fmt.Sprintf("Delete bucket %s and anything left in it?", s.String("bucket"))
		}), d.ask(scenario.WithType(scenario.TypeConfirm))...),
		scenario.NewActionStep("deleteBucket", deleteBucket,
			scenario.SkipWhen(func(s state.State) bool { return !s.Bool("cleanup") })),
		scenario.NewOutputStep("outcome", scenario.Derived(func(s state.State) string {
			if s.Bool("bucketDeleted") {
				return fmt.Sprintf("Bucket %s deleted.", s.String("bucket"))
			}
			return fmt.Sprintf("Bucket %s kept. Its details are saved in the state file.", s.String("bucket"))
		}), d.say()...),
		scenario.SaveStateStep(d.StatePath),
		scenario.NewOutputStep("goodbye", scenario.Literal("Thanks for running the S3 basics scenario."), d.say()...),
	}

	return scenario.New("s3-basics", steps, d.scenarioOptions(s3BasicsDescription)...)
}

// stringsOf reads a string list from the state bag. Lists come back as []any
// after a round trip through the state file.
func stringsOf(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	default:
		return nil
	}
}

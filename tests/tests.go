// Package tests carries per-test identity through a context so log lines
// and benchmark runs started from a test can be traced back to it.
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-containers/envutil"
	"github.com/amp-labs/amp-containers/logger"
	"github.com/google/uuid"
)

type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// Info identifies the test a context was created for.
type Info struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// GetUniqueContext derives a context from t.Context() tagged with a fresh
// "test-" id and the test name. The id doubles as the logger run id and the
// name as the logger subsystem.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := context.WithValue(t.Context(), testIdKey, id)
	ctx = context.WithValue(ctx, testNameKey, t.Name())
	ctx = logger.WithRunId(ctx, id)

	return logger.WithSubsystem(ctx, t.Name())
}

// GetTestInfo returns the identity stored by GetUniqueContext.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, idOk := ctx.Value(testIdKey).(string)
	name, nameOk := ctx.Value(testNameKey).(string)

	if !idOk && !nameOk {
		return Info{}, false
	}

	return Info{Id: id, Name: name}, true
}

// CheckSkipped skips t when the boolean variable envKey is true, or
// defaultValue when it is unset.
func CheckSkipped(ctx context.Context, t *testing.T, envKey string, defaultValue bool) {
	t.Helper()

	if envutil.Bool(ctx, envKey).ValueOrElse(defaultValue) {
		t.Skipf("skipping because %s is set", envKey)
	}
}

// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package containerstest

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogRecorder(t *testing.T) {
	rec := NewLogRecorder(logging.Debug)
	rec.Verbo("dropped")
	rec.With(zap.Int("len", 3)).Debug("kept", zap.Uint32("from", 4), zap.Int8("to", -8))
	rec.Info("also kept", zap.String("from", "not an integer"))

	require.Len(t, rec.Records, 2, "records at or above DEBUG")
	r := rec.Records[0]
	assert.Equal(t, logging.Debug, r.Level, "Level")
	assert.Equal(t, "kept", r.Msg, "Msg")

	for key, want := range map[string]int64{
		"len":  3,
		"from": 4,
		"to":   -8,
	} {
		got, ok := r.Field(key)
		if assert.Truef(t, ok, "Field(%q) found", key) {
			assert.Equalf(t, want, got, "Field(%q)", key)
		}
	}
	_, ok := r.Field("missing")
	assert.False(t, ok, "Field() of missing key")
	_, ok = rec.Records[1].Field("from")
	assert.False(t, ok, "Field() of string-typed field")
}

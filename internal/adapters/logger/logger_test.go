package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/SalimYassine/Minishell/internal/adapters/logger"
	"github.com/SalimYassine/Minishell/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestLogger_Pretty(t *testing.T) {
	tests := []struct {
		name       string
		log        func(l *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("starting shell") },
			goldenName: "logger_info",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("background flag ignored for pipelines") },
			goldenName: "logger_warn",
		},
		{
			name: "error chain with metadata",
			log: func(l *logger.Logger) {
				l.Error(zerr.With(zerr.Wrap(domain.ErrRedirectFailed, "missing.txt"), "reason", "no such file or directory"))
			},
			goldenName: "logger_error_chain",
		},
		{
			name: "error with job metadata",
			log: func(l *logger.Logger) {
				l.Error(zerr.With(zerr.With(zerr.Wrap(domain.ErrRedirectFailed, "missing.txt"), "reason", "no such file or directory"), "stage", 0))
			},
			goldenName: "logger_error_job",
		},
		{
			name:       "plain error",
			log:        func(l *logger.Logger) { l.Error(errors.New("exit status 2")) },
			goldenName: "logger_error_plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			tt.log(logger.NewWithOutput(buf))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.NewWithOutput(buf)

	l.Error(nil)
	l.SetJSON(true)
	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := logger.NewWithOutput(buf)
	l.SetJSON(true)

	l.Info("starting shell")
	l.Error(zerr.With(zerr.Wrap(domain.ErrCommandNotFound, "frobnicate"), "stage", 1))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "starting shell", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "frobnicate: command not found", failure["msg"])
	assert.InDelta(t, 1, failure["stage"], 0)
}

func TestLogger_SetJSONPreservesOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.NewWithOutput(buf)

	l.SetJSON(true)
	l.SetJSON(false)
	l.Info("back to pretty")

	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetOutputPreservesJSON(t *testing.T) {
	l := logger.NewWithOutput(&bytes.Buffer{})
	l.SetJSON(true)

	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	l.Warn("moved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
}

func TestLogger_SetOutputNil(t *testing.T) {
	l := logger.NewWithOutput(&bytes.Buffer{})
	assert.NotPanics(t, func() { l.SetOutput(nil) })
}

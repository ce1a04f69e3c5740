package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapPrompt replaces the survey prompt with a canned answer.
func swapPrompt(t *testing.T, answer bool, err error) *int {
	t.Helper()
	calls := 0
	orig := surveyAskOne
	surveyAskOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		calls++
		if err != nil {
			return err
		}
		*(response.(*bool)) = answer
		return nil
	}
	t.Cleanup(func() { surveyAskOne = orig })
	return &calls
}

func setupCacheDirs(t *testing.T) {
	t.Helper()
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { os.Chdir(wd) })
	require.NoError(t, os.MkdirAll(".timstof_cache", 0755))
	require.NoError(t, os.MkdirAll(".timstof_cache_optimized", 0755))
}

func TestCleanCmd_Force(t *testing.T) {
	setupCacheDirs(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	calls := swapPrompt(t, false, nil)

	cmd := newCleanCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--force"})

	require.NoError(t, cmd.Execute())

	assert.Zero(t, *calls, "--force must skip the prompt")
	assert.Contains(t, buf.String(), "original cache cleared")
	assert.Contains(t, buf.String(), "optimized cache cleared")

	_, err := os.Stat(".timstof_cache")
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(".timstof_cache_optimized")
	assert.True(t, os.IsNotExist(err))
}

func TestCleanCmd_Declined(t *testing.T) {
	setupCacheDirs(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	calls := swapPrompt(t, false, nil)

	cmd := newCleanCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())

	assert.Equal(t, 1, *calls)
	assert.Contains(t, buf.String(), "Aborted.")

	_, err := os.Stat(".timstof_cache")
	assert.NoError(t, err, "declining must leave the caches alone")
}

func TestCleanCmd_Confirmed(t *testing.T) {
	setupCacheDirs(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	swapPrompt(t, true, nil)

	cmd := newCleanCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(".timstof_cache")
	assert.True(t, os.IsNotExist(err))
}

func TestCleanCmd_MissingCachesIsFine(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { os.Chdir(wd) })
	viper.Reset()
	t.Cleanup(viper.Reset)

	cmd := newCleanCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--force"})

	require.NoError(t, cmd.Execute(), "clearing absent caches is idempotent")
	assert.Contains(t, buf.String(), "Clearing caches...")
}

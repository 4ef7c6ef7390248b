package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Building a 555 Timer Circuit": "building-a-555-timer-circuit",
		"  Arduino -- LED  Matrix!! ":  "arduino-led-matrix",
		"ESP32 & MQTT: Part 2":         "esp32-mqtt-part-2",
		"":                             "",
		"!!!":                          "",
	}
	for in, want := range cases {
		got := Slugify(in)
		require.Equal(t, want, got, "Slugify(%q)", in)
		if got != "" {
			require.True(t, SlugPattern.MatchString(got), "slug %q does not match pattern", got)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	require.Equal(t, []string{"arduino", "PCB"}, NormalizeTags([]string{" arduino", "PCB", "", "Arduino ", "pcb"}))
	require.NotNil(t, NormalizeTags(nil))
	require.Empty(t, NormalizeTags(nil))
}

func TestEstimateReadTime(t *testing.T) {
	require.Equal(t, 1, EstimateReadTime(""))
	require.Equal(t, 1, EstimateReadTime("a few words"))
	require.Equal(t, 2, EstimateReadTime(strings.Repeat("word ", 201)))
}

func TestBlogPostPatchColumns(t *testing.T) {
	title := "New title"
	status := StatusPublished
	tags := []string{"rf", "RF", "antenna"}

	patch := BlogPostPatch{Title: &title, Status: &status, Tags: &tags}
	cols := patch.Columns()

	require.Len(t, cols, 3)
	require.Equal(t, "New title", cols["title"])
	require.Equal(t, StatusPublished, cols["status"])
	require.EqualValues(t, []string{"rf", "antenna"}, cols["tags"])
	require.True(t, patch.Publishes())
	require.Empty(t, BlogPostPatch{}.Columns())
}

func TestFindColumnMismatches(t *testing.T) {
	got := findColumnMismatches([]string{"id", "title", "legacy_slug"}, []string{"id", "title"})
	require.Equal(t, []string{"legacy_slug"}, got)
}

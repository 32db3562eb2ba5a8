package main

import (
	"strings"
	"testing"

	"multitube/internal/testsupport"
)

const (
	testURLA = "https://www.youtube.com/watch?v=aaaaaaaaaaa"
	testURLB = "https://youtu.be/bbbbbbbbbbb"
	testURLC = "https://youtube.com/shorts/ccccccccccc"
)

func TestGroupListEmpty(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"group", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group list: %v", err)
	}
	requireContains(t, out, "No channel groups yet")
}

func TestGroupListSeedsDefaults(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithSeedDefaults(true))
	out, _, err := runCLI(t, []string{"group", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group list: %v", err)
	}
	requireContains(t, out, "News")
	requireContains(t, out, "Lo-fi")
}

func TestGroupCreateListShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"group", "create", "--name", "News", "--urls", testURLA + ", not-a-url", testURLB}, env.configPath, "")
	if err != nil {
		t.Fatalf("group create: %v", err)
	}
	requireContains(t, out, `Created group "News"`)
	requireContains(t, out, "with 2 channel(s)")
	requireContains(t, out, "Skipped 1 unrecognized URL(s)")

	out, _, err = runCLI(t, []string{"group", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group list: %v", err)
	}
	requireContains(t, out, "News")
	requireContains(t, out, "*")

	out, _, err = runCLI(t, []string{"group", "show", "news"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group show: %v", err)
	}
	requireContains(t, out, "== News ==")
	requireContains(t, out, "aaaaaaaaaaa")
	requireContains(t, out, "https://www.youtube.com/embed/bbbbbbbbbbb?")
	requireContains(t, out, "Layout: 1 row(s); 1/2/2 columns")
}

func TestGroupCreateValidation(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"group", "create", "--name", "  ", "--urls", testURLA}, env.configPath, "")
	if err == nil || err.Error() != "group name is required" {
		t.Fatalf("expected name validation error, got %v", err)
	}
	_, _, err = runCLI(t, []string{"group", "create", "--name", "News"}, env.configPath, "")
	if err == nil || err.Error() != "at least one YouTube URL is required" {
		t.Fatalf("expected url validation error, got %v", err)
	}

	out, _, err := runCLI(t, []string{"group", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group list: %v", err)
	}
	requireContains(t, out, "No channel groups yet")
}

func TestGroupCreateAcceptsOnlyUnrecognizedURLs(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"group", "create", "-n", "Odd", "https://vimeo.com/1"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group create: %v", err)
	}
	requireContains(t, out, "with 0 channel(s)")
}

func TestGroupUpdatePrefillsAndReplaces(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"group", "create", "-n", "News", "-u", testURLA + ", " + testURLB + ", " + testURLC}, env.configPath, ""); err != nil {
		t.Fatalf("group create: %v", err)
	}

	out, _, err := runCLI(t, []string{"group", "update", "1", "--name", "Headlines"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group update name: %v", err)
	}
	requireContains(t, out, `Updated group "Headlines"`)
	requireContains(t, out, "with 3 channel(s)")

	out, _, err = runCLI(t, []string{"group", "update", "headlines", testURLA, testURLC}, env.configPath, "")
	if err != nil {
		t.Fatalf("group update urls: %v", err)
	}
	requireContains(t, out, "with 2 channel(s)")

	out, _, err = runCLI(t, []string{"group", "show", "1"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group show: %v", err)
	}
	requireContains(t, out, "== Headlines ==")
	requireNotContains(t, out, "bbbbbbbbbbb")

	_, _, err = runCLI(t, []string{"group", "update", "1", "--urls", " "}, env.configPath, "")
	if err == nil || err.Error() != "at least one YouTube URL is required" {
		t.Fatalf("expected url validation error, got %v", err)
	}
}

func TestGroupDeleteConfirmation(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"group", "create", "-n", "News", testURLA}, env.configPath, ""); err != nil {
		t.Fatalf("group create: %v", err)
	}

	out, _, err := runCLI(t, []string{"group", "delete", "News"}, env.configPath, "n\n")
	if err != nil {
		t.Fatalf("group delete: %v", err)
	}
	requireContains(t, out, `Delete group "News"? [y/N]`)
	requireContains(t, out, "Aborted")

	out, _, err = runCLI(t, []string{"group", "delete", "News"}, env.configPath, "yes\n")
	if err != nil {
		t.Fatalf("group delete: %v", err)
	}
	requireContains(t, out, `Deleted group "News"`)

	out, _, err = runCLI(t, []string{"group", "list"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group list: %v", err)
	}
	requireContains(t, out, "No channel groups yet")
}

func TestGroupDeleteYesAndUnknown(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"group", "create", "-n", "News", testURLA}, env.configPath, ""); err != nil {
		t.Fatalf("group create: %v", err)
	}
	out, _, err := runCLI(t, []string{"group", "delete", "--yes", "1"}, env.configPath, "")
	if err != nil {
		t.Fatalf("group delete --yes: %v", err)
	}
	requireNotContains(t, out, "[y/N]")

	_, _, err = runCLI(t, []string{"group", "delete", "--yes", "missing"}, env.configPath, "")
	if err == nil || !strings.Contains(err.Error(), "group not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestEmbedCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	out, stderr, err := runCLI(t, []string{"embed", testURLA, "nope"}, env.configPath, "")
	if err == nil {
		t.Fatal("expected error for unrecognized URL")
	}
	requireContains(t, err.Error(), "1 of 2 URL(s)")
	requireContains(t, out, "https://www.youtube.com/embed/aaaaaaaaaaa?autoplay=1&controls=1&enablejsapi=1&modestbranding=1&mute=1&playsinline=1&rel=0")
	requireContains(t, stderr, `no video id found in "nope"`)
}

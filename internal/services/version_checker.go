package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/go-github/v80/github"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"golang.org/x/mod/semver"
)

// VersionChecker prints a best-effort "new version available" banner. It is
// cosmetic: every failure path is silent.
type VersionChecker struct {
	currentVersion string
	cachePath      string
	trans          *i18n.Translations
}

type updateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
}

func NewVersionChecker(version, cachePath string, trans *i18n.Translations) *VersionChecker {
	return &VersionChecker{
		currentVersion: version,
		cachePath:      cachePath,
		trans:          trans,
	}
}

func (v *VersionChecker) CheckForUpdates(ctx context.Context) {
	if os.Getenv("GITMOJI_DISABLE_UPDATE_CHECK") != "" {
		return
	}

	cache, err := v.loadCache()
	if err == nil && time.Since(cache.LastCheck) < 24*time.Hour {
		if cache.LatestKnown != "" && v.isUpdateAvailable(cache.LatestKnown) {
			v.printUpdateNotification(cache.LatestKnown)
		}
		return
	}

	client := github.NewClient(nil)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	release, _, err := client.Repositories.GetLatestRelease(ctx, "thomas-vilte", "gitmoji")
	if err != nil {
		return
	}

	latestVersion := release.GetTagName()

	_ = v.saveCache(updateCache{
		LastCheck:   time.Now(),
		LatestKnown: latestVersion,
	})

	if v.isUpdateAvailable(latestVersion) {
		v.printUpdateNotification(latestVersion)
	}
}

func (v *VersionChecker) isUpdateAvailable(latest string) bool {
	current := v.currentVersion
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return current != latest
	}

	return semver.Compare(latest, current) > 0
}

func (v *VersionChecker) printUpdateNotification(latest string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	msgAvailable := v.trans.GetMessage("update_available", 0, map[string]interface{}{
		"Current": v.currentVersion,
		"Latest":  green(latest),
	})
	msgCommand := v.trans.GetMessage("update_command", 0, map[string]interface{}{
		"Command": green("go install github.com/thomas-vilte/gitmoji/cmd@latest"),
	})

	fmt.Printf("\n%s %s\n%s\n\n", yellow("▲"), msgAvailable, msgCommand)
}

func (v *VersionChecker) loadCache() (updateCache, error) {
	data, err := os.ReadFile(v.cachePath)
	if err != nil {
		return updateCache{}, err
	}

	var cache updateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return updateCache{}, err
	}

	return cache, nil
}

func (v *VersionChecker) saveCache(cache updateCache) error {
	if err := os.MkdirAll(filepath.Dir(v.cachePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(v.cachePath, data, 0644)
}

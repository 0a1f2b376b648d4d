package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	domainErrors "github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

// Config is the persisted per-user configuration record.
type Config struct {
	AutoStage    bool               `json:"auto_stage"`
	EmojiFormat  models.EmojiFormat `json:"emoji_format"`
	ScopePrompt  bool               `json:"scope_prompt"`
	SignedCommit bool               `json:"signed_commit"`
	IssuePrompt  bool               `json:"issue_prompt"`
	Language     string             `json:"language,omitempty"`
}

const (
	defaultFormat = models.FormatCode
	defaultLang   = "en"
)

func defaultConfig() *Config {
	return &Config{
		AutoStage:    false,
		EmojiFormat:  defaultFormat,
		ScopePrompt:  false,
		SignedCommit: false,
		IssuePrompt:  false,
		Language:     defaultLang,
	}
}

// Load reads the configuration record at path. A missing record is not an
// error: the all-defaults record is returned so a first run needs no setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", path)
	}

	config := defaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, domainErrors.ErrConfigParse.WithError(err).WithContext("path", path)
	}

	// The record unmarshals onto the defaults, so an absent field keeps its
	// default. A present value outside the two known formats is a corrupt
	// record, not something to paper over.
	if config.EmojiFormat != models.FormatCode && config.EmojiFormat != models.FormatGlyph {
		return nil, domainErrors.ErrConfigParse.
			WithContext("path", path).
			WithContext("emoji_format", string(config.EmojiFormat))
	}
	if config.Language == "" {
		config.Language = defaultLang
	}

	return config, nil
}

// Save persists the whole record atomically: the new content is written to a
// temp file next to the target and renamed over it, never a partial write.
func Save(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return domainErrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return domainErrors.ErrConfigWrite.WithError(err)
	}

	tmp, err := os.CreateTemp(dir, "config-*.json")
	if err != nil {
		return domainErrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return domainErrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return domainErrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return domainErrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}

	return nil
}

// The accessors below re-load the record on every call, so an edit made by
// another process is visible on the next read.

func IsAutoStage(path string) (bool, error) {
	config, err := Load(path)
	if err != nil {
		return false, err
	}
	return config.AutoStage, nil
}

func EmojiFormat(path string) (models.EmojiFormat, error) {
	config, err := Load(path)
	if err != nil {
		return defaultFormat, err
	}
	return config.EmojiFormat, nil
}

func IsScopePromptEnabled(path string) (bool, error) {
	config, err := Load(path)
	if err != nil {
		return false, err
	}
	return config.ScopePrompt, nil
}

func IsSignedCommitEnabled(path string) (bool, error) {
	config, err := Load(path)
	if err != nil {
		return false, err
	}
	return config.SignedCommit, nil
}

func IsIssuePromptEnabled(path string) (bool, error) {
	config, err := Load(path)
	if err != nil {
		return false, err
	}
	return config.IssuePrompt, nil
}

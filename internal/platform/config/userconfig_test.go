// internal/platform/config/userconfig_test.go
package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"webchain/internal/platform/errors"
	"webchain/internal/platform/ui"
	"webchain/internal/testutil"
)

// scriptedAsker responde siempre lo mismo y cuenta las preguntas
type scriptedAsker struct {
	answer string
	err    error
	asked  int
}

func (a *scriptedAsker) Ask(context.Context, string) (string, error) {
	a.asked++
	return a.answer, a.err
}

func readUserConfig(t *testing.T, path string) UserConfig {
	t.Helper()
	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err, "read user config")
	var cfg UserConfig
	testutil.AssertNoError(t, json.Unmarshal(data, &cfg), "decode user config")
	return cfg
}

func TestUserConfigPath(t *testing.T) {
	testutil.AssertEqual(t, filepath.Base(UserConfigPath()), ".recon_config.json", "file name")
}

func TestLoadUserConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, rebuilt, err := LoadUserConfig(filepath.Join(dir, "missing.json"))
		testutil.AssertNoError(t, err, "load")
		testutil.AssertFalse(t, rebuilt, "not rebuilt")
		testutil.AssertEqual(t, cfg, UserConfig{}, "defaults")
	})

	t.Run("valid file", func(t *testing.T) {
		path := testutil.WriteLines(t, dir, "valid.json", `{"gemini_api_key": "abc"}`)
		cfg, rebuilt, err := LoadUserConfig(path)
		testutil.AssertNoError(t, err, "load")
		testutil.AssertFalse(t, rebuilt, "not rebuilt")
		testutil.AssertEqual(t, cfg.GeminiAPIKey, "abc", "key")
	})

	t.Run("corrupted file is rebuilt", func(t *testing.T) {
		path := testutil.WriteLines(t, dir, "corrupt.json", `{"gemini_api_key": `)
		cfg, rebuilt, err := LoadUserConfig(path)
		testutil.AssertNoError(t, err, "load")
		testutil.AssertTrue(t, rebuilt, "rebuilt")
		testutil.AssertEqual(t, cfg, UserConfig{}, "defaults")
		testutil.AssertEqual(t, readUserConfig(t, path), UserConfig{}, "file rewritten")
	})
}

func TestSaveUserConfig_Mode(t *testing.T) {
	path := testutil.WriteLines(t, t.TempDir(), "cfg.json", "{}")
	testutil.AssertNoError(t, os.Chmod(path, 0o644), "chmod")

	testutil.AssertNoError(t, SaveUserConfig(path, UserConfig{GeminiAPIKey: "k"}), "save")

	info, err := os.Stat(path)
	testutil.AssertNoError(t, err, "stat")
	testutil.AssertEqual(t, info.Mode().Perm(), os.FileMode(0o600), "mode 0600")
	testutil.AssertEqual(t, readUserConfig(t, path).GeminiAPIKey, "k", "content")
}

func TestEnsureAPIKey(t *testing.T) {
	presenter := ui.NewNoopPresenter()

	t.Run("stored key is used without asking", func(t *testing.T) {
		path := testutil.WriteLines(t, t.TempDir(), "cfg.json", `{"gemini_api_key": "stored"}`)
		asker := &scriptedAsker{answer: "other"}

		key, err := EnsureAPIKey(context.Background(), path, asker, presenter)

		testutil.AssertNoError(t, err, "ensure")
		testutil.AssertEqual(t, key, "stored", "stored key")
		testutil.AssertEqual(t, asker.asked, 0, "never asked")
	})

	t.Run("first-time setup saves the answer", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.json")
		asker := &scriptedAsker{answer: "  new-key  "}

		key, err := EnsureAPIKey(context.Background(), path, asker, presenter)

		testutil.AssertNoError(t, err, "ensure")
		testutil.AssertEqual(t, key, "new-key", "trimmed key")
		testutil.AssertEqual(t, asker.asked, 1, "asked once")
		testutil.AssertEqual(t, readUserConfig(t, path).GeminiAPIKey, "new-key", "saved")
	})

	t.Run("empty answer is saved and disables AI", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.json")

		key, err := EnsureAPIKey(context.Background(), path, &scriptedAsker{}, presenter)

		testutil.AssertNoError(t, err, "ensure")
		testutil.AssertEqual(t, key, "", "no key")
		testutil.AssertEqual(t, readUserConfig(t, path), UserConfig{}, "defaults saved")
	})

	t.Run("interrupt propagates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cfg.json")
		asker := &scriptedAsker{err: errors.Wrap(errors.ErrInterrupted, "prompt")}

		_, err := EnsureAPIKey(context.Background(), path, asker, presenter)

		testutil.AssertTrue(t, errors.IsInterrupted(err), "interrupted")
		_, statErr := os.Stat(path)
		testutil.AssertTrue(t, os.IsNotExist(statErr), "nothing saved")
	})
}

// internal/platform/config/userconfig.go
package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"webchain/internal/platform/errors"
	"webchain/internal/platform/ui"
)

// UserConfigFile es el archivo de secretos del operador, en su home.
const UserConfigFile = ".recon_config.json"

// UserConfig es el contenido de ~/.recon_config.json.
type UserConfig struct {
	GeminiAPIKey string `json:"gemini_api_key"`
}

// UserConfigPath retorna la ruta del archivo de secretos.
func UserConfigPath() string {
	return filepath.Join(xdg.Home, UserConfigFile)
}

// LoadUserConfig lee path. Un archivo inexistente retorna la configuración
// por defecto; uno corrupto se reescribe con los defaults y rebuilt es true.
func LoadUserConfig(path string) (cfg UserConfig, rebuilt bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return UserConfig{}, false, nil
	}
	if err != nil {
		return UserConfig{}, false, errors.Wrapf(err, "read %s", path)
	}

	if jerr := json.Unmarshal(data, &cfg); jerr != nil {
		if err := SaveUserConfig(path, UserConfig{}); err != nil {
			return UserConfig{}, true, err
		}
		return UserConfig{}, true, nil
	}
	return cfg, false, nil
}

// SaveUserConfig escribe cfg con permisos 0600.
func SaveUserConfig(path string, cfg UserConfig) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return errors.Wrap(err, "encode user config")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	// WriteFile no cambia el modo de un archivo existente
	if err := os.Chmod(path, 0o600); err != nil {
		return errors.Wrapf(err, "chmod %s", path)
	}
	return nil
}

// Asker lee una respuesta del operador.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// EnsureAPIKey retorna la API key de Gemini guardada en path. Si no hay,
// la pide una vez y guarda la respuesta (aunque sea vacía).
func EnsureAPIKey(ctx context.Context, path string, asker Asker, presenter ui.Presenter) (string, error) {
	cfg, rebuilt, err := LoadUserConfig(path)
	if err != nil {
		return "", err
	}
	if rebuilt {
		presenter.Error("Config file is corrupted. Rebuilding it.")
	}
	if key := strings.TrimSpace(cfg.GeminiAPIKey); key != "" {
		return key, nil
	}

	presenter.Info("AI configuration required: enter your Gemini API key to enable endpoint analysis.")
	answer, err := asker.Ask(ctx, "Gemini API Key: ")
	if err != nil {
		return "", err
	}

	key := strings.TrimSpace(answer)
	if err := SaveUserConfig(path, UserConfig{GeminiAPIKey: key}); err != nil {
		return "", err
	}

	if key == "" {
		presenter.Warning("No API key provided. AI will not run.")
		return "", nil
	}
	presenter.Success("Gemini API key saved.")
	return key, nil
}

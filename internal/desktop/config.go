// Package desktop registers the server in the Claude Desktop configuration
// file so the client launches it over stdio.
package desktop

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ServerEntry is one mcpServers entry in claude_desktop_config.json
type ServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// DefaultConfigPath returns the Claude Desktop config location for the
// current platform
func DefaultConfigPath() string {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return ""
		}
		return filepath.Join(appData, "Claude", "claude_desktop_config.json")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", "Claude", "claude_desktop_config.json")
	}
}

// Register adds or replaces a server entry, preserving everything else in
// the file. The config may not exist yet; env holds secrets, so the file is
// written user-only.
func Register(path, name string, entry ServerEntry) error {
	if path == "" {
		return errors.New("desktop config path is empty")
	}

	doc := map[string]json.RawMessage{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("existing config %s is not valid JSON: %w", path, err)
		}
	case os.IsNotExist(err):
		// Fresh install: start from an empty document
	default:
		return err
	}

	servers := map[string]json.RawMessage{}
	if raw, ok := doc["mcpServers"]; ok {
		if err := json.Unmarshal(raw, &servers); err != nil {
			return fmt.Errorf("mcpServers in %s is not an object: %w", path, err)
		}
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	servers[name] = encoded

	if doc["mcpServers"], err = json.Marshal(servers); err != nil {
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o600)
}

// SPDX-License-Identifier: Apache-2.0

package confres

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conflayer/confres/internal/xdg"
)

func writeTempProperties(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "app.properties")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadPropertiesFile_Basic(t *testing.T) {
	path := writeTempProperties(t, "app.name=svc\napp.timeout=30\n")
	values, err := LoadPropertiesFile(PropertiesFileRecord{Path: path, Required: true})
	require.NoError(t, err)
	assert.Equal(t, "svc", values["app.name"])
	assert.Equal(t, "30", values["app.timeout"])
}

func TestLoadPropertiesFile_MissingRequired(t *testing.T) {
	_, err := LoadPropertiesFile(PropertiesFileRecord{Path: "/nonexistent/app.properties", Required: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing required .properties file for configuration: /nonexistent/app.properties")
}

func TestLoadPropertiesFile_MissingOptional(t *testing.T) {
	values, err := LoadPropertiesFile(PropertiesFileRecord{Path: "/nonexistent/app.properties", Required: false})
	require.NoError(t, err)
	assert.Nil(t, values)
}

func TestLoadPropertiesFile_ResourceRoot(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	appDir := filepath.Join(dir, xdg.AppName)
	require.NoError(t, os.MkdirAll(appDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "app.properties"), []byte("k=v\n"), 0o600))

	values, err := LoadPropertiesFile(PropertiesFileRecord{Path: "app.properties", IsResource: true, Required: true})
	require.NoError(t, err)
	assert.Equal(t, "v", values["k"])
}

// SPDX-License-Identifier: Apache-2.0

package confres

import (
	"os"
	"path/filepath"

	"github.com/magiconair/properties"

	"github.com/conflayer/confres/internal/xdg"
)

// PropertiesFileRecord describes one Java-style .properties file to load as
// a configuration layer.
type PropertiesFileRecord struct {
	// Path is the file location. If IsResource is true, a relative Path is
	// joined against the XDG config directory for xdg.AppName; an absolute
	// Path is used as-is either way.
	Path string
	// IsResource selects the packaged-resource root described above.
	IsResource bool
	// Required controls what happens when the file does not exist: if
	// true, LoadPropertiesFile returns a missingFileError; if false, it
	// returns (nil, nil) and the layer is silently skipped.
	Required bool
}

// LoadPropertiesFile reads rec's file and returns its key/value pairs, or
// (nil, nil) if the file is optional and absent.
func LoadPropertiesFile(rec PropertiesFileRecord) (map[string]string, error) {
	path := rec.Path
	if rec.IsResource && !filepath.IsAbs(path) {
		dir, err := xdg.ConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, path)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			if rec.Required {
				return nil, missingFileError(path)
			}
			return nil, nil
		}
		return nil, missingFileError(path)
	}

	props, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, oopsPropertiesParseError(path, err)
	}
	return props.Map(), nil
}

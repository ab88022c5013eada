// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// NextAvailable returns a path at which no file currently exists. If path
// itself is free it is returned unchanged; otherwise numeric suffixes are
// probed (stem_1.ext, stem_2.ext, ...) until a free name is found. There is
// no upper bound on the suffix. The probe has no side effects and offers no
// exclusivity guarantee: single-threaded use only.
func NextAvailable(path string) (string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	candidate := path
	for i := 1; ; i++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("probing %s: %w", candidate, err)
		}
		candidate = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
}

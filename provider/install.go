package provider

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/url"
	"path"
	"path/filepath"

	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/network"
	"github.com/AvaAvarai/IndimensionalYoutube/provider/custom"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
)

// Install downloads a Lua provider into the sources directory.
// It reports changed = false when the local copy already has the same content.
// The script is loaded once before it replaces the old file, so a broken
// download never overwrites a working provider.
func Install(ctx context.Context, rawURL string) (dest string, changed bool, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false, err
	}

	name := path.Base(u.Path)
	if filepath.Ext(name) != CustomProviderExtension {
		return "", false, fmt.Errorf("%s does not point to a %s file", rawURL, CustomProviderExtension)
	}

	body, err := network.Get(ctx, network.Client, rawURL)
	if err != nil {
		return "", false, err
	}

	dest = filepath.Join(where.Sources(), name)
	if local, err := filesystem.API().ReadFile(dest); err == nil && sha256.Sum256(local) == sha256.Sum256([]byte(body)) {
		return dest, false, nil
	}

	tmp := dest + ".tmp"
	if err := filesystem.API().WriteFile(tmp, []byte(body), 0o644); err != nil {
		return "", false, err
	}

	src, err := custom.LoadSource(tmp)
	if err != nil {
		_ = filesystem.API().Remove(tmp)
		return "", false, fmt.Errorf("downloaded provider is invalid: %w", err)
	}
	if closer, ok := src.(io.Closer); ok {
		_ = closer.Close()
	}

	if err := filesystem.API().Rename(tmp, dest); err != nil {
		_ = filesystem.API().Remove(tmp)
		return "", false, err
	}

	log.Infof("installed provider %s from %s", name, rawURL)
	return dest, true, nil
}

package user

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ProfileMeta contains the name and full filepath of a profile
type ProfileMeta struct {
	Name     string
	Filepath string
}

// Profiles returns the meta of every profile saved in the CLI home directory
func Profiles() ([]ProfileMeta, error) {
	dir, err := HomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get CLI profiles: %w", err)
	}
	return ProfilesFromFs(afero.NewOsFs(), dir)
}

// ProfilesFromFs returns the meta of every profile saved in dir
func ProfilesFromFs(fs afero.Fs, dir string) ([]ProfileMeta, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get CLI profiles: %w", err)
	}
	if !exists {
		return nil, nil
	}

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to get CLI profiles: %w", err)
	}

	metas := make([]ProfileMeta, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != "."+ProfileType {
			continue
		}
		metas = append(metas, ProfileMeta{
			Name:     strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Filepath: filepath.Join(dir, entry.Name()),
		})
	}
	return metas, nil
}

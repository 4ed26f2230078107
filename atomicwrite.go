package fffslice

import (
	"os"
	"path/filepath"
)

// writeAtomic writes content to path by first writing a temp file in
// the same directory and renaming it into place, so a crash or error
// mid-write never leaves a partial output file - spec §7's "no
// partial output file is left behind" requirement. This upgrades the
// teacher's plain os.Create-based writer.Writer to the required
// write-temp-then-rename sequence.
func writeAtomic(path string, content string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".fffslice-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

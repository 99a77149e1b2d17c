// Package ucs extracts configuration files from BIG-IP UCS archives. A
// UCS archive is a gzip-compressed tar file; the configuration lives in
// .conf files directly below its config/ directory.
package ucs

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Extension is the file suffix of UCS archives.
const Extension = ".ucs"

const configPrefix = "config/"

// Extract opens the archive and returns the contents of all top-level
// .conf files below config/, keyed by base name.
func Extract(filename string) (map[string]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open archive")
	}
	defer f.Close()

	files, err := extract(f)
	if err != nil {
		return nil, errors.WithMessage(err, filename)
	}

	return files, nil
}

// extract reads a gzip-compressed tar stream and collects the config
// files. Nested files, non-.conf files and non-regular members are
// skipped.
func extract(rd io.Reader) (map[string]string, error) {
	gz, err := gzip.NewReader(rd)
	if err != nil {
		return nil, errors.Wrap(err, "read gzip header")
	}
	defer gz.Close()

	files := make(map[string]string)
	tr := tar.NewReader(gz)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read tar")
		}

		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		name := path.Clean(hdr.Name)
		if !strings.HasPrefix(name, configPrefix) {
			continue
		}

		base := strings.TrimPrefix(name, configPrefix)
		if strings.Contains(base, "/") || !strings.HasSuffix(base, ".conf") {
			continue
		}

		buf, err := ioutil.ReadAll(tr)
		if err != nil {
			return nil, errors.Wrap(err, base)
		}

		files[base] = string(buf)
	}

	return files, nil
}

package bigip

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// excludedNames mark files that are never parsed: certificate and key
// bundles, the generated script config and the license file.
var excludedNames = []string{"Common_d", "bigip_script.conf", ".license"}

// Excluded reports whether the named file is skipped during parsing.
func Excluded(name string) bool {
	for _, s := range excludedNames {
		if strings.Contains(name, s) {
			return true
		}
	}

	return false
}

// ParseFile parses the text of a single configuration file into its root
// objects. All transient state lives within this call, so independent
// files may be parsed concurrently as long as merging the results is
// serialized.
func ParseFile(text string) (*Object, []Warning, error) {
	lines, err := preprocess(text)
	if err != nil {
		return nil, nil, err
	}

	groups, err := groupObjects(lines)
	if err != nil {
		return nil, nil, err
	}

	doc := NewObject()
	var warns []Warning

	for _, group := range groups {
		key, value, err := buildObject(group, &warns)
		if err != nil {
			return nil, nil, err
		}

		doc.Set(key, value)
	}

	return doc, warns, nil
}

// Parse converts the given configuration files into one document. Files
// are processed in sorted name order, a root object defined in a later
// file replaces an earlier one of the same name. Excluded files contribute
// nothing. The returned warnings are non-fatal; any returned error voids
// the whole batch, no partial document is returned.
func Parse(files map[string]string) (*Object, []Warning, error) {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := NewObject()
	var warns []Warning

	for _, name := range names {
		if Excluded(name) {
			continue
		}

		fileDoc, fileWarns, err := ParseFile(files[name])
		if err != nil {
			return nil, nil, errors.WithMessage(err, "error parsing input file")
		}

		for _, w := range fileWarns {
			w.File = name
			warns = append(warns, w)
		}

		for _, key := range fileDoc.Keys() {
			value, _ := fileDoc.Get(key)
			doc.Set(key, value)
		}
	}

	return doc, warns, nil
}

package config

import (
	"fmt"
	"io/ioutil"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tkrajina/go-reflector/reflector"
)

// Config holds all information parsed from a configuration file.
type Config struct {
	OutputDir string `name:"output_dir"`
	Indent    int    `name:"indent"`
}

// fieldForName returns the field matching the name, either directly (via
// strings.ToLower()) or via the tag. If the field is not found, an error is
// returned.
func fieldForName(obj *reflector.Obj, name, tag string) (*reflector.ObjField, error) {
	for _, field := range obj.FieldsAll() {
		if name == strings.ToLower(field.Name()) {
			return &field, nil
		}

		fieldTag, err := field.Tag(tag)
		if err == nil && name == fieldTag {
			return &field, nil
		}
	}

	return nil, fmt.Errorf("field %q not found", name)
}

// updateField takes care of updating the given field with the value. The
// value is converted according to the target field's type.
func updateField(field *reflector.ObjField, value string) error {
	switch field.Kind() {
	case reflect.String:
		s, err := unquoteString(value)
		if err != nil {
			return err
		}
		return field.Set(s)
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		return field.Set(n)
	}

	return field.Set(value)
}

// apply takes the keys in the map and applies them to the object.
func apply(data map[string]string, tag string, target interface{}) error {
	obj := reflector.New(target)
	if !obj.IsPtr() {
		return errors.New("object is not a pointer")
	}

	for key, value := range data {
		field, err := fieldForName(obj, key, tag)
		if err != nil {
			return errors.WithMessage(err, key)
		}

		err = updateField(field, value)
		if err != nil {
			return errors.WithMessage(err, key)
		}
	}

	return nil
}

// Load reads and parses the configuration file.
func Load(filename string) (Config, error) {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}

	state, err := Parse(string(buf))
	if err != nil {
		return Config{}, errors.WithMessage(err, filename)
	}

	cfg := Config{}
	if err := apply(state.Statements, "name", &cfg); err != nil {
		return Config{}, errors.WithMessage(err, filename)
	}

	return cfg, nil
}

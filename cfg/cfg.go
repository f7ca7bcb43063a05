package cfg

import (
	_ "embed"
	"fmt"
	"io/fs"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

//go:embed default.yaml
var defCfgBytes []byte

// Root represents root settings of the program
type Root struct {
	// Source represents path of the image file to copy
	Source string `koanf:"source"`

	// DestName represents file name of every copy. Should not contain path separators.
	DestName string `koanf:"dest_name"`

	// DirPerm represents permissions of created target directories
	DirPerm fs.FileMode `koanf:"dir_perm"`

	// Targets represents the list of directories to copy the source file into.
	//
	// Order only affects output order. Duplicates are not removed.
	Targets []string `koanf:"targets"`
}

// NewDefCfg returns new default config
func NewDefCfg() Root {
	return Root{
		Source:   "assets/ship.png",
		DestName: "ic_launcher.png",
		DirPerm:  0755,
		Targets: []string{
			"android/res/drawable-hdpi",
			"android/res/drawable-mdpi",
			"android/res/drawable-xhdpi",
			"android/res/drawable-xxhdpi",
			"android/res/drawable-xxxhdpi",
		},
	}
}

// BadValueError represents error thrown if config field has invalid value
type BadValueError struct {
	Field  string
	Reason string
}

// Error is used to satisfy golang error interface
func (e BadValueError) Error() string {
	return fmt.Sprintf("Bad value of config field '%v': %v", e.Field, e.Reason)
}

// Validate returns BadValueError if any field of <r> can not be used to copy files
func (r Root) Validate() error {
	switch {
	case r.Source == "":
		return BadValueError{Field: "source", Reason: "must not be empty"}
	case r.DestName == "":
		return BadValueError{Field: "dest_name", Reason: "must not be empty"}
	case strings.ContainsAny(r.DestName, `/\`):
		return BadValueError{Field: "dest_name", Reason: "must be a file name, not a path"}
	case len(r.Targets) == 0:
		return BadValueError{Field: "targets", Reason: "must contain at least one directory"}
	}
	return nil
}

// Init returns config instance built from defaults embedded into the program.
//
// Can return errors defined in this package: BadValueError.
func Init(log *logrus.Logger) (Root, error) {
	return load(log, defCfgBytes)
}

// load returns config instance decoded from YAML <data>
func load(log *logrus.Logger, data []byte) (Root, error) {
	log.Debug("Reading program config")

	var root Root
	ko := koanf.New(".")
	if err := ko.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return root, errors.Wrap(err, "Load config")
	}

	decoder := mapstructure.ComposeDecodeHookFunc(
		// Parse octal permissions such as '0755'
		func(from, to reflect.Type, fromData any) (any, error) {
			if to == reflect.TypeOf(fs.FileMode(0)) && from.Kind() == reflect.String {
				perm, err := strconv.ParseUint(reflect.ValueOf(fromData).String(), 8, 32)
				if err != nil {
					return nil, errors.Wrap(err, "Parse permissions")
				}
				return fs.FileMode(perm), nil
			}
			return fromData, nil
		},
	)
	err := ko.UnmarshalWithConf("", &root, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:           decoder,
			ErrorUnused:          true,
			IgnoreUntaggedFields: true,
			Result:               &root,
			WeaklyTypedInput:     true,
			ZeroFields:           true,
		},
	})
	if err != nil {
		return root, errors.Wrap(err, "Decode config")
	}

	if err := root.Validate(); err != nil {
		return root, errors.Wrap(err, "Check config")
	}

	log.Debugf("Source: %v, destination name: %v, targets: %v", root.Source, root.DestName, len(root.Targets))
	return root, nil
}

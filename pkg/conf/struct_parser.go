// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package conf

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/camelcase"
	"github.com/pkg/errors"
)

const (
	// Tag for specifying the help description of the field. [Required]
	helpTag = "help"
	// Tag for specifying default value for field. [Optional]
	defaultTag = "default"
	// Tag for overriding the name of the field. [Optional]
	nameTag = "name"
	// Tag for specifying that the flag is required. [Optional]
	requiredTag = "required"
	// Special field name indicating prefix for all flags in struct.
	prefixFieldName = "flagPrefix"
)

// Process defines flags for every tagged field of the struct pointed by data
// and fills the fields with current flag values.
// It is safe to call Process more than once for the same struct type: the first
// call registers the flags, calls after parsing read the parsed values.
func Process(data interface{}) error {
	s := &structProcessor{
		data: reflect.ValueOf(data),
	}
	return s.process()
}

type structProcessor struct {
	data       reflect.Value
	typeOfData reflect.Type
}

func (s *structProcessor) validate() error {
	if s.data.Kind() != reflect.Ptr {
		return errors.Errorf("argument needs to be a pointer to struct, got %s", s.data.Kind())
	}

	if s.data.Elem().Kind() != reflect.Struct {
		return errors.Errorf("argument needs to be a pointer to struct, got pointer to %s", s.data.Elem().Kind())
	}

	return nil
}

func (s *structProcessor) process() error {
	if err := s.validate(); err != nil {
		return err
	}

	dataValue := s.data.Elem()
	s.typeOfData = dataValue.Type()

	prefix := ""
	if prefixField := dataValue.FieldByName(prefixFieldName); prefixField.IsValid() && prefixField.Kind() == reflect.String {
		prefix = prefixField.String()
	}

	for i := 0; i < dataValue.NumField(); i++ {
		field := dataValue.Field(i)
		if !field.CanSet() {
			continue
		}

		// Embedded structs are not processed.
		if s.typeOfData.Field(i).Anonymous && field.Kind() == reflect.Struct {
			continue
		}

		f := &fieldProcessor{
			prefix:      prefix,
			field:       field,
			fieldStruct: s.typeOfData.Field(i),
		}
		if err := f.process(); err != nil {
			return errors.Wrapf(err, "cannot process field %q", f.fieldStruct.Name)
		}
	}
	return nil
}

// nameFromFieldName turns e.g. CassandraKeyspaceName into cassandra_keyspace_name.
func nameFromFieldName(name string) string {
	words := camelcase.Split(name)
	wordsToUse := []string{}
	for _, word := range words {
		if word == "_" {
			continue
		}
		wordsToUse = append(wordsToUse, strings.ToLower(word))
	}

	return strings.Join(wordsToUse, "_")
}

type fieldProcessor struct {
	prefix      string
	field       reflect.Value
	fieldStruct reflect.StructField
}

func (f *fieldProcessor) isAnyTagSpecified() bool {
	for _, tag := range []string{nameTag, defaultTag, requiredTag, helpTag} {
		if f.fieldStruct.Tag.Get(tag) != "" {
			return true
		}
	}
	return false
}

func (f *fieldProcessor) flagName() string {
	name := f.fieldStruct.Tag.Get(nameTag)
	if name == "" {
		name = f.fieldStruct.Name
	}
	return nameFromFieldName(f.prefix + name)
}

func (f *fieldProcessor) isDurationType() bool {
	return f.field.Type() == reflect.TypeOf(time.Duration(0))
}

func (f *fieldProcessor) process() error {
	help := f.fieldStruct.Tag.Get(helpTag)
	if help == "" {
		if f.isAnyTagSpecified() {
			return errors.New("help tag is missing")
		}
		// Untagged fields are not flags.
		return nil
	}

	name := f.flagName()
	defaultValue := f.fieldStruct.Tag.Get(defaultTag)

	var flagClause *cliAndEnvFlag

	switch f.field.Kind() {
	case reflect.String:
		flag := NewStringFlag(name, help, defaultValue)
		f.field.SetString(flag.Value())
		flagClause = flag.cliAndEnvFlag

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f.isDurationType() {
			var defaultDuration time.Duration
			if defaultValue != "" {
				var err error
				defaultDuration, err = time.ParseDuration(defaultValue)
				if err != nil {
					return errors.Wrap(err, "wrong default value for duration flag")
				}
			}
			flag := NewDurationFlag(name, help, defaultDuration)
			f.field.SetInt(int64(flag.Value()))
			flagClause = flag.cliAndEnvFlag
			break
		}

		var defaultInt int
		if defaultValue != "" {
			var err error
			defaultInt, err = strconv.Atoi(defaultValue)
			if err != nil {
				return errors.Wrap(err, "wrong default value for int flag")
			}
		}
		flag := NewIntFlag(name, help, defaultInt)
		f.field.SetInt(int64(flag.Value()))
		flagClause = flag.cliAndEnvFlag

	case reflect.Float32, reflect.Float64:
		var defaultFloat float64
		if defaultValue != "" {
			var err error
			defaultFloat, err = strconv.ParseFloat(defaultValue, 64)
			if err != nil {
				return errors.Wrap(err, "wrong default value for float flag")
			}
		}
		flag := NewFloatFlag(name, help, defaultFloat)
		f.field.SetFloat(flag.Value())
		flagClause = flag.cliAndEnvFlag

	case reflect.Bool:
		var defaultBool bool
		if defaultValue != "" {
			var err error
			defaultBool, err = strconv.ParseBool(defaultValue)
			if err != nil {
				return errors.Wrap(err, "wrong default value for bool flag")
			}
		}
		flag := NewBoolFlag(name, help, defaultBool)
		f.field.SetBool(flag.Value())
		flagClause = flag.cliAndEnvFlag

	case reflect.Slice:
		if f.field.Type() != reflect.TypeOf([]string(nil)) {
			return errors.Errorf("%s type not supported for a slice flag", f.field.Type())
		}

		var defaultSlice StringListValue
		if defaultValue != "" {
			(&defaultSlice).Set(defaultValue)
		}
		flag := NewSliceFlag(name, help, defaultSlice...)
		values := flag.Value()
		slice := reflect.MakeSlice(f.field.Type(), len(values), len(values))
		for i, value := range values {
			slice.Index(i).SetString(value)
		}
		f.field.Set(slice)
		flagClause = flag.cliAndEnvFlag

	default:
		return errors.Errorf("%s type not supported for a flag", f.field.Type())
	}

	if f.fieldStruct.Tag.Get(requiredTag) == "true" {
		flagClause.Required()
	}

	return nil
}

package main

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// -------------------------------------------------------------------
// Query helpers
// -------------------------------------------------------------------

// splitQuery turns "Section.Key" into its two parts.
func splitQuery(query string) (string, string, error) {
	parts := strings.Split(query, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid query: '%s'", query)
	}
	return parts[0], parts[1], nil
}

// findFieldByINITag locates a field by its `ini` tag. If no `ini` tag is
// present, it falls back to matching by field name.
func findFieldByINITag(v reflect.Value, tag string) (reflect.Value, reflect.StructField, bool) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, reflect.StructField{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, reflect.StructField{}, false
	}
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := field.Tag.Get("ini")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		if strings.EqualFold(name, tag) {
			return v.Field(i), field, true
		}
	}
	return reflect.Value{}, reflect.StructField{}, false
}

func lookupField(structPtr interface{}, query string) (reflect.Value, error) {
	section, key, err := splitQuery(query)
	if err != nil {
		return reflect.Value{}, err
	}
	sec, _, ok := findFieldByINITag(reflect.ValueOf(structPtr), section)
	if !ok {
		return reflect.Value{}, fmt.Errorf("section '%s' not found for query '%s'", section, query)
	}
	field, _, ok := findFieldByINITag(sec, key)
	if !ok {
		return reflect.Value{}, fmt.Errorf("field '%s' not found for query '%s'", key, query)
	}
	return field, nil
}

// -------------------------------------------------------------------
// Get / Set
// -------------------------------------------------------------------

// GetValue retrieves the value of a "Section.Key" query.
func GetValue(structPtr interface{}, query string) (interface{}, error) {
	current, err := lookupField(structPtr, query)
	if err != nil {
		return nil, err
	}
	switch current.Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return current.Int(), nil
	case reflect.Float32, reflect.Float64:
		return current.Float(), nil
	case reflect.String:
		return current.String(), nil
	case reflect.Bool:
		return current.Bool(), nil
	default:
		return current.Interface(), nil
	}
}

// setFieldValue converts value to the field's kind and assigns it.
func setFieldValue(fieldVal reflect.Value, value interface{}) error {
	str := strings.TrimSpace(fmt.Sprintf("%v", value))
	switch fieldVal.Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(str, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot convert '%s' to int: %v", str, err)
		}
		fieldVal.SetInt(i)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("cannot convert '%s' to float: %v", str, err)
		}
		fieldVal.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return fmt.Errorf("cannot convert '%s' to bool: %v", str, err)
		}
		fieldVal.SetBool(b)
	case reflect.String:
		fieldVal.SetString(str)
	default:
		return fmt.Errorf("unsupported field kind '%s'", fieldVal.Kind())
	}
	return nil
}

// SetValue assigns a value to a struct field based on the query.
func SetValue(structPtr interface{}, query string, val interface{}) error {
	field, err := lookupField(structPtr, query)
	if err != nil {
		return err
	}
	return setFieldValue(field, val)
}

// SetValueUpdate sets a value and updates the INI file accordingly.
func SetValueUpdate(obj interface{}, iniFile *ini.File, query string, value interface{}) error {
	if err := SetValue(obj, query, value); err != nil {
		return err
	}
	if iniFile == nil {
		return nil
	}

	var valStr string
	switch v := value.(type) {
	case bool:
		if v {
			valStr = "1"
		} else {
			valStr = "0"
		}
	default:
		valStr = fmt.Sprintf("%v", v)
	}
	section, key, _ := splitQuery(query)
	iniFile.Section(section).Key(key).SetValue(valStr)
	return nil
}

// SaveINI saves the INI file to the specified path.
func SaveINI(iniFile *ini.File, filePath string) error {
	if iniFile == nil {
		return fmt.Errorf("iniFile is not initialized")
	}
	// Normalize all true/false to 1/0
	for _, section := range iniFile.Sections() {
		for _, key := range section.Keys() {
			if key.Value() == "true" {
				key.SetValue("1")
			} else if key.Value() == "false" {
				key.SetValue("0")
			}
		}
	}
	return iniFile.SaveTo(filePath)
}

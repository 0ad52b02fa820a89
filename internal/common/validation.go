package common

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// UseJSONFieldNames makes validation errors report JSON field names instead of Go field names.
func UseJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			switch name {
			case "-":
				if q := fld.Tag.Get("form"); q != "" {
					return q
				}
				return fld.Name
			case "":
				return fld.Name
			}
			return name
		})
	})
}

// ValidateStruct runs the binding validator on an already decoded value.
func ValidateStruct(obj interface{}) error {
	UseJSONFieldNames()
	return binding.Validator.ValidateStruct(obj)
}

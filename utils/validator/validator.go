package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	// money fields are NullDecimal; an absent value validates as empty
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		d, ok := field.Interface().(decimal.NullDecimal)
		if !ok || !d.Valid {
			return nil
		}
		f, _ := d.Decimal.Float64()
		return f
	}, decimal.NullDecimal{})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// Messages flattens a validation failure into one line per offending field.
func Messages(err error) []string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			out = append(out, fmt.Sprintf("%s failed on %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		out = append(out, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return out
}

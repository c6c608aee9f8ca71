package monads

import (
	"reflect"
	"regexp"
	"time"

	"github.com/google/go-cmp/cmp"
)

// equalOptions hold the comparison rules shared by every container:
//   - unexported fields take part in the comparison
//   - functions are always equal
//   - regular expressions are equal only when they are the same pointer
//   - time values are never equal
//
// Nested containers are compared through their own Equal method.
var equalOptions = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmp.Comparer(func(x, y *regexp.Regexp) bool { return x == y }),
	cmp.Comparer(func(_, _ time.Time) bool { return false }),
	cmp.FilterValues(bothFuncs, cmp.Comparer(func(_, _ any) bool { return true })),
}

// DeepEqual compares two payloads field by field with the container
// equality rules. Values of different dynamic types are never equal.
func DeepEqual(x, y any) bool {
	return cmp.Equal(x, y, equalOptions)
}

func bothFuncs(x, y any) bool {
	tx, ty := reflect.TypeOf(x), reflect.TypeOf(y)
	if tx == nil || ty == nil {
		return false
	}
	return tx.Kind() == reflect.Func && ty.Kind() == reflect.Func
}

package seq

import "reflect"

// Invoke calls the named method on every element and collects the results.
//
// Each element must have an addressable or value method called method that
// accepts the supplied args. Methods returning nothing contribute nil; a
// single return value is stored as-is; multiple return values are stored as
// a []any.
//
//	trimmed := seq.Invoke([]MyBuf{a, b}, "Reset")
//
// Method resolution uses reflection; a missing method or mismatched
// arguments panic, matching the host-runtime behavior for calling a
// non-function.
func Invoke[T any](items []T, method string, args ...any) []any {
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	out := make([]any, len(items))
	for i, item := range items {
		m := reflect.ValueOf(item).MethodByName(method)
		results := m.Call(in)
		switch len(results) {
		case 0:
			out[i] = nil
		case 1:
			out[i] = results[0].Interface()
		default:
			vals := make([]any, len(results))
			for j, r := range results {
				vals[j] = r.Interface()
			}
			out[i] = vals
		}
	}
	return out
}

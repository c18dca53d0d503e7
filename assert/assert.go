package assert

import "github.com/oomph-ac/kinematic/oerror"

// IsTrue panics with the formatted message if ok is false. It guards programmer errors only; runtime
// conditions are reported through returned errors.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

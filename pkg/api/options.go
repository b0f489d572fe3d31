package api

import (
	"github.com/voidshard/fortitrack/pkg/structs"
)

// OptionsDefault enforces the job lifecycle; status changes must follow the
// transition table.
func OptionsDefault() *structs.Options {
	o := &structs.Options{TransitionPolicy: structs.PolicyStrict}
	o.SetDefaults()
	return o
}

// OptionsPermissive lets dispatchers & technicians set any status from any other.
// Cancellation of finished jobs & accepting jobs that are already under way are
// also allowed.
func OptionsPermissive() *structs.Options {
	o := OptionsDefault()
	o.TransitionPolicy = structs.PolicyPermissive
	return o
}

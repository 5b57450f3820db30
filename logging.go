package ias15

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// newLogger mirrors smd's SCLogInit: a logfmt logger to stdout tagged with
// the owning subsystem, so multiple Integrators in the same process can be
// told apart in the log stream.
func newLogger(name string) kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	return kitlog.With(l, "integrator", "ias15", "name", name)
}

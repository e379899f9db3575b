//go:build linux && (amd64 || arm64)

package rawsys

// prlimit64 predates every 64-bit kernel this layer can run on, so there
// is no legacy path here.
func getrlimit(res Resource) Rlimit {
	var lim rlimit64
	if err := prlimit64Into(res, &lim); err != nil {
		panic("rawsys: prlimit64 failed: " + err.Error())
	}
	return rlimitFrom64(lim)
}

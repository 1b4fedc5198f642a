//go:build !unix

package exec

import "os"

func exitSignal(*os.ProcessState) os.Signal {
	return nil
}

// Command murmur2sum prints or checks MurmurHash2 digests of files.
//
// It behaves like sha256sum: every FILE (or standard input when none is
// given, or for '-') is hashed with the selected variant and printed as
// "<digest>  <path>". With --check, the arguments are digest lists in that
// format and each entry is verified.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"

	"github.com/alecthomas/kong"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	var params cli
	kong.Parse(&params,
		kong.Name("murmur2sum"),
		kong.Description("Print or check MurmurHash2 digests."),
		kong.Vars{"jobs": strconv.Itoa(runtime.NumCPU())},
		kong.UsageOnError(),
	)

	if err := setupLogging(os.Stderr, params.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "murmur2sum:", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := params.run(ctx, os.Stdin, os.Stdout)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errFailed):
		return 1
	default:
		log.Error(err.Error())
		return 2
	}
}

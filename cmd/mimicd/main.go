/*
Mimicd serves the read-only run-history HTTP API over a run store populated
by mimic.

Usage:

	mimicd [flags]

The flags are:

	-v, --version
		Give the current version of mimicd and then exit.

	-c, --config FILE
		Load run configuration (serve address, history db path) from the
		given TOML file. Defaults to "mimic.toml" if present, otherwise
		built-in defaults are used.

	-l, --listen ADDRESS
		Listen on the given address, overriding the config file's
		serve_addr. Must be in BIND_ADDRESS:PORT or :PORT format.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/dekarrin/mimic/internal/config"
	"github.com/dekarrin/mimic/internal/runstore"
	"github.com/dekarrin/mimic/internal/version"
	"github.com/dekarrin/mimic/server"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitServeError indicates the server stopped due to an error while
	// serving.
	ExitServeError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the server.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	configFile  = pflag.StringP("config", "c", "mimic.toml", "TOML file with run configuration")
	listenAddr  = pflag.StringP("listen", "l", "", "Address to listen on, overriding the config file")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg := config.Config{}
	if _, err := os.Stat(*configFile); err == nil {
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
	}
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	addr := cfg.ServeAddr
	if *listenAddr != "" {
		addr = *listenAddr
	}

	store, err := runstore.Open(cfg.HistoryDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer store.Close()

	srv := server.New(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("listening on %s\n", addr)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitServeError
		return
	}
}

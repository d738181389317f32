package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sarpt/goutils/pkg/listflag"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sarpt/playlist-web-api/cmd/playlist-web-api/internal/utils"
	"github.com/sarpt/playlist-web-api/pkg/api"
	"github.com/sarpt/playlist-web-api/pkg/playlist"
)

const (
	defaultAddress    = "localhost:3001"
	defaultLogMaxSize = 10
	logMaxBackups     = 3

	addrFlag       = "addr"
	allowCorsFlag  = "allow-cors"
	appDirFlag     = "app-dir"
	catalogFlag    = "catalog"
	demoFlag       = "demo"
	durationFlag   = "duration"
	logFileFlag    = "log-file"
	logMaxSizeFlag = "log-max-size"
)

var (
	address    *string
	allowCORS  *bool
	appDir     *string
	catalogs   *listflag.StringList
	demo       *bool
	duration   *int
	logFile    *string
	logMaxSize *int
)

func init() {
	catalogs = listflag.NewStringList([]string{})

	address = flag.String(addrFlag, defaultAddress, "address on which server should listen on")
	allowCORS = flag.Bool(allowCorsFlag, false, "when not provided, Cross Origin Site Requests will be rejected")
	appDir = flag.String(appDirFlag, "", "directory for application files. when left empty, ~/.pwa will be used")
	flag.Var(catalogs, catalogFlag, "catalog file or directory with *.json catalogs merged over the built-in one. can be provided multiple times")
	demo = flag.Bool(demoFlag, true, "add demo songs to the playlist on start. use -demo=false to start with an empty playlist")
	duration = flag.Int(durationFlag, playlist.DefaultDuration, "duration in seconds of songs added without one")
	logFile = flag.String(logFileFlag, "", "file to which logs are additionally written, rotated by size. relative paths are resolved against app dir logs")
	logMaxSize = flag.Int(logMaxSizeFlag, defaultLogMaxSize, "size in megabytes after which log file is rotated")
}

func main() {
	flag.Parse()

	dir, err := utils.HandleAppDir(*appDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not prepare app directory: %s\n", err)

		return
	}

	outWriter, errWriter, closeLogs := logWriters(dir)
	defer closeLogs()

	catalogPaths := append([]string{dir.CatalogsDir()}, catalogs.Values()...)
	cfg := api.Config{
		Address:         *address,
		AllowCORS:       *allowCORS,
		CatalogPaths:    catalogPaths,
		DefaultDuration: *duration,
		ErrWriter:       errWriter,
		OutWriter:       outWriter,
		SeedDemo:        *demo,
	}
	server, err := api.NewServer(cfg)
	if err != nil {
		fmt.Fprintf(errWriter, "%s\n", err)

		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()

		err := server.Close()
		if err != nil {
			fmt.Fprintf(errWriter, "could not close server cleanly: %s\n", err)
		}
	}()

	err = server.Serve()
	if err != nil {
		fmt.Fprintf(errWriter, "%s\n", err)

		return
	}
}

// logWriters returns writers for regular and error output.
// When log file is requested, both are additionally written to the rotated file.
func logWriters(dir utils.AppDir) (io.Writer, io.Writer, func()) {
	if *logFile == "" {
		return os.Stdout, os.Stderr, func() {}
	}

	fileWriter := &lumberjack.Logger{
		Filename:   dir.LogFile(*logFile),
		MaxSize:    *logMaxSize,
		MaxBackups: logMaxBackups,
	}

	return io.MultiWriter(os.Stdout, fileWriter), io.MultiWriter(os.Stderr, fileWriter), func() {
		fileWriter.Close()
	}
}

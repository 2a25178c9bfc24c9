package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/couchbase/tools-objfile/objstore/objcli"
	"github.com/couchbase/tools-objfile/objstore/objfile"
)

// environment is everything a command needs to run.
type environment struct {
	ctx    context.Context
	client objcli.Client
	logger *slog.Logger
	stdin  io.Reader
	stdout io.Writer
}

// openOptions returns the options used to open the object at the given URL.
func (e *environment) openOptions(url string) objfile.OpenOptions {
	return objfile.OpenOptions{Context: e.ctx, Client: e.client, URL: url, Logger: e.logger}
}

type command struct {
	name    string
	summary string
	run     func(env *environment, args []string) error
}

var commands = map[string]command{
	"cat":      {name: "cat", summary: "write the contents of an object to stdout", run: runCat},
	"head":     {name: "head", summary: "write the first lines of an object to stdout", run: runHead},
	"put":      {name: "put", summary: "store stdin (or a local file) as an object", run: runPut},
	"truncate": {name: "truncate", summary: "change the size of an object", run: runTruncate},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// parseArgs parses the flags for the named command, returning the positional arguments which must number between
// minArgs and maxArgs.
func parseArgs(flags *flag.FlagSet, args []string, minArgs, maxArgs int) ([]string, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if flags.NArg() < minArgs || flags.NArg() > maxArgs {
		flags.Usage()
		return nil, fmt.Errorf("expected between %d and %d arguments, got %d", minArgs, maxArgs, flags.NArg())
	}

	return flags.Args(), nil
}

func runCat(env *environment, args []string) error {
	flags := flag.NewFlagSet("cat", flag.ContinueOnError)

	args, err := parseArgs(flags, args, 1, 1)
	if err != nil {
		return err
	}

	return objfile.WithFile(env.openOptions(args[0]), func(file *objfile.File) error {
		_, err := io.Copy(env.stdout, file)
		return err
	})
}

func runHead(env *environment, args []string) error {
	var (
		flags = flag.NewFlagSet("head", flag.ContinueOnError)
		lines = flags.Int("n", 10, "number of lines to output")
	)

	args, err := parseArgs(flags, args, 1, 1)
	if err != nil {
		return err
	}

	return objfile.WithFile(env.openOptions(args[0]), func(file *objfile.File) error {
		var n int

		for line, err := range file.Lines() {
			if err != nil || n >= *lines {
				return err
			}

			if _, err := env.stdout.Write(line); err != nil {
				return err
			}

			n++
		}

		return nil
	})
}

func runPut(env *environment, args []string) error {
	var (
		flags          = flag.NewFlagSet("put", flag.ContinueOnError)
		private        = flags.Bool("private", false, "only allow the owner to access the object")
		contentType    = flags.String("content-type", "", "content type of the object, guessed from the key when empty")
		expirationDays = flags.Int("expiration-days", 0, "number of days after which the object shouldn't be cached")
		create         = flags.Bool("create", true, "create the bucket if it doesn't exist")
		appendTo       = flags.Bool("append", false, "append to the existing object rather than replacing it")
	)

	args, err := parseArgs(flags, args, 1, 2)
	if err != nil {
		return err
	}

	source := env.stdin

	if len(args) == 2 {
		file, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("failed to open source: %w", err)
		}

		defer file.Close()

		source = file
	}

	options := env.openOptions(args[0])
	options.Private = *private
	options.ContentType = *contentType
	options.ExpirationDays = *expirationDays
	options.CreateBucket = *create

	return objfile.WithFile(options, func(file *objfile.File) error {
		// Reading the existing contents leaves the file positioned at its end
		if *appendTo {
			if _, err := file.ReadAll(); err != nil {
				return err
			}
		}

		_, err := io.Copy(file, source)

		return err
	})
}

func runTruncate(env *environment, args []string) error {
	flags := flag.NewFlagSet("truncate", flag.ContinueOnError)

	args, err := parseArgs(flags, args, 2, 2)
	if err != nil {
		return err
	}

	size, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid size '%s': %w", args[1], err)
	}

	return objfile.WithFile(env.openOptions(args[0]), func(file *objfile.File) error {
		// Seeking to the new size fetches the object so that the bytes being kept are the stored ones
		if _, err := file.Seek(size, io.SeekStart); err != nil {
			return err
		}

		return file.Truncate(size)
	})
}

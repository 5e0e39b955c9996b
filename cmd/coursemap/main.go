package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/natelwhite/coursemap"
	"github.com/natelwhite/coursemap/config"
	"github.com/natelwhite/coursemap/logger"
)

const menu string = `Menu:
	1. Load Courses
	2. Print Courses in Order
	3. Find and Print Course
	9. Exit
Selection: `

const unknownOption string = "Menu option unknown. Please select a valid option (1, 2, 3, 9)."

func main() {
	configFile := flag.String("config", "", "path to a toml configuration file")
	flag.Parse()

	params, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read configuration: %s\n", err)
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		params.InputPath = flag.Arg(0)
	}

	log := logger.New(params.Log)
	defer func() { _ = log.Sync() }()

	if err := run(params, log, afero.NewOsFs(), os.Stdin, os.Stdout); err != nil {
		log.Error("advising tool failed", zap.Error(err))
		os.Exit(1)
	}
}

// run - Validates the configured course file, sizes a course map to the validated row count and
// serves the menu loop until exit. Any validation failure, including an unopenable file, aborts
// before the menu is offered.
func run(params *config.Parameters, log *zap.Logger, fsys afero.Fs, in io.Reader, out io.Writer) error {
	if _, err := fsys.Stat(params.InputPath); err != nil {
		return errors.Wrap(err, "input file")
	}

	// Advisory shared lock, writers honoring it will not change the file between the two passes
	lock := flock.New(params.InputPath)
	if locked, err := lock.TryRLock(); err != nil || !locked {
		log.Warn("could not acquire shared lock on input file, reading unlocked",
			zap.String("path", params.InputPath), zap.Error(err))
	} else {
		defer func() { _ = lock.Unlock() }()
	}

	rowCount, err := coursemap.ValidateFile(fsys, params.InputPath)
	if err != nil {
		return errors.Wrap(err, "validate")
	}
	log.Info("course file validated", zap.String("path", params.InputPath), zap.Int("rows", rowCount))

	tableSize := params.TableSize
	if tableSize <= 0 {
		tableSize = rowCount
	}
	if tableSize <= 0 {
		tableSize = coursemap.DefaultTableSize
	}

	courses, err := coursemap.New(tableSize, nil)
	if err != nil {
		return errors.Wrap(err, "create course map")
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, menu)
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			if err := courses.Load(fsys, params.InputPath); err != nil {
				return errors.Wrap(err, "load")
			}
			log.Info("courses loaded", zap.Int("records", courses.Len()))
		case "2":
			for _, course := range courses.ExportSorted() {
				fmt.Fprintln(out, course)
			}
		case "3":
			fmt.Fprint(out, "Course number: ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			number := strings.TrimSpace(scanner.Text())
			result, err := courses.Search(number)
			if err != nil {
				return errors.Wrap(err, "search")
			}
			if result.IsEmpty() {
				fmt.Fprintf(out, "Could not find course with number: %s\n", number)
			} else {
				fmt.Fprintln(out, result)
			}
		case "9":
			return nil
		default:
			fmt.Fprintln(out, unknownOption)
		}
	}
}

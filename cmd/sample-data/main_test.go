package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestSampleDataCommand(t *testing.T) {
	convey.Convey("Given the sample-data command", t, func() {
		var stdout, stderr bytes.Buffer
		cmd := newCommand(&stdout, &stderr)

		convey.Convey("When writing to stdout", func() {
			cmd.SetArgs([]string{"--count", "3", "--seed", "9"})
			err := cmd.ExecuteContext(context.Background())

			convey.Convey("Then a header and three rows should be printed", func() {
				convey.So(err, convey.ShouldBeNil)
				lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
				convey.So(lines, convey.ShouldHaveLength, 4)
				convey.So(lines[0], convey.ShouldEqual, "name,position,completed_tasks,performance,skills,team,experience_years")
			})
		})

		convey.Convey("When writing to a file", func() {
			out := filepath.Join(t.TempDir(), "employees.csv")
			cmd.SetArgs([]string{"--count", "5", "--out", out})
			err := cmd.ExecuteContext(context.Background())

			convey.Convey("Then the file should hold the rows", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(stdout.Len(), convey.ShouldEqual, 0)
				data, readErr := os.ReadFile(out)
				convey.So(readErr, convey.ShouldBeNil)
				convey.So(strings.Count(string(data), "\n"), convey.ShouldEqual, 6)
			})
		})

		convey.Convey("When the output file fails to close", func() {
			var sink failingCloser
			orig := createFile
			createFile = func(string) (io.WriteCloser, error) { return &sink, nil }
			defer func() { createFile = orig }()

			cmd.SetArgs([]string{"--count", "2", "--out", "employees.csv"})
			err := cmd.ExecuteContext(context.Background())

			convey.Convey("Then the close error should be returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, errDiskFull), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "close output")
				convey.So(sink.String(), convey.ShouldStartWith, "name,position")
			})
		})

		convey.Convey("When the ratio is out of range", func() {
			cmd.SetArgs([]string{"--invalid-ratio", "2"})
			err := cmd.ExecuteContext(context.Background())

			convey.Convey("Then an error should be returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

var errDiskFull = errors.New("disk full")

// failingCloser accepts writes and fails on Close, like a file whose final
// flush hits a full disk.
type failingCloser struct {
	bytes.Buffer
}

func (*failingCloser) Close() error { return errDiskFull }

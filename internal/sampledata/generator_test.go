package sampledata_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/okian/workforce-analyzer/internal/adapters/loader"
	"github.com/okian/workforce-analyzer/internal/sampledata"
	"github.com/okian/workforce-analyzer/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestGenerate(t *testing.T) {
	Convey("Given a sample data configuration", t, func() {
		ctx := context.Background()
		cfg := sampledata.Config{Count: 200, Seed: 42, InvalidRatio: 0.1}

		Convey("When generating twice with the same seed", func() {
			var a, b bytes.Buffer
			_, errA := sampledata.Generate(ctx, &a, cfg)
			_, errB := sampledata.Generate(ctx, &b, cfg)

			Convey("Then the output should be identical", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(a.String(), ShouldEqual, b.String())
			})
		})

		Convey("When generating with another seed", func() {
			var a, b bytes.Buffer
			_, _ = sampledata.Generate(ctx, &a, cfg)
			cfg.Seed = 7
			_, _ = sampledata.Generate(ctx, &b, cfg)

			Convey("Then the output should differ", func() {
				So(a.String(), ShouldNotEqual, b.String())
			})
		})

		Convey("When the output is loaded back", func() {
			var buf bytes.Buffer
			stats, err := sampledata.Generate(ctx, &buf, cfg)
			So(err, ShouldBeNil)

			employees, loadErr := loader.New().Read(ctx, "sample.csv", &buf)

			Convey("Then every valid row should be loaded", func() {
				So(loadErr, ShouldBeNil)
				So(stats.Rows, ShouldEqual, 200)
				So(stats.Invalid, ShouldBeGreaterThan, 0)
				So(len(employees), ShouldEqual, stats.Rows-stats.Invalid)
				for _, e := range employees {
					So(e.Performance, ShouldBeBetweenOrEqual, 1.0, 5.0)
					So(e.Skills, ShouldNotBeEmpty)
				}
			})
		})

		Convey("When no rows are corrupted", func() {
			cfg.InvalidRatio = 0
			var buf bytes.Buffer
			stats, err := sampledata.Generate(ctx, &buf, cfg)

			Convey("Then nothing should be invalid", func() {
				So(err, ShouldBeNil)
				So(stats.Invalid, ShouldEqual, 0)
			})
		})

		Convey("When every row is corrupted", func() {
			cfg.InvalidRatio = 1
			var buf bytes.Buffer
			stats, err := sampledata.Generate(ctx, &buf, cfg)
			employees, loadErr := loader.New().Read(ctx, "sample.csv", &buf)

			Convey("Then the loader should reject all of them", func() {
				So(err, ShouldBeNil)
				So(stats.Invalid, ShouldEqual, stats.Rows)
				So(loadErr, ShouldBeNil)
				So(employees, ShouldBeEmpty)
			})
		})

		Convey("When the count is zero", func() {
			cfg.Count = 0
			var buf bytes.Buffer
			_, err := sampledata.Generate(ctx, &buf, cfg)

			Convey("Then only the header should be written", func() {
				So(err, ShouldBeNil)
				So(buf.String(), ShouldEqual, strings.Join(loader.RequiredColumns, ",")+"\n")
			})
		})

		Convey("When the configuration is invalid", func() {
			var buf bytes.Buffer
			_, countErr := sampledata.Generate(ctx, &buf, sampledata.Config{Count: -1})
			_, ratioErr := sampledata.Generate(ctx, &buf, sampledata.Config{Count: 1, InvalidRatio: 1.5})

			Convey("Then a validation error should be returned", func() {
				So(errors.Is(countErr, sampledata.ErrInvalidCount), ShouldBeTrue)
				So(errors.Is(ratioErr, sampledata.ErrInvalidRatio), ShouldBeTrue)
				So(buf.Len(), ShouldEqual, 0)
			})
		})
	})
}

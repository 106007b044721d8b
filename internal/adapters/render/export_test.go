package render_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/okian/workforce-analyzer/internal/adapters/render"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/xuri/excelize/v2"
)

func TestExport(t *testing.T) {
	Convey("Given a generated table", t, func() {
		dir := t.TempDir()
		tbl := performanceTable()

		Convey("When exporting to CSV", func() {
			path := filepath.Join(dir, "report.csv")
			err := render.Export(path, "performance", tbl, 2)

			Convey("Then the file should hold the header and formatted rows", func() {
				So(err, ShouldBeNil)
				f, openErr := os.Open(path)
				So(openErr, ShouldBeNil)
				defer f.Close()
				records, readErr := csv.NewReader(f).ReadAll()
				So(readErr, ShouldBeNil)
				So(records, ShouldResemble, [][]string{
					{"position", "performance"},
					{"Backend Developer", "4.83"},
					{"QA", "4.50"},
				})
			})
		})

		Convey("When exporting to XLSX", func() {
			path := filepath.Join(dir, "report.xlsx")
			err := render.Export(path, "performance", tbl, 2)

			Convey("Then the workbook should have a sheet named after the report", func() {
				So(err, ShouldBeNil)
				f, openErr := excelize.OpenFile(path)
				So(openErr, ShouldBeNil)
				defer f.Close()

				So(f.GetSheetList(), ShouldResemble, []string{"performance"})

				rows, rowsErr := f.GetRows("performance", excelize.Options{RawCellValue: true})
				So(rowsErr, ShouldBeNil)
				So(rows, ShouldHaveLength, 3)
				So(rows[0], ShouldResemble, []string{"position", "performance"})
				So(rows[1][0], ShouldEqual, "Backend Developer")
				So(strings.HasPrefix(rows[1][1], "4.833"), ShouldBeTrue)
				So(rows[2], ShouldResemble, []string{"QA", "4.5"})

				cellType, typeErr := f.GetCellType("performance", "B2")
				So(typeErr, ShouldBeNil)
				So(cellType, ShouldNotEqual, excelize.CellTypeSharedString)
			})
		})

		Convey("When the extension is unknown", func() {
			path := filepath.Join(dir, "report.json")
			err := render.Export(path, "performance", tbl, 2)

			Convey("Then an unsupported format error should be returned", func() {
				So(errors.Is(err, render.ErrUnsupportedFormat), ShouldBeTrue)
				_, statErr := os.Stat(path)
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})

		Convey("When the destination directory does not exist", func() {
			err := render.Export(filepath.Join(dir, "missing", "report.csv"), "performance", tbl, 2)

			Convey("Then an export error should be returned", func() {
				So(errors.Is(err, render.ErrExport), ShouldBeTrue)
			})
		})
	})
}

func TestSheetName(t *testing.T) {
	Convey("Given report names", t, func() {
		So(render.SheetName("performance"), ShouldEqual, "performance")
		So(render.SheetName(""), ShouldEqual, "Sheet1")
		So(render.SheetName("a/b:c"), ShouldEqual, "a_b_c")
		So(render.SheetName(strings.Repeat("x", 40)), ShouldHaveLength, 31)
	})
}

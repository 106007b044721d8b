package report_test

import (
	"testing"

	"github.com/okian/workforce-analyzer/internal/domain/model"
	"github.com/okian/workforce-analyzer/internal/domain/report"
	"github.com/okian/workforce-analyzer/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleEmployees() []model.Employee {
	return []model.Employee{
		{Name: "Alice", Position: "Backend Developer", CompletedTasks: 10, Performance: 5.0, Skills: []string{"Django", "Python"}, Team: "Alpha", ExperienceYears: 5},
		{Name: "Bob", Position: "Backend Developer", CompletedTasks: 20, Performance: 4.0, Skills: []string{"Go"}, Team: "Beta", ExperienceYears: 3},
		{Name: "Johnny", Position: "Frontend Developer", CompletedTasks: 15, Performance: 3.0, Skills: []string{"React"}, Team: "Gamma", ExperienceYears: 2},
	}
}

func TestPerformanceReport(t *testing.T) {
	Convey("Given the performance strategy", t, func() {
		strategy := report.NewPerformance()

		Convey("It should be registered as performance", func() {
			So(strategy.Name(), ShouldEqual, "performance")
		})

		Convey("When generating from the sample employees", func() {
			table := strategy.Generate(sampleEmployees())

			Convey("Then there should be one row per position, highest mean first", func() {
				So(table.Columns, ShouldResemble, []string{"position", "performance"})
				So(table.Rows, ShouldResemble, []types.Row{
					{"position": "Backend Developer", "performance": 4.5},
					{"position": "Frontend Developer", "performance": 3.0},
				})
			})

			Convey("And rows should be sorted by performance descending", func() {
				So(table.Rows[0]["performance"], ShouldBeGreaterThan, table.Rows[1]["performance"])
			})
		})

		Convey("When the input is reordered", func() {
			emps := sampleEmployees()
			reordered := []model.Employee{emps[2], emps[1], emps[0]}
			table := strategy.Generate(reordered)

			Convey("Then the aggregates should not change", func() {
				So(table.Rows[0]["position"], ShouldEqual, "Backend Developer")
				So(table.Rows[0]["performance"], ShouldEqual, 4.5)
				So(table.Rows[1]["performance"], ShouldEqual, 3.0)
			})
		})

		Convey("When two positions share the same mean", func() {
			table := strategy.Generate([]model.Employee{
				{Position: "QA", Performance: 4.0},
				{Position: "DevOps", Performance: 4.8},
				{Position: "Analyst", Performance: 4.0},
			})

			Convey("Then the tie should keep first-seen order", func() {
				So(table.Len(), ShouldEqual, 3)
				So(table.Rows[0]["position"], ShouldEqual, "DevOps")
				So(table.Rows[1]["position"], ShouldEqual, "QA")
				So(table.Rows[2]["position"], ShouldEqual, "Analyst")
			})
		})

		Convey("When positions differ only by case", func() {
			table := strategy.Generate([]model.Employee{
				{Position: "dev", Performance: 1.0},
				{Position: "Dev", Performance: 2.0},
			})

			Convey("Then they should be separate groups", func() {
				So(table.Len(), ShouldEqual, 2)
			})
		})

		Convey("When the input is empty", func() {
			table := strategy.Generate(nil)

			Convey("Then the table should have columns but no rows", func() {
				So(table.Columns, ShouldHaveLength, 2)
				So(table.Rows, ShouldBeEmpty)
				So(table.Empty(), ShouldBeTrue)
			})
		})
	})
}

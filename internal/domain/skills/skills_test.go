package skills_test

import (
	"testing"

	"github.com/okian/workforce-analyzer/internal/domain/skills"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given raw skill strings", t, func() {
		Convey("When the input has padding and duplicates", func() {
			got := skills.Parse(" Python, Django,  Python ")

			Convey("Then duplicates should be removed and the rest sorted", func() {
				So(got, ShouldResemble, []string{"Django", "Python"})
			})
		})

		Convey("When the input is empty or blank", func() {
			Convey("Then the result should be an empty slice", func() {
				So(skills.Parse(""), ShouldResemble, []string{})
				So(skills.Parse("   "), ShouldResemble, []string{})
				So(skills.Parse(" , ,"), ShouldResemble, []string{})
			})
		})

		Convey("When tokens differ only by case", func() {
			Convey("Then both should be kept", func() {
				So(skills.Parse("go,Go"), ShouldResemble, []string{"Go", "go"})
			})
		})

		Convey("When there is a single skill", func() {
			Convey("Then it should be returned as is", func() {
				So(skills.Parse("Kubernetes"), ShouldResemble, []string{"Kubernetes"})
			})
		})
	})
}

func TestParseIdempotent(t *testing.T) {
	inputs := []string{
		"",
		" Python, Django,  Python ",
		"SQL,Python",
		"b, a, c, a, ,b",
		"React",
		"C++, C#, C",
	}

	Convey("Given parsed skill lists", t, func() {
		for _, in := range inputs {
			first := skills.Parse(in)

			Convey("Parsing the joined output of "+`"`+in+`"`+" should reproduce it", func() {
				So(skills.Parse(skills.Join(first)), ShouldResemble, first)
			})
		}
	})
}

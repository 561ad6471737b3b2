package voxstruct

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTransformCopyScenario(t *testing.T) {
	Convey("transform copies literals, $COPY substitutions, and custom commands", t, func() {
		upperFn := Func(func(inj *Inj, val interface{}, ref string, store map[string]interface{}) (interface{}, error) {
			k, _ := inj.Key.(string)
			return strings.ToUpper(k), nil
		})

		data := map[string]interface{}{"a": float64(1)}
		spec := map[string]interface{}{
			"x": "`a`",
			"b": "`$COPY`",
			"c": "`$UPPER`",
		}
		extra := map[string]interface{}{"b": float64(2), "$UPPER": upperFn}

		Convey("when run against the data and an extra store", func() {
			got := Transform(data, spec, extra)

			Convey("a dotted reference resolves against the data", func() {
				gm := got.(map[string]interface{})
				So(gm["x"], ShouldEqual, float64(1))
			})

			Convey("$COPY resolves against the extra store by field name", func() {
				gm := got.(map[string]interface{})
				So(gm["b"], ShouldEqual, float64(2))
			})

			Convey("a registered custom command runs against its own key", func() {
				gm := got.(map[string]interface{})
				So(gm["c"], ShouldEqual, "C")
			})
		})
	})
}

func TestTransformEachScenario(t *testing.T) {
	Convey("$EACH fans a template out over every key of a referenced map", t, func() {
		data := map[string]interface{}{
			"items": map[string]interface{}{
				"a": map[string]interface{}{"n": float64(1)},
				"b": map[string]interface{}{"n": float64(2)},
			},
		}
		spec := map[string]interface{}{
			"out": []interface{}{
				"`$EACH`",
				"items",
				map[string]interface{}{"$KEY": "", "v": "`n`"},
			},
		}

		Convey("when run against the data", func() {
			got := Transform(data, spec, nil)
			gm, ok := got.(map[string]interface{})
			So(ok, ShouldBeTrue)

			out, ok := gm["out"].([]interface{})
			So(ok, ShouldBeTrue)
			So(out, ShouldHaveLength, 2)

			Convey("each output item keeps its source key and resolved value", func() {
				byKey := map[string]interface{}{}
				for _, item := range out {
					m := item.(map[string]interface{})
					byKey[m["$KEY"].(string)] = m["v"]
				}
				So(byKey["a"], ShouldEqual, float64(1))
				So(byKey["b"], ShouldEqual, float64(2))
			})
		})
	})
}

func TestTransformIdentity(t *testing.T) {
	d := map[string]interface{}{
		"a": float64(1),
		"b": []interface{}{float64(1), "two", true, nil},
		"c": map[string]interface{}{"nested": float64(3)},
	}
	got := Transform(d, d, nil)
	if !structEqual(got, d) {
		t.Fatalf("transform(d, d) should equal d, got %v", got)
	}
}

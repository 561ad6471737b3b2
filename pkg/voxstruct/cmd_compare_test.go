package voxstruct

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestComparatorGT(t *testing.T) {
	spec := map[string]interface{}{"age": map[string]interface{}{"$GT": float64(18)}}

	if _, err := Validate(map[string]interface{}{"age": float64(25)}, spec, nil, nil); err != nil {
		t.Fatalf("expected 25 > 18 to pass, got %v", err)
	}
	if _, err := Validate(map[string]interface{}{"age": float64(10)}, spec, nil, nil); err == nil {
		t.Fatalf("expected 10 > 18 to fail")
	}
}

func TestComparatorLike(t *testing.T) {
	spec := map[string]interface{}{"name": map[string]interface{}{"$LIKE": "jas"}}

	if _, err := Validate(map[string]interface{}{"name": "Jason"}, spec, nil, nil); err != nil {
		t.Fatalf("expected case-insensitive substring match to pass, got %v", err)
	}
	if _, err := Validate(map[string]interface{}{"name": "Robert"}, spec, nil, nil); err == nil {
		t.Fatalf("expected non-matching name to fail")
	}
}

func TestComparatorAndOr(t *testing.T) {
	Convey("$AND requires every sub-query to pass", t, func() {
		andSpec := map[string]interface{}{
			"age": map[string]interface{}{
				"$AND": []interface{}{
					map[string]interface{}{"$GT": float64(18)},
					map[string]interface{}{"$LT": float64(65)},
				},
			},
		}

		Convey("a value inside both bounds satisfies it", func() {
			_, err := Validate(map[string]interface{}{"age": float64(30)}, andSpec, nil, nil)
			So(err, ShouldBeNil)
		})

		Convey("a value outside one bound fails it", func() {
			_, err := Validate(map[string]interface{}{"age": float64(70)}, andSpec, nil, nil)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("$OR requires at least one sub-query to pass", t, func() {
		orSpec := map[string]interface{}{
			"n": map[string]interface{}{
				"$OR": []interface{}{
					map[string]interface{}{"$LT": float64(0)},
					map[string]interface{}{"$GT": float64(100)},
				},
			},
		}

		Convey("a value satisfying either branch passes", func() {
			_, err := Validate(map[string]interface{}{"n": float64(150)}, orSpec, nil, nil)
			So(err, ShouldBeNil)
		})

		Convey("a value satisfying neither branch fails", func() {
			_, err := Validate(map[string]interface{}{"n": float64(50)}, orSpec, nil, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestComparatorNot(t *testing.T) {
	notSpec := map[string]interface{}{
		"age": map[string]interface{}{
			"$NOT": map[string]interface{}{"$GT": float64(65)},
		},
	}
	if _, err := Validate(map[string]interface{}{"age": float64(30)}, notSpec, nil, nil); err != nil {
		t.Fatalf("expected 30 to satisfy $NOT[>65], got %v", err)
	}
	if _, err := Validate(map[string]interface{}{"age": float64(70)}, notSpec, nil, nil); err == nil {
		t.Fatalf("expected 70 to fail $NOT[>65]")
	}
}

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/trafficpath/builder"
	"github.com/katalvlaran/trafficpath/light"
)

func TestIDFns(t *testing.T) {
	cases := []struct {
		name string
		fn   builder.IDFn
		idx  int
		want string
	}{
		{"junction", builder.JunctionIDFn, 12, "J12"},
		{"decimal", builder.DecimalIDFn, 42, "42"},
		{"symbol first", builder.SymbolIDFn, 0, "A"},
		{"symbol last", builder.SymbolIDFn, 25, "Z"},
		{"excel single", builder.ExcelColumnIDFn, 25, "Z"},
		{"excel double", builder.ExcelColumnIDFn, 26, "AA"},
		{"excel wrap", builder.ExcelColumnIDFn, 701, "ZZ"},
		{"excel triple", builder.ExcelColumnIDFn, 702, "AAA"},
		{"prefix", builder.PrefixIDFn("Stop "), 3, "Stop 3"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn(tc.idx))
		})
	}

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.SymbolIDFn(-1) })
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, int64(0), builder.ConstantWeightFn(0)(rng))
	assert.Equal(t, int64(5), builder.UniformWeightFn(5, 5)(rng))

	normal := builder.NormalWeightFn(10, 3)
	assert.Equal(t, builder.DefaultEdgeWeight, normal(nil))
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, normal(rng), int64(0))
	}
	assert.Equal(t, int64(0), builder.NormalWeightFn(-50, 0)(rng), "negative samples clip to 0")

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 3) })
	assert.Panics(t, func() { builder.UniformWeightFn(4, 3) })
	assert.Panics(t, func() { builder.NormalWeightFn(0, -1) })
}

func TestLightFns(t *testing.T) {
	c := light.New(3, 4, 5)
	assert.Equal(t, c, builder.FixedLightFn(c)(9, nil))
	assert.Equal(t, light.Cycle{}, builder.NoLightFn(0, nil))
	assert.Equal(t, light.Default(), builder.UniformLightFn(1, 1, 1)(0, nil))
	assert.Equal(t, light.Cycle{}, builder.UniformLightFn(0, 0, 0)(0, rand.New(rand.NewSource(1))))
}

package vector_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galileo/internal/vector"
)

const tol = 1e-9

func randVec3(r *rand.Rand) vector.Vec3d {
	return vector.V3(r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10)
}

func beCloseTo3(want vector.Vec3d) OmegaMatcher {
	return SatisfyAll(
		WithTransform(func(v vector.Vec3d) float64 { return v.X }, BeNumerically("~", want.X, tol)),
		WithTransform(func(v vector.Vec3d) float64 { return v.Y }, BeNumerically("~", want.Y, tol)),
		WithTransform(func(v vector.Vec3d) float64 { return v.Z }, BeNumerically("~", want.Z, tol)),
	)
}

var _ = Describe("Vec3 algebra", func() {
	var r *rand.Rand

	BeforeEach(func() {
		r = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	It("undoes addition with subtraction", func() {
		for i := 0; i < 100; i++ {
			a, b := randVec3(r), randVec3(r)
			Expect(a.Add(b).Sub(b)).To(beCloseTo3(a))
		}
	})

	It("undoes scaling with division by the same non-zero scalar", func() {
		for i := 0; i < 100; i++ {
			a := randVec3(r)
			s := r.Float64()*10 + 0.5
			Expect(a.Scale(s).Div(s)).To(beCloseTo3(a))
		}
	})

	It("has a commutative dot product", func() {
		for i := 0; i < 100; i++ {
			a, b := randVec3(r), randVec3(r)
			Expect(a.Dot(b)).To(BeNumerically("~", b.Dot(a), tol))
		}
	})

	It("never reports a negative magnitude", func() {
		for i := 0; i < 100; i++ {
			Expect(randVec3(r).Magnitude()).To(BeNumerically(">=", 0))
		}
		Expect(vector.Vec3d{}.Magnitude()).To(Equal(0.0))
		Expect(vector.Vec4i{}.Magnitude()).To(Equal(0.0))
	})

	It("measures small integer vectors without overflow", func() {
		for i := 0; i < 100; i++ {
			x, y, z := int8(r.Intn(256)-128), int8(r.Intn(256)-128), int8(r.Intn(256)-128)
			want := math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y) + float64(z)*float64(z))
			Expect(vector.V3(x, y, z).Magnitude()).To(BeNumerically("~", want, tol))
		}
	})

	It("normalizes non-zero vectors to unit length", func() {
		for i := 0; i < 100; i++ {
			a := randVec3(r)
			Expect(a.Normalize().Magnitude()).To(BeNumerically("~", 1, tol))
		}
	})

	It("produces non-finite components when normalizing the zero vector", func() {
		n := vector.Vec2d{}.Normalize()
		Expect(math.IsNaN(n.X)).To(BeTrue())
		Expect(n.IsFinite()).To(BeFalse())
	})
})

var _ = Describe("Cross product", func() {
	It("is zero for a vector with itself", func() {
		v := vector.V3(2.0, 3, 5)
		Expect(v.Cross(v)).To(Equal(vector.V3(0.0, 0, 0)))
	})

	It("anti-commutes", func() {
		v, w := vector.V3(2, 3, 5), vector.V3(3, 2, 1)
		Expect(vector.Cross(v, w)).To(Equal(vector.Cross(w, v).Neg()))
	})

	It("is orthogonal to both operands", func() {
		v, w := vector.V3(1.0, -2, 4), vector.V3(0.5, 3, -1)
		c := vector.Cross(v, w)
		Expect(c.Dot(v)).To(BeNumerically("~", 0, tol))
		Expect(c.Dot(w)).To(BeNumerically("~", 0, tol))
	})
})

var _ = Describe("Mixed dimensions", func() {
	It("promotes to the higher dimension and passes z through", func() {
		Expect(vector.Add32(vector.V3(1, 2, 3), vector.V2(4, 5))).To(Equal(vector.V3(5, 7, 3)))
	})

	It("negates the extra components of a higher-rank subtrahend", func() {
		Expect(vector.Sub24(vector.V2(1, 1), vector.V4(1, 1, 2, 3))).To(Equal(vector.V4(0, 0, -2, -3)))
	})
})

var _ = Describe("Formatting and narrowing", func() {
	It("renders vec3(1, 2, 3)", func() {
		Expect(vector.V3(1, 2, 3).String()).To(Equal("vec3(1, 2, 3)"))
	})

	It("fills the missing z with zero", func() {
		Expect(vector.V2(1.0, 2.0).Narrow3()).To(Equal([3]float32{1, 2, 0}))
	})

	It("keeps the real z when widening to four components", func() {
		Expect(vector.V3(1, 2, 3).Narrow4()).To(Equal([4]float32{1, 2, 3, 0}))
		Expect(vector.V4(1, 2, 3, 4).Narrow4()).To(Equal([4]float32{1, 2, 3, 4}))
	})
})

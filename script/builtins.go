package script

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"
	"honnef.co/go/homotopy"
)

// preprocessSource rewrites source into a form zygomys accepts:
//
//  1. ; line comments become // comments.
//  2. Kebab-case identifiers become underscore form: rotate-x -> rotate_x.
//     zygomys interprets hyphens in identifiers as subtraction.
//
// Both transformations leave string literals alone.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/8)
	b := []byte(source)
	i := 0
	for i < len(b) {
		switch {
		case b[i] == '"' || b[i] == '`':
			q := b[i]
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != q {
				if q == '"' && b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
		case b[i] == ';':
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
		case b[i] == '-' && i > 0 && i+1 < len(b) && isIdentChar(b[i-1]) && isLetter(b[i+1]):
			result = append(result, '_')
			i++
		default:
			result = append(result, b[i])
			i++
		}
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// sexpVec3 wraps a point so it can be passed between builtins.
type sexpVec3 struct {
	vec [3]float64
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", v.vec[0], v.vec[1], v.vec[2])
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpMap wraps a map of any rank.
type sexpMap struct {
	Result
}

func (m *sexpMap) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s)", m.Result.String())
}
func (m *sexpMap) Type() *zygo.RegisteredType { return nil }

func curveVal(c homotopy.Curve[float64]) *sexpMap {
	return &sexpMap{Result{Rank: 1, Curve: c}}
}

func surfaceVal(s homotopy.Surface[float64]) *sexpMap {
	return &sexpMap{Result{Rank: 2, Surface: s}}
}

func volumeVal(v homotopy.Volume[float64]) *sexpMap {
	return &sexpMap{Result{Rank: 3, Volume: v}}
}

func describe(s zygo.Sexp) string {
	switch v := s.(type) {
	case *sexpMap:
		return v.Result.String()
	case *sexpVec3:
		return "vec3"
	case *zygo.SexpInt, *zygo.SexpFloat:
		return "number"
	}
	return fmt.Sprintf("%T (%s)", s, s.SexpString(nil))
}

// args gives typed access to the arguments of a builtin call. Errors name
// the builtin and the argument.
type args struct {
	fn    string
	names []string
	vals  []zygo.Sexp
}

func newArgs(fn string, vals []zygo.Sexp, names ...string) (*args, error) {
	if len(vals) != len(names) {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", fn, len(names), len(vals))
	}
	return &args{fn: fn, names: names, vals: vals}, nil
}

func (a *args) errorf(i int, format string, v ...any) error {
	return fmt.Errorf("%s: %s: %s", a.fn, a.names[i], fmt.Sprintf(format, v...))
}

func (a *args) float(i int) (float64, error) {
	switch v := a.vals[i].(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, a.errorf(i, "expected number, got %s", describe(a.vals[i]))
}

func (a *args) vec3(i int) ([3]float64, error) {
	if v, ok := a.vals[i].(*sexpVec3); ok {
		return v.vec, nil
	}
	return [3]float64{}, a.errorf(i, "expected vec3, got %s", describe(a.vals[i]))
}

func (a *args) anyMap(i int) (*sexpMap, error) {
	if m, ok := a.vals[i].(*sexpMap); ok {
		return m, nil
	}
	return nil, a.errorf(i, "expected curve, surface or volume, got %s", describe(a.vals[i]))
}

func (a *args) rank(i, rank int) (*sexpMap, error) {
	if m, ok := a.vals[i].(*sexpMap); ok && m.Rank == rank {
		return m, nil
	}
	return nil, a.errorf(i, "expected %s, got %s", rankNames[rank], describe(a.vals[i]))
}

func (a *args) curve(i int) (homotopy.Curve[float64], error) {
	m, err := a.rank(i, 1)
	if err != nil {
		return nil, err
	}
	return m.Curve, nil
}

func (a *args) surface(i int) (homotopy.Surface[float64], error) {
	m, err := a.rank(i, 2)
	if err != nil {
		return nil, err
	}
	return m.Surface, nil
}

func (a *args) volume(i int) (homotopy.Volume[float64], error) {
	m, err := a.rank(i, 3)
	if err != nil {
		return nil, err
	}
	return m.Volume, nil
}

// outputOf applies an output combinator to a map of any rank.
type outputOf struct {
	curve   func(homotopy.Curve[float64]) homotopy.Curve[float64]
	surface func(homotopy.Surface[float64]) homotopy.Surface[float64]
	volume  func(homotopy.Volume[float64]) homotopy.Volume[float64]
}

func (o outputOf) apply(m *sexpMap) *sexpMap {
	switch m.Rank {
	case 1:
		return curveVal(o.curve(m.Curve))
	case 2:
		return surfaceVal(o.surface(m.Surface))
	case 3:
		return volumeVal(o.volume(m.Volume))
	}
	panic(fmt.Sprintf("invalid rank %d", m.Rank))
}

func mirror(axis int, at float64) outputOf {
	return outputOf{
		curve:   func(c homotopy.Curve[float64]) homotopy.Curve[float64] { return mirrorAxis(axis, at, c) },
		surface: func(s homotopy.Surface[float64]) homotopy.Surface[float64] { return mirrorAxis(axis, at, s) },
		volume:  func(v homotopy.Volume[float64]) homotopy.Volume[float64] { return mirrorAxis(axis, at, v) },
	}
}

func mirrorAxis[M homotopy.Map[I, float64], I any](axis int, at float64, a M) M {
	switch axis {
	case 0:
		return homotopy.MirrorX(at, a)
	case 1:
		return homotopy.MirrorY(at, a)
	default:
		return homotopy.MirrorZ(at, a)
	}
}

func offset(pos [3]float64) outputOf {
	return outputOf{
		curve:   func(c homotopy.Curve[float64]) homotopy.Curve[float64] { return homotopy.Offset(pos, c) },
		surface: func(s homotopy.Surface[float64]) homotopy.Surface[float64] { return homotopy.Offset(pos, s) },
		volume:  func(v homotopy.Volume[float64]) homotopy.Volume[float64] { return homotopy.Offset(pos, v) },
	}
}

func transform(aff homotopy.Affine[float64]) outputOf {
	return outputOf{
		curve:   func(c homotopy.Curve[float64]) homotopy.Curve[float64] { return homotopy.Transform(aff, c) },
		surface: func(s homotopy.Surface[float64]) homotopy.Surface[float64] { return homotopy.Transform(aff, s) },
		volume:  func(v homotopy.Volume[float64]) homotopy.Volume[float64] { return homotopy.Transform(aff, v) },
	}
}

type builtin func(fn string, vals []zygo.Sexp) (zygo.Sexp, error)

// builtins maps names, in the underscore form produced by preprocessSource,
// to their implementations.
var builtins = map[string]builtin{
	"vec3": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "x", "y", "z")
		if err != nil {
			return nil, err
		}
		var v [3]float64
		for i := range v {
			if v[i], err = a.float(i); err != nil {
				return nil, err
			}
		}
		return &sexpVec3{vec: v}, nil
	},
	"line": lineBuiltin,
	"lin":  lineBuiltin,
	"lin2": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "a", "b")
		if err != nil {
			return nil, err
		}
		c0, err := a.curve(0)
		if err != nil {
			return nil, err
		}
		c1, err := a.curve(1)
		if err != nil {
			return nil, err
		}
		return curveVal(homotopy.Lin2(c0, c1)), nil
	},
	"qbez": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "a", "b", "c")
		if err != nil {
			return nil, err
		}
		p, err := vec3s(a)
		if err != nil {
			return nil, err
		}
		return curveVal(homotopy.QuadraticBezier(p[0], p[1], p[2])), nil
	},
	"cbez": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "a", "b", "c", "d")
		if err != nil {
			return nil, err
		}
		p, err := vec3s(a)
		if err != nil {
			return nil, err
		}
		return curveVal(homotopy.CubicBezier(p[0], p[1], p[2], p[3])), nil
	},
	"cquad": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "smooth", "ab", "cd", "ac", "bd")
		if err != nil {
			return nil, err
		}
		smooth, err := a.float(0)
		if err != nil {
			return nil, err
		}
		var cs [4]homotopy.Curve[float64]
		for i := range cs {
			if cs[i], err = a.curve(i + 1); err != nil {
				return nil, err
			}
		}
		return surfaceVal(homotopy.CQuad(smooth, cs[0], cs[1], cs[2], cs[3])), nil
	},
	"con": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, w, err := weighted(fn, vals, "w", "a", "b")
		if err != nil {
			return nil, err
		}
		c0, err := a.curve(1)
		if err != nil {
			return nil, err
		}
		c1, err := a.curve(2)
		if err != nil {
			return nil, err
		}
		return curveVal(homotopy.Concatenate1(w, c0, c1)), nil
	},
	"conx2": concat2(homotopy.ConcatenateX2[float64]),
	"cony2": concat2(homotopy.ConcatenateY2[float64]),
	"conx3": concat3(homotopy.ConcatenateX3[float64]),
	"cony3": concat3(homotopy.ConcatenateY3[float64]),
	"conz3": concat3(homotopy.ConcatenateZ3[float64]),
	"mx":    mirrorBuiltin(0),
	"my":    mirrorBuiltin(1),
	"mz":    mirrorBuiltin(2),
	"mirx2": bakedMirror2(homotopy.BakedMirrorX2[float64]),
	"miry2": bakedMirror2(homotopy.BakedMirrorY2[float64]),
	"mirx3": bakedMirror3(homotopy.BakedMirrorX3[float64]),
	"miry3": bakedMirror3(homotopy.BakedMirrorY3[float64]),
	"mirz3": bakedMirror3(homotopy.BakedMirrorZ3[float64]),
	"rev": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "a")
		if err != nil {
			return nil, err
		}
		c, err := a.curve(0)
		if err != nil {
			return nil, err
		}
		return curveVal(homotopy.Reverse(c)), nil
	},
	"seg": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "start", "end", "a")
		if err != nil {
			return nil, err
		}
		start, err := a.float(0)
		if err != nil {
			return nil, err
		}
		end, err := a.float(1)
		if err != nil {
			return nil, err
		}
		c, err := a.curve(2)
		if err != nil {
			return nil, err
		}
		return curveVal(homotopy.Segment([2]float64{start, end}, c)), nil
	},
	"off": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "pos", "a")
		if err != nil {
			return nil, err
		}
		pos, err := a.vec3(0)
		if err != nil {
			return nil, err
		}
		m, err := a.anyMap(1)
		if err != nil {
			return nil, err
		}
		return offset(pos).apply(m), nil
	},
	"contour": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "a")
		if err != nil {
			return nil, err
		}
		s, err := a.surface(0)
		if err != nil {
			return nil, err
		}
		return curveVal(homotopy.Contour(s)), nil
	},
	"margin1": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, m, err := weighted(fn, vals, "margin", "a")
		if err != nil {
			return nil, err
		}
		c, err := a.curve(1)
		if err != nil {
			return nil, err
		}
		return curveVal(homotopy.Margin1(m, c)), nil
	},
	"margin2": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, m, err := weighted(fn, vals, "margin", "a")
		if err != nil {
			return nil, err
		}
		s, err := a.surface(1)
		if err != nil {
			return nil, err
		}
		return surfaceVal(homotopy.Margin2(m, s)), nil
	},
	"margin3": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, m, err := weighted(fn, vals, "margin", "a")
		if err != nil {
			return nil, err
		}
		v, err := a.volume(1)
		if err != nil {
			return nil, err
		}
		return volumeVal(homotopy.Margin3(m, v)), nil
	},
	"circle": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		center, radius, err := ball(fn, vals)
		if err != nil {
			return nil, err
		}
		return surfaceVal(homotopy.Circle(center, radius)), nil
	},
	"sphere": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		center, radius, err := ball(fn, vals)
		if err != nil {
			return nil, err
		}
		return volumeVal(homotopy.Sphere(center, radius)), nil
	},
	"x2": intersect2(homotopy.IntersectX2[float64]),
	"y2": intersect2(homotopy.IntersectY2[float64]),
	"x3": intersect3(homotopy.IntersectX3[float64]),
	"y3": intersect3(homotopy.IntersectY3[float64]),
	"z3": intersect3(homotopy.IntersectZ3[float64]),
	"ext1": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "a", "b")
		if err != nil {
			return nil, err
		}
		c0, err := a.curve(0)
		if err != nil {
			return nil, err
		}
		c1, err := a.curve(1)
		if err != nil {
			return nil, err
		}
		return surfaceVal(homotopy.Extend1(c0, c1)), nil
	},
	"ext2": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "a", "b")
		if err != nil {
			return nil, err
		}
		c, err := a.curve(0)
		if err != nil {
			return nil, err
		}
		s, err := a.surface(1)
		if err != nil {
			return nil, err
		}
		return volumeVal(homotopy.Extend2(c, s)), nil
	},
	"translate": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "by", "a")
		if err != nil {
			return nil, err
		}
		v, err := a.vec3(0)
		if err != nil {
			return nil, err
		}
		m, err := a.anyMap(1)
		if err != nil {
			return nil, err
		}
		return transform(homotopy.Translate(v)).apply(m), nil
	},
	"scale": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		names := []string{"x", "y", "z", "a"}
		if len(vals) == 2 {
			names = []string{"factor", "a"}
		}
		a, err := newArgs(fn, vals, names...)
		if err != nil {
			return nil, err
		}
		var f [3]float64
		for i := range f {
			if f[i], err = a.float(min(i, len(vals)-2)); err != nil {
				return nil, err
			}
		}
		m, err := a.anyMap(len(vals) - 1)
		if err != nil {
			return nil, err
		}
		return transform(homotopy.Scale(f[0], f[1], f[2])).apply(m), nil
	},
	"rotate_x": rotate(homotopy.RotateX[float64]),
	"rotate_y": rotate(homotopy.RotateY[float64]),
	"rotate_z": rotate(homotopy.RotateZ[float64]),
	"lerp": func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "a", "b", "t")
		if err != nil {
			return nil, err
		}
		p, err := vec3s(&args{fn: fn, names: a.names[:2], vals: a.vals[:2]})
		if err != nil {
			return nil, err
		}
		t, err := a.float(2)
		if err != nil {
			return nil, err
		}
		return &sexpVec3{vec: homotopy.Lerp3(p[0], p[1], t)}, nil
	},
}

func lineBuiltin(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
	a, err := newArgs(fn, vals, "a", "b")
	if err != nil {
		return nil, err
	}
	p, err := vec3s(a)
	if err != nil {
		return nil, err
	}
	return curveVal(homotopy.Line(p[0], p[1])), nil
}

// vec3s returns all arguments as points.
func vec3s(a *args) ([][3]float64, error) {
	out := make([][3]float64, len(a.vals))
	for i := range out {
		var err error
		if out[i], err = a.vec3(i); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// weighted parses the arguments of builtins that take a number followed by
// maps.
func weighted(fn string, vals []zygo.Sexp, names ...string) (*args, float64, error) {
	a, err := newArgs(fn, vals, names...)
	if err != nil {
		return nil, 0, err
	}
	w, err := a.float(0)
	if err != nil {
		return nil, 0, err
	}
	return a, w, nil
}

func ball(fn string, vals []zygo.Sexp) ([3]float64, float64, error) {
	a, err := newArgs(fn, vals, "center", "radius")
	if err != nil {
		return [3]float64{}, 0, err
	}
	center, err := a.vec3(0)
	if err != nil {
		return [3]float64{}, 0, err
	}
	radius, err := a.float(1)
	if err != nil {
		return [3]float64{}, 0, err
	}
	return center, radius, nil
}

func concat2(f func(float64, homotopy.Surface[float64], homotopy.Surface[float64]) homotopy.Surface[float64]) builtin {
	return func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, w, err := weighted(fn, vals, "w", "a", "b")
		if err != nil {
			return nil, err
		}
		s0, err := a.surface(1)
		if err != nil {
			return nil, err
		}
		s1, err := a.surface(2)
		if err != nil {
			return nil, err
		}
		return surfaceVal(f(w, s0, s1)), nil
	}
}

func concat3(f func(float64, homotopy.Volume[float64], homotopy.Volume[float64]) homotopy.Volume[float64]) builtin {
	return func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, w, err := weighted(fn, vals, "w", "a", "b")
		if err != nil {
			return nil, err
		}
		v0, err := a.volume(1)
		if err != nil {
			return nil, err
		}
		v1, err := a.volume(2)
		if err != nil {
			return nil, err
		}
		return volumeVal(f(w, v0, v1)), nil
	}
}

func mirrorBuiltin(axis int) builtin {
	return func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "at", "a")
		if err != nil {
			return nil, err
		}
		at, err := a.float(0)
		if err != nil {
			return nil, err
		}
		m, err := a.anyMap(1)
		if err != nil {
			return nil, err
		}
		return mirror(axis, at).apply(m), nil
	}
}

func bakedMirror2(f func(float64, homotopy.Surface[float64]) homotopy.Surface[float64]) builtin {
	return func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "at", "a")
		if err != nil {
			return nil, err
		}
		at, err := a.float(0)
		if err != nil {
			return nil, err
		}
		s, err := a.surface(1)
		if err != nil {
			return nil, err
		}
		return surfaceVal(f(at, s)), nil
	}
}

func bakedMirror3(f func(float64, homotopy.Volume[float64]) homotopy.Volume[float64]) builtin {
	return func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "at", "a")
		if err != nil {
			return nil, err
		}
		at, err := a.float(0)
		if err != nil {
			return nil, err
		}
		v, err := a.volume(1)
		if err != nil {
			return nil, err
		}
		return volumeVal(f(at, v)), nil
	}
}

func intersect2(f func(float64, homotopy.Surface[float64]) homotopy.Curve[float64]) builtin {
	return func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "at", "a")
		if err != nil {
			return nil, err
		}
		at, err := a.float(0)
		if err != nil {
			return nil, err
		}
		s, err := a.surface(1)
		if err != nil {
			return nil, err
		}
		return curveVal(f(at, s)), nil
	}
}

func intersect3(f func(float64, homotopy.Volume[float64]) homotopy.Surface[float64]) builtin {
	return func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "at", "a")
		if err != nil {
			return nil, err
		}
		at, err := a.float(0)
		if err != nil {
			return nil, err
		}
		v, err := a.volume(1)
		if err != nil {
			return nil, err
		}
		return surfaceVal(f(at, v)), nil
	}
}

func rotate(f func(float64) homotopy.Affine[float64]) builtin {
	return func(fn string, vals []zygo.Sexp) (zygo.Sexp, error) {
		a, err := newArgs(fn, vals, "angle", "a")
		if err != nil {
			return nil, err
		}
		th, err := a.float(0)
		if err != nil {
			return nil, err
		}
		m, err := a.anyMap(1)
		if err != nil {
			return nil, err
		}
		return transform(f(th)).apply(m), nil
	}
}

// registerBuiltins installs all builtins into a zygomys environment.
//
// Source code must be preprocessed with preprocessSource before evaluation so
// that kebab-case builtin names resolve.
func registerBuiltins(env *zygo.Zlisp) {
	for name, b := range builtins {
		env.AddFunction(name, func(env *zygo.Zlisp, _ string, args []zygo.Sexp) (zygo.Sexp, error) {
			v, err := b(name, args)
			if err != nil {
				return zygo.SexpNull, err
			}
			return v, nil
		})
	}
}

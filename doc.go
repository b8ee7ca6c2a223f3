// Package minmath is a small generic numerical toolkit: fixed-shape
// matrices and vectors over any built-in number type, plus sorted sets and
// two-event probability helpers.
//
// 🚀 What is in minmath?
//
//	• Vectors & matrices: elementwise and scalar arithmetic, in-place variants
//	• Linear algebra: product, matrix·vector, transpose, 2×2 determinant, trace
//	• Geometry: dot, 3D cross (Vec3), 2D and X/Y/Z rotation matrices
//	• Sets: union, intersection, cardinality over sorted unique elements
//	• Probability: complement, inclusion-exclusion, a Venn aggregator
//	• Worksheets: YAML files of steps, evaluated by the minmath CLI
//
// ✨ Ground rules
//
//   - Shapes are fixed at construction and checked before any cell is touched
//   - Errors are sentinels wrapped with the failing method; match with errors.Is
//   - Integer ÷ 0 is an error; float ÷ 0 follows IEEE-754
//   - Conversions copy, never alias
//
// Layout:
//
//	core/         numeric constraints, scalar division policy
//	linalg/       Vector, Vec3, Matrix, rotations, tolerance options
//	settheory/    Set
//	probability/  Probability, Complement, AOrB, Venn
//	worksheet/    YAML worksheet loader & evaluator
//	cmd/minmath/  command-line front end (eval, demo, ops, version)
//
// Quick example:
//
//	a := linalg.MustMatrix([][]int{{4, 3, -2}, {0, 2, 1}, {0, 3, 1}})
//	fmt.Print(a.AddScalar(5))
//	// Matrix (3x3):
//	// [9, 8, 3]
//	// [5, 7, 6]
//	// [5, 8, 6]
//
//	go install github.com/katalvlaran/minmath/cmd/minmath@latest
package minmath

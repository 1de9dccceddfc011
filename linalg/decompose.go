package linalg

import (
	"github.com/morriswmz/jasmal/jerr"
	"github.com/morriswmz/jasmal/tensor"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// LUResult holds the factors of an LU decomposition with partial pivoting:
// P*A = L*U.
type LUResult struct {
	L, U, P *tensor.Tensor
}

// LU factors a with partial pivoting. It does not check or report whether a
// is singular.
func LU(a *tensor.Tensor) (*LUResult, error) {
	dense, err := toDense(a, "lu")
	if err != nil {
		return nil, err
	}
	var lu mat.LU
	lu.Factorize(dense)
	rows, _ := dense.Dims()

	var l, u mat.Dense
	l.LFromLU(&lu)
	u.UFromLU(&lu)
	var p mat.Dense
	p.Permutation(rows, lu.Pivot(nil))

	lt, err := fromDense(&l)
	if err != nil {
		return nil, err
	}
	ut, err := fromDense(&u)
	if err != nil {
		return nil, err
	}
	pt, err := fromDense(&p)
	if err != nil {
		return nil, err
	}
	log.Debug().Float64("cond", lu.Cond()).Msg("linalg: lu factorization complete")
	return &LUResult{L: lt, U: ut, P: pt}, nil
}

// QRResult holds the factors of a QR decomposition: a = Q*R.
type QRResult struct {
	Q, R *tensor.Tensor
}

// QR factors a (m x n, m >= n).
func QR(a *tensor.Tensor) (*QRResult, error) {
	dense, err := toDense(a, "qr")
	if err != nil {
		return nil, err
	}
	var qr mat.QR
	qr.Factorize(dense)

	var q, r mat.Dense
	qr.QTo(&q)
	qr.RTo(&r)

	qt, err := fromDense(&q)
	if err != nil {
		return nil, err
	}
	rt, err := fromDense(&r)
	if err != nil {
		return nil, err
	}
	return &QRResult{Q: qt, R: rt}, nil
}

// Cholesky factors symmetric positive-definite a as L*L^T, returning L.
func Cholesky(a *tensor.Tensor) (*tensor.Tensor, error) {
	dense, err := toDense(a, "cholesky")
	if err != nil {
		return nil, err
	}
	rows, cols := dense.Dims()
	if rows != cols {
		return nil, jerr.ShapeOperandf("matrix", "cholesky: expected a square matrix, got %dx%d", rows, cols)
	}
	sym := mat.NewSymDense(rows, nil)
	for i := 0; i < rows; i++ {
		for j := i; j < cols; j++ {
			sym.SetSym(i, j, dense.At(i, j))
		}
	}
	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, jerr.Numericf("cholesky: matrix is not positive-definite")
	}
	var l mat.TriDense
	chol.LTo(&l)
	return fromDense(&l)
}

// SVDResult holds the factors of a = U * diag(S) * V^T.
type SVDResult struct {
	U, V *tensor.Tensor
	S    []float64
}

// SVD computes the full singular value decomposition of a.
func SVD(a *tensor.Tensor) (*SVDResult, error) {
	dense, err := toDense(a, "svd")
	if err != nil {
		return nil, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(dense, mat.SVDFull); !ok {
		return nil, jerr.Numericf("svd: factorization failed to converge")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	ut, err := fromDense(&u)
	if err != nil {
		return nil, err
	}
	vt, err := fromDense(&v)
	if err != nil {
		return nil, err
	}
	return &SVDResult{U: ut, V: vt, S: svd.Values(nil)}, nil
}

// EigSymResult holds the eigenvalues and eigenvectors of a symmetric matrix.
type EigSymResult struct {
	Values  []float64
	Vectors *tensor.Tensor
}

// EigSym computes the eigendecomposition of symmetric a.
func EigSym(a *tensor.Tensor) (*EigSymResult, error) {
	dense, err := toDense(a, "eig")
	if err != nil {
		return nil, err
	}
	rows, cols := dense.Dims()
	if rows != cols {
		return nil, jerr.ShapeOperandf("matrix", "eig: expected a square matrix, got %dx%d", rows, cols)
	}
	sym := mat.NewSymDense(rows, nil)
	for i := 0; i < rows; i++ {
		for j := i; j < cols; j++ {
			sym.SetSym(i, j, dense.At(i, j))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return nil, jerr.Numericf("eig: eigendecomposition failed to converge")
	}
	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	vt, err := fromDense(&vectors)
	if err != nil {
		return nil, err
	}
	return &EigSymResult{Values: eig.Values(nil), Vectors: vt}, nil
}

package fractal

import (
	"math"

	"github.com/gogpu/fractal/internal/parallel"
)

// escapeRadiusSq is the squared divergence threshold. A pixel escapes when
// |z| > 2 strictly; a magnitude of exactly 2 keeps it live.
const escapeRadiusSq = 4.0

// Engine iterates a Frame's coordinate field into its iteration grid.
//
// The iteration runs as a sequence of passes over the whole grid. Within a
// pass every live pixel advances once; rows are split into bands that run
// on the worker pool. A pass is a barrier: the next one starts only after
// every band of the current one has committed. Pixels are independent, so
// the result does not depend on the number of workers.
type Engine struct {
	maxIter  int
	bandRows int

	// pool is nil when the engine runs on the calling goroutine.
	pool *parallel.WorkerPool
}

// NewEngine creates an engine with the given iteration budget.
// workers follows Config.Workers: 1 runs sequentially, <= 0 uses GOMAXPROCS.
func NewEngine(maxIter, workers int) *Engine {
	e := &Engine{
		maxIter:  maxIter,
		bandRows: parallel.BandHeight,
	}
	if workers != 1 {
		e.pool = parallel.NewWorkerPool(workers)
	}
	return e
}

// MaxIteration returns the iteration budget.
func (e *Engine) MaxIteration() int {
	return e.maxIter
}

// Workers returns the number of goroutines a pass is spread across.
func (e *Engine) Workers() int {
	if e.pool == nil {
		return 1
	}
	return e.pool.Workers()
}

// Generate resets f and iterates every pixel of f.Field, writing escape
// counts into f.Iterations. It returns the number of passes run.
//
// The budget is MaxIteration+1 passes. A pass that leaves a pixel live
// increments its count; the pass that detects the escape does not, so a
// point with |c| > 2 scores 0. Counts saturate at MaxIteration, at which
// point the pixel is frozen as never escaping. Generate stops early once no
// pixel is live.
func (e *Engine) Generate(f *Frame) int {
	f.Reset()

	bands := parallel.Bands(f.height, e.bandRows)
	alive := make([]int, len(bands))
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			alive[i] = e.step(f, b)
		}
	}

	passes := 0
	for pass := 0; pass <= e.maxIter; pass++ {
		e.execute(work)
		passes++

		live := 0
		for _, n := range alive {
			live += n
		}
		if live == 0 {
			break
		}
	}

	Logger().Debug("fractal: generation done",
		"passes", passes,
		"workers", e.Workers(),
		"bands", len(bands))
	return passes
}

func (e *Engine) execute(work []func()) {
	if e.pool == nil {
		for _, fn := range work {
			fn()
		}
		return
	}
	e.pool.ExecuteAll(work)
}

// step advances every live pixel of band b once and returns how many are
// still live afterwards.
func (e *Engine) step(f *Frame, b parallel.Band) int {
	live := 0
	lo, hi := Index(0, b.Y0, f.width), Index(0, b.Y1, f.width)
	for i := lo; i < hi; i++ {
		if !f.live[i] {
			continue
		}

		z := iterate(f.z[i], f.Field[i])
		f.z[i] = z

		if real(z)*real(z)+imag(z)*imag(z) > escapeRadiusSq {
			f.live[i] = false
			continue
		}

		f.Iterations[i]++
		if f.Iterations[i] >= e.maxIter {
			f.live[i] = false
			continue
		}
		live++
	}
	return live
}

// iterate computes (|Re z| - i|Im z|)² + c.
//
// With a = |Re z| and b = |Im z|, (a - ib)² = a² - b² - 2abi.
func iterate(z, c complex128) complex128 {
	a, b := math.Abs(real(z)), math.Abs(imag(z))
	return complex(a*a-b*b+real(c), -2*a*b+imag(c))
}

// Close releases the engine's worker goroutines.
// Close is safe to call multiple times.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

package sampler

import (
	"math"
	"testing"

	"github.com/Veraticus/signal-companion/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrids(t *testing.T) {
	tests := []struct {
		name   string
		grid   Grid
		points int
		step   float64
	}{
		{"library", LibraryGrid, 201, 0.05},
		{"convolution", ConvolutionGrid, 81, 0.1},
		{"time", TimeGrid, 101, 0.1},
		{"frequency", FrequencyGrid, 61, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := tt.grid.Values()
			require.Len(t, values, tt.points)
			assert.InDelta(t, tt.grid.Lo, values[0], 1e-12)
			assert.InDelta(t, tt.grid.Hi, values[len(values)-1], 1e-12)
			assert.InDelta(t, tt.step, tt.grid.Step(), 1e-12)
			for i := 1; i < len(values); i++ {
				assert.InDelta(t, tt.step, values[i]-values[i-1], 1e-9)
			}
		})
	}
}

func TestGrid_ValuesAreFresh(t *testing.T) {
	a := TimeGrid.Values()
	a[0] = 42
	assert.Equal(t, 0.0, TimeGrid.Values()[0])
}

func TestStepResponse_FirstOrderPole(t *testing.T) {
	curve := StepResponse([]float64{-2})
	require.Equal(t, TimeGrid.Points, curve.Len())
	assert.Equal(t, 0.0, curve.Y[0])
	assert.InDelta(t, 0.5, curve.Y[curve.Len()-1], 1e-6)
	for i := 1; i < curve.Len(); i++ {
		assert.GreaterOrEqual(t, curve.Y[i], curve.Y[i-1])
	}
}

func TestStepResponse_PoleKinds(t *testing.T) {
	integrator := StepResponse([]float64{0})
	assert.InDelta(t, 10.0, integrator.Y[integrator.Len()-1], 1e-9)

	unstable := StepResponse([]float64{1})
	assert.InDelta(t, math.Exp(10)-1, unstable.Y[unstable.Len()-1], 1e-6)

	none := StepResponse(nil)
	for _, y := range none.Y {
		assert.Equal(t, 0.0, y)
	}
}

func TestImpulseResponse(t *testing.T) {
	decay := ImpulseResponse([]float64{-2})
	assert.InDelta(t, 1.0, decay.Y[0], 1e-12)
	assert.InDelta(t, math.Exp(-20), decay.Y[decay.Len()-1], 1e-12)

	integrator := ImpulseResponse([]float64{0, 0})
	assert.Equal(t, 2.0, integrator.Y[0])
	for _, y := range integrator.Y[1:] {
		assert.Equal(t, 0.0, y)
	}
}

func TestFrequencyResponse_Finite(t *testing.T) {
	floorDB := 20 * math.Log10(MagnitudeFloor)

	cases := map[string][2][]float64{
		"first order":       {{-2}, {}},
		"integrator":        {{0}, {}},
		"double integrator": {{0, 0}, {}},
		"cancellation":      {{0, 0}, {0}},
		"second order":      {{-1, -2}, {-3}},
		"no poles":          {{}, {}},
	}

	for name, pz := range cases {
		t.Run(name, func(t *testing.T) {
			resp := FrequencyResponse(pz[0], pz[1])
			require.Len(t, resp.Frequencies, FrequencyGrid.Points)
			require.Len(t, resp.Magnitude, FrequencyGrid.Points)
			require.Len(t, resp.Phase, FrequencyGrid.Points)
			for i := range resp.Magnitude {
				assert.False(t, math.IsNaN(resp.Magnitude[i]) || math.IsInf(resp.Magnitude[i], 0))
				assert.False(t, math.IsNaN(resp.Phase[i]) || math.IsInf(resp.Phase[i], 0))
				assert.GreaterOrEqual(t, resp.Magnitude[i], floorDB)
			}
		})
	}
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 0.5, Magnitude(0, []float64{-2}, nil), 1e-12)
	assert.Equal(t, MagnitudeCeiling, Magnitude(0, []float64{0}, nil))
	assert.Equal(t, 1.0, Magnitude(0, []float64{0}, []float64{0}))
	assert.Equal(t, MagnitudeFloor, Magnitude(1, []float64{-1e6, -1e6}, nil))
}

func TestPhase(t *testing.T) {
	assert.InDelta(t, -45.0, Phase(1, []float64{1}, nil), 1e-9)
	assert.InDelta(t, -180.0, Phase(0, []float64{-2}, nil), 1e-9)
	assert.InDelta(t, 0.0, Phase(0, []float64{0}, []float64{0}), 1e-9)
}

func TestConvolutionCurve(t *testing.T) {
	curve := ConvolutionCurve()
	require.Equal(t, ConvolutionGrid.Points, curve.Len())

	peak := 0.0
	for i, x := range curve.X {
		y := curve.Y[i]
		if x < 0 || x > 4 {
			assert.Equal(t, 0.0, y, "x=%v", x)
		}
		assert.GreaterOrEqual(t, y, 0.0)
		peak = math.Max(peak, y)
	}
	assert.InDelta(t, 2.0, peak, 1e-9)
}

func TestTriangle(t *testing.T) {
	assert.Equal(t, 0.0, Triangle(-1))
	assert.Equal(t, 1.0, Triangle(1))
	assert.Equal(t, 2.0, Triangle(2))
	assert.Equal(t, 1.0, Triangle(3))
	assert.Equal(t, 0.0, Triangle(4))
	assert.Equal(t, 0.0, Triangle(5))
}

func TestFrames(t *testing.T) {
	curve := ConvolutionCurve()
	frames := Frames(curve, FrameCount)

	require.Equal(t, FrameCount+1, frames.Len())
	assert.Equal(t, 0, frames.Frame(0).Len())
	assert.Equal(t, curve, frames.Frame(frames.Last()))

	for i := 1; i < frames.Len(); i++ {
		prev, cur := frames.Frame(i-1), frames.Frame(i)
		assert.Greater(t, cur.Len(), prev.Len(), "frame %d", i)
		assert.Equal(t, prev.X, cur.X[:prev.Len()])
		assert.Equal(t, prev.Y, cur.Y[:prev.Len()])
		assert.Equal(t, curve.Len()*i/FrameCount, cur.Len())
	}
}

func TestFrames_DoNotAliasCurve(t *testing.T) {
	curve := ConvolutionCurve()
	frames := Frames(curve, FrameCount)
	frames.Frames[FrameCount].Y[40] = -1
	assert.NotEqual(t, -1.0, curve.Y[40])
}

func TestPoleZeroPlot(t *testing.T) {
	traces := PoleZeroPlot([]float64{-1, -2}, []float64{-3})
	require.Len(t, traces, 4)

	assert.Equal(t, model.TraceMarkers, traces[0].Mode)
	assert.Equal(t, []float64{-3}, traces[0].Curve.X)
	assert.Equal(t, []float64{0}, traces[0].Curve.Y)

	assert.Equal(t, []float64{-1, -2}, traces[1].Curve.X)
	assert.Equal(t, []float64{0, 0}, traces[1].Curve.Y)

	assert.True(t, traces[2].Reference)
	assert.Equal(t, []float64{-10, 10}, traces[2].Curve.X)
	assert.Equal(t, []float64{-10, 10}, traces[3].Curve.Y)
}

func TestSignalLibrary(t *testing.T) {
	library := SignalLibrary()
	require.Len(t, library, 5)

	keys := make([]string, 0, len(library))
	for _, entry := range library {
		keys = append(keys, entry.Key)
		require.NotEmpty(t, entry.Traces)
		for _, trace := range entry.Traces {
			assert.Equal(t, len(trace.Curve.X), len(trace.Curve.Y))
		}
	}
	assert.Equal(t, []string{"unitStep", "unitImpulse", "sinusoidal", "exponential", "ramp"}, keys)

	step := library[0].Traces[0].Curve
	assert.Equal(t, LibraryGrid.Points, step.Len())
	assert.Equal(t, 0.0, step.Y[0])
	assert.Equal(t, 1.0, step.Y[step.Len()-1])

	impulse := library[1].Traces
	require.Len(t, impulse, 2)
	assert.Equal(t, []float64{0}, impulse[0].Curve.X)
	assert.Equal(t, []float64{1}, impulse[0].Curve.Y)
	for _, x := range impulse[1].Curve.X {
		assert.Greater(t, math.Abs(x), 0.1)
	}
	assert.Less(t, impulse[1].Curve.Len(), LibraryGrid.Points)

	ramp := library[4].Traces[0].Curve
	assert.InDelta(t, 5.0, ramp.Y[ramp.Len()-1], 1e-12)
}

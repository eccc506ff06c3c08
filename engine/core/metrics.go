package core

const AVG_COUNT uint8 = 30

// FrameMetrics keeps a rolling average of frame times and a once-per-second FPS count.
type FrameMetrics struct {
	frameAVGCounter    uint8
	msTimes            [AVG_COUNT]float64
	msAvg              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{}
}

// Update records one frame that took frameElapsedTime seconds.
func (fm *FrameMetrics) Update(frameElapsedTime float64) {
	frameMS := frameElapsedTime * 1000.0
	fm.msTimes[fm.frameAVGCounter] = frameMS
	if fm.frameAVGCounter == AVG_COUNT-1 {
		sum := 0.0
		for i := uint8(0); i < AVG_COUNT; i++ {
			sum += fm.msTimes[i]
		}
		fm.msAvg = sum / float64(AVG_COUNT)
	}
	fm.frameAVGCounter++
	fm.frameAVGCounter %= AVG_COUNT

	// Count this frame, then roll the FPS window once a full second accumulated.
	fm.frames++
	fm.accumulatedFrameMS += frameMS
	if fm.accumulatedFrameMS >= 1000 {
		fm.fps = float64(fm.frames)
		fm.accumulatedFrameMS -= 1000
		fm.frames = 0
	}
}

func (fm *FrameMetrics) FPS() float64 {
	return fm.fps
}

// FrameTime returns the average frame time in milliseconds over the last AVG_COUNT frames.
func (fm *FrameMetrics) FrameTime() float64 {
	return fm.msAvg
}

func (fm *FrameMetrics) Frame() (float64, float64) {
	return fm.fps, fm.msAvg
}

package renderer

import (
	"fmt"
	"io"
	"log"
	"math"

	"github.com/richinsley/learngl/scenes"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Frame represents a single rendered frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

const frameQueueSize = 3

// encoderArgs returns the ffmpeg arguments for raw RGBA frames read
// bottom row first, as glReadPixels produces them.
func encoderArgs(width, height, fps int) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": fps,
	}
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	return
}

// FrameCount is the number of frames recorded for duration seconds at fps.
func FrameCount(duration float64, fps int) int {
	return int(math.Ceil(duration * float64(fps)))
}

// runEncoder is the consumer. It pipes frames into ffmpeg and reports the
// ffmpeg result on doneChan. It never touches GL.
func (r *Renderer) runEncoder(width, height int, frameChan <-chan *Frame, doneChan chan<- error) {
	pipeReader, pipeWriter := io.Pipe()
	inputArgs, outputArgs := encoderArgs(width, height, r.options.FPS)

	ffmpegCmd := ffmpeg.Input("pipe:", inputArgs).
		Output(r.options.OutputFile, outputArgs).
		OverWriteOutput().WithInput(pipeReader).ErrorToStdOut()

	if r.options.FFMPEGPath != "" {
		ffmpegCmd = ffmpegCmd.SetFfmpegPath(r.options.FFMPEGPath)
	}

	errc := make(chan error, 1)
	go func() {
		err := ffmpegCmd.Run()
		// Unblock the writer if ffmpeg exits early.
		pipeReader.CloseWithError(io.ErrClosedPipe)
		errc <- err
	}()

	var writeErr error
	for frame := range frameChan {
		if writeErr != nil {
			continue // drain so the producer never blocks
		}
		if _, err := pipeWriter.Write(frame.Pixels); err != nil {
			writeErr = fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err)
			log.Println(writeErr)
		}
	}
	pipeWriter.Close()

	if err := <-errc; err != nil {
		doneChan <- fmt.Errorf("ffmpeg failed: %w", err)
		return
	}
	doneChan <- writeErr
}

// RunOffscreen renders duration×fps frames of scene offscreen and encodes
// them to the configured output file.
func (r *Renderer) RunOffscreen(scene scenes.Scene) error {
	or, err := r.offscreen()
	if err != nil {
		return err
	}

	total := FrameCount(r.options.Duration, r.options.FPS)
	log.Printf("Recording %d frames of %s to %s", total, scene.Name(), r.options.OutputFile)

	frameChan := make(chan *Frame, frameQueueSize)
	doneChan := make(chan error, 1)
	go r.runEncoder(or.width, or.height, frameChan, doneChan)

	for i := 0; i < total; i++ {
		t := float64(i) / float64(r.options.FPS)
		or.Bind()
		r.RenderFrame(scene, t, or.width, or.height)
		pixels := or.ReadPixels()
		or.Unbind()
		frameChan <- &Frame{Pixels: pixels, PTS: int64(i)}
	}
	close(frameChan)

	if err := <-doneChan; err != nil {
		return err
	}
	log.Printf("Successfully rendered to %s", r.options.OutputFile)
	return nil
}

package options

import (
	"flag"
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

type Options struct {
	Scene       string  `toml:"scene"`
	List        bool    `toml:"-"`
	Config      string  `toml:"-"`
	Mode        string  `toml:"mode"` // window, snapshot or record
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Title       string  `toml:"title"`
	AssetDir    string  `toml:"assets"`  // shader directory on disk; embedded shaders when empty
	TexturePath string  `toml:"texture"` // image for the textured scenes
	OutputFile  string  `toml:"output"`
	Duration    float64 `toml:"duration"`
	FPS         int     `toml:"fps"`
	FFMPEGPath  string  `toml:"ffmpeg"`
	Headless    bool    `toml:"headless"` // EGL pbuffer instead of a window
}

func Default() *Options {
	return &Options{
		Scene:       "triangle",
		Mode:        "window",
		Width:       800,
		Height:      600,
		Title:       "LearnOpenGL",
		TexturePath: "resources/textures/container.jpg",
		OutputFile:  "output.mp4",
		Duration:    5.0,
		FPS:         60,
	}
}

func (o *Options) bind(fs *flag.FlagSet) {
	fs.StringVar(&o.Scene, "scene", o.Scene, "Scene to render (see -list)")
	fs.BoolVar(&o.List, "list", o.List, "List available scenes and exit")
	fs.StringVar(&o.Config, "config", o.Config, "TOML configuration file; command-line flags take precedence")
	fs.StringVar(&o.Mode, "mode", o.Mode, "Run mode: window, snapshot or record")
	fs.IntVar(&o.Width, "width", o.Width, "Width of the window or output")
	fs.IntVar(&o.Height, "height", o.Height, "Height of the window or output")
	fs.StringVar(&o.Title, "title", o.Title, "Window title")
	fs.StringVar(&o.AssetDir, "assets", o.AssetDir, "Directory holding shader files (embedded shaders when empty)")
	fs.StringVar(&o.TexturePath, "texture", o.TexturePath, "Image file for the textured scenes")
	fs.StringVar(&o.OutputFile, "output", o.OutputFile, "Output file for snapshot (.png) or record mode")
	fs.Float64Var(&o.Duration, "duration", o.Duration, "Duration to record in seconds")
	fs.IntVar(&o.FPS, "fps", o.FPS, "Frames per second for recording")
	fs.StringVar(&o.FFMPEGPath, "ffmpeg", o.FFMPEGPath, "Path to ffmpeg executable")
	fs.BoolVar(&o.Headless, "headless", o.Headless, "Render through an EGL pbuffer instead of a window")
}

// Parse builds options from command-line arguments. When -config names a
// file its values are applied first and the arguments are parsed again,
// so explicit flags override the file.
func Parse(name string, args []string, output io.Writer) (*Options, error) {
	o := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	o.bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.Config != "" {
		if err := o.LoadFile(o.Config); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// LoadFile decodes a TOML file over the current values.
func (o *Options) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

func (o *Options) Validate() error {
	switch o.Mode {
	case "window", "snapshot", "record":
	default:
		return fmt.Errorf("unknown mode %q", o.Mode)
	}
	if o.Headless && o.Mode == "window" {
		return fmt.Errorf("headless rendering needs snapshot or record mode")
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", o.Width, o.Height)
	}
	if o.Mode == "record" {
		if o.FPS <= 0 {
			return fmt.Errorf("fps must be positive, got %d", o.FPS)
		}
		if o.Duration <= 0 {
			return fmt.Errorf("duration must be positive, got %v", o.Duration)
		}
	}
	return nil
}

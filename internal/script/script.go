package script

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/ironsheep/pixel-edit/internal/canvas"
	"github.com/ironsheep/pixel-edit/internal/codec"
	"github.com/ironsheep/pixel-edit/internal/editor"
	"github.com/ironsheep/pixel-edit/internal/op"
)

// Request is one decoded script line. Fields are a union across all
// commands; each command reads the ones it needs.
type Request struct {
	Cmd string `json:"cmd"`

	X  int `json:"x,omitempty"`
	Y  int `json:"y,omitempty"`
	X1 int `json:"x1,omitempty"`
	Y1 int `json:"y1,omitempty"`
	W  int `json:"w,omitempty"`
	H  int `json:"h,omitempty"`

	HalfWidth int      `json:"half_width,omitempty"`
	Radius    int      `json:"radius,omitempty"`
	Points    [][2]int `json:"points,omitempty"`

	Color     string  `json:"color,omitempty"`
	From      string  `json:"from,omitempty"`
	To        string  `json:"to,omitempty"`
	Tolerance float64 `json:"tolerance,omitempty"`
	AA        bool    `json:"aa,omitempty"`
	Blend     bool    `json:"blend,omitempty"`
	Radial    bool    `json:"radial,omitempty"`

	Label   string `json:"label,omitempty"`
	Path    string `json:"path,omitempty"`
	Index   int    `json:"index,omitempty"`
	State   string `json:"state,omitempty"`
	Tool    string `json:"tool,omitempty"`
	Quality int    `json:"quality,omitempty"`
}

// Response is the result line written for each request.
type Response struct {
	Cmd   string `json:"cmd"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`

	Sample *canvas.ColorSample `json:"sample,omitempty"`
	Info   *CanvasInfo         `json:"info,omitempty"`
}

// CanvasInfo is the payload of the "info" query.
type CanvasInfo struct {
	W           int    `json:"w"`
	H           int    `json:"h"`
	Layers      int    `json:"layers"`
	AliveLayers int    `json:"alive_layers"`
	ActiveLayer int    `json:"active_layer"`
	Format      string `json:"format"`
	Path        string `json:"path,omitempty"`
	Dirty       bool   `json:"dirty"`
}

// Runner executes script lines against one editor.
type Runner struct {
	ed    *editor.Editor
	queue editor.Queue
}

// New returns a runner over a blank canvas of the given size.
func New(w, h int) *Runner {
	return &Runner{ed: editor.New(canvas.New(w, h))}
}

// Editor exposes the driven editor, mainly for tests and embedding hosts.
func (r *Runner) Editor() *editor.Editor { return r.ed }

// Run reads JSON lines from in until EOF, writing one response line per
// request to out. Malformed lines produce an error response rather than
// stopping the stream.
func (r *Runner) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			if err := encoder.Encode(&Response{OK: false, Error: fmt.Sprintf("parse error: %v", err)}); err != nil {
				return fmt.Errorf("failed to encode response: %w", err)
			}
			continue
		}

		resp := r.handle(&req)
		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return nil
}

func (r *Runner) handle(req *Request) *Response {
	resp := &Response{Cmd: req.Cmd, OK: true}
	if err := r.dispatch(req, resp); err != nil {
		resp.OK = false
		resp.Error = err.Error()
	}
	return resp
}

func (r *Runner) dispatch(req *Request, resp *Response) error {
	switch req.Cmd {
	case "new":
		if req.W <= 0 || req.H <= 0 {
			return fmt.Errorf("new: size %dx%d is invalid", req.W, req.H)
		}
		r.queue.Push(editor.NewImageCommand{W: req.W, H: req.H})

	case "load":
		img, err := codec.Load(req.Path)
		if err != nil {
			return err
		}
		r.ed.Replace(img)
		return nil

	case "save":
		path := req.Path
		if path == "" {
			path = r.ed.Canvas().Path
		}
		if path == "" {
			return fmt.Errorf("save: no path given and canvas has none")
		}
		if req.Quality > 0 {
			r.ed.Canvas().Quality = req.Quality
		}
		if err := codec.Save(r.ed.Canvas(), path); err != nil {
			return err
		}
		r.ed.Commit()
		return nil

	case "block":
		c, err := parseColor(req.Color)
		if err != nil {
			return err
		}
		r.queue.Push(editor.ApplyCommand{Op: &op.Block{
			X: req.X, Y: req.Y, HalfWidth: req.HalfWidth, Color: c, Blend: req.Blend,
		}})

	case "line":
		c, err := parseColor(req.Color)
		if err != nil {
			return err
		}
		r.queue.Push(editor.ApplyCommand{Op: &op.Line{
			X0: req.X, Y0: req.Y, X1: req.X1, Y1: req.Y1,
			HalfWidth: req.HalfWidth, Color: c, AA: req.AA,
		}})

	case "pencil":
		c, err := parseColor(req.Color)
		if err != nil {
			return err
		}
		pts := make([]image.Point, len(req.Points))
		for i, p := range req.Points {
			pts[i] = image.Pt(p[0], p[1])
		}
		r.queue.Push(editor.ApplyCommand{Op: &op.Pencil{
			Points: pts, HalfWidth: req.HalfWidth, Color: c,
		}})

	case "rect":
		c, err := parseColor(req.Color)
		if err != nil {
			return err
		}
		r.queue.Push(editor.ApplyCommand{Op: &op.RectOutline{
			Rect:      image.Rect(req.X, req.Y, req.X1, req.Y1),
			HalfWidth: req.HalfWidth, Color: c, AA: req.AA,
		}})

	case "fill-rect":
		c, err := parseColor(req.Color)
		if err != nil {
			return err
		}
		r.queue.Push(editor.ApplyCommand{Op: &op.FillRect{
			Rect: image.Rect(req.X, req.Y, req.X1, req.Y1), Color: c, Blend: req.Blend,
		}})

	case "circle":
		c, err := parseColor(req.Color)
		if err != nil {
			return err
		}
		r.queue.Push(editor.ApplyCommand{Op: &op.CircleOutline{
			CX: req.X, CY: req.Y, Radius: req.Radius,
			HalfWidth: req.HalfWidth, Color: c, AA: req.AA,
		}})

	case "gradient":
		from, err := parseColor(req.From)
		if err != nil {
			return err
		}
		to, err := parseColor(req.To)
		if err != nil {
			return err
		}
		r.queue.Push(editor.ApplyCommand{Op: &op.Gradient{
			Rect:  image.Rect(req.X, req.Y, req.X1, req.Y1),
			Start: image.Pt(req.X, req.Y), End: image.Pt(req.X1, req.Y1),
			From: from, To: to, Radial: req.Radial,
		}})

	case "bucket":
		c, err := parseColor(req.Color)
		if err != nil {
			return err
		}
		r.queue.Push(editor.ApplyCommand{Op: &op.BucketFill{
			X: req.X, Y: req.Y, Color: c, Tolerance: req.Tolerance,
		}})

	case "select":
		r.queue.Push(editor.SelectCommand{Region: image.Rect(req.X, req.Y, req.X1, req.Y1)})

	case "clear-selection":
		r.queue.Push(editor.ClearSelectionCommand{})

	case "begin-stroke":
		r.queue.Push(editor.BeginStrokeCommand{Label: req.Label})

	case "end-stroke":
		r.queue.Push(editor.EndStrokeCommand{})

	case "undo":
		r.queue.Push(editor.UndoCommand{})

	case "redo":
		r.queue.Push(editor.RedoCommand{})

	case "add-layer":
		r.queue.Push(editor.AddLayerCommand{})

	case "delete-layer":
		r.queue.Push(editor.DeleteLayerCommand{Index: req.Index})

	case "duplicate-layer":
		r.queue.Push(editor.DuplicateLayerCommand{Index: req.Index})

	case "set-layer-state":
		state, err := parseLayerState(req.State)
		if err != nil {
			return err
		}
		r.queue.Push(editor.SetLayerStateCommand{Index: req.Index, State: state})

	case "set-active-layer":
		r.queue.Push(editor.SetActiveLayerCommand{Index: req.Index})

	case "resample":
		if req.W <= 0 || req.H <= 0 {
			return fmt.Errorf("resample: size %dx%d is invalid", req.W, req.H)
		}
		r.queue.Push(editor.ResampleCommand{W: req.W, H: req.H})

	case "resize-canvas":
		if req.W <= 0 || req.H <= 0 {
			return fmt.Errorf("resize-canvas: size %dx%d is invalid", req.W, req.H)
		}
		r.queue.Push(editor.ResizeCanvasCommand{W: req.W, H: req.H})

	case "tool":
		r.queue.Push(editor.SetToolCommand{Tool: req.Tool})

	case "color":
		c, err := parseColor(req.Color)
		if err != nil {
			return err
		}
		r.queue.Push(editor.SetColorCommand{Color: c})

	case "sample":
		s := r.ed.Canvas().SampleColor(req.X, req.Y)
		resp.Sample = &s
		return nil

	case "info":
		img := r.ed.Canvas()
		resp.Info = &CanvasInfo{
			W:           img.W,
			H:           img.H,
			Layers:      len(img.Layers),
			AliveLayers: img.AliveCount(),
			ActiveLayer: r.ed.ActiveLayer(),
			Format:      img.Format,
			Path:        img.Path,
			Dirty:       r.ed.Dirty(),
		}
		return nil

	default:
		return fmt.Errorf("unknown command %q", req.Cmd)
	}

	r.queue.Drain(r.ed)
	return nil
}

func parseLayerState(s string) (canvas.LayerState, error) {
	switch s {
	case "visible":
		return canvas.LayerVisible, nil
	case "hidden":
		return canvas.LayerHidden, nil
	case "deleted":
		return canvas.LayerDeleted, nil
	default:
		return 0, fmt.Errorf("unknown layer state %q", s)
	}
}

// parseColor decodes "#RRGGBB" or "#RRGGBBAA" hex notation. A missing
// alpha means opaque.
func parseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lintang/labyrinthx/pkg/console"
	"lintang/labyrinthx/pkg/datastructure"
	"lintang/labyrinthx/pkg/kv"
	"lintang/labyrinthx/pkg/server"
	"lintang/labyrinthx/pkg/server/rest/service"
	"lintang/labyrinthx/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/twpayne/go-polyline"
)

type MazeService interface {
	GenerateMaze(ctx context.Context, n int, p float64, start, goal datastructure.Cell, seed *int64) (kv.MazeRecord, error)
	CreateMaze(ctx context.Context, rows []string, start, goal datastructure.Cell) (kv.MazeRecord, error)
	GetMaze(ctx context.Context, id string) (kv.MazeRecord, error)
	DeleteMaze(ctx context.Context, id string) error
	SolveMaze(ctx context.Context, id string) ([]service.AlgorithmReport, error)
	GetRuns(ctx context.Context, id string) ([]kv.RunRecord, error)
}

type MazeHandler struct {
	svc          MazeService
	promeMetrics *metrics
	validate     *validator.Validate
	trans        ut.Translator
}

func MazeRouter(r *chi.Mux, svc MazeService, m *metrics) {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	handler := &MazeHandler{svc, m, validate, trans}

	r.Group(func(r chi.Router) {
		r.Route("/api/mazes", func(r chi.Router) {
			r.Post("/", handler.generateMaze)
			r.Post("/grid", handler.createMaze)
			r.Get("/{id}", handler.getMaze)
			r.Delete("/{id}", handler.deleteMaze)
			r.Post("/{id}/search", handler.searchMaze)
			r.Get("/{id}/runs", handler.getRuns)
		})
	})
}

// Coord posisi cell (row, col)
type Coord struct {
	Row int `json:"row" validate:"gte=0,lt=100"`
	Col int `json:"col" validate:"gte=0,lt=100"`
}

func (c Coord) cell() datastructure.Cell {
	return datastructure.NewCell(c.Row, c.Col)
}

func newCoord(c datastructure.Cell) Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

func newCoords(cells []datastructure.Cell) []Coord {
	coords := make([]Coord, 0, len(cells))
	for _, c := range cells {
		coords = append(coords, newCoord(c))
	}
	return coords
}

// GenerateMazeRequest model info
//
//	@Description	request body untuk generate maze random n x n
type GenerateMazeRequest struct {
	N     int      `json:"n" validate:"required,min=1,max=100"`
	P     *float64 `json:"p" validate:"required,gte=0,lte=1"`
	Start Coord    `json:"start"`
	Goal  Coord    `json:"goal"`
	Seed  *int64   `json:"seed,omitempty"`
}

func (s *GenerateMazeRequest) Bind(r *http.Request) error {
	if s.Start == s.Goal {
		return errors.New("goal cell cannot be the same as start cell")
	}
	if s.N > 0 && (s.Start.Row >= s.N || s.Start.Col >= s.N || s.Goal.Row >= s.N || s.Goal.Col >= s.N) {
		return fmt.Errorf("coordinates must be between 0 and %d", s.N-1)
	}
	return nil
}

// CreateMazeRequest model info
//
//	@Description	request body untuk maze yang ditulis manual, '.' free dan '#' blocked
type CreateMazeRequest struct {
	Rows  []string `json:"rows" validate:"required,min=1,max=100,dive,required"`
	Start Coord    `json:"start"`
	Goal  Coord    `json:"goal"`
}

func (s *CreateMazeRequest) Bind(r *http.Request) error {
	if len(s.Rows) == 0 {
		return errors.New("invalid request")
	}
	if s.Start == s.Goal {
		return errors.New("goal cell cannot be the same as start cell")
	}
	return nil
}

// MazeResponse model info
//
//	@Description	response body maze yang tersimpan
type MazeResponse struct {
	ID          string   `json:"id"`
	N           int      `json:"n"`
	Probability float64  `json:"p,omitempty"`
	Seed        int64    `json:"seed,omitempty"`
	Rows        []string `json:"rows"`
	Start       Coord    `json:"start"`
	Goal        Coord    `json:"goal"`
	Portals     []Coord  `json:"portals"`
	Maze        string   `json:"maze"`
	CreatedAt   int64    `json:"created_at"`
}

func NewMazeResponse(rec kv.MazeRecord) (*MazeResponse, error) {
	grid, err := rec.Grid()
	if err != nil {
		return nil, err
	}
	resp := &MazeResponse{
		ID:        rec.ID,
		N:         rec.N,
		Seed:      rec.Seed,
		Rows:      rec.Rows,
		Start:     newCoord(rec.Start),
		Goal:      newCoord(rec.Goal),
		Portals:   []Coord{newCoord(grid.PortalA()), newCoord(grid.PortalB())},
		Maze:      console.RenderMaze(grid, rec.Start, rec.Goal, nil),
		CreatedAt: rec.CreatedAt,
	}
	if rec.Probability >= 0 {
		resp.Probability = util.RoundFloat(rec.Probability, 4)
	}
	return resp, nil
}

// AlgorithmResult model info
//
//	@Description	hasil satu algoritma search
type AlgorithmResult struct {
	Algorithm  string  `json:"algorithm"`
	Found      bool    `json:"found"`
	Cost       float64 `json:"cost"`
	Expansions int     `json:"expansions"`
	Path       []Coord `json:"path,omitempty"`
	Polyline   string  `json:"polyline,omitempty"`
	Maze       string  `json:"maze,omitempty"`
}

// SearchResponse model info
//
//	@Description	response body search UCS dan A* pada satu maze
type SearchResponse struct {
	MazeID  string            `json:"maze_id"`
	Results []AlgorithmResult `json:"results"`
}

// encodePath path cell sebagai polyline, row dan col dipakai sebagai pasangan koordinat.
func encodePath(cells []datastructure.Cell) string {
	if len(cells) == 0 {
		return ""
	}
	coords := make([][]float64, 0, len(cells))
	for _, c := range cells {
		coords = append(coords, []float64{float64(c.Row), float64(c.Col)})
	}
	return string(polyline.EncodeCoords(coords))
}

func NewSearchResponse(rec kv.MazeRecord, reports []service.AlgorithmReport) (*SearchResponse, error) {
	grid, err := rec.Grid()
	if err != nil {
		return nil, err
	}
	resp := &SearchResponse{MazeID: rec.ID, Results: make([]AlgorithmResult, 0, len(reports))}
	for _, rep := range reports {
		res := AlgorithmResult{
			Algorithm:  string(rep.Algorithm),
			Found:      rep.Found,
			Expansions: rep.Expansions,
		}
		if rep.Found {
			res.Cost = util.RoundFloat(rep.Cost, 1)
			res.Path = newCoords(rep.Path.Cells)
			res.Polyline = encodePath(rep.Path.Cells)
			res.Maze = console.RenderMaze(grid, rec.Start, rec.Goal, rep.Path.CellSet())
		}
		resp.Results = append(resp.Results, res)
	}
	return resp, nil
}

// RunsResponse model info
//
//	@Description	run terakhir yang tersimpan untuk satu maze
type RunsResponse struct {
	MazeID string            `json:"maze_id"`
	Runs   []AlgorithmResult `json:"runs"`
}

func NewRunsResponse(id string, runs []kv.RunRecord) *RunsResponse {
	resp := &RunsResponse{MazeID: id, Runs: make([]AlgorithmResult, 0, len(runs))}
	for _, run := range runs {
		res := AlgorithmResult{
			Algorithm:  run.Algorithm,
			Found:      run.Found,
			Expansions: run.Expansions,
		}
		if run.Found {
			res.Cost = util.RoundFloat(run.Cost, 1)
			res.Path = newCoords(run.Path)
			res.Polyline = encodePath(run.Path)
		}
		resp.Runs = append(resp.Runs, res)
	}
	return resp
}

func (h *MazeHandler) validateStruct(w http.ResponseWriter, r *http.Request, data interface{}) bool {
	if err := h.validate.Struct(data); err != nil {
		vv := translateError(err, h.trans)
		render.Render(w, r, ErrValidation(err, vv))
		return false
	}
	return true
}

// generateMaze
//
//	@Summary		generate maze random n x n lalu simpan.
//	@Description	generate maze random n x n, setiap cell free dengan probabilitas p. start, goal dan kedua portal selalu free.
//	@Tags			mazes
//	@Param			body	body	GenerateMazeRequest	true	"request body generate maze"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/mazes [post]
//	@Success		201	{object}	MazeResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *MazeHandler) generateMaze(w http.ResponseWriter, r *http.Request) {
	data := &GenerateMazeRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateStruct(w, r, *data) {
		return
	}

	rec, err := h.svc.GenerateMaze(r.Context(), data.N, *data.P, data.Start.cell(), data.Goal.cell(), data.Seed)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	resp, err := NewMazeResponse(rec)
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

// createMaze
//
//	@Summary		simpan maze yang ditulis manual.
//	@Tags			mazes
//	@Param			body	body	CreateMazeRequest	true	"request body maze manual"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/mazes/grid [post]
//	@Success		201	{object}	MazeResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *MazeHandler) createMaze(w http.ResponseWriter, r *http.Request) {
	data := &CreateMazeRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if !h.validateStruct(w, r, *data) {
		return
	}

	rec, err := h.svc.CreateMaze(r.Context(), data.Rows, data.Start.cell(), data.Goal.cell())
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	resp, err := NewMazeResponse(rec)
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, resp)
}

// getMaze
//
//	@Summary		ambil maze yang tersimpan.
//	@Tags			mazes
//	@Param			id	path	string	true	"maze id"
//	@Produce		application/json
//	@Router			/mazes/{id} [get]
//	@Success		200	{object}	MazeResponse
//	@Failure		404	{object}	ErrResponse
func (h *MazeHandler) getMaze(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.GetMaze(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	resp, err := NewMazeResponse(rec)
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// deleteMaze
//
//	@Summary		hapus maze beserta run nya.
//	@Tags			mazes
//	@Param			id	path	string	true	"maze id"
//	@Router			/mazes/{id} [delete]
//	@Success		204
//	@Failure		404	{object}	ErrResponse
func (h *MazeHandler) deleteMaze(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteMaze(r.Context(), chi.URLParam(r, "id")); err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	render.NoContent(w, r)
}

// searchMaze
//
//	@Summary		jalankan UCS lalu A* pada maze yang tersimpan.
//	@Description	jalankan UCS lalu A* (heuristic chebyshev dengan portal). cost sama untuk keduanya, expansions A* <= UCS.
//	@Tags			mazes
//	@Param			id	path	string	true	"maze id"
//	@Produce		application/json
//	@Router			/mazes/{id}/search [post]
//	@Success		200	{object}	SearchResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *MazeHandler) searchMaze(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	reports, err := h.svc.SolveMaze(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	for _, rep := range reports {
		h.promeMetrics.ObserveSearch(string(rep.Algorithm), rep.Found, rep.Expansions)
	}

	rec, err := h.svc.GetMaze(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	resp, err := NewSearchResponse(rec, reports)
	if err != nil {
		render.Render(w, r, ErrRender(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

// getRuns
//
//	@Summary		run terakhir untuk satu maze.
//	@Tags			mazes
//	@Param			id	path	string	true	"maze id"
//	@Produce		application/json
//	@Router			/mazes/{id}/runs [get]
//	@Success		200	{object}	RunsResponse
//	@Failure		404	{object}	ErrResponse
func (h *MazeHandler) getRuns(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	runs, err := h.svc.GetRuns(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewRunsResponse(id, runs))
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 400,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: 422,
		StatusText:     "Error rendering response.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	statusText := ""
	code := getStatusCode(err)
	switch code {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusConflict:
		statusText = "Resource conflict."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	// error internal tidak dikirim ke client
	errText := err.Error()
	var ierr *server.Error
	if code == http.StatusInternalServerError {
		errText = server.MessageInternalServerError
		if errors.As(err, &ierr) {
			errText = ierr.Message()
		}
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     statusText,
		ErrorText:      errText,
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	} else {
		switch ierr.Code() {
		case server.ErrInternalServerError:
			return http.StatusInternalServerError
		case server.ErrNotFound:
			return http.StatusNotFound
		case server.ErrConflict:
			return http.StatusConflict
		case server.ErrBadParamInput:
			return http.StatusBadRequest
		default:
			return http.StatusInternalServerError
		}
	}

}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}

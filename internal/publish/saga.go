// Package publish runs the capture, upload and create-report workflow as a
// saga. Steps run strictly in order without retries; once the image is
// uploaded, any later failure deletes it again.
package publish

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"childcare-app-server/internal/models"
)

// FailureNotice is shown to the user when publishing fails.
const FailureNotice = "리포트 발행에 실패했습니다."

// State is a step of the workflow.
type State string

const (
	Capturing State = "capturing"
	Uploading State = "uploading"
	Creating  State = "creating"
	Done      State = "done"
	Failed    State = "failed"
)

// Snapshot is a captured report image.
type Snapshot struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Image is an uploaded snapshot.
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Capturer produces the image to publish.
type Capturer interface {
	Capture(ctx context.Context) (*Snapshot, error)
}

// Backend is the server side of the workflow.
type Backend interface {
	UploadImage(ctx context.Context, snap *Snapshot) (*Image, error)
	DeleteImage(ctx context.Context, id string) error
	CreateReport(ctx context.Context, imageURL, title string) (*models.Report, error)
}

// Observer is told about every state the saga enters.
type Observer func(State)

// Result describes a finished run.
type Result struct {
	State State
	// FailedAt is the step that failed, empty on success.
	FailedAt State
	Image    *Image
	Report   *models.Report
	// Compensated is set when the uploaded image was deleted after a failure.
	Compensated     bool
	CompensationErr error
	// Notice is the user-facing message of a failed run.
	Notice string
}

// Option configures a Saga.
type Option func(*Saga)

// WithObserver registers fn for state transitions.
func WithObserver(fn Observer) Option {
	return func(s *Saga) { s.observer = fn }
}

// WithLogger sets the logger used for transitions and failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Saga) { s.log = l }
}

// Saga publishes one report per Run.
type Saga struct {
	capturer Capturer
	backend  Backend
	observer Observer
	log      zerolog.Logger
}

// New creates a Saga.
func New(capturer Capturer, backend Backend, opts ...Option) *Saga {
	s := &Saga{capturer: capturer, backend: backend, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Saga) enter(res *Result, state State) {
	res.State = state
	s.log.Debug().Str("state", string(state)).Msg("publish")
	if s.observer != nil {
		s.observer(state)
	}
}

func (s *Saga) fail(ctx context.Context, res *Result, err error) (*Result, error) {
	res.FailedAt = res.State
	res.Notice = FailureNotice

	if res.Image != nil && res.Report == nil {
		// cleanup runs even when ctx is done
		cleanup := context.WithoutCancel(ctx)
		if derr := s.backend.DeleteImage(cleanup, res.Image.ID); derr != nil {
			res.CompensationErr = errors.Wrap(derr, "delete uploaded image")
			s.log.Error().Err(derr).Str("image_id", res.Image.ID).Msg("publish compensation failed")
		} else {
			res.Compensated = true
		}
	}

	s.log.Warn().Err(err).Str("failed_at", string(res.FailedAt)).Bool("compensated", res.Compensated).Msg("publish failed")
	s.enter(res, Failed)
	return res, err
}

// Run publishes a report titled title. The returned Result is never nil; the
// error is non-nil exactly when the run ended in Failed.
func (s *Saga) Run(ctx context.Context, title string) (*Result, error) {
	res := &Result{}

	s.enter(res, Capturing)
	if err := ctx.Err(); err != nil {
		return s.fail(ctx, res, err)
	}
	snap, err := s.capturer.Capture(ctx)
	if err != nil {
		return s.fail(ctx, res, errors.Wrap(err, "capture"))
	}
	if snap == nil || len(snap.Data) == 0 {
		return s.fail(ctx, res, errors.New("capture: empty image"))
	}

	s.enter(res, Uploading)
	if err := ctx.Err(); err != nil {
		return s.fail(ctx, res, err)
	}
	img, err := s.backend.UploadImage(ctx, snap)
	if err != nil {
		return s.fail(ctx, res, errors.Wrap(err, "upload image"))
	}
	res.Image = img

	s.enter(res, Creating)
	if err := ctx.Err(); err != nil {
		return s.fail(ctx, res, err)
	}
	report, err := s.backend.CreateReport(ctx, img.URL, title)
	if err != nil {
		return s.fail(ctx, res, errors.Wrap(err, "create report"))
	}
	res.Report = report

	s.enter(res, Done)
	s.log.Info().Str("report_id", report.ID).Str("image_id", img.ID).Msg("report published")
	return res, nil
}
